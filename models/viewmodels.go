package models

import (
	"time"

	"painel-vendas-backend/analytics"
)

// View-model structs emitted to the rendering layer. Everything here is
// derived per request and never persisted.

// RosterEntry is one client line of the roster view with its computed
// credit and attainment fields.
type RosterEntry struct {
	Code             int        `json:"code"`
	LegalName        string     `json:"legal_name"`
	Blocked          bool       `json:"blocked"`
	Salesperson      string     `json:"salesperson"`
	CreditLimit      float64    `json:"credit_limit"`
	TotalDebit       float64    `json:"total_debit"`
	CreditBalance    float64    `json:"credit_balance"`
	LastInvoiceValue float64    `json:"last_invoice_value"`
	LastInvoiceAt    *time.Time `json:"last_invoice_at,omitempty"`
	InvoiceCount     int        `json:"invoice_count"`
	Revenue          float64    `json:"revenue"`
	OverdueDays      int        `json:"overdue_days"`
	MonthlyTarget    float64    `json:"monthly_target"`
	AttainmentPct    float64    `json:"attainment_pct"`
	Status           string     `json:"status"`
}

// PortfolioTotals aggregates the roster into portfolio-level figures.
type PortfolioTotals struct {
	Clients        int     `json:"clients"`
	OverdueClients int     `json:"overdue_clients"`
	CreditLimits   float64 `json:"credit_limits"`
	Debits         float64 `json:"debits"`
	Targets        float64 `json:"targets"`
	Revenue        float64 `json:"revenue"`
}

type RosterView struct {
	Clients []RosterEntry   `json:"clients"`
	Totals  PortfolioTotals `json:"totals"`
}

// ReceivableView is one open document in the client drill-down.
type ReceivableView struct {
	Document    string     `json:"document"`
	Installment string     `json:"installment"`
	Value       float64    `json:"value"`
	Balance     float64    `json:"balance"`
	IssuedAt    *time.Time `json:"issued_at,omitempty"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	GraceDays   int        `json:"grace_days"`
	OverdueDays int        `json:"overdue_days"`
}

// ClientAnalysisView is the per-client drill-down.
type ClientAnalysisView struct {
	Code                 int                           `json:"code"`
	LegalName            string                        `json:"legal_name"`
	Blocked              bool                          `json:"blocked"`
	Salesperson          string                        `json:"salesperson"`
	CreditLimit          float64                       `json:"credit_limit"`
	TotalDebit           float64                       `json:"total_debit"`
	CreditBalance        float64                       `json:"credit_balance"`
	LastInvoiceValue     float64                       `json:"last_invoice_value"`
	LastInvoiceAt        *time.Time                    `json:"last_invoice_at,omitempty"`
	DaysSinceLastInvoice int                           `json:"days_since_last_invoice"`
	MaxOverdueDays       int                           `json:"max_overdue_days"`
	Receivables          []ReceivableView              `json:"receivables"`
	Products             []analytics.ClassifiedProduct `json:"products"`
	ProductRevenue       float64                       `json:"product_revenue"`
	Comparison           []analytics.MonthBucket       `json:"comparison"`
}

// RegionalEntry is one aggregate line of the regional breakdown.
type RegionalEntry struct {
	City     string  `json:"city"`
	District string  `json:"district"`
	Channel  string  `json:"channel"`
	Operator string  `json:"operator"`
	Invoices int     `json:"invoices"`
	Revenue  float64 `json:"revenue"`
}

// ChannelSplit is the regional revenue split by origin channel.
type ChannelSplit struct {
	Mobile    float64 `json:"mobile"`
	Telesales float64 `json:"telesales"`
	Web       float64 `json:"web"`
	Other     float64 `json:"other"`
}

type RegionalView struct {
	SalespersonCode int            `json:"salesperson_code"`
	From            time.Time      `json:"from"`
	To              time.Time      `json:"to"`
	Rows            []RegionalEntry `json:"rows"`
	Channels        ChannelSplit   `json:"channels"`
	TotalInvoices   int            `json:"total_invoices"`
	TotalRevenue    float64        `json:"total_revenue"`
	TopMobile       []RegionalEntry `json:"top_mobile"`
}

// ProjectionView is the month-to-date attainment record for one
// salesperson, or company-wide when SalespersonCode is 0.
type ProjectionView struct {
	SalespersonCode    int     `json:"salesperson_code"`
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	Target             float64 `json:"target"`
	Revenue            float64 `json:"revenue"`
	Projected          float64 `json:"projected"`
	WorkingDaysElapsed int     `json:"working_days_elapsed"`
	WorkingDaysTotal   int     `json:"working_days_total"`
	AttainmentPct      float64 `json:"attainment_pct"`
	Status             string  `json:"status"`
}
