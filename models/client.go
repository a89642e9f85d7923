package models

import (
	"database/sql"
)

// ClientRow is the roster projection of the ERP client table (clien),
// scanned once at the query boundary. Aggregate columns are coalesced to 0
// in SQL; the remaining nullable columns keep their sql.Null* form until
// the view-model coalesces them.
type ClientRow struct {
	Code             int          `db:"Codigo"`
	LegalName        string       `db:"Razao_Social"`
	Blocked          string       `db:"Bloqueado"` // '0' = free, anything else = blocked
	CreditLimit      float64      `db:"Limite_Credito"`
	TotalDebit       float64      `db:"Total_Debito"`
	LastInvoiceValue float64      `db:"Valor_UltimaFatura"`
	LastInvoiceAt    sql.NullTime `db:"Data_UltimaFatura"`
	Salesperson      string       `db:"Vendedor"`
	InvoiceCount     int          `db:"Total_NF"`
	PeriodRevenue    float64      `db:"Total_Compras"`
}

// IsBlocked reports whether the ERP blocked flag is set for this client.
func (c ClientRow) IsBlocked() bool {
	return c.Blocked != "" && c.Blocked != "0"
}

// CreditBalance is the remaining credit (limit minus outstanding debit).
// May be negative.
func (c ClientRow) CreditBalance() float64 {
	return c.CreditLimit - c.TotalDebit
}
