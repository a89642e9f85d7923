package models

import (
	"database/sql"
	"time"
)

// Receivable status codes in ctrec.Status that still count as owing.
// Settled documents ('Q') are filtered out in SQL.
const (
	ReceivableOpen    = "A"
	ReceivablePartial = "P"
)

// ReceivableRow is one open-items row of the ERP receivables table (ctrec).
type ReceivableRow struct {
	ClientCode  int          `db:"Cod_Cliente"`
	Document    string       `db:"Num_Documento"`
	Installment string       `db:"Parcela"`
	Value       float64      `db:"Vlr_Documento"`
	Balance     float64      `db:"Vlr_Saldo"`
	IssuedAt    sql.NullTime `db:"Dat_Emissao"`
	DueAt       sql.NullTime `db:"Dat_Vencimento"`
	GraceDays   int          `db:"Dias_Prorrogacao"`
	Status      string       `db:"Status"`
}

// IsOutstanding reports whether the document still counts for overdue
// arithmetic: a positive remaining balance on an open or partial document.
func (r ReceivableRow) IsOutstanding() bool {
	return r.Balance > 0 && (r.Status == ReceivableOpen || r.Status == ReceivablePartial)
}

// EarliestDueRow is the per-client earliest adjusted due date among
// outstanding receivables.
type EarliestDueRow struct {
	ClientCode int       `db:"Cod_Cliente"`
	DueAt      time.Time `db:"Vencimento"`
}
