package models

// SalespersonRow is a row of the ERP salesperson table (vende). Monthly
// quotas live in the metas table and are read as scalar aggregates.
type SalespersonRow struct {
	Code int    `db:"Codigo" json:"code"`
	Name string `db:"Nome_guerra" json:"name"`
}
