package models

import "database/sql"

// Origin channel codes in NFSCB.Tipo_Origem.
const (
	ChannelMobileCode    = "M"
	ChannelTelesalesCode = "T"
	ChannelWebCode       = "W"
)

// ChannelName maps an ERP origin channel code to its display name.
// Unknown codes fall into "other".
func ChannelName(code string) string {
	switch code {
	case ChannelMobileCode:
		return "mobile"
	case ChannelTelesalesCode:
		return "telesales"
	case ChannelWebCode:
		return "web"
	default:
		return "other"
	}
}

// MonthlyRevenueRow is one (month, year) revenue aggregate from the invoice
// header table.
type MonthlyRevenueRow struct {
	Month int             `db:"Mes"`
	Year  int             `db:"Ano"`
	Total sql.NullFloat64 `db:"Total_Vendas"`
}

// ProductSalesRow is the per-product purchase aggregate for one client,
// joined from invoice headers and line items.
type ProductSalesRow struct {
	ProductCode   int             `db:"Cod_Produto"`
	Description   string          `db:"Descricao"`
	Quantity      float64         `db:"Quantidade"`
	Revenue       sql.NullFloat64 `db:"Valor_Total"`
	PurchaseCount int             `db:"Num_Compras"`
}

// RegionalRow is one city/district/channel/operator revenue aggregate for
// the regional breakdown.
type RegionalRow struct {
	City     string  `db:"Cidade"`
	District string  `db:"Bairro"`
	Channel  string  `db:"Tipo_Origem"`
	Operator string  `db:"Operador"`
	Invoices int     `db:"Notas"`
	Revenue  float64 `db:"Total"`
}
