package reports

import (
	"time"

	"painel-vendas-backend/models"
	"painel-vendas-backend/utils"
)

const regionalQuery = `
SELECT COALESCE(nf.Cidade, '')            AS Cidade,
       COALESCE(nf.Bairro, '')            AS Bairro,
       COALESCE(nf.Tipo_Origem, '')       AS Tipo_Origem,
       COALESCE(op.Nome, 'N/A')           AS Operador,
       COUNT(DISTINCT nf.Num_Nota)        AS Notas,
       COALESCE(SUM(nf.Vlr_TotalNota), 0) AS Total
FROM NFSCB nf
LEFT JOIN opera op ON nf.Cod_Operador = op.Codigo
WHERE nf.Cod_Vendedor = ?
  AND nf.Status = 'F'
  AND nf.Dat_Emissao BETWEEN ? AND ?
  AND nf.Cod_Estabe = 0
GROUP BY nf.Cidade, nf.Bairro, nf.Tipo_Origem, op.Nome
ORDER BY Total DESC`

const topMobileRanking = 10

// Regional builds the city/district/channel/operator breakdown for one
// salesperson and date range, the channel revenue split, and the top-10
// mobile ranking used by the chart.
func (a *Assembler) Regional(salespersonCode int, from, to time.Time) models.RegionalView {
	var rows []models.RegionalRow
	a.gw.Select(&rows, regionalQuery, salespersonCode, from, to)

	view := models.RegionalView{
		SalespersonCode: salespersonCode,
		From:            from,
		To:              to,
		Rows:            make([]models.RegionalEntry, 0, len(rows)),
		TopMobile:       make([]models.RegionalEntry, 0, topMobileRanking),
	}

	for _, r := range rows {
		channel := models.ChannelName(r.Channel)
		entry := models.RegionalEntry{
			City:     r.City,
			District: r.District,
			Channel:  channel,
			Operator: r.Operator,
			Invoices: r.Invoices,
			Revenue:  r.Revenue,
		}
		view.Rows = append(view.Rows, entry)
		view.TotalInvoices += r.Invoices
		view.TotalRevenue += r.Revenue

		switch channel {
		case "mobile":
			view.Channels.Mobile += r.Revenue
			// Rows arrive revenue-descending, so the first ten mobile
			// entries are already the ranking.
			if len(view.TopMobile) < topMobileRanking {
				view.TopMobile = append(view.TopMobile, entry)
			}
		case "telesales":
			view.Channels.Telesales += r.Revenue
		case "web":
			view.Channels.Web += r.Revenue
		default:
			view.Channels.Other += r.Revenue
		}
	}

	view.TotalRevenue = utils.Round2(view.TotalRevenue)
	return view
}
