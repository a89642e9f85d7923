package reports

import (
	"painel-vendas-backend/analytics"
	"painel-vendas-backend/models"
	"painel-vendas-backend/utils"
)

const clientHeaderQuery = `
SELECT cl.Codigo,
       cl.Razao_Social,
       cl.Bloqueado,
       COALESCE(cl.Limite_Credito, 0)     AS Limite_Credito,
       COALESCE(cl.Total_Debito, 0)       AS Total_Debito,
       COALESCE(cl.Valor_UltimaFatura, 0) AS Valor_UltimaFatura,
       cl.Data_UltimaFatura,
       COALESCE(ve.Nome_guerra, 'N/A')    AS Vendedor
FROM clien cl
LEFT JOIN enxes en ON cl.Cgc_Cpf = en.Num_CgcCpf AND en.Cod_Estabe = 0
LEFT JOIN vende ve ON en.Cod_Vendedor = ve.Codigo
WHERE cl.Codigo = ?
LIMIT 1`

const topProductsQuery = `
SELECT it.Cod_Produto,
       COALESCE(pr.Descricao, '')          AS Descricao,
       SUM(COALESCE(it.Qtd_Produto, 0))    AS Quantidade,
       SUM(COALESCE(it.Vlr_TotItem, 0))    AS Valor_Total,
       COUNT(DISTINCT cb.Num_Nota)         AS Num_Compras
FROM NFSCB cb
INNER JOIN NFSIT it ON cb.Num_Nota = it.Num_Nota AND cb.Ser_Nota = it.Ser_Nota
LEFT JOIN produ pr ON it.Cod_Produto = pr.Codigo
WHERE cb.Cod_Cliente = ?
  AND cb.Status = 'F'
GROUP BY it.Cod_Produto, pr.Descricao
ORDER BY Valor_Total DESC
LIMIT ?`

const monthlyComparisonQuery = `
SELECT MONTH(cb.Dat_Emissao)                 AS Mes,
       YEAR(cb.Dat_Emissao)                  AS Ano,
       COALESCE(SUM(cb.Vlr_TotalNota), 0)    AS Total_Vendas
FROM NFSCB cb
WHERE cb.Cod_Cliente = ?
  AND cb.Status = 'F'
  AND YEAR(cb.Dat_Emissao) IN (?, ?)
GROUP BY MONTH(cb.Dat_Emissao), YEAR(cb.Dat_Emissao)`

const openReceivablesQuery = `
SELECT ct.Cod_Cliente,
       ct.Num_Documento,
       COALESCE(ct.Parcela, '')           AS Parcela,
       COALESCE(ct.Vlr_Documento, 0)      AS Vlr_Documento,
       COALESCE(ct.Vlr_Saldo, 0)          AS Vlr_Saldo,
       ct.Dat_Emissao,
       ct.Dat_Vencimento,
       COALESCE(ct.Dias_Prorrogacao, 0)   AS Dias_Prorrogacao,
       ct.Status
FROM ctrec ct
WHERE ct.Cod_Cliente = ?
  AND ct.Vlr_Saldo > 0
  AND ct.Status IN ('A', 'P')
ORDER BY ct.Dat_Vencimento`

// ClientAnalysis builds the drill-down for one client: header, open
// receivables with overdue days, ABC-classified top products, and the
// two-year monthly comparison. Returns false when the client does not
// exist (or the store is unreachable).
func (a *Assembler) ClientAnalysis(clientCode int) (models.ClientAnalysisView, bool) {
	var head models.ClientRow
	if ok := a.gw.Get(&head, clientHeaderQuery, clientCode); !ok {
		return models.ClientAnalysisView{}, false
	}
	now := a.now()

	view := models.ClientAnalysisView{
		Code:             head.Code,
		LegalName:        head.LegalName,
		Blocked:          head.IsBlocked(),
		Salesperson:      head.Salesperson,
		CreditLimit:      head.CreditLimit,
		TotalDebit:       head.TotalDebit,
		CreditBalance:    head.CreditBalance(),
		LastInvoiceValue: head.LastInvoiceValue,
		Receivables:      make([]models.ReceivableView, 0),
	}
	if head.LastInvoiceAt.Valid {
		t := head.LastInvoiceAt.Time
		view.LastInvoiceAt = &t
		view.DaysSinceLastInvoice = analytics.OverdueDays(t, 0, now)
	}

	// Open receivables with per-document overdue days. Overdue only counts
	// while the client carries a positive debit.
	var recs []models.ReceivableRow
	a.gw.Select(&recs, openReceivablesQuery, clientCode)
	for _, r := range recs {
		rv := models.ReceivableView{
			Document:    r.Document,
			Installment: r.Installment,
			Value:       r.Value,
			Balance:     r.Balance,
			GraceDays:   r.GraceDays,
		}
		if r.IssuedAt.Valid {
			t := r.IssuedAt.Time
			rv.IssuedAt = &t
		}
		if r.DueAt.Valid {
			t := r.DueAt.Time
			rv.DueAt = &t
			if head.TotalDebit > 0 && r.IsOutstanding() {
				rv.OverdueDays = analytics.OverdueDays(t, r.GraceDays, now)
			}
		}
		if rv.OverdueDays > view.MaxOverdueDays {
			view.MaxOverdueDays = rv.OverdueDays
		}
		view.Receivables = append(view.Receivables, rv)
	}

	// Top products by revenue, ABC classified. The query orders revenue
	// descending, which ClassifyABC requires.
	var prods []models.ProductSalesRow
	a.gw.Select(&prods, topProductsQuery, clientCode, a.topProducts)
	items := make([]analytics.ProductSales, 0, len(prods))
	for _, p := range prods {
		revenue := 0.0
		if p.Revenue.Valid {
			revenue = p.Revenue.Float64
		}
		items = append(items, analytics.ProductSales{
			ProductCode:   p.ProductCode,
			Description:   p.Description,
			Quantity:      p.Quantity,
			Revenue:       revenue,
			PurchaseCount: p.PurchaseCount,
		})
		view.ProductRevenue += revenue
	}
	view.Products = analytics.ClassifyABC(items)
	view.ProductRevenue = utils.Round2(view.ProductRevenue)

	// Monthly comparison over the previous and current year.
	years := []int{now.Year() - 1, now.Year()}
	var monthly []models.MonthlyRevenueRow
	a.gw.Select(&monthly, monthlyComparisonQuery, clientCode, years[0], years[1])
	rows := make([]analytics.MonthlyRevenue, 0, len(monthly))
	for _, m := range monthly {
		total := 0.0
		if m.Total.Valid {
			total = m.Total.Float64
		}
		rows = append(rows, analytics.MonthlyRevenue{Month: m.Month, Year: m.Year, Total: total})
	}
	view.Comparison = analytics.MonthlyComparison(rows, years)

	return view, true
}
