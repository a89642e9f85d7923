package reports

import (
	"strconv"
	"time"

	"painel-vendas-backend/analytics"
	"painel-vendas-backend/models"
	"painel-vendas-backend/utils"
)

const rosterQuery = `
SELECT cl.Codigo,
       cl.Razao_Social,
       cl.Bloqueado,
       COALESCE(cl.Limite_Credito, 0)     AS Limite_Credito,
       COALESCE(cl.Total_Debito, 0)       AS Total_Debito,
       COALESCE(cl.Valor_UltimaFatura, 0) AS Valor_UltimaFatura,
       cl.Data_UltimaFatura,
       COALESCE(ve.Nome_guerra, 'N/A')    AS Vendedor,
       (SELECT COUNT(DISTINCT nf.Num_Nota) FROM NFSCB nf
         WHERE nf.Cod_Cliente = cl.Codigo
           AND nf.Status = 'F'
           AND nf.Dat_Emissao BETWEEN ? AND ?
           AND nf.Cod_Estabe = 0)                     AS Total_NF,
       (SELECT COALESCE(SUM(nf.Vlr_TotalNota), 0) FROM NFSCB nf
         WHERE nf.Cod_Cliente = cl.Codigo
           AND nf.Status = 'F'
           AND nf.Dat_Emissao BETWEEN ? AND ?
           AND nf.Cod_Estabe = 0)                     AS Total_Compras
FROM clien cl
LEFT JOIN enxes en ON cl.Cgc_Cpf = en.Num_CgcCpf AND en.Cod_Estabe = 0
LEFT JOIN vende ve ON en.Cod_Vendedor = ve.Codigo AND ve.Bloqueado = 0
WHERE 1 = 1`

const earliestOpenDueQuery = `
SELECT ct.Cod_Cliente,
       MIN(DATE_ADD(ct.Dat_Vencimento, INTERVAL COALESCE(ct.Dias_Prorrogacao, 0) DAY)) AS Vencimento
FROM ctrec ct
WHERE ct.Vlr_Saldo > 0
  AND ct.Status IN ('A', 'P')
  AND ct.Dat_Vencimento IS NOT NULL
GROUP BY ct.Cod_Cliente
HAVING Vencimento < ?`

const salespeopleQuery = `
SELECT Codigo, Nome_guerra FROM vende WHERE Bloqueado = 0 ORDER BY Nome_guerra`

const clientGroupsQuery = `
SELECT DISTINCT Cod_GrpCli FROM clien WHERE Cod_GrpCli IS NOT NULL ORDER BY Cod_GrpCli`

// Roster builds the client roster for the current year, one computed entry
// per client plus the portfolio totals. An unreachable store yields an
// empty roster with zeroed totals.
func (a *Assembler) Roster(f RosterFilter) models.RosterView {
	now := a.now()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	yearEnd := yearStart.AddDate(1, 0, 0).Add(-time.Second)

	query := rosterQuery
	args := []interface{}{yearStart, yearEnd, yearStart, yearEnd}

	switch f.Kind {
	case FilterSalesperson:
		query += " AND en.Cod_Vendedor = ?"
		args = append(args, f.SalespersonCode)
	case FilterGroup:
		query += " AND cl.Cod_GrpCli = ?"
		args = append(args, f.GroupCode)
	case FilterSearch:
		if code, err := strconv.Atoi(f.Search); err == nil {
			query += " AND (cl.Codigo = ? OR cl.Razao_Social LIKE ?)"
			args = append(args, code, "%"+f.Search+"%")
		} else {
			query += " AND cl.Razao_Social LIKE ?"
			args = append(args, "%"+f.Search+"%")
		}
	}
	query += " ORDER BY cl.Razao_Social"

	var rows []models.ClientRow
	a.gw.Select(&rows, query, args...)

	var dues []models.EarliestDueRow
	a.gw.Select(&dues, earliestOpenDueQuery, now)
	dueByClient := make(map[int]time.Time, len(dues))
	for _, d := range dues {
		dueByClient[d.ClientCode] = d.DueAt
	}

	targetByClient := a.targets.Load()

	view := models.RosterView{Clients: make([]models.RosterEntry, 0, len(rows))}
	for _, r := range rows {
		// Overdue days only count while the client actually owes something.
		overdue := 0
		if r.TotalDebit > 0 {
			if due, ok := dueByClient[r.Code]; ok {
				overdue = analytics.OverdueDays(due, 0, now)
			}
		}

		target := targetByClient[r.Code]
		yearTarget := target * 12
		attainment := analytics.Attainment(r.PeriodRevenue, yearTarget)

		entry := models.RosterEntry{
			Code:             r.Code,
			LegalName:        r.LegalName,
			Blocked:          r.IsBlocked(),
			Salesperson:      r.Salesperson,
			CreditLimit:      r.CreditLimit,
			TotalDebit:       r.TotalDebit,
			CreditBalance:    r.CreditBalance(),
			LastInvoiceValue: r.LastInvoiceValue,
			InvoiceCount:     r.InvoiceCount,
			Revenue:          r.PeriodRevenue,
			OverdueDays:      overdue,
			MonthlyTarget:    target,
			AttainmentPct:    utils.Round2(attainment),
			Status:           analytics.StatusColor(attainment),
		}
		if r.LastInvoiceAt.Valid {
			t := r.LastInvoiceAt.Time
			entry.LastInvoiceAt = &t
		}
		view.Clients = append(view.Clients, entry)

		view.Totals.Clients++
		if overdue > 0 {
			view.Totals.OverdueClients++
		}
		view.Totals.CreditLimits += r.CreditLimit
		view.Totals.Debits += r.TotalDebit
		view.Totals.Targets += target
		view.Totals.Revenue += r.PeriodRevenue
	}
	view.Totals.CreditLimits = utils.Round2(view.Totals.CreditLimits)
	view.Totals.Debits = utils.Round2(view.Totals.Debits)
	view.Totals.Revenue = utils.Round2(view.Totals.Revenue)
	return view
}

// Salespeople lists the active salespeople for the roster filter.
func (a *Assembler) Salespeople() []models.SalespersonRow {
	out := make([]models.SalespersonRow, 0)
	a.gw.Select(&out, salespeopleQuery)
	return out
}

// ClientGroups lists the distinct client group codes for the roster filter.
func (a *Assembler) ClientGroups() []int {
	out := make([]int, 0)
	a.gw.Select(&out, clientGroupsQuery)
	return out
}
