package reports

import (
	"time"

	"painel-vendas-backend/analytics"
	"painel-vendas-backend/models"
	"painel-vendas-backend/utils"
)

const salespersonMTDRevenueQuery = `
SELECT COALESCE(SUM(nf.Vlr_TotalNota), 0)
FROM NFSCB nf
WHERE nf.Cod_Vendedor = ?
  AND nf.Status = 'F'
  AND nf.Dat_Emissao BETWEEN ? AND ?
  AND nf.Cod_Estabe = 0`

const companyMTDRevenueQuery = `
SELECT COALESCE(SUM(nf.Vlr_TotalNota), 0)
FROM NFSCB nf
WHERE nf.Status = 'F'
  AND nf.Dat_Emissao BETWEEN ? AND ?
  AND nf.Cod_Estabe = 0`

const salespersonQuotaQuery = `
SELECT COALESCE(Vlr_Meta, 0) FROM metas WHERE Cod_Vendedor = ? AND Ano = ? AND Mes = ?`

const companyQuotaQuery = `
SELECT COALESCE(SUM(Vlr_Meta), 0) FROM metas WHERE Ano = ? AND Mes = ?`

// Projection builds the month-to-date attainment record for one
// salesperson: quota, actuals, working-days projection, and gauge color.
// A missing quota row means target 0 and attainment 0.
func (a *Assembler) Projection(salespersonCode int) models.ProjectionView {
	now := a.now()
	monthStart, monthEnd := monthBounds(now)

	var revenue float64
	a.gw.Get(&revenue, salespersonMTDRevenueQuery, salespersonCode, monthStart, now)

	var quota float64
	a.gw.Get(&quota, salespersonQuotaQuery, salespersonCode, now.Year(), int(now.Month()))

	return a.project(salespersonCode, now, monthStart, monthEnd, revenue, quota)
}

// CompanyProjection is the same attainment record aggregated company-wide:
// independent sums of revenue and quotas, then the identical formula.
func (a *Assembler) CompanyProjection() models.ProjectionView {
	now := a.now()
	monthStart, monthEnd := monthBounds(now)

	var revenue float64
	a.gw.Get(&revenue, companyMTDRevenueQuery, monthStart, now)

	var quota float64
	a.gw.Get(&quota, companyQuotaQuery, now.Year(), int(now.Month()))

	return a.project(0, now, monthStart, monthEnd, revenue, quota)
}

func (a *Assembler) project(code int, now, monthStart, monthEnd time.Time, revenue, quota float64) models.ProjectionView {
	elapsed := analytics.WorkingDays(monthStart, now)
	total := analytics.WorkingDays(monthStart, monthEnd)

	projected := analytics.Project(revenue, elapsed, total)
	attainment := analytics.Attainment(projected, quota)

	return models.ProjectionView{
		SalespersonCode:    code,
		Year:               now.Year(),
		Month:              int(now.Month()),
		Target:             quota,
		Revenue:            utils.Round2(revenue),
		Projected:          utils.Round2(projected),
		WorkingDaysElapsed: elapsed,
		WorkingDaysTotal:   total,
		AttainmentPct:      utils.Round2(attainment),
		Status:             analytics.StatusColor(attainment),
	}
}

func monthBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}
