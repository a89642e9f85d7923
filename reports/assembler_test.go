package reports

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"painel-vendas-backend/database"
	"painel-vendas-backend/targets"
)

var testNow = time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

func mockAssembler(t *testing.T, targetSheet string) (*Assembler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	gw := database.NewGatewayWithOpener(func() (*sqlx.DB, error) {
		return sqlx.NewDb(db, "sqlmock"), nil
	})
	a := New(gw, targets.New(targetSheet))
	a.now = func() time.Time { return testNow }
	return a, mock
}

func writeTargets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "targets.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write targets: %v", err)
	}
	return path
}

func unreachableAssembler(t *testing.T) *Assembler {
	t.Helper()
	gw := database.NewGatewayWithOpener(func() (*sqlx.DB, error) {
		return nil, errors.New("connection refused")
	})
	a := New(gw, targets.New(filepath.Join(t.TempDir(), "missing.csv")))
	a.now = func() time.Time { return testNow }
	return a
}

func TestRosterUnreachableStore(t *testing.T) {
	a := unreachableAssembler(t)

	view := a.Roster(RosterFilter{Kind: FilterAll})
	if view.Clients == nil {
		t.Fatal("roster must be an empty list, not nil")
	}
	if len(view.Clients) != 0 {
		t.Fatalf("expected empty roster, got %d clients", len(view.Clients))
	}
	zero := view.Totals
	if zero.Clients != 0 || zero.OverdueClients != 0 || zero.CreditLimits != 0 ||
		zero.Debits != 0 || zero.Targets != 0 || zero.Revenue != 0 {
		t.Fatalf("expected zeroed totals, got %+v", zero)
	}
}

func TestRosterDebitGatesOverdueAndTargets(t *testing.T) {
	sheet := writeTargets(t, "1,2000\n")
	a, mock := mockAssembler(t, sheet)

	mock.ExpectQuery("FROM clien").WillReturnRows(sqlmock.NewRows([]string{
		"Codigo", "Razao_Social", "Bloqueado", "Limite_Credito", "Total_Debito",
		"Valor_UltimaFatura", "Data_UltimaFatura", "Vendedor", "Total_NF", "Total_Compras",
	}).
		AddRow(1, "ACME LTDA", "0", 10000.0, 500.0, 1200.0, testNow.AddDate(0, 0, -30), "ANA", 12, 30000.0).
		AddRow(2, "BRAVO SA", "1", 5000.0, 0.0, 0.0, nil, "N/A", 0, 4000.0))

	// Both clients have a stale overdue receivable; only the one with a
	// positive debit may count it.
	mock.ExpectQuery("FROM ctrec").WillReturnRows(sqlmock.NewRows([]string{
		"Cod_Cliente", "Vencimento",
	}).
		AddRow(1, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)).
		AddRow(2, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))

	view := a.Roster(RosterFilter{Kind: FilterAll})
	if len(view.Clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(view.Clients))
	}

	acme := view.Clients[0]
	if acme.OverdueDays != 9 {
		t.Fatalf("client 1 overdue = %d, want 9", acme.OverdueDays)
	}
	if acme.MonthlyTarget != 2000 {
		t.Fatalf("client 1 target = %v, want 2000", acme.MonthlyTarget)
	}
	// 30000 against an annualized target of 24000.
	if acme.AttainmentPct != 125 {
		t.Fatalf("client 1 attainment = %v, want 125", acme.AttainmentPct)
	}
	if acme.CreditBalance != 9500 {
		t.Fatalf("client 1 credit balance = %v, want 9500", acme.CreditBalance)
	}

	bravo := view.Clients[1]
	if bravo.OverdueDays != 0 {
		t.Fatalf("zero-debit client must have 0 overdue days, got %d", bravo.OverdueDays)
	}
	if !bravo.Blocked {
		t.Fatal("client 2 must be flagged blocked")
	}
	// No target on the sheet: attainment 0 regardless of revenue.
	if bravo.AttainmentPct != 0 {
		t.Fatalf("target miss must give attainment 0, got %v", bravo.AttainmentPct)
	}

	totals := view.Totals
	if totals.Clients != 2 || totals.OverdueClients != 1 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if totals.CreditLimits != 15000 || totals.Debits != 500 || totals.Targets != 2000 || totals.Revenue != 34000 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

func TestRosterSearchFilterBinding(t *testing.T) {
	yearStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0).Add(-time.Second)
	emptyClients := []string{
		"Codigo", "Razao_Social", "Bloqueado", "Limite_Credito", "Total_Debito",
		"Valor_UltimaFatura", "Data_UltimaFatura", "Vendedor", "Total_NF", "Total_Compras",
	}

	t.Run("numeric search binds code and name pattern", func(t *testing.T) {
		a, mock := mockAssembler(t, filepath.Join(t.TempDir(), "missing.csv"))
		mock.ExpectQuery(`cl\.Codigo = \? OR cl\.Razao_Social LIKE \?`).
			WithArgs(yearStart, yearEnd, yearStart, yearEnd, 42, "%42%").
			WillReturnRows(sqlmock.NewRows(emptyClients))
		mock.ExpectQuery("FROM ctrec").
			WillReturnRows(sqlmock.NewRows([]string{"Cod_Cliente", "Vencimento"}))

		a.Roster(RosterFilter{Kind: FilterSearch, Search: "42"})
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("free text search binds name pattern only", func(t *testing.T) {
		a, mock := mockAssembler(t, filepath.Join(t.TempDir(), "missing.csv"))
		mock.ExpectQuery(`cl\.Razao_Social LIKE \?`).
			WithArgs(yearStart, yearEnd, yearStart, yearEnd, "%ACME%").
			WillReturnRows(sqlmock.NewRows(emptyClients))
		mock.ExpectQuery("FROM ctrec").
			WillReturnRows(sqlmock.NewRows([]string{"Cod_Cliente", "Vencimento"}))

		a.Roster(RosterFilter{Kind: FilterSearch, Search: "ACME"})
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestClientAnalysis(t *testing.T) {
	a, mock := mockAssembler(t, filepath.Join(t.TempDir(), "missing.csv"))

	mock.ExpectQuery("FROM clien").WillReturnRows(sqlmock.NewRows([]string{
		"Codigo", "Razao_Social", "Bloqueado", "Limite_Credito", "Total_Debito",
		"Valor_UltimaFatura", "Data_UltimaFatura", "Vendedor",
	}).AddRow(7, "ACME LTDA", "0", 10000.0, 150.0, 900.0,
		time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC), "ANA"))

	mock.ExpectQuery("FROM ctrec").WillReturnRows(sqlmock.NewRows([]string{
		"Cod_Cliente", "Num_Documento", "Parcela", "Vlr_Documento", "Vlr_Saldo",
		"Dat_Emissao", "Dat_Vencimento", "Dias_Prorrogacao", "Status",
	}).
		AddRow(7, "1001", "1", 100.0, 100.0, nil, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), 0, "A").
		AddRow(7, "1002", "1", 50.0, 50.0, nil, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), 45, "A"))

	mock.ExpectQuery("NFSIT").WillReturnRows(sqlmock.NewRows([]string{
		"Cod_Produto", "Descricao", "Quantidade", "Valor_Total", "Num_Compras",
	}).
		AddRow(1, "PARAFUSO", 10.0, 800.0, 5).
		AddRow(2, "PORCA", 5.0, 150.0, 2).
		AddRow(3, "ARRUELA", 20.0, 50.0, 1))

	mock.ExpectQuery("Total_Vendas").WillReturnRows(sqlmock.NewRows([]string{
		"Mes", "Ano", "Total_Vendas",
	}).
		AddRow(1, 2025, 1000.0).
		AddRow(3, 2024, 500.0))

	view, ok := a.ClientAnalysis(7)
	if !ok {
		t.Fatal("expected client to be found")
	}

	if view.CreditBalance != 9850 {
		t.Fatalf("credit balance = %v, want 9850", view.CreditBalance)
	}
	if view.DaysSinceLastInvoice != 10 {
		t.Fatalf("days since last invoice = %d, want 10", view.DaysSinceLastInvoice)
	}

	if len(view.Receivables) != 2 {
		t.Fatalf("expected 2 receivables, got %d", len(view.Receivables))
	}
	if view.Receivables[0].OverdueDays != 9 {
		t.Fatalf("doc 1001 overdue = %d, want 9", view.Receivables[0].OverdueDays)
	}
	// Grace days push doc 1002 past today.
	if view.Receivables[1].OverdueDays != 0 {
		t.Fatalf("doc 1002 overdue = %d, want 0", view.Receivables[1].OverdueDays)
	}
	if view.MaxOverdueDays != 9 {
		t.Fatalf("max overdue = %d, want 9", view.MaxOverdueDays)
	}

	if len(view.Products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(view.Products))
	}
	classes := []string{view.Products[0].Class, view.Products[1].Class, view.Products[2].Class}
	if classes[0] != "A" || classes[1] != "B" || classes[2] != "C" {
		t.Fatalf("ABC classes = %v, want [A B C]", classes)
	}
	if view.ProductRevenue != 1000 {
		t.Fatalf("product revenue = %v, want 1000", view.ProductRevenue)
	}

	if len(view.Comparison) != 12 {
		t.Fatalf("expected 12 comparison buckets, got %d", len(view.Comparison))
	}
	jan := view.Comparison[0]
	if jan.Totals[2025] != 1000 || jan.Totals[2024] != 0 {
		t.Fatalf("january bucket = %v", jan.Totals)
	}
	mar := view.Comparison[2]
	if mar.Totals[2024] != 500 || mar.Totals[2025] != 0 {
		t.Fatalf("march bucket = %v", mar.Totals)
	}
}

func TestClientAnalysisNotFound(t *testing.T) {
	a, mock := mockAssembler(t, filepath.Join(t.TempDir(), "missing.csv"))
	mock.ExpectQuery("FROM clien").WillReturnRows(sqlmock.NewRows([]string{"Codigo"}))

	if _, ok := a.ClientAnalysis(404); ok {
		t.Fatal("expected not found")
	}
}

func TestRegionalChannelSplitAndRanking(t *testing.T) {
	a, mock := mockAssembler(t, filepath.Join(t.TempDir(), "missing.csv"))

	mock.ExpectQuery("FROM NFSCB").WillReturnRows(sqlmock.NewRows([]string{
		"Cidade", "Bairro", "Tipo_Origem", "Operador", "Notas", "Total",
	}).
		AddRow("SAO PAULO", "CENTRO", "M", "CARLA", 8, 5000.0).
		AddRow("CAMPINAS", "CENTRO", "T", "N/A", 4, 3000.0).
		AddRow("SAO PAULO", "LAPA", "M", "CARLA", 3, 2000.0).
		AddRow("SANTOS", "GONZAGA", "W", "N/A", 2, 1000.0).
		AddRow("SAO PAULO", "MOOCA", "X", "N/A", 1, 500.0))

	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	view := a.Regional(9, from, testNow)

	if view.TotalRevenue != 11500 {
		t.Fatalf("total revenue = %v, want 11500", view.TotalRevenue)
	}
	if view.TotalInvoices != 18 {
		t.Fatalf("total invoices = %d, want 18", view.TotalInvoices)
	}
	if view.Channels.Mobile != 7000 || view.Channels.Telesales != 3000 ||
		view.Channels.Web != 1000 || view.Channels.Other != 500 {
		t.Fatalf("unexpected channel split: %+v", view.Channels)
	}

	if len(view.TopMobile) != 2 {
		t.Fatalf("expected 2 mobile rows in ranking, got %d", len(view.TopMobile))
	}
	if view.TopMobile[0].Revenue != 5000 || view.TopMobile[1].Revenue != 2000 {
		t.Fatalf("mobile ranking out of order: %+v", view.TopMobile)
	}
	if view.Rows[0].Channel != "mobile" || view.Rows[4].Channel != "other" {
		t.Fatalf("channel mapping wrong: %+v", view.Rows)
	}
}

func TestProjection(t *testing.T) {
	a, mock := mockAssembler(t, filepath.Join(t.TempDir(), "missing.csv"))

	mock.ExpectQuery("FROM NFSCB").WillReturnRows(
		sqlmock.NewRows([]string{"total"}).AddRow(1000.0))
	mock.ExpectQuery("FROM metas").WillReturnRows(
		sqlmock.NewRows([]string{"meta"}).AddRow(2000.0))

	view := a.Projection(9)

	// June 2025: 7 working days elapsed by the 10th, 21 in the month.
	if view.WorkingDaysElapsed != 7 || view.WorkingDaysTotal != 21 {
		t.Fatalf("working days = %d/%d, want 7/21", view.WorkingDaysElapsed, view.WorkingDaysTotal)
	}
	if view.Projected != 3000 {
		t.Fatalf("projected = %v, want 3000", view.Projected)
	}
	if view.AttainmentPct != 150 {
		t.Fatalf("attainment = %v, want 150", view.AttainmentPct)
	}
	if view.Status != "green" {
		t.Fatalf("status = %q, want green", view.Status)
	}
}

func TestProjectionMissingQuota(t *testing.T) {
	a, mock := mockAssembler(t, filepath.Join(t.TempDir(), "missing.csv"))

	mock.ExpectQuery("FROM NFSCB").WillReturnRows(
		sqlmock.NewRows([]string{"total"}).AddRow(1000.0))
	mock.ExpectQuery("FROM metas").WillReturnRows(sqlmock.NewRows([]string{"meta"}))

	view := a.Projection(9)
	if view.Target != 0 {
		t.Fatalf("target = %v, want 0", view.Target)
	}
	if view.AttainmentPct != 0 {
		t.Fatalf("attainment without quota = %v, want 0", view.AttainmentPct)
	}
	if view.Status != "red" {
		t.Fatalf("status = %q, want red", view.Status)
	}
}

func TestParseRosterFilter(t *testing.T) {
	cases := []struct {
		tipo, valor string
		want        RosterFilter
	}{
		{"vendedor", "9", RosterFilter{Kind: FilterSalesperson, SalespersonCode: 9}},
		{"grupo", "3", RosterFilter{Kind: FilterGroup, GroupCode: 3}},
		{"busca", "ACME", RosterFilter{Kind: FilterSearch, Search: "ACME"}},
		{"vendedor", "abc", RosterFilter{Kind: FilterAll}},
		{"grupo", "", RosterFilter{Kind: FilterAll}},
		{"busca", "", RosterFilter{Kind: FilterAll}},
		{"todos", "", RosterFilter{Kind: FilterAll}},
		{"", "", RosterFilter{Kind: FilterAll}},
	}
	for _, c := range cases {
		if got := ParseRosterFilter(c.tipo, c.valor); got != c.want {
			t.Errorf("ParseRosterFilter(%q, %q) = %+v, want %+v", c.tipo, c.valor, got, c.want)
		}
	}
}
