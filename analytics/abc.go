// Package analytics holds the pure computations behind the dashboard
// views: ABC (Pareto) product classification, multi-year monthly revenue
// comparison, and quota attainment with a working-days projection. Nothing
// in here touches the database; callers fetch rows and hand them over.
package analytics

// ProductSales is one product purchase aggregate for a single client.
type ProductSales struct {
	ProductCode   int     `json:"code"`
	Description   string  `json:"description"`
	Quantity      float64 `json:"quantity"`
	Revenue       float64 `json:"revenue"`
	PurchaseCount int     `json:"purchases"`
}

// ClassifiedProduct is a ProductSales annotated with its ABC class and the
// cumulative revenue share it closes.
type ClassifiedProduct struct {
	ProductSales
	Class         string  `json:"class"`
	CumulativePct float64 `json:"cumulative_pct"`
}

// ABC class boundaries as cumulative revenue share percentages.
const (
	classALimit = 80
	classBLimit = 95
)

// ClassifyABC annotates a product list with Pareto classes: A while the
// cumulative revenue share stays at or under 80%, B up to 95%, C beyond.
// The input must already be ordered by revenue descending; classes then
// come out monotonically non-decreasing (A before B before C).
//
// When the revenue total is zero every item gets cumulative 0% and class A.
// That mirrors the historical behavior of the reports this replaces.
func ClassifyABC(items []ProductSales) []ClassifiedProduct {
	var total float64
	for _, it := range items {
		total += it.Revenue
	}

	out := make([]ClassifiedProduct, 0, len(items))
	var running float64
	for _, it := range items {
		running += it.Revenue

		var pct float64
		if total > 0 {
			pct = running / total * 100
		}

		class := "C"
		switch {
		case pct <= classALimit:
			class = "A"
		case pct <= classBLimit:
			class = "B"
		}

		out = append(out, ClassifiedProduct{
			ProductSales:  it,
			Class:         class,
			CumulativePct: pct,
		})
	}
	return out
}
