package analytics

import "time"

// MonthlyRevenue is the revenue total for one (month, year) pair.
type MonthlyRevenue struct {
	Month int
	Year  int
	Total float64
}

// MonthBucket is one calendar month of the year-over-year comparison,
// holding a revenue total per compared year.
type MonthBucket struct {
	Month  int             `json:"month"`
	Name   string          `json:"name"`
	Totals map[int]float64 `json:"totals"`
}

// MonthlyComparison buckets revenue rows into exactly 12 ordered months
// (January through December), one total per year in the given window.
// Every (month, year) pair absent from the input stays 0, and input order
// is irrelevant: rows are placed by key lookup. Rows for years outside the
// window, or with an out-of-range month, are dropped.
func MonthlyComparison(rows []MonthlyRevenue, years []int) []MonthBucket {
	buckets := make([]MonthBucket, 12)
	for m := 1; m <= 12; m++ {
		totals := make(map[int]float64, len(years))
		for _, y := range years {
			totals[y] = 0
		}
		buckets[m-1] = MonthBucket{
			Month:  m,
			Name:   time.Month(m).String()[:3],
			Totals: totals,
		}
	}

	for _, r := range rows {
		if r.Month < 1 || r.Month > 12 {
			continue
		}
		if _, ok := buckets[r.Month-1].Totals[r.Year]; !ok {
			continue
		}
		buckets[r.Month-1].Totals[r.Year] += r.Total
	}
	return buckets
}
