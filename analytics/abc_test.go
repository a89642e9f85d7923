package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyABCParetoBoundaries(t *testing.T) {
	items := []ProductSales{
		{ProductCode: 1, Description: "A", Quantity: 10, Revenue: 800, PurchaseCount: 5},
		{ProductCode: 2, Description: "B", Quantity: 5, Revenue: 150, PurchaseCount: 2},
		{ProductCode: 3, Description: "C", Quantity: 20, Revenue: 50, PurchaseCount: 1},
	}

	out := ClassifyABC(items)
	require.Len(t, out, 3)

	require.Equal(t, []float64{80, 95, 100}, []float64{out[0].CumulativePct, out[1].CumulativePct, out[2].CumulativePct})
	require.Equal(t, "A", out[0].Class)
	require.Equal(t, "B", out[1].Class)
	require.Equal(t, "C", out[2].Class)
}

func TestClassifyABCMonotonic(t *testing.T) {
	items := []ProductSales{
		{ProductCode: 1, Revenue: 500},
		{ProductCode: 2, Revenue: 300},
		{ProductCode: 3, Revenue: 100},
		{ProductCode: 4, Revenue: 60},
		{ProductCode: 5, Revenue: 30},
		{ProductCode: 6, Revenue: 10},
	}

	out := ClassifyABC(items)
	require.Len(t, out, len(items))

	rank := map[string]int{"A": 0, "B": 1, "C": 2}
	for i := 1; i < len(out); i++ {
		require.GreaterOrEqual(t, out[i].CumulativePct, out[i-1].CumulativePct,
			"cumulative share must never decrease")
		require.GreaterOrEqual(t, rank[out[i].Class], rank[out[i-1].Class],
			"classes must follow A, B, C in input order")
	}
}

func TestClassifyABCZeroTotal(t *testing.T) {
	items := []ProductSales{
		{ProductCode: 1, Revenue: 0},
		{ProductCode: 2, Revenue: 0},
	}

	out := ClassifyABC(items)
	require.Len(t, out, 2)
	for _, p := range out {
		require.Zero(t, p.CumulativePct)
		require.Equal(t, "A", p.Class)
	}
}

func TestClassifyABCEmpty(t *testing.T) {
	out := ClassifyABC(nil)
	require.NotNil(t, out)
	require.Empty(t, out)
}
