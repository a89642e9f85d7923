// Package reports assembles the dashboard view-models by composing ERP
// aggregate queries, the external target sheet, and the analytics
// computations. Every method is stateless per request; a failed query
// renders as an empty or zeroed section, never an error page.
package reports

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"painel-vendas-backend/database"
	"painel-vendas-backend/targets"
	"painel-vendas-backend/utils"
)

const defaultTopProducts = 20

// Assembler builds the view for each dashboard screen.
type Assembler struct {
	gw          *database.Gateway
	targets     *targets.Provider
	log         zerolog.Logger
	now         func() time.Time
	topProducts int
}

// New returns an Assembler over the given gateway and target provider.
// PRODUCTS_TOP_N bounds the drill-down product ranking (default 20).
func New(gw *database.Gateway, tp *targets.Provider) *Assembler {
	n := utils.ParseIntDefault(os.Getenv("PRODUCTS_TOP_N"), defaultTopProducts)
	if n <= 0 {
		n = defaultTopProducts
	}
	return &Assembler{
		gw:          gw,
		targets:     tp,
		log:         log.With().Str("component", "reports").Logger(),
		now:         time.Now,
		topProducts: n,
	}
}

// FilterKind selects how the roster is narrowed.
type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterSalesperson
	FilterGroup
	FilterSearch
)

// RosterFilter is a typed, validated roster filter. Its values reach SQL
// only through bound parameters.
type RosterFilter struct {
	Kind            FilterKind
	SalespersonCode int
	GroupCode       int
	Search          string
}

// ParseRosterFilter maps the dashboard's tipo/valor query parameters to a
// typed filter. Unknown kinds or non-numeric ids degrade to the unfiltered
// roster, matching how the screens behaved historically.
func ParseRosterFilter(tipo, valor string) RosterFilter {
	switch tipo {
	case "vendedor":
		if code, err := strconv.Atoi(valor); err == nil {
			return RosterFilter{Kind: FilterSalesperson, SalespersonCode: code}
		}
	case "grupo":
		if code, err := strconv.Atoi(valor); err == nil {
			return RosterFilter{Kind: FilterGroup, GroupCode: code}
		}
	case "busca":
		if valor != "" {
			return RosterFilter{Kind: FilterSearch, Search: valor}
		}
	}
	return RosterFilter{Kind: FilterAll}
}
