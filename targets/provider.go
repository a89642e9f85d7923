// Package targets loads the client revenue-target sheet the sales team
// maintains outside the ERP. The sheet is a two-column CSV export
// (client code, monthly target revenue) re-read wholesale on every
// dashboard render.
package targets

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultPath = "data/client_targets.csv"

// Provider reads the target sheet. Safe for concurrent use: it holds no
// state beyond the file path.
type Provider struct {
	path string
	log  zerolog.Logger
}

// New returns a Provider reading the CSV at path.
func New(path string) *Provider {
	return &Provider{
		path: path,
		log:  log.With().Str("component", "targets").Logger(),
	}
}

// Default returns a Provider on the path from TARGETS_FILE, falling back
// to data/client_targets.csv.
func Default() *Provider {
	path := os.Getenv("TARGETS_FILE")
	if path == "" {
		path = defaultPath
	}
	return New(path)
}

// Load reads the whole sheet into a client-code → target map. A missing or
// unreadable file yields an empty map, never an error: absent entries mean
// target 0 downstream. Header rows and malformed lines are skipped.
func (p *Provider) Load() map[int]float64 {
	out := make(map[int]float64)

	f, err := os.Open(p.path)
	if err != nil {
		p.log.Warn().Err(err).Str("path", p.path).Msg("target sheet unavailable, all targets default to 0")
		return out
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			p.log.Warn().Err(err).Str("path", p.path).Msg("target sheet malformed, all targets default to 0")
			return make(map[int]float64)
		}
		if len(rec) < 2 {
			continue
		}

		code, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			// Usually the header row.
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			continue
		}
		out[code] = value
	}
	return out
}
