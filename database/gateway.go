package database

import (
	"database/sql"
	"errors"
	"reflect"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ERP is the shared gateway to the external ERP store, set by ConnectERP.
var ERP *Gateway

// Gateway executes read-only aggregate queries against the ERP store.
//
// The connection is opened lazily on first use and the underlying
// database/sql pool hands each request its own connection, so concurrent
// requests never share a handle. Failures degrade: a failed connect or
// query is logged, the pool is discarded, and the caller sees an empty
// result. The next call re-establishes the pool. No query timeout is
// enforced; long-running aggregates are an accepted ERP constraint.
//
// Every user-controlled value must arrive through args, never spliced into
// the statement text.
type Gateway struct {
	mu   sync.Mutex
	db   *sqlx.DB
	open func() (*sqlx.DB, error)
	log  zerolog.Logger
}

// NewGateway returns a Gateway opening connections from the saved ERP
// credentials (see LoadERPConfig).
func NewGateway() *Gateway {
	return &Gateway{
		open: openERP,
		log:  log.With().Str("component", "gateway").Logger(),
	}
}

// NewGatewayWithOpener returns a Gateway using a custom pool opener.
// Used by tests to plug in a mock store.
func NewGatewayWithOpener(open func() (*sqlx.DB, error)) *Gateway {
	return &Gateway{
		open: open,
		log:  log.With().Str("component", "gateway").Logger(),
	}
}

// ConnectERP installs the shared gateway. The ERP store itself is only
// dialed on the first query.
func ConnectERP() {
	ERP = NewGateway()
}

func openERP() (*sqlx.DB, error) {
	cfg, err := LoadERPConfig()
	if err != nil {
		return nil, err
	}
	db, err := sqlx.Connect("mysql", cfg.DSN())
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

func (g *Gateway) acquire() (*sqlx.DB, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.db != nil {
		return g.db, nil
	}
	db, err := g.open()
	if err != nil {
		return nil, err
	}
	g.db = db
	return g.db, nil
}

// Discard drops the current pool so the next call reconnects. Called
// internally after a failure and by the setup flow after credentials
// change.
func (g *Gateway) Discard() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.db != nil {
		_ = g.db.Close()
		g.db = nil
	}
}

// Select runs a read query and scans all rows into dest (a pointer to a
// slice of scannable structs or scalars). On any failure dest is left
// empty, the cause is logged, and the broken pool is discarded; callers
// always proceed with "no data".
func (g *Gateway) Select(dest interface{}, query string, args ...interface{}) {
	db, err := g.acquire()
	if err != nil {
		g.log.Error().Err(err).Msg("erp store unreachable")
		return
	}
	if err := db.Select(dest, query, args...); err != nil {
		g.log.Error().Err(err).Str("query", truncate(query, 120)).Msg("erp query failed")
		g.Discard()
		// A connection dropped mid-resultset leaves the rows scanned so
		// far in dest. Truncate so callers never see a partial result.
		resetSlice(dest)
	}
}

func resetSlice(dest interface{}) {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr {
		return
	}
	if s := v.Elem(); s.Kind() == reflect.Slice {
		s.SetLen(0)
	}
}

// Get runs a single-row query into dest. Returns false when the row is
// absent or the query failed; a plain miss does not discard the pool.
func (g *Gateway) Get(dest interface{}, query string, args ...interface{}) bool {
	db, err := g.acquire()
	if err != nil {
		g.log.Error().Err(err).Msg("erp store unreachable")
		return false
	}
	if err := db.Get(dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false
		}
		g.log.Error().Err(err).Str("query", truncate(query, 120)).Msg("erp query failed")
		g.Discard()
		return false
	}
	return true
}

// Ping probes the ERP store, connecting if needed.
func (g *Gateway) Ping() error {
	db, err := g.acquire()
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		g.Discard()
		return err
	}
	return nil
}

// TestERPConnection dials the store once with the given credentials and
// closes again. Used by the setup endpoint before persisting them.
func TestERPConnection(cfg ERPConfig) error {
	db, err := sqlx.Connect("mysql", cfg.DSN())
	if err != nil {
		return err
	}
	return db.Close()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
