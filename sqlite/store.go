// Package sqlite persists portfolio lots in a SQLite database.
//
// The layout is row-oriented, one row per open lot, exactly the shape the
// folio.Store interface describes. Disposals consume rows oldest trade date
// first inside a single transaction, so a failed reduction never leaves a
// half-consumed book behind.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/nvidal/folio"
)

// Store is a folio.Store backed by a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS portfolios (
			name TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS lots (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			portfolio  TEXT NOT NULL,
			ticker     TEXT NOT NULL,
			quantity   INTEGER NOT NULL,
			unit_price TEXT NOT NULL,
			currency   TEXT NOT NULL DEFAULT '',
			trade_date TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lots_portfolio ON lots(portfolio, ticker, trade_date)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// pfail wraps a low-level database error into the persistence taxonomy.
func pfail(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, folio.ErrPersistenceFailure)
}

func (s *Store) AddPortfolio(name string) error {
	ok, err := s.HasPortfolio(name)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("add portfolio %q: %w", name, folio.ErrDuplicatePortfolio)
	}
	if _, err := s.db.Exec(`INSERT INTO portfolios(name) VALUES(?)`, name); err != nil {
		return pfail("add portfolio", err)
	}
	return nil
}

func (s *Store) HasPortfolio(name string) (bool, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM portfolios WHERE name = ?`, name).Scan(&count)
	if err != nil {
		return false, pfail("has portfolio", err)
	}
	return count > 0, nil
}

func (s *Store) ListPortfolios() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM portfolios ORDER BY name`)
	if err != nil {
		return nil, pfail("list portfolios", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, pfail("list portfolios", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) AppendLot(portfolio string, lot folio.Lot) error {
	_, err := s.db.Exec(
		`INSERT INTO lots(portfolio, ticker, quantity, unit_price, currency, trade_date) VALUES(?, ?, ?, ?, ?, ?)`,
		portfolio,
		folio.NormalizeTicker(lot.Ticker),
		int64(lot.Quantity),
		lot.UnitPrice.Decimal().String(),
		lot.UnitPrice.Currency(),
		lot.TradeDate.String(),
	)
	if err != nil {
		return pfail("append lot", err)
	}
	// Lots may arrive before the portfolio was registered explicitly.
	_, err = s.db.Exec(`INSERT OR IGNORE INTO portfolios(name) VALUES(?)`, portfolio)
	if err != nil {
		return pfail("append lot", err)
	}
	return nil
}

func (s *Store) ReduceLot(portfolio, ticker string, quantity folio.Quantity) error {
	ticker = folio.NormalizeTicker(ticker)
	tx, err := s.db.Begin()
	if err != nil {
		return pfail("reduce lot", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(
		`SELECT id, quantity FROM lots WHERE portfolio = ? AND ticker = ? ORDER BY trade_date, id`,
		portfolio, ticker)
	if err != nil {
		return pfail("reduce lot", err)
	}

	type lotRow struct {
		id  int64
		qty folio.Quantity
	}
	var lots []lotRow
	var held folio.Quantity
	for rows.Next() {
		var id, qty int64
		if err := rows.Scan(&id, &qty); err != nil {
			rows.Close()
			return pfail("reduce lot", err)
		}
		r := lotRow{id: id, qty: folio.Quantity(qty)}
		lots = append(lots, r)
		held = held.Add(r.qty)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return pfail("reduce lot", err)
	}

	if held.LessThan(quantity) {
		return fmt.Errorf("reduce %d %s in %q but only %d stored: %w",
			quantity, ticker, portfolio, held, folio.ErrInsufficientQuantity)
	}

	remaining := quantity
	for _, r := range lots {
		if remaining.IsZero() {
			break
		}
		if remaining.LessThan(r.qty) {
			if _, err := tx.Exec(`UPDATE lots SET quantity = ? WHERE id = ?`, int64(r.qty.Sub(remaining)), r.id); err != nil {
				return pfail("reduce lot", err)
			}
			remaining = 0
			break
		}
		if _, err := tx.Exec(`DELETE FROM lots WHERE id = ?`, r.id); err != nil {
			return pfail("reduce lot", err)
		}
		remaining = remaining.Sub(r.qty)
	}

	if err := tx.Commit(); err != nil {
		return pfail("reduce lot", err)
	}
	return nil
}

func (s *Store) ListLots(portfolio string) ([]folio.Lot, error) {
	rows, err := s.db.Query(
		`SELECT ticker, quantity, unit_price, currency, trade_date FROM lots WHERE portfolio = ? ORDER BY trade_date, id`,
		portfolio)
	if err != nil {
		return nil, pfail("list lots", err)
	}
	defer rows.Close()

	var lots []folio.Lot
	for rows.Next() {
		var (
			ticker   string
			qty      int64
			price    string
			currency string
			day      string
		)
		if err := rows.Scan(&ticker, &qty, &price, &currency, &day); err != nil {
			return nil, pfail("list lots", err)
		}
		dec, err := decimal.NewFromString(price)
		if err != nil {
			return nil, pfail("list lots", err)
		}
		tradeDate, err := folio.ParseDate(day)
		if err != nil {
			return nil, pfail("list lots", err)
		}
		lots = append(lots, folio.Lot{
			Ticker:    ticker,
			Quantity:  folio.Quantity(qty),
			UnitPrice: folio.M(dec, currency),
			TradeDate: tradeDate,
		})
	}
	return lots, rows.Err()
}

var _ folio.Store = (*Store)(nil)
