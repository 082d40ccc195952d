// Package store writes projection runs to a SQLite file.
// Amounts are stored as decimal strings rounded to cents.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/growthsim/internal/currency"
	"github.com/theirongolddev/growthsim/internal/projection"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DB is an export database.
type DB struct {
	db *sql.DB
}

// Run is one stored projection.
type Run struct {
	ID        int64
	CreatedAt time.Time
	Currency  string
	Inputs    projection.Inputs
	Result    projection.Result
	Years     []projection.YearRow
}

// Open opens or creates the database at dbPath.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening export db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// SaveRun stores a projection and its yearly schedule, returning the run id.
func (d *DB) SaveRun(code string, in projection.Inputs, r projection.Result, years []projection.YearRow) (int64, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)

	res, err := tx.Exec(`INSERT INTO projection
		(created_at, currency, principal, annual_rate_percent, years, monthly_contribution,
		 total_value, principal_total, contributions_total, interest_earned)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		now, code, in.Principal, in.AnnualRatePercent, in.Years, in.MonthlyContribution,
		cents(r.TotalValue), cents(r.PrincipalTotal), cents(r.ContributionsTotal), cents(r.InterestEarned),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting projection: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, y := range years {
		_, err = tx.Exec(`INSERT INTO projection_years
			(projection_id, year, balance, principal, contributions, interest)
			VALUES (?, ?, ?, ?, ?, ?)`,
			id, y.Year, cents(y.Balance), cents(y.Principal), cents(y.Contributions), cents(y.Interest),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting year %v: %w", y.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// LoadRun reads a stored run back, mainly for inspection and tests.
func (d *DB) LoadRun(id int64) (Run, error) {
	run := Run{ID: id}
	var created string
	var total, principal, contributions, interest string

	err := d.db.QueryRow(`SELECT
		created_at, currency, principal, annual_rate_percent, years, monthly_contribution,
		total_value, principal_total, contributions_total, interest_earned
		FROM projection WHERE id = ?`, id).Scan(
		&created, &run.Currency,
		&run.Inputs.Principal, &run.Inputs.AnnualRatePercent, &run.Inputs.Years, &run.Inputs.MonthlyContribution,
		&total, &principal, &contributions, &interest,
	)
	if err != nil {
		return Run{}, fmt.Errorf("loading run %d: %w", id, err)
	}
	run.CreatedAt, _ = time.Parse(time.RFC3339, created)
	run.Result = projection.Result{
		TotalValue:         parseAmount(total),
		PrincipalTotal:     parseAmount(principal),
		ContributionsTotal: parseAmount(contributions),
		InterestEarned:     parseAmount(interest),
	}

	rows, err := d.db.Query(`SELECT year, balance, principal, contributions, interest
		FROM projection_years WHERE projection_id = ? ORDER BY year`, id)
	if err != nil {
		return Run{}, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var y projection.YearRow
		var bal, p, c, i string
		if err := rows.Scan(&y.Year, &bal, &p, &c, &i); err != nil {
			return Run{}, err
		}
		y.Balance = parseAmount(bal)
		y.Principal = parseAmount(p)
		y.Contributions = parseAmount(c)
		y.Interest = parseAmount(i)
		run.Years = append(run.Years, y)
	}
	return run, rows.Err()
}

// RunCount returns the number of stored runs.
func (d *DB) RunCount() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM projection").Scan(&count)
	return count, err
}

func cents(v float64) string {
	return currency.Cents(v).StringFixed(2)
}

func parseAmount(s string) float64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}
