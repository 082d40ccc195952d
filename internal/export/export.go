// Package export writes a projection to CSV, JSON, SVG or SQLite files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/growthsim/internal/currency"
	"github.com/theirongolddev/growthsim/internal/pie"
	"github.com/theirongolddev/growthsim/internal/projection"
	"github.com/theirongolddev/growthsim/internal/store"
)

// Format is an export file format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatSVG    Format = "svg"
	FormatSQLite Format = "sqlite"
)

// Formats lists the supported formats.
var Formats = []Format{FormatCSV, FormatJSON, FormatSVG, FormatSQLite}

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of csv, json, svg, sqlite)", ErrUnknownFormat, s)
}

// Report bundles everything derived from one set of inputs.
type Report struct {
	Currency currency.Currency
	Inputs   projection.Inputs
	Result   projection.Result
	Schedule []projection.YearRow
	Segments []pie.Segment
}

// NewReport recomputes all outputs from in.
func NewReport(in projection.Inputs, cur currency.Currency) Report {
	in = in.Normalize()
	r := in.Project()
	return Report{
		Currency: cur,
		Inputs:   in,
		Result:   r,
		Schedule: projection.Schedule(in),
		Segments: pie.Layout(projection.Breakdown(r), pie.DefaultCircle),
	}
}

// WriteCSV writes the yearly schedule with a header row.
func WriteCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "balance", "principal", "contributions", "interest"}); err != nil {
		return err
	}
	for _, y := range rep.Schedule {
		rec := []string{
			strconv.FormatFloat(y.Year, 'f', -1, 64),
			currency.Cents(y.Balance).StringFixed(2),
			currency.Cents(y.Principal).StringFixed(2),
			currency.Cents(y.Contributions).StringFixed(2),
			currency.Cents(y.Interest).StringFixed(2),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonResult struct {
	TotalValue         decimal.Decimal `json:"total_value"`
	PrincipalTotal     decimal.Decimal `json:"principal_total"`
	ContributionsTotal decimal.Decimal `json:"contributions_total"`
	InterestEarned     decimal.Decimal `json:"interest_earned"`
	Invested           decimal.Decimal `json:"invested"`
}

type jsonYear struct {
	Year          float64         `json:"year"`
	Balance       decimal.Decimal `json:"balance"`
	Principal     decimal.Decimal `json:"principal"`
	Contributions decimal.Decimal `json:"contributions"`
	Interest      decimal.Decimal `json:"interest"`
}

type jsonSegment struct {
	Label      string  `json:"label"`
	Color      string  `json:"color"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	LargeArc   bool    `json:"large_arc"`
	Path       string  `json:"path"`
}

type jsonReport struct {
	Currency string            `json:"currency"`
	Inputs   projection.Inputs `json:"inputs"`
	Result   jsonResult        `json:"result"`
	Schedule []jsonYear        `json:"schedule"`
	Segments []jsonSegment     `json:"segments"`
}

// WriteJSON writes the full report as indented JSON. Amounts are decimal
// strings rounded to cents.
func WriteJSON(w io.Writer, rep Report) error {
	out := jsonReport{
		Currency: rep.Currency.Code,
		Inputs:   rep.Inputs,
		Result: jsonResult{
			TotalValue:         currency.Cents(rep.Result.TotalValue),
			PrincipalTotal:     currency.Cents(rep.Result.PrincipalTotal),
			ContributionsTotal: currency.Cents(rep.Result.ContributionsTotal),
			InterestEarned:     currency.Cents(rep.Result.InterestEarned),
			Invested:           currency.Cents(rep.Result.Invested()),
		},
		Schedule: make([]jsonYear, 0, len(rep.Schedule)),
		Segments: make([]jsonSegment, 0, len(rep.Segments)),
	}
	for _, y := range rep.Schedule {
		out.Schedule = append(out.Schedule, jsonYear{
			Year:          y.Year,
			Balance:       currency.Cents(y.Balance),
			Principal:     currency.Cents(y.Principal),
			Contributions: currency.Cents(y.Contributions),
			Interest:      currency.Cents(y.Interest),
		})
	}
	for _, s := range rep.Segments {
		out.Segments = append(out.Segments, jsonSegment{
			Label:      s.Label,
			Color:      s.Color,
			StartAngle: s.StartAngle,
			EndAngle:   s.EndAngle,
			LargeArc:   s.LargeArc,
			Path:       s.Path(pie.DefaultCircle),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteSVG writes the pie chart.
func WriteSVG(w io.Writer, rep Report, opts pie.SVGOptions) error {
	_, err := io.WriteString(w, pie.RenderSVG(rep.Segments, pie.DefaultCircle, opts))
	return err
}

// ToFile exports rep to path in format f. SQLite exports append a run to an
// existing database; other formats overwrite the file.
func ToFile(path string, f Format, rep Report, opts pie.SVGOptions) error {
	if f == FormatSQLite {
		db, err := store.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		id, err := db.SaveRun(rep.Currency.Code, rep.Inputs, rep.Result, rep.Schedule)
		if err != nil {
			return fmt.Errorf("saving run: %w", err)
		}
		log.Info().Str("path", path).Int64("run", id).Msg("exported projection to sqlite")
		return nil
	}

	file, err := os.Create(path) //nolint:gosec // export path is chosen by the local user
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Write(file, f, rep, opts); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	log.Info().Str("path", path).Str("format", string(f)).Msg("exported projection")
	return nil
}

// Write streams rep to w in a text format.
func Write(w io.Writer, f Format, rep Report, opts pie.SVGOptions) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, rep)
	case FormatJSON:
		return WriteJSON(w, rep)
	case FormatSVG:
		return WriteSVG(w, rep, opts)
	case FormatSQLite:
		return fmt.Errorf("sqlite export needs a file path")
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, f)
}
