package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/growthsim/internal/currency"
	"github.com/theirongolddev/growthsim/internal/pie"
	"github.com/theirongolddev/growthsim/internal/projection"
	"github.com/theirongolddev/growthsim/internal/store"
)

func sampleReport() Report {
	return NewReport(projection.Inputs{
		Principal:           15000,
		AnnualRatePercent:   6.5,
		Years:               15,
		MonthlyContribution: 250,
	}, currency.ByCode("GBP"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xlsx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNewReport(t *testing.T) {
	rep := sampleReport()
	assert.Len(t, rep.Schedule, 15)
	assert.Len(t, rep.Segments, 3)
	assert.Equal(t, "GBP", rep.Currency.Code)

	empty := NewReport(projection.Inputs{}, currency.Default)
	assert.Empty(t, empty.Schedule)
	assert.Empty(t, empty.Segments)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 16)
	assert.Equal(t, []string{"year", "balance", "principal", "contributions", "interest"}, records[0])
	assert.Equal(t, []string{"1", "19095.59", "15000.00", "3000.00", "1095.59"}, records[1])
	assert.Equal(t, "115549.20", records[15][1])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var got struct {
		Currency string `json:"currency"`
		Result   struct {
			TotalValue string `json:"total_value"`
			Invested   string `json:"invested"`
		} `json:"result"`
		Schedule []json.RawMessage `json:"schedule"`
		Segments []struct {
			Label string `json:"label"`
			Path  string `json:"path"`
		} `json:"segments"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "GBP", got.Currency)
	assert.Equal(t, "115549.2", got.Result.TotalValue)
	assert.Equal(t, "60000", got.Result.Invested)
	assert.Len(t, got.Schedule, 15)
	require.Len(t, got.Segments, 3)
	assert.Equal(t, "Principal", got.Segments[0].Label)
	assert.True(t, strings.HasPrefix(got.Segments[0].Path, "M 50,50 L 50,5 A 45,45"))
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatSVG, sampleReport(), pie.DefaultSVGOptions()))
	assert.Equal(t, 3, strings.Count(buf.String(), "<path "))
}

func TestWrite_SQLiteNeedsFile(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, FormatSQLite, sampleReport(), pie.DefaultSVGOptions()))
	assert.ErrorIs(t, Write(&buf, Format("xml"), sampleReport(), pie.DefaultSVGOptions()), ErrUnknownFormat)
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()
	rep := sampleReport()

	csvPath := filepath.Join(dir, "projection.csv")
	require.NoError(t, ToFile(csvPath, FormatCSV, rep, pie.DefaultSVGOptions()))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "year,balance"))

	dbPath := filepath.Join(dir, "projection.db")
	require.NoError(t, ToFile(dbPath, FormatSQLite, rep, pie.DefaultSVGOptions()))
	require.NoError(t, ToFile(dbPath, FormatSQLite, rep, pie.DefaultSVGOptions()))

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	n, err := db.RunCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
