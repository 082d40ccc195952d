package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/growthsim/internal/export"

	"github.com/spf13/cobra"
)

var (
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the projection as CSV, JSON, SVG or SQLite",
	Example: "  growthsim export --format csv --out growth.csv\n" +
		"  growthsim export -f sqlite -o runs.db --years 30",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", string(export.FormatCSV), "csv, json, svg or sqlite")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (stdout when empty; required for sqlite)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(flagExportFormat)
	if err != nil {
		return err
	}
	cur, err := currentCurrency(cmd)
	if err != nil {
		return err
	}

	rep := export.NewReport(currentInputs(cmd), cur)
	opts := svgOptions(false, 0)

	if flagExportOut == "" {
		if format == export.FormatSQLite {
			return errors.New("--out is required for sqlite exports")
		}
		return export.Write(os.Stdout, format, rep, opts)
	}

	if err := export.ToFile(flagExportOut, format, rep, opts); err != nil {
		return fmt.Errorf("exporting %s: %w", format, err)
	}
	fmt.Fprintf(os.Stderr, "  Wrote %s (%s)\n", flagExportOut, format)
	return nil
}
