// Package report writes scenario results as CSV or XLSX tables.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/kydenul/probability/internal/scenario"
)

// Headers of every report, in column order
var Headers = []string{"name", "outcomes", "event_size", "exact", "float", "expected", "matches"}

// Rows flattens results into string rows matching Headers
func Rows(results []*scenario.Result) [][]string {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		matches := ""
		if res.Matches != nil {
			matches = strconv.FormatBool(*res.Matches)
		}
		rows = append(rows, []string{
			res.Name,
			strconv.Itoa(res.Outcomes),
			strconv.Itoa(res.EventSize),
			res.Exact,
			strconv.FormatFloat(res.Float, 'g', 12, 64),
			res.Expected,
			matches,
		})
	}
	return rows
}

// WriteCSV writes results with a header row
func WriteCSV(w io.Writer, results []*scenario.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return err
	}
	for _, row := range Rows(results) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX saves results to a spreadsheet at path. Numeric columns are
// stored as numbers; the exact probability stays a "p/q" string.
func WriteXLSX(path string, results []*scenario.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	// Header row
	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	// Data rows
	for r, res := range results {
		values := []any{res.Name, res.Outcomes, res.EventSize, res.Exact, res.Float, res.Expected, ""}
		if res.Matches != nil {
			values[6] = *res.Matches
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
