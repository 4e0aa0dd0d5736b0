package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/JordiPons-11/chessrank/internal/tournament"
	"github.com/xuri/excelize/v2"
)

const resultsSheet = "Results"

var (
	tournamentHeader = []string{"First Name", "Last Name", "Points", "Category"}
	fullHeader       = []string{"First Name", "Last Name", "Date", "Category", "Points"}
)

// formatScore renders a score with the fewest digits needed: 10 not 10.0,
// but 7.5 stays 7.5.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteTournamentCSV writes a single tournament's results: header line, then
// one row of (first name, last name, points, category) per entry.
func WriteTournamentCSV(w io.Writer, rows []ResultRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tournamentHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.FirstName, row.LastName, formatScore(row.Points), row.Category}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFullCSV writes the complete result database: header line, then one row
// of (first name, last name, date, category, points) per entry, ordered by the
// caller (tournament date ascending).
func WriteFullCSV(w io.Writer, rows []ResultRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fullHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.FirstName,
			row.LastName,
			row.Date.Format(tournament.DateLayout),
			row.Category,
			formatScore(row.Points),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// BuildWorkbook assembles the full result database as an XLSX workbook with a
// single "Results" sheet mirroring the full CSV layout.
func BuildWorkbook(rows []ResultRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return nil, err
	}

	for col, name := range fullHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(resultsSheet, cell, name); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.FirstName,
			row.LastName,
			row.Date.Format(tournament.DateLayout),
			row.Category,
			row.Points,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(resultsSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// TournamentFilename derives the download name for a single-tournament export.
func TournamentFilename(t *tournament.Tournament) string {
	return fmt.Sprintf("tournament_%s.csv", t.DateString())
}
