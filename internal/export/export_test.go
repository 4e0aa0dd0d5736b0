package export_test

import (
	"bytes"
	"testing"

	"github.com/JordiPons-11/chessrank/internal/export"
	"github.com/JordiPons-11/chessrank/internal/player"
	"github.com/JordiPons-11/chessrank/internal/point"
	"github.com/JordiPons-11/chessrank/internal/testutil"
	"github.com/JordiPons-11/chessrank/internal/tournament"
	"github.com/JordiPons-11/chessrank/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seed(t *testing.T, db *gorm.DB) (player.Player, tournament.Tournament) {
	t.Helper()
	p := player.Player{FirstName: "Alice", LastName: "Smith"}
	require.NoError(t, db.Create(&p).Error)
	tr := tournament.Tournament{Date: testutil.Date(2024, 5, 11)}
	require.NoError(t, db.Create(&tr).Error)
	return p, tr
}

func TestWriteTournamentCSVExactOutput(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := export.NewExportRepository(db)

	p, tr := seed(t, db)
	require.NoError(t, db.Create(&point.Point{TournamentID: tr.ID, PlayerID: p.ID, Points: 10, Category: point.CategoryA}).Error)

	got, rows, err := repo.TournamentResults(tr.ID)
	require.NoError(t, err)
	assert.Equal(t, tr.ID, got.ID)

	var buf bytes.Buffer
	require.NoError(t, export.WriteTournamentCSV(&buf, rows))
	assert.Equal(t, "First Name,Last Name,Points,Category\nAlice,Smith,10,A\n", buf.String())
}

func TestWriteTournamentCSVFractionalScore(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := export.NewExportRepository(db)

	p, tr := seed(t, db)
	require.NoError(t, db.Create(&point.Point{TournamentID: tr.ID, PlayerID: p.ID, Points: 7.5, Category: point.CategoryB}).Error)

	_, rows, err := repo.TournamentResults(tr.ID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteTournamentCSV(&buf, rows))
	assert.Equal(t, "First Name,Last Name,Points,Category\nAlice,Smith,7.5,B\n", buf.String())
}

func TestTournamentResultsNotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := export.NewExportRepository(db)

	_, _, err := repo.TournamentResults(42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestWriteFullCSVOrderedByDate(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := export.NewExportRepository(db)

	p, tr1 := seed(t, db)
	tr2 := tournament.Tournament{Date: testutil.Date(2024, 2, 3)}
	require.NoError(t, db.Create(&tr2).Error)

	// Later tournament inserted first.
	require.NoError(t, db.Create(&point.Point{TournamentID: tr1.ID, PlayerID: p.ID, Points: 4, Category: point.CategoryA}).Error)
	require.NoError(t, db.Create(&point.Point{TournamentID: tr2.ID, PlayerID: p.ID, Points: 2.5, Category: point.CategoryB}).Error)

	rows, err := repo.AllResults()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteFullCSV(&buf, rows))
	want := "First Name,Last Name,Date,Category,Points\n" +
		"Alice,Smith,2024-02-03,B,2.5\n" +
		"Alice,Smith,2024-05-11,A,4\n"
	assert.Equal(t, want, buf.String())
}

func TestBuildWorkbook(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := export.NewExportRepository(db)

	p, tr := seed(t, db)
	require.NoError(t, db.Create(&point.Point{TournamentID: tr.ID, PlayerID: p.ID, Points: 7.5, Category: point.CategoryB}).Error)

	rows, err := repo.AllResults()
	require.NoError(t, err)

	f, err := export.BuildWorkbook(rows)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Results", "A1")
	require.NoError(t, err)
	assert.Equal(t, "First Name", header)

	first, err := f.GetCellValue("Results", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Alice", first)

	date, err := f.GetCellValue("Results", "C2")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-11", date)

	points, err := f.GetCellValue("Results", "E2")
	require.NoError(t, err)
	assert.Equal(t, "7.5", points)
}

func TestTournamentFilename(t *testing.T) {
	tr := tournament.Tournament{Date: testutil.Date(2024, 5, 11)}
	assert.Equal(t, "tournament_2024-05-11.csv", export.TournamentFilename(&tr))
}
