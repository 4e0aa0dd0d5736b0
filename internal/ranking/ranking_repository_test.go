package ranking_test

import (
	"testing"

	"github.com/JordiPons-11/chessrank/internal/player"
	"github.com/JordiPons-11/chessrank/internal/point"
	"github.com/JordiPons-11/chessrank/internal/ranking"
	"github.com/JordiPons-11/chessrank/internal/testutil"
	"github.com/JordiPons-11/chessrank/internal/tournament"
	"github.com/JordiPons-11/chessrank/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func addPlayer(t *testing.T, db *gorm.DB, first, last string) player.Player {
	t.Helper()
	p := player.Player{FirstName: first, LastName: last}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func addTournament(t *testing.T, db *gorm.DB, year, month, day int) tournament.Tournament {
	t.Helper()
	tr := tournament.Tournament{Date: testutil.Date(year, month, day)}
	require.NoError(t, db.Create(&tr).Error)
	return tr
}

func addPoint(t *testing.T, db *gorm.DB, tr tournament.Tournament, p player.Player, score float64, category string) {
	t.Helper()
	require.NoError(t, db.Create(&point.Point{
		TournamentID: tr.ID,
		PlayerID:     p.ID,
		Points:       score,
		Category:     category,
	}).Error)
}

func TestTournamentLeaderboardByCategory(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := ranking.NewRankingRepository(db)

	p1 := addPlayer(t, db, "Alice", "Smith")
	p2 := addPlayer(t, db, "Bob", "Jones")
	p3 := addPlayer(t, db, "Carol", "White")
	tr := addTournament(t, db, 2024, 5, 11)

	addPoint(t, db, tr, p1, 10, point.CategoryA)
	addPoint(t, db, tr, p2, 8, point.CategoryA)
	addPoint(t, db, tr, p3, 9, point.CategoryB)

	topA, err := repo.TournamentLeaderboard(tr.ID, point.CategoryA, 1)
	require.NoError(t, err)
	require.Len(t, topA, 1)
	assert.Equal(t, p1.ID, topA[0].PlayerID)
	assert.Equal(t, 10.0, topA[0].Points)

	topB, err := repo.TournamentLeaderboard(tr.ID, point.CategoryB, 0)
	require.NoError(t, err)
	require.Len(t, topB, 1)
	assert.Equal(t, p3.ID, topB[0].PlayerID)

	all, err := repo.TournamentLeaderboard(tr.ID, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []float64{10, 9, 8}, []float64{all[0].Points, all[1].Points, all[2].Points})
}

func TestTournamentLeaderboardStableTies(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := ranking.NewRankingRepository(db)

	p1 := addPlayer(t, db, "Alice", "Smith")
	p2 := addPlayer(t, db, "Bob", "Jones")
	tr := addTournament(t, db, 2024, 5, 11)

	addPoint(t, db, tr, p1, 5, point.CategoryA)
	addPoint(t, db, tr, p2, 5, point.CategoryA)

	entries, err := repo.TournamentLeaderboard(tr.ID, point.CategoryA, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Ties stay in insertion order.
	assert.Equal(t, p1.ID, entries[0].PlayerID)
	assert.Equal(t, p2.ID, entries[1].PlayerID)
}

func TestTournamentLeaderboardUnknownTournament(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := ranking.NewRankingRepository(db)

	_, err := repo.TournamentLeaderboard(42, point.CategoryA, 0)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGeneralClassificationYearFilter(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := ranking.NewRankingRepository(db)

	x := addPlayer(t, db, "Xavier", "Roca")
	t2023 := addTournament(t, db, 2023, 1, 1)
	t2024 := addTournament(t, db, 2024, 1, 1)

	addPoint(t, db, t2023, x, 3, point.CategoryA)
	addPoint(t, db, t2024, x, 5, point.CategoryA)

	year := 2023
	entries, err := repo.GeneralClassification(&year, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 3.0, entries[0].TotalPoints)

	entries, err = repo.GeneralClassification(nil, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 8.0, entries[0].TotalPoints)

	year = 2025
	entries, err = repo.GeneralClassification(&year, 0)
	require.NoError(t, err)
	assert.Empty(t, entries, "a year without scored tournaments yields an empty list, not an error")
}

func TestGeneralClassificationOrderAndTopN(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := ranking.NewRankingRepository(db)

	p1 := addPlayer(t, db, "Alice", "Smith")
	p2 := addPlayer(t, db, "Bob", "Jones")
	p3 := addPlayer(t, db, "Carol", "White")
	tr1 := addTournament(t, db, 2024, 3, 2)
	tr2 := addTournament(t, db, 2024, 6, 8)

	addPoint(t, db, tr1, p1, 4, point.CategoryA)
	addPoint(t, db, tr2, p1, 2.5, point.CategoryA)
	addPoint(t, db, tr1, p2, 9, point.CategoryA)
	addPoint(t, db, tr2, p3, 1, point.CategoryB)

	entries, err := repo.GeneralClassification(nil, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, p2.ID, entries[0].PlayerID)
	assert.Equal(t, 9.0, entries[0].TotalPoints)
	assert.Equal(t, p1.ID, entries[1].PlayerID)
	assert.Equal(t, 6.5, entries[1].TotalPoints)
	assert.Equal(t, p3.ID, entries[2].PlayerID)

	top2, err := repo.GeneralClassification(nil, 2)
	require.NoError(t, err)
	require.Len(t, top2, 2)
	assert.Equal(t, p2.ID, top2[0].PlayerID)
}

func TestProgressionOrderedByDate(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := ranking.NewRankingRepository(db)

	p := addPlayer(t, db, "Alice", "Smith")
	// Inserted out of date order on purpose.
	later := addTournament(t, db, 2024, 6, 8)
	earlier := addTournament(t, db, 2024, 3, 2)

	addPoint(t, db, later, p, 7, point.CategoryA)
	addPoint(t, db, earlier, p, 4, point.CategoryA)

	series, err := repo.Progression([]uint{p.ID})
	require.NoError(t, err)
	steps := series[p.ID]
	require.Len(t, steps, 2)
	assert.Equal(t, 4.0, steps[0].Points)
	assert.Equal(t, 7.0, steps[1].Points)
	assert.True(t, steps[0].Date.Before(steps[1].Date))
}

func TestProgressionPlayerWithoutPoints(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := ranking.NewRankingRepository(db)

	p := addPlayer(t, db, "Alice", "Smith")

	series, err := repo.Progression([]uint{p.ID})
	require.NoError(t, err)
	assert.Empty(t, series[p.ID])
}

func TestProgressionEmptySelectionRejected(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := ranking.NewRankingRepository(db)

	_, err := repo.Progression(nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestProgressionUnknownPlayerRejected(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := ranking.NewRankingRepository(db)

	p := addPlayer(t, db, "Alice", "Smith")

	_, err := repo.Progression([]uint{p.ID, 999})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
