package tournament_test

import (
	"testing"

	"github.com/JordiPons-11/chessrank/internal/player"
	"github.com/JordiPons-11/chessrank/internal/point"
	"github.com/JordiPons-11/chessrank/internal/testutil"
	"github.com/JordiPons-11/chessrank/internal/tournament"
	"github.com/JordiPons-11/chessrank/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTournamentDuplicateDateFails(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := tournament.NewTournamentRepository(db)

	require.NoError(t, repo.CreateTournament(&tournament.Tournament{Date: testutil.Date(2024, 5, 11)}))

	err := repo.CreateTournament(&tournament.Tournament{Date: testutil.Date(2024, 5, 11)})
	assert.ErrorIs(t, err, apperrors.ErrUniqueness)

	assert.NoError(t, repo.CreateTournament(&tournament.Tournament{Date: testutil.Date(2024, 5, 18)}))
}

func TestUpdateTournamentDateMustStayUnique(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := tournament.NewTournamentRepository(db)

	require.NoError(t, repo.CreateTournament(&tournament.Tournament{Date: testutil.Date(2024, 5, 11)}))
	second := tournament.Tournament{Date: testutil.Date(2024, 5, 18)}
	require.NoError(t, repo.CreateTournament(&second))

	second.Date = testutil.Date(2024, 5, 11)
	assert.ErrorIs(t, repo.UpdateTournament(&second), apperrors.ErrUniqueness)
}

func TestGetAllTournamentsOrderedByDateDesc(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := tournament.NewTournamentRepository(db)

	require.NoError(t, repo.CreateTournament(&tournament.Tournament{Date: testutil.Date(2024, 2, 10)}))
	require.NoError(t, repo.CreateTournament(&tournament.Tournament{Date: testutil.Date(2024, 6, 1)}))
	require.NoError(t, repo.CreateTournament(&tournament.Tournament{Date: testutil.Date(2024, 4, 20)}))

	tournaments, err := repo.GetAllTournaments()
	require.NoError(t, err)
	require.Len(t, tournaments, 3)
	assert.Equal(t, "2024-06-01", tournaments[0].DateString())
	assert.Equal(t, "2024-04-20", tournaments[1].DateString())
	assert.Equal(t, "2024-02-10", tournaments[2].DateString())
}

func TestDeleteTournamentCascadesToPoints(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := tournament.NewTournamentRepository(db)

	tr := tournament.Tournament{Date: testutil.Date(2024, 5, 11)}
	require.NoError(t, repo.CreateTournament(&tr))

	p := player.Player{FirstName: "Alice", LastName: "Smith"}
	require.NoError(t, db.Create(&p).Error)
	require.NoError(t, db.Create(&point.Point{TournamentID: tr.ID, PlayerID: p.ID, Points: 5, Category: point.CategoryA}).Error)

	require.NoError(t, repo.DeleteTournament(tr.ID))

	got, err := repo.GetTournamentByID(tr.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	var n int64
	require.NoError(t, db.Model(&point.Point{}).Where("tournament_id = ?", tr.ID).Count(&n).Error)
	assert.Zero(t, n, "points must be removed together with their tournament")

	// The player itself is untouched.
	var players int64
	require.NoError(t, db.Model(&player.Player{}).Count(&players).Error)
	assert.EqualValues(t, 1, players)
}

func TestDeleteTournamentFreesDateForRecreation(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := tournament.NewTournamentRepository(db)

	tr := tournament.Tournament{Date: testutil.Date(2024, 5, 11)}
	require.NoError(t, repo.CreateTournament(&tr))
	require.NoError(t, repo.DeleteTournament(tr.ID))

	// The same date can host a new tournament after deletion.
	assert.NoError(t, repo.CreateTournament(&tournament.Tournament{Date: testutil.Date(2024, 5, 11)}))
}

func TestDeleteTournamentNotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := tournament.NewTournamentRepository(db)

	assert.ErrorIs(t, repo.DeleteTournament(42), apperrors.ErrNotFound)
}
