package export

import (
	"time"

	"github.com/JordiPons-11/chessrank/internal/point"
	"github.com/JordiPons-11/chessrank/internal/tournament"
	"github.com/JordiPons-11/chessrank/pkg/apperrors"
	"gorm.io/gorm"
)

// ResultRow is one exported line: a player's score in one tournament.
type ResultRow struct {
	FirstName string
	LastName  string
	Date      time.Time
	Category  string
	Points    float64
}

type ExportRepository interface {
	TournamentResults(tournamentID uint) (*tournament.Tournament, []ResultRow, error)
	AllResults() ([]ResultRow, error)
}

type exportRepository struct {
	db *gorm.DB
}

// NewExportRepository creates a new instance of ExportRepository.
func NewExportRepository(db *gorm.DB) ExportRepository {
	return &exportRepository{db: db}
}

// TournamentResults returns one tournament's rows in insertion order.
func (r *exportRepository) TournamentResults(tournamentID uint) (*tournament.Tournament, []ResultRow, error) {
	var t tournament.Tournament
	if err := r.db.First(&t, tournamentID).Error; err != nil {
		return nil, nil, apperrors.FromDB(err)
	}

	var rows []ResultRow
	err := r.db.Model(&point.Point{}).
		Select("players.first_name, players.last_name, tournaments.date, points.category, points.points").
		Joins("JOIN players ON players.id = points.player_id AND players.deleted_at IS NULL").
		Joins("JOIN tournaments ON tournaments.id = points.tournament_id AND tournaments.deleted_at IS NULL").
		Where("points.tournament_id = ?", tournamentID).
		Order("points.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}
	return &t, rows, nil
}

// AllResults returns every recorded score, tournament date ascending.
func (r *exportRepository) AllResults() ([]ResultRow, error) {
	var rows []ResultRow
	err := r.db.Model(&point.Point{}).
		Select("players.first_name, players.last_name, tournaments.date, points.category, points.points").
		Joins("JOIN players ON players.id = points.player_id AND players.deleted_at IS NULL").
		Joins("JOIN tournaments ON tournaments.id = points.tournament_id AND tournaments.deleted_at IS NULL").
		Order("tournaments.date ASC, points.id ASC").
		Scan(&rows).Error
	return rows, err
}
