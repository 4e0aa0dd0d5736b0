package tournament

import (
	"errors"

	"github.com/JordiPons-11/chessrank/internal/point"
	"github.com/JordiPons-11/chessrank/pkg/apperrors"
	"gorm.io/gorm"
)

type TournamentRepository interface {
	CreateTournament(tournament *Tournament) error
	GetTournamentByID(id uint) (*Tournament, error)
	GetAllTournaments() ([]Tournament, error)
	UpdateTournament(tournament *Tournament) error
	DeleteTournament(id uint) error
}

type tournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new instance of TournamentRepository.
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) CreateTournament(tournament *Tournament) error {
	if tournament.Date.IsZero() {
		return apperrors.Validationf("tournament date is required")
	}
	return apperrors.FromDB(r.db.Create(tournament).Error)
}

func (r *tournamentRepository) GetTournamentByID(id uint) (*Tournament, error) {
	var tournament Tournament
	err := r.db.First(&tournament, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tournament, nil
}

// GetAllTournaments returns every tournament, most recent date first.
func (r *tournamentRepository) GetAllTournaments() ([]Tournament, error) {
	var tournaments []Tournament
	err := r.db.Order("date DESC").Find(&tournaments).Error
	return tournaments, err
}

func (r *tournamentRepository) UpdateTournament(tournament *Tournament) error {
	if tournament.Date.IsZero() {
		return apperrors.Validationf("tournament date is required")
	}
	return apperrors.FromDB(r.db.Save(tournament).Error)
}

// DeleteTournament removes a tournament together with its point entries.
// Both deletes run in one transaction so a failure leaves everything in place.
// Deletes are unscoped so the date becomes available for a new tournament.
func (r *tournamentRepository) DeleteTournament(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var tournament Tournament
		if err := tx.First(&tournament, id).Error; err != nil {
			return apperrors.FromDB(err)
		}

		if err := tx.Unscoped().Where("tournament_id = ?", id).Delete(&point.Point{}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&Tournament{}, id).Error
	})
}
