package point

import (
	"errors"

	"github.com/JordiPons-11/chessrank/pkg/apperrors"
	"gorm.io/gorm"
)

type PointRepository interface {
	CreatePoint(point *Point) error
	GetPointByID(id uint) (*Point, error)
	GetPointsByTournament(tournamentID uint) ([]Point, error)
	UpdatePoint(point *Point) error
	DeletePoint(id uint) error
}

type pointRepository struct {
	db *gorm.DB
}

// NewPointRepository creates a new instance of PointRepository.
func NewPointRepository(db *gorm.DB) PointRepository {
	return &pointRepository{db: db}
}

func (r *pointRepository) validate(point *Point) error {
	if !ValidScore(point.Points) {
		return apperrors.Validationf("points must be a non-negative multiple of 0.5, got %v", point.Points)
	}
	if !ValidCategory(point.Category) {
		return apperrors.Validationf("category must be %q or %q, got %q", CategoryA, CategoryB, point.Category)
	}
	return nil
}

// exists checks a referenced row without importing its package; plain table
// lookups keep the point module free of cycles with player and tournament.
func (r *pointRepository) exists(table string, id uint) (bool, error) {
	var n int64
	err := r.db.Table(table).Where("id = ? AND deleted_at IS NULL", id).Count(&n).Error
	return n > 0, err
}

func (r *pointRepository) CreatePoint(point *Point) error {
	if err := r.validate(point); err != nil {
		return err
	}

	ok, err := r.exists("players", point.PlayerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFoundf("player %d does not exist", point.PlayerID)
	}

	ok, err = r.exists("tournaments", point.TournamentID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFoundf("tournament %d does not exist", point.TournamentID)
	}

	if err := r.db.Create(point).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Uniquenessf("player %d already has an entry in tournament %d", point.PlayerID, point.TournamentID)
		}
		return apperrors.FromDB(err)
	}
	return nil
}

func (r *pointRepository) GetPointByID(id uint) (*Point, error) {
	var point Point
	err := r.db.First(&point, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &point, nil
}

// GetPointsByTournament returns a tournament's entries in insertion order.
func (r *pointRepository) GetPointsByTournament(tournamentID uint) ([]Point, error) {
	var points []Point
	err := r.db.Where("tournament_id = ?", tournamentID).Order("id ASC").Find(&points).Error
	return points, err
}

func (r *pointRepository) UpdatePoint(point *Point) error {
	if err := r.validate(point); err != nil {
		return err
	}
	return apperrors.FromDB(r.db.Save(point).Error)
}

// DeletePoint removes a single entry; the player and tournament stay. The
// delete is unscoped so the (player, tournament) slot frees up for a new entry.
func (r *pointRepository) DeletePoint(id uint) error {
	result := r.db.Unscoped().Delete(&Point{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("point %d does not exist", id)
	}
	return nil
}
