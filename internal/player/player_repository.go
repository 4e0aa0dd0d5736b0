package player

import (
	"errors"

	"github.com/JordiPons-11/chessrank/pkg/apperrors"
	"gorm.io/gorm"
)

type PlayerRepository interface {
	CreatePlayer(player *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetAllPlayers(page, pageSize int, searchTerm string) ([]Player, int64, error)
	UpdatePlayer(player *Player) error
	DeletePlayer(id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(player *Player) error {
	if player.FirstName == "" || player.LastName == "" {
		return apperrors.Validationf("first name and last name are required")
	}
	return apperrors.FromDB(r.db.Create(player).Error)
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var player Player
	err := r.db.First(&player, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetAllPlayers(page, pageSize int, searchTerm string) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.Model(&Player{})

	if searchTerm != "" {
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ?", "%"+searchTerm+"%", "%"+searchTerm+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("last_name ASC, first_name ASC").Offset(offset).Limit(pageSize).Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (r *playerRepository) UpdatePlayer(player *Player) error {
	if player.FirstName == "" || player.LastName == "" {
		return apperrors.Validationf("first name and last name are required")
	}
	return apperrors.FromDB(r.db.Save(player).Error)
}

// DeletePlayer removes a player that has no recorded results. A player with
// dependent point rows blocks the deletion; nothing is removed in that case.
// The delete is unscoped so the name pair becomes available again.
func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var player Player
		if err := tx.First(&player, id).Error; err != nil {
			return apperrors.FromDB(err)
		}

		var dependents int64
		if err := tx.Table("points").Where("player_id = ? AND deleted_at IS NULL", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return apperrors.DependencyConflictf("player has %d recorded point entries", dependents)
		}

		return tx.Unscoped().Delete(&Player{}, id).Error
	})
}
