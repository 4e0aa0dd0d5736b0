package ranking

import (
	"time"

	"github.com/JordiPons-11/chessrank/internal/player"
	"github.com/JordiPons-11/chessrank/internal/point"
	"github.com/JordiPons-11/chessrank/internal/tournament"
	"github.com/JordiPons-11/chessrank/pkg/apperrors"
	"gorm.io/gorm"
)

// LeaderboardEntry is one row of a per-tournament category leaderboard.
type LeaderboardEntry struct {
	PlayerID  uint    `json:"player_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Points    float64 `json:"points"`
	Category  string  `json:"category"`
}

// ClassificationEntry is one row of the cross-tournament general classification.
type ClassificationEntry struct {
	PlayerID    uint    `json:"player_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	TotalPoints float64 `json:"total_points"`
}

// ProgressionPoint is one step of a player's score time series.
type ProgressionPoint struct {
	Date   time.Time `json:"date"`
	Points float64   `json:"points"`
}

type RankingRepository interface {
	TournamentLeaderboard(tournamentID uint, category string, topN int) ([]LeaderboardEntry, error)
	GeneralClassification(year *int, topN int) ([]ClassificationEntry, error)
	Progression(playerIDs []uint) (map[uint][]ProgressionPoint, error)
}

type rankingRepository struct {
	db *gorm.DB
}

// NewRankingRepository creates a new instance of RankingRepository.
func NewRankingRepository(db *gorm.DB) RankingRepository {
	return &rankingRepository{db: db}
}

// TournamentLeaderboard returns the points of one tournament and category,
// best score first. Ties keep insertion order. topN <= 0 means no truncation.
func (r *rankingRepository) TournamentLeaderboard(tournamentID uint, category string, topN int) ([]LeaderboardEntry, error) {
	var n int64
	if err := r.db.Model(&tournament.Tournament{}).Where("id = ?", tournamentID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, apperrors.NotFoundf("tournament %d does not exist", tournamentID)
	}

	query := r.db.Model(&point.Point{}).
		Select("points.player_id, players.first_name, players.last_name, points.points, points.category").
		Joins("JOIN players ON players.id = points.player_id AND players.deleted_at IS NULL").
		Where("points.tournament_id = ?", tournamentID)
	if category != "" {
		query = query.Where("points.category = ?", category)
	}
	query = query.Order("points.points DESC, points.id ASC")
	if topN > 0 {
		query = query.Limit(topN)
	}

	var entries []LeaderboardEntry
	if err := query.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GeneralClassification sums each player's points across tournaments,
// optionally restricted to tournaments held in the given calendar year, best
// total first, truncated to topN when positive. Players without a qualifying
// point entry do not appear.
func (r *rankingRepository) GeneralClassification(year *int, topN int) ([]ClassificationEntry, error) {
	query := r.db.Model(&point.Point{}).
		Select("points.player_id, players.first_name, players.last_name, SUM(points.points) AS total_points").
		Joins("JOIN players ON players.id = points.player_id AND players.deleted_at IS NULL").
		Joins("JOIN tournaments ON tournaments.id = points.tournament_id AND tournaments.deleted_at IS NULL")

	if year != nil {
		// Half-open date range instead of a dialect-specific year extraction.
		start := time.Date(*year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)
		query = query.Where("tournaments.date >= ? AND tournaments.date < ?", start, end)
	}

	query = query.
		Group("points.player_id, players.first_name, players.last_name").
		Order("total_points DESC")
	if topN > 0 {
		query = query.Limit(topN)
	}

	var entries []ClassificationEntry
	if err := query.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// progressionRow is the flat scan target for the progression query.
type progressionRow struct {
	PlayerID uint
	Date     time.Time
	Points   float64
}

// Progression builds per-player time series of tournament scores, ascending by
// tournament date. The requested id set must be non-empty and every id must
// reference an existing player; a player with no entries yields an empty series.
// Scores are summed per (player, tournament) so an anomalous duplicate row can
// never be counted twice.
func (r *rankingRepository) Progression(playerIDs []uint) (map[uint][]ProgressionPoint, error) {
	if len(playerIDs) == 0 {
		return nil, apperrors.Validationf("at least one player must be selected")
	}

	var found []uint
	if err := r.db.Model(&player.Player{}).Where("id IN ?", playerIDs).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	known := make(map[uint]bool, len(found))
	for _, id := range found {
		known[id] = true
	}
	for _, id := range playerIDs {
		if !known[id] {
			return nil, apperrors.Validationf("unknown player id %d", id)
		}
	}

	var rows []progressionRow
	err := r.db.Model(&point.Point{}).
		Select("points.player_id, tournaments.date, SUM(points.points) AS points").
		Joins("JOIN tournaments ON tournaments.id = points.tournament_id AND tournaments.deleted_at IS NULL").
		Where("points.player_id IN ?", playerIDs).
		Group("points.player_id, tournaments.date").
		Order("tournaments.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	series := make(map[uint][]ProgressionPoint, len(playerIDs))
	for _, id := range playerIDs {
		series[id] = []ProgressionPoint{}
	}
	for _, row := range rows {
		series[row.PlayerID] = append(series[row.PlayerID], ProgressionPoint{Date: row.Date, Points: row.Points})
	}
	return series, nil
}
