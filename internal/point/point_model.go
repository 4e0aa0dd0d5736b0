// point/model.go
package point

import (
	"math"

	"gorm.io/gorm"
)

// Competitive divisions a score can be recorded under.
const (
	CategoryA = "A"
	CategoryB = "B"
)

// Point is one player's recorded score in one tournament. A player has at
// most one entry per tournament.
type Point struct {
	gorm.Model
	TournamentID uint    `json:"tournament_id" gorm:"not null;uniqueIndex:uix_player_tournament;index"`
	PlayerID     uint    `json:"player_id" gorm:"not null;uniqueIndex:uix_player_tournament;index"`
	Points       float64 `json:"points" gorm:"not null"`
	Category     string  `json:"category" gorm:"size:1;not null"`
}

// ValidScore reports whether v is a non-negative multiple of 0.5.
func ValidScore(v float64) bool {
	return v >= 0 && math.Mod(v*2, 1) == 0
}

// ValidCategory reports whether c is one of the two divisions.
func ValidCategory(c string) bool {
	return c == CategoryA || c == CategoryB
}
