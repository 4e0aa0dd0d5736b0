// player/model.go
package player

import (
	"gorm.io/gorm"
)

// Player is one registered club member. First and last name are stored in
// normalized form and must be unique as a pair.
type Player struct {
	gorm.Model
	FirstName string `json:"first_name" gorm:"size:100;not null;uniqueIndex:uix_first_last_name"`
	LastName  string `json:"last_name" gorm:"size:100;not null;uniqueIndex:uix_first_last_name"`
}

// DisplayName is the label used in leaderboards and charts.
func (p Player) DisplayName() string {
	return p.FirstName + " " + p.LastName
}
