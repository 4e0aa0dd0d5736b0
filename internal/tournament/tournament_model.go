// tournament/model.go
package tournament

import (
	"time"

	"gorm.io/gorm"
)

// DateLayout is the wire format for tournament dates.
const DateLayout = "2006-01-02"

// Tournament is one tournament day. Each calendar date hosts at most one
// tournament, so the date is unique.
type Tournament struct {
	gorm.Model
	Date time.Time `json:"date" gorm:"type:date;not null;uniqueIndex"`
}

// DateString renders the tournament date in YYYY-MM-DD form.
func (t Tournament) DateString() string {
	return t.Date.Format(DateLayout)
}
