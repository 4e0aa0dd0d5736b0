// Package testutil provides the shared database harness for repository tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/JordiPons-11/chessrank/internal/auth"
	"github.com/JordiPons-11/chessrank/internal/player"
	"github.com/JordiPons-11/chessrank/internal/point"
	"github.com/JordiPons-11/chessrank/internal/tournament"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB opens an isolated in-memory database migrated with the full
// schema. The shared-cache name is derived from the test name so parallel
// tests never collide, and TranslateError matches the production connection.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&auth.User{},
		&player.Player{}, &tournament.Tournament{}, &point.Point{},
	))

	return db
}

// Date builds the UTC midnight timestamp tournaments store for a calendar day.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
