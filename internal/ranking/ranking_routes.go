package ranking

import (
	"github.com/JordiPons-11/chessrank/internal/player"
	"github.com/JordiPons-11/chessrank/internal/tournament"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRankingRoutes(router *gin.RouterGroup, db *gorm.DB) {
	rankingRepo := NewRankingRepository(db)
	playerRepo := player.NewPlayerRepository(db)
	tournamentRepo := tournament.NewTournamentRepository(db)
	rankingController := NewRankingController(rankingRepo, playerRepo, tournamentRepo)

	rankings := router.Group("/rankings")
	{
		rankings.GET("/tournaments/:tournament_id", rankingController.TournamentLeaderboard)
		rankings.GET("/tournaments/:tournament_id/chart.png", rankingController.TournamentLeaderboardChart)
		rankings.GET("/general", rankingController.GeneralClassification)
		rankings.GET("/general/chart.png", rankingController.GeneralClassificationChart)
		rankings.POST("/progression", rankingController.Progression)
		rankings.POST("/progression/chart.png", rankingController.ProgressionChart)
	}
}
