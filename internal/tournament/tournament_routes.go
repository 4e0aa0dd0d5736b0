package tournament

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterTournamentRoutes(router *gin.RouterGroup, db *gorm.DB) {
	tournamentRepo := NewTournamentRepository(db)
	tournamentController := NewTournamentController(tournamentRepo)

	tournaments := router.Group("/tournaments")
	{
		tournaments.POST("", tournamentController.CreateTournament)
		tournaments.GET("", tournamentController.GetAllTournaments)
		tournaments.GET("/:tournament_id", tournamentController.GetTournamentByID)
		tournaments.PUT("/:tournament_id", tournamentController.UpdateTournament)
		tournaments.DELETE("/:tournament_id", tournamentController.DeleteTournament)
	}
}
