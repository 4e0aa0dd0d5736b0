package point

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterPointRoutes(router *gin.RouterGroup, db *gorm.DB) {
	pointRepo := NewPointRepository(db)
	pointController := NewPointController(pointRepo)

	points := router.Group("/points")
	{
		points.POST("", pointController.CreatePoint)
		points.GET("/:point_id", pointController.GetPointByID)
		points.PUT("/:point_id", pointController.UpdatePoint)
		points.DELETE("/:point_id", pointController.DeletePoint)
	}

	// Nested under tournaments for listing a tournament's entries.
	router.GET("/tournaments/:tournament_id/points", pointController.GetPointsByTournament)
}
