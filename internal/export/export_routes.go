package export

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterExportRoutes(router *gin.RouterGroup, db *gorm.DB) {
	exportRepo := NewExportRepository(db)
	exportController := NewExportController(exportRepo)

	exports := router.Group("/export")
	{
		exports.GET("/tournaments/:tournament_id/csv", exportController.ExportTournamentCSV)
		exports.GET("/results.csv", exportController.ExportAllCSV)
		exports.GET("/results.xlsx", exportController.ExportAllXLSX)
	}
}
