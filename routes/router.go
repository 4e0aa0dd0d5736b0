package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/JordiPons-11/chessrank/config"
	"github.com/JordiPons-11/chessrank/internal/auth"
	"github.com/JordiPons-11/chessrank/internal/export"
	"github.com/JordiPons-11/chessrank/internal/middleware"
	"github.com/JordiPons-11/chessrank/internal/player"
	"github.com/JordiPons-11/chessrank/internal/point"
	"github.com/JordiPons-11/chessrank/internal/ranking"
	"github.com/JordiPons-11/chessrank/internal/tournament"
)

// SetupRoutes wires every module onto a fresh gin engine. Only /auth/login and
// the swagger UI are reachable without a bearer token.
func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		player.RegisterPlayerRoutes(protected, db)
		tournament.RegisterTournamentRoutes(protected, db)
		point.RegisterPointRoutes(protected, db)
		ranking.RegisterRankingRoutes(protected, db)
		export.RegisterExportRoutes(protected, db)
	}

	return r
}
