package auth

import (
	"github.com/JordiPons-11/chessrank/config"
	"github.com/JordiPons-11/chessrank/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, appConfig)

	// Login is the only route reachable without a token.
	authPublic := router.Group("/auth")
	{
		authPublic.POST("/login", authController.Login)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		authProtected.GET("/me", authController.GetProfile)
	}
}
