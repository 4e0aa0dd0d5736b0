package auth

import (
	"net/http"

	"github.com/JordiPons-11/chessrank/config"
	"github.com/JordiPons-11/chessrank/internal/middleware"
	"github.com/JordiPons-11/chessrank/pkg/responses"
	"github.com/JordiPons-11/chessrank/pkg/token"
	"github.com/JordiPons-11/chessrank/utils"
	"github.com/gin-gonic/gin"
)

// AuthController handles login and profile requests.
type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

// NewAuthController creates a new AuthController.
func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, config: cfg}
}

// Login godoc
// @Summary Log in with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 401 {object} responses.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", responses.ParseError(err))
		return
	}

	user, err := ac.repo.FindUserByUsername(req.Username)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to look up user", err.Error())
		return
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		responses.SendError(c, http.StatusUnauthorized, "Invalid username or password", nil)
		return
	}

	accessToken, err := token.GenerateJWT(user.ID, user.Username, ac.config.JWT.Secret, ac.config.JWT.ExpiryMinutes)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to issue token", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Login successful", AuthResponse{
		AccessToken: accessToken,
		User:        FilterUserRecord(user),
	})
}

// GetProfile godoc
// @Summary Profile of the logged-in user
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=UserResponse}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
// @Security BearerAuth
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	user, err := ac.repo.GetUserByID(userID)
	if err != nil || user == nil {
		responses.SendError(c, http.StatusNotFound, "User not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", FilterUserRecord(user))
}
