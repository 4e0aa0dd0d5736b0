package player

import (
	"net/http"
	"strconv"

	"github.com/JordiPons-11/chessrank/pkg/normalize"
	"github.com/JordiPons-11/chessrank/pkg/responses"
	"github.com/gin-gonic/gin"
)

// PlayerController handles API requests related to players.
type PlayerController struct {
	repo PlayerRepository
}

// NewPlayerController creates a new PlayerController.
func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

// --- DTOs (Data Transfer Objects) for requests/responses ---

type CreatePlayerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
}

type UpdatePlayerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
}

// CreatePlayer godoc
// @Summary Register a new player
// @Description Names are normalized (accents stripped, non-letters removed, capitalized) before storage; the normalized pair must be unique
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player creation request"
// @Success 201 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Player with this name already exists"
// @Router /players [post]
// @Security BearerAuth
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", responses.ParseError(err))
		return
	}

	player := Player{
		FirstName: normalize.Name(req.FirstName),
		LastName:  normalize.Name(req.LastName),
	}

	if err := pc.repo.CreatePlayer(&player); err != nil {
		responses.HandleError(c, err, "Failed to create player")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", player)
}

// GetAllPlayers godoc
// @Summary List players
// @Tags Players
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Param search query string false "Search term for first or last name"
// @Success 200 {object} responses.PaginatedResponse{data=[]Player}
// @Router /players [get]
// @Security BearerAuth
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	searchTerm := c.Query("search")

	players, total, err := pc.repo.GetAllPlayers(page, pageSize, searchTerm)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve players", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Players retrieved successfully", players, total, page, pageSize)
}

// GetPlayerByID godoc
// @Summary Get a player by ID
// @Tags Players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Router /players/{player_id} [get]
// @Security BearerAuth
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID format", nil)
		return
	}

	player, err := pc.repo.GetPlayerByID(uint(playerID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve player", err.Error())
		return
	}
	if player == nil {
		responses.SendError(c, http.StatusNotFound, "Player not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Player retrieved successfully", player)
}

// UpdatePlayer godoc
// @Summary Rename a player
// @Description Both fields are re-normalized; the new pair must stay unique
// @Tags Players
// @Accept json
// @Produce json
// @Param player_id path int true "Player ID"
// @Param player body UpdatePlayerRequest true "Player update request"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 409 {object} responses.ErrorResponse "Player with this name already exists"
// @Router /players/{player_id} [put]
// @Security BearerAuth
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID format", nil)
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", responses.ParseError(err))
		return
	}

	player, err := pc.repo.GetPlayerByID(uint(playerID))
	if err != nil || player == nil {
		responses.SendError(c, http.StatusNotFound, "Player not found", nil)
		return
	}

	player.FirstName = normalize.Name(req.FirstName)
	player.LastName = normalize.Name(req.LastName)

	if err := pc.repo.UpdatePlayer(player); err != nil {
		responses.HandleError(c, err, "Failed to update player")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", player)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Description Fails when the player still has recorded results
// @Tags Players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse "Player deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 409 {object} responses.ErrorResponse "Player still has point entries"
// @Router /players/{player_id} [delete]
// @Security BearerAuth
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID format", nil)
		return
	}

	if err := pc.repo.DeletePlayer(uint(playerID)); err != nil {
		responses.HandleError(c, err, "Failed to delete player")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Player deleted successfully", nil)
}
