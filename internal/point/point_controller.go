package point

import (
	"net/http"
	"strconv"

	"github.com/JordiPons-11/chessrank/pkg/responses"
	"github.com/gin-gonic/gin"
)

// PointController handles API requests related to point entries.
type PointController struct {
	repo PointRepository
}

// NewPointController creates a new PointController.
func NewPointController(repo PointRepository) *PointController {
	return &PointController{repo: repo}
}

// --- DTOs ---

type CreatePointRequest struct {
	TournamentID uint     `json:"tournament_id" binding:"required"`
	PlayerID     uint     `json:"player_id" binding:"required"`
	// Pointer so a legitimate score of 0 passes the required check.
	Points   *float64 `json:"points" binding:"required"`
	Category string   `json:"category" binding:"required,oneof=A B"`
}

type UpdatePointRequest struct {
	Points   *float64 `json:"points" binding:"omitempty"`
	Category string   `json:"category" binding:"omitempty,oneof=A B"`
}

// CreatePoint godoc
// @Summary Record a score for a player in a tournament
// @Description Score must be a non-negative multiple of 0.5; a player can have one entry per tournament
// @Tags Points
// @Accept json
// @Produce json
// @Param point body CreatePointRequest true "Point creation request"
// @Success 201 {object} responses.SuccessResponse{data=Point}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Player or tournament not found"
// @Failure 409 {object} responses.ErrorResponse "Player already has an entry in this tournament"
// @Router /points [post]
// @Security BearerAuth
func (pc *PointController) CreatePoint(c *gin.Context) {
	var req CreatePointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", responses.ParseError(err))
		return
	}

	point := Point{
		TournamentID: req.TournamentID,
		PlayerID:     req.PlayerID,
		Points:       *req.Points,
		Category:     req.Category,
	}

	if err := pc.repo.CreatePoint(&point); err != nil {
		responses.HandleError(c, err, "Failed to record points")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Points recorded successfully", point)
}

// GetPointByID godoc
// @Summary Get a point entry by ID
// @Tags Points
// @Produce json
// @Param point_id path int true "Point ID"
// @Success 200 {object} responses.SuccessResponse{data=Point}
// @Failure 404 {object} responses.ErrorResponse "Point entry not found"
// @Router /points/{point_id} [get]
// @Security BearerAuth
func (pc *PointController) GetPointByID(c *gin.Context) {
	pointID, err := strconv.ParseUint(c.Param("point_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid point ID format", nil)
		return
	}

	point, err := pc.repo.GetPointByID(uint(pointID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve point entry", err.Error())
		return
	}
	if point == nil {
		responses.SendError(c, http.StatusNotFound, "Point entry not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Point entry retrieved successfully", point)
}

// GetPointsByTournament godoc
// @Summary List all point entries of a tournament
// @Tags Points
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Point}
// @Router /tournaments/{tournament_id}/points [get]
// @Security BearerAuth
func (pc *PointController) GetPointsByTournament(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}

	points, err := pc.repo.GetPointsByTournament(uint(tournamentID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve point entries", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Point entries retrieved successfully", points)
}

// UpdatePoint godoc
// @Summary Change the score or category of a point entry
// @Tags Points
// @Accept json
// @Produce json
// @Param point_id path int true "Point ID"
// @Param point body UpdatePointRequest true "Point update request"
// @Success 200 {object} responses.SuccessResponse{data=Point}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Point entry not found"
// @Router /points/{point_id} [put]
// @Security BearerAuth
func (pc *PointController) UpdatePoint(c *gin.Context) {
	pointID, err := strconv.ParseUint(c.Param("point_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid point ID format", nil)
		return
	}

	var req UpdatePointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", responses.ParseError(err))
		return
	}

	point, err := pc.repo.GetPointByID(uint(pointID))
	if err != nil || point == nil {
		responses.SendError(c, http.StatusNotFound, "Point entry not found", nil)
		return
	}

	if req.Points != nil {
		point.Points = *req.Points
	}
	if req.Category != "" {
		point.Category = req.Category
	}

	if err := pc.repo.UpdatePoint(point); err != nil {
		responses.HandleError(c, err, "Failed to update point entry")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Point entry updated successfully", point)
}

// DeletePoint godoc
// @Summary Remove a player's entry from a tournament
// @Description Removes only the point entry; the player and tournament remain
// @Tags Points
// @Produce json
// @Param point_id path int true "Point ID"
// @Success 200 {object} responses.SuccessResponse "Point entry deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Point entry not found"
// @Router /points/{point_id} [delete]
// @Security BearerAuth
func (pc *PointController) DeletePoint(c *gin.Context) {
	pointID, err := strconv.ParseUint(c.Param("point_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid point ID format", nil)
		return
	}

	if err := pc.repo.DeletePoint(uint(pointID)); err != nil {
		responses.HandleError(c, err, "Failed to delete point entry")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Point entry deleted successfully", nil)
}
