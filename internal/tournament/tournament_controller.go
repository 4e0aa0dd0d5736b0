package tournament

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JordiPons-11/chessrank/pkg/responses"
	"github.com/gin-gonic/gin"
)

// TournamentController handles API requests related to tournaments.
type TournamentController struct {
	repo TournamentRepository
}

// NewTournamentController creates a new TournamentController.
func NewTournamentController(repo TournamentRepository) *TournamentController {
	return &TournamentController{repo: repo}
}

// --- DTOs ---

type CreateTournamentRequest struct {
	Date string `json:"date" binding:"required" example:"2024-05-11"`
}

type UpdateTournamentRequest struct {
	Date string `json:"date" binding:"required" example:"2024-05-18"`
}

type TournamentResponse struct {
	ID   uint   `json:"id"`
	Date string `json:"date" example:"2024-05-11"`
}

func toResponse(t Tournament) TournamentResponse {
	return TournamentResponse{ID: t.ID, Date: t.DateString()}
}

func parseDate(c *gin.Context, raw string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil)
		return time.Time{}, false
	}
	return date, true
}

// CreateTournament godoc
// @Summary Create a new tournament
// @Description The tournament date must be unique
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament body CreateTournamentRequest true "Tournament creation request"
// @Success 201 {object} responses.SuccessResponse{data=TournamentResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "A tournament already exists on this date"
// @Router /tournaments [post]
// @Security BearerAuth
func (tc *TournamentController) CreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", responses.ParseError(err))
		return
	}

	date, ok := parseDate(c, req.Date)
	if !ok {
		return
	}

	tournament := Tournament{Date: date}
	if err := tc.repo.CreateTournament(&tournament); err != nil {
		responses.HandleError(c, err, "Failed to create tournament")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Tournament created successfully", toResponse(tournament))
}

// GetAllTournaments godoc
// @Summary List tournaments
// @Description Returns all tournaments ordered by date descending
// @Tags Tournaments
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]TournamentResponse}
// @Router /tournaments [get]
// @Security BearerAuth
func (tc *TournamentController) GetAllTournaments(c *gin.Context) {
	tournaments, err := tc.repo.GetAllTournaments()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve tournaments", err.Error())
		return
	}

	resp := make([]TournamentResponse, 0, len(tournaments))
	for _, t := range tournaments {
		resp = append(resp, toResponse(t))
	}

	responses.SendSuccess(c, http.StatusOK, "Tournaments retrieved successfully", resp)
}

// GetTournamentByID godoc
// @Summary Get a tournament by ID
// @Tags Tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=TournamentResponse}
// @Failure 404 {object} responses.ErrorResponse "Tournament not found"
// @Router /tournaments/{tournament_id} [get]
// @Security BearerAuth
func (tc *TournamentController) GetTournamentByID(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}

	tournament, err := tc.repo.GetTournamentByID(uint(tournamentID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve tournament", err.Error())
		return
	}
	if tournament == nil {
		responses.SendError(c, http.StatusNotFound, "Tournament not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Tournament retrieved successfully", toResponse(*tournament))
}

// UpdateTournament godoc
// @Summary Change a tournament's date
// @Description The new date must stay unique across tournaments
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param tournament body UpdateTournamentRequest true "Tournament update request"
// @Success 200 {object} responses.SuccessResponse{data=TournamentResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Tournament not found"
// @Failure 409 {object} responses.ErrorResponse "A tournament already exists on this date"
// @Router /tournaments/{tournament_id} [put]
// @Security BearerAuth
func (tc *TournamentController) UpdateTournament(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}

	var req UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", responses.ParseError(err))
		return
	}

	date, ok := parseDate(c, req.Date)
	if !ok {
		return
	}

	tournament, err := tc.repo.GetTournamentByID(uint(tournamentID))
	if err != nil || tournament == nil {
		responses.SendError(c, http.StatusNotFound, "Tournament not found", nil)
		return
	}

	tournament.Date = date
	if err := tc.repo.UpdateTournament(tournament); err != nil {
		responses.HandleError(c, err, "Failed to update tournament")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Tournament updated successfully", toResponse(*tournament))
}

// DeleteTournament godoc
// @Summary Delete a tournament
// @Description Deletes the tournament and all its point entries in one transaction
// @Tags Tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse "Tournament deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Tournament not found"
// @Router /tournaments/{tournament_id} [delete]
// @Security BearerAuth
func (tc *TournamentController) DeleteTournament(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}

	if err := tc.repo.DeleteTournament(uint(tournamentID)); err != nil {
		responses.HandleError(c, err, "Failed to delete tournament")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Tournament deleted successfully", nil)
}
