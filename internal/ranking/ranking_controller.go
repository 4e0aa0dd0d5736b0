package ranking

import (
	"net/http"
	"strconv"

	"github.com/JordiPons-11/chessrank/internal/player"
	"github.com/JordiPons-11/chessrank/internal/tournament"
	"github.com/JordiPons-11/chessrank/pkg/responses"
	"github.com/gin-gonic/gin"
)

// RankingController handles the leaderboard, classification and progression
// queries.
type RankingController struct {
	repo        RankingRepository
	playerRepo  player.PlayerRepository
	tournaments tournament.TournamentRepository
}

// NewRankingController creates a new RankingController.
func NewRankingController(repo RankingRepository, playerRepo player.PlayerRepository, tournaments tournament.TournamentRepository) *RankingController {
	return &RankingController{repo: repo, playerRepo: playerRepo, tournaments: tournaments}
}

// --- DTOs ---

type LeaderboardResponse struct {
	TournamentID   uint               `json:"tournament_id"`
	TournamentDate string             `json:"tournament_date"`
	Category       string             `json:"category,omitempty"`
	Results        []LeaderboardEntry `json:"results"`
	Chart          ChartData          `json:"chart"`
}

type ClassificationResponse struct {
	Year    *int                  `json:"year,omitempty"`
	Results []ClassificationEntry `json:"results"`
	Chart   ChartData             `json:"chart"`
}

type ProgressionRequest struct {
	PlayerIDs []uint `json:"player_ids" binding:"required"`
}

type PlayerProgression struct {
	PlayerID uint               `json:"player_id"`
	Name     string             `json:"name"`
	Series   []ProgressionPoint `json:"series"`
}

type ProgressionResponse struct {
	Players []PlayerProgression `json:"players"`
}

func parseTopN(c *gin.Context) int {
	topN, _ := strconv.Atoi(c.DefaultQuery("top_n", "0"))
	if topN < 0 {
		topN = 0
	}
	return topN
}

func parseCategory(c *gin.Context) (string, bool) {
	category := c.Query("category")
	if category != "" && category != "A" && category != "B" {
		responses.SendError(c, http.StatusBadRequest, "Category must be A or B", nil)
		return "", false
	}
	return category, true
}

func parseYear(c *gin.Context) *int {
	raw := c.Query("year")
	if raw == "" {
		return nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &year
}

func leaderboardChart(entries []LeaderboardEntry) ChartData {
	data := ChartData{Labels: []string{}, Data: []float64{}}
	for _, e := range entries {
		data.Labels = append(data.Labels, e.FirstName+" "+e.LastName)
		data.Data = append(data.Data, e.Points)
	}
	return data
}

func classificationChart(entries []ClassificationEntry) ChartData {
	data := ChartData{Labels: []string{}, Data: []float64{}}
	for _, e := range entries {
		data.Labels = append(data.Labels, e.FirstName+" "+e.LastName)
		data.Data = append(data.Data, e.TotalPoints)
	}
	return data
}

// TournamentLeaderboard godoc
// @Summary Leaderboard of one tournament
// @Description Scores of one tournament ordered best first, optionally filtered by category and truncated to top_n
// @Tags Rankings
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param category query string false "Category filter (A or B)"
// @Param top_n query int false "Keep only the N best entries"
// @Success 200 {object} responses.SuccessResponse{data=LeaderboardResponse}
// @Failure 404 {object} responses.ErrorResponse "Tournament not found"
// @Router /rankings/tournaments/{tournament_id} [get]
// @Security BearerAuth
func (rc *RankingController) TournamentLeaderboard(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}
	category, ok := parseCategory(c)
	if !ok {
		return
	}

	entries, err := rc.repo.TournamentLeaderboard(uint(tournamentID), category, parseTopN(c))
	if err != nil {
		responses.HandleError(c, err, "Failed to compute leaderboard")
		return
	}

	t, err := rc.tournaments.GetTournamentByID(uint(tournamentID))
	if err != nil || t == nil {
		responses.SendError(c, http.StatusNotFound, "Tournament not found", nil)
		return
	}

	resp := LeaderboardResponse{
		TournamentID:   uint(tournamentID),
		TournamentDate: t.DateString(),
		Category:       category,
		Results:        entries,
		Chart:          leaderboardChart(entries),
	}
	responses.SendSuccess(c, http.StatusOK, "Leaderboard computed successfully", resp)
}

// TournamentLeaderboardChart godoc
// @Summary Leaderboard of one tournament as a PNG bar chart
// @Tags Rankings
// @Produce png
// @Param tournament_id path int true "Tournament ID"
// @Param category query string false "Category filter (A or B)"
// @Param top_n query int false "Keep only the N best entries"
// @Success 200 {file} png
// @Failure 404 {object} responses.ErrorResponse "Tournament not found"
// @Router /rankings/tournaments/{tournament_id}/chart.png [get]
// @Security BearerAuth
func (rc *RankingController) TournamentLeaderboardChart(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}

	category, ok := parseCategory(c)
	if !ok {
		return
	}

	entries, err := rc.repo.TournamentLeaderboard(uint(tournamentID), category, parseTopN(c))
	if err != nil {
		responses.HandleError(c, err, "Failed to compute leaderboard")
		return
	}

	t, err := rc.tournaments.GetTournamentByID(uint(tournamentID))
	if err != nil || t == nil {
		responses.SendError(c, http.StatusNotFound, "Tournament not found", nil)
		return
	}

	png, err := RenderBarChart("Tournament "+t.DateString(), leaderboardChart(entries))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to render chart", err.Error())
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GeneralClassification godoc
// @Summary General classification across tournaments
// @Description Sums every player's points across tournaments, optionally limited to one calendar year
// @Tags Rankings
// @Produce json
// @Param year query int false "Only count tournaments held in this year"
// @Param top_n query int false "Keep only the N best players"
// @Success 200 {object} responses.SuccessResponse{data=ClassificationResponse}
// @Router /rankings/general [get]
// @Security BearerAuth
func (rc *RankingController) GeneralClassification(c *gin.Context) {
	year := parseYear(c)

	entries, err := rc.repo.GeneralClassification(year, parseTopN(c))
	if err != nil {
		responses.HandleError(c, err, "Failed to compute classification")
		return
	}

	resp := ClassificationResponse{
		Year:    year,
		Results: entries,
		Chart:   classificationChart(entries),
	}
	responses.SendSuccess(c, http.StatusOK, "Classification computed successfully", resp)
}

// GeneralClassificationChart godoc
// @Summary General classification as a PNG bar chart
// @Tags Rankings
// @Produce png
// @Param year query int false "Only count tournaments held in this year"
// @Param top_n query int false "Keep only the N best players"
// @Success 200 {file} png
// @Router /rankings/general/chart.png [get]
// @Security BearerAuth
func (rc *RankingController) GeneralClassificationChart(c *gin.Context) {
	entries, err := rc.repo.GeneralClassification(parseYear(c), parseTopN(c))
	if err != nil {
		responses.HandleError(c, err, "Failed to compute classification")
		return
	}

	png, err := RenderBarChart("General classification", classificationChart(entries))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to render chart", err.Error())
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (rc *RankingController) progressionFor(c *gin.Context) ([]PlayerProgression, bool) {
	var req ProgressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", responses.ParseError(err))
		return nil, false
	}

	series, err := rc.repo.Progression(req.PlayerIDs)
	if err != nil {
		responses.HandleError(c, err, "Failed to compute progression")
		return nil, false
	}

	players := make([]PlayerProgression, 0, len(req.PlayerIDs))
	for _, id := range req.PlayerIDs {
		p, err := rc.playerRepo.GetPlayerByID(id)
		if err != nil || p == nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to resolve player names", nil)
			return nil, false
		}
		players = append(players, PlayerProgression{
			PlayerID: id,
			Name:     p.DisplayName(),
			Series:   series[id],
		})
	}
	return players, true
}

// Progression godoc
// @Summary Per-player score time series
// @Description For each selected player, the sequence of tournament scores ordered by tournament date
// @Tags Rankings
// @Accept json
// @Produce json
// @Param selection body ProgressionRequest true "Players to include"
// @Success 200 {object} responses.SuccessResponse{data=ProgressionResponse}
// @Failure 400 {object} responses.ErrorResponse "Empty or invalid player selection"
// @Router /rankings/progression [post]
// @Security BearerAuth
func (rc *RankingController) Progression(c *gin.Context) {
	players, ok := rc.progressionFor(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Progression computed successfully", ProgressionResponse{Players: players})
}

// ProgressionChart godoc
// @Summary Per-player score time series as a PNG line chart
// @Tags Rankings
// @Accept json
// @Produce png
// @Param selection body ProgressionRequest true "Players to include"
// @Success 200 {file} png
// @Failure 400 {object} responses.ErrorResponse "Empty or invalid player selection"
// @Router /rankings/progression/chart.png [post]
// @Security BearerAuth
func (rc *RankingController) ProgressionChart(c *gin.Context) {
	players, ok := rc.progressionFor(c)
	if !ok {
		return
	}

	series := make([]ProgressionSeries, 0, len(players))
	for _, p := range players {
		s := ProgressionSeries{Name: p.Name}
		for _, step := range p.Series {
			s.Dates = append(s.Dates, step.Date)
			s.Values = append(s.Values, step.Points)
		}
		series = append(series, s)
	}

	png, err := RenderProgressionChart("Player progression", series)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to render chart", err.Error())
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
