package export

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/JordiPons-11/chessrank/pkg/responses"
	"github.com/gin-gonic/gin"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportController serves CSV and XLSX downloads of the result database.
type ExportController struct {
	repo ExportRepository
}

// NewExportController creates a new ExportController.
func NewExportController(repo ExportRepository) *ExportController {
	return &ExportController{repo: repo}
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
}

// ExportTournamentCSV godoc
// @Summary Download one tournament's results as CSV
// @Description Columns: First Name, Last Name, Points, Category. Filename derives from the tournament date
// @Tags Export
// @Produce text/csv
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {file} csv
// @Failure 404 {object} responses.ErrorResponse "Tournament not found"
// @Router /export/tournaments/{tournament_id}/csv [get]
// @Security BearerAuth
func (ec *ExportController) ExportTournamentCSV(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}

	t, rows, err := ec.repo.TournamentResults(uint(tournamentID))
	if err != nil {
		responses.HandleError(c, err, "Failed to export tournament results")
		return
	}

	var buf bytes.Buffer
	if err := WriteTournamentCSV(&buf, rows); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to write CSV", err.Error())
		return
	}

	attachment(c, TournamentFilename(t))
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}

// ExportAllCSV godoc
// @Summary Download the complete result database as CSV
// @Description Columns: First Name, Last Name, Date, Category, Points; rows ordered by tournament date
// @Tags Export
// @Produce text/csv
// @Success 200 {file} csv
// @Router /export/results.csv [get]
// @Security BearerAuth
func (ec *ExportController) ExportAllCSV(c *gin.Context) {
	rows, err := ec.repo.AllResults()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to export results", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := WriteFullCSV(&buf, rows); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to write CSV", err.Error())
		return
	}

	attachment(c, "all_results.csv")
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}

// ExportAllXLSX godoc
// @Summary Download the complete result database as an XLSX workbook
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} xlsx
// @Router /export/results.xlsx [get]
// @Security BearerAuth
func (ec *ExportController) ExportAllXLSX(c *gin.Context) {
	rows, err := ec.repo.AllResults()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to export results", err.Error())
		return
	}

	f, err := BuildWorkbook(rows)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to build workbook", err.Error())
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to write workbook", err.Error())
		return
	}

	attachment(c, "all_results.xlsx")
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
