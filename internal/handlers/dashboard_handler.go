package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cutting_report/internal/models"
	"cutting_report/internal/repository"
	"cutting_report/internal/services"
)

type DashboardHandler struct {
	configRepo     repository.ConfigRepository
	reportService  services.ReportService
	summaryService services.SummaryService
}

func NewDashboardHandler(
	configRepo repository.ConfigRepository,
	reportService services.ReportService,
	summaryService services.SummaryService,
) *DashboardHandler {
	return &DashboardHandler{
		configRepo:     configRepo,
		reportService:  reportService,
		summaryService: summaryService,
	}
}

// GetUnits lists the configured units in display order.
func (h *DashboardHandler) GetUnits(c *gin.Context) {
	units := h.configRepo.Load()
	names := make([]string, 0, len(units))
	for _, u := range units {
		names = append(names, u.Name)
	}
	c.JSON(http.StatusOK, gin.H{"units": names})
}

// GetDashboard renders the single-unit view. Multi-value filters come as
// repeated query params (?buyer=GAP&buyer=H%26M); defaults=1 applies the
// reporting-month and completed-status defaults to dimensions left empty.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	unit, ok := h.findUnit(c.Param("unit"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown unit"})
		return
	}

	sel := selectionFromQuery(c)
	applyDefaults := c.DefaultQuery("defaults", "0") == "1"

	report := h.reportService.BuildReport(unit, sel, applyDefaults, time.Now())
	c.JSON(http.StatusOK, report)
}

// GetExceptionDetail returns the rows of one exception class under the
// current filter selection.
func (h *DashboardHandler) GetExceptionDetail(c *gin.Context) {
	unit, ok := h.findUnit(c.Param("unit"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown unit"})
		return
	}

	sel := selectionFromQuery(c)
	kind := models.ExceptionKind(c.Param("kind"))

	detail, err := h.reportService.ExceptionDetail(unit, sel, kind)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown exception kind"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GetSummary renders the cross-unit rollup.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	sel := models.FilterSelection{
		Months:   c.QueryArray("month"),
		Weeks:    c.QueryArray("week"),
		Statuses: c.QueryArray("status"),
	}

	report := h.summaryService.BuildSummary(h.configRepo.Load(), sel)
	c.JSON(http.StatusOK, report)
}

func (h *DashboardHandler) findUnit(name string) (models.UnitConfig, bool) {
	for _, u := range h.configRepo.Load() {
		if u.Name == name {
			return u, true
		}
	}
	return models.UnitConfig{}, false
}

func selectionFromQuery(c *gin.Context) models.FilterSelection {
	return models.FilterSelection{
		Months:   c.QueryArray("month"),
		Buyers:   c.QueryArray("buyer"),
		Statuses: c.QueryArray("status"),
		Styles:   c.QueryArray("style"),
	}
}
