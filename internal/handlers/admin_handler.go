package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cutting_report/internal/models"
	"cutting_report/internal/repository"
	"cutting_report/internal/services"
)

type AdminHandler struct {
	authService services.AuthService
	configRepo  repository.ConfigRepository
	dataService services.DataService
}

func NewAdminHandler(
	authService services.AuthService,
	configRepo repository.ConfigRepository,
	dataService services.DataService,
) *AdminHandler {
	return &AdminHandler{
		authService: authService,
		configRepo:  configRepo,
		dataService: dataService,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(bearerToken(c)); err != nil {
		log.Printf("Warning: logout failed: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// RequireAuth guards the config endpoints behind a valid admin session.
func (h *AdminHandler) RequireAuth(c *gin.Context) {
	if _, err := h.authService.Validate(bearerToken(c)); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.Next()
}

func (h *AdminHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"units": h.configRepo.Load()})
}

type unitLinkRequest struct {
	Name         string `json:"name" binding:"required"`
	DashboardURL string `json:"dashboard_url"`
	ExcelURL     string `json:"excel_url"`
}

// SaveConfig replaces the unit link mapping and drops the row cache so the
// new links take effect on the next render. A store failure is reported but
// the dashboard keeps serving from the fallback mapping.
func (h *AdminHandler) SaveConfig(c *gin.Context) {
	var req struct {
		Units []unitLinkRequest `json:"units" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	configs := make([]models.UnitConfig, 0, len(req.Units))
	for _, u := range req.Units {
		configs = append(configs, models.UnitConfig{
			Name:         u.Name,
			DashboardURL: u.DashboardURL,
			ExcelURL:     u.ExcelURL,
		})
	}

	if err := h.configRepo.Save(configs); err != nil {
		log.Printf("Warning: failed to save unit config: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save config"})
		return
	}

	h.dataService.InvalidateAll()
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer"))
}
