package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/service"
)

// AdminHandler handles admin login and dashboard stats
type AdminHandler struct {
	adminService *service.AdminService
	logger       *zap.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{adminService: adminService, logger: logger}
}

// Login handles POST /api/v1/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.adminService.Login(&req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Stats handles GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
