package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"buyer-quiz/internal/repository"
	"buyer-quiz/internal/service"
)

// AdminHandler serves the sales team's lead console.
type AdminHandler struct {
	logger  *zap.Logger
	auth    *service.AdminAuthService
	leads   repository.LeadRepository
	results repository.ResultRepository
}

func NewAdminHandler(
	logger *zap.Logger,
	auth *service.AdminAuthService,
	leads repository.LeadRepository,
	results repository.ResultRepository,
) *AdminHandler {
	return &AdminHandler{logger: logger, auth: auth, leads: leads, results: results}
}

type adminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.auth.Login(req.Password)
	switch {
	case errors.Is(err, service.ErrAdminAuthDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin access not configured"})
		return
	case errors.Is(err, service.ErrAdminCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	case err != nil:
		h.logger.Error("admin login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *AdminHandler) ListLeads(c *gin.Context) {
	limit := parseQueryInt(c, "limit", 50)
	offset := parseQueryInt(c, "offset", 0)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	leads, err := h.leads.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("list leads failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list leads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leads": leads, "limit": limit, "offset": offset})
}

func (h *AdminHandler) GetLead(c *gin.Context) {
	id := c.Param("id")

	lead, err := h.leads.GetByID(c.Request.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	if err != nil {
		h.logger.Error("get lead failed", zap.Error(err), zap.String("lead_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load lead"})
		return
	}

	results, err := h.results.FindByLeadID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("load lead results failed", zap.Error(err), zap.String("lead_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load results"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead, "results": results})
}

func parseQueryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
