package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"triage-bot/internal/report"
	"triage-bot/internal/repository"
	"triage-bot/internal/service"
)

// ClinicianHandler expone la vista de revisión clínica sobre las sesiones.
type ClinicianHandler struct {
	logger      *zap.Logger
	chat        *service.ChatService
	reports     *report.Service
	defaultLang string
}

func NewClinicianHandler(logger *zap.Logger, chat *service.ChatService, reports *report.Service, defaultLang string) *ClinicianHandler {
	return &ClinicianHandler{
		logger:      logger,
		chat:        chat,
		reports:     reports,
		defaultLang: defaultLang,
	}
}

// ListSessions maneja GET /api/clinician/sessions.
func (h *ClinicianHandler) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.chat.AllSessions()})
}

// SessionDetail maneja GET /api/clinician/sessions/:id.
func (h *ClinicianHandler) SessionDetail(c *gin.Context) {
	session, err := h.chat.Session(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.logger.Error("load session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SessionReport maneja GET /api/clinician/sessions/:id/report y devuelve
// el resumen de la sesión como PDF descargable.
func (h *ClinicianHandler) SessionReport(c *gin.Context) {
	sessionID := c.Param("id")
	summary, err := h.chat.SessionSummary(sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.logger.Error("load session summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load session"})
		return
	}

	pdf, err := h.reports.RenderSessionReport(summary, h.defaultLang)
	if err != nil {
		h.logger.Error("render session report failed", zap.Error(err), zap.String("session_id", sessionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=report_%s.pdf", sessionID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
