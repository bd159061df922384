package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"triage-bot/internal/i18n"
	"triage-bot/internal/repository"
	"triage-bot/internal/service"
)

// ChatHandler mantiene dependencias para los endpoints de conversación.
type ChatHandler struct {
	logger      *zap.Logger
	chat        *service.ChatService
	tr          *i18n.Translator
	defaultLang string
}

func NewChatHandler(logger *zap.Logger, chat *service.ChatService, tr *i18n.Translator, defaultLang string) *ChatHandler {
	return &ChatHandler{
		logger:      logger,
		chat:        chat,
		tr:          tr,
		defaultLang: defaultLang,
	}
}

// resolveLanguage valida el idioma pedido o cae al default del servicio.
func (h *ChatHandler) resolveLanguage(lang string) string {
	if lang != "" && h.tr.Supported(lang) {
		return lang
	}
	return h.defaultLang
}

// ListLanguages maneja GET /api/languages.
func (h *ChatHandler) ListLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": h.tr.Languages()})
}

// CreateSession maneja POST /api/sessions.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req struct {
		UserID   string `json:"user_id"`
		Language string `json:"language"`
	}
	// El body es opcional: sin user_id se deriva uno del id de sesión.
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.logger.Warn("invalid create session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	lang := h.resolveLanguage(req.Language)
	session, err := h.chat.CreateSession(req.UserID, lang)
	if err != nil {
		h.logger.Error("create session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": session.SessionID,
		"messages":   session.Messages,
	})
}

// SendMessage maneja POST /api/sessions/:id/messages.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req struct {
		Message  string `json:"message" binding:"required"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		h.logger.Warn("invalid send message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty message"})
		return
	}

	sessionID := c.Param("id")
	lang := h.resolveLanguage(req.Language)

	responses, err := h.chat.ProcessUserInput(sessionID, req.Message, lang)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":             "session not found",
				"needs_new_session": true,
			})
			return
		}
		h.logger.Error("process user input failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process message"})
		return
	}

	session, err := h.chat.Session(sessionID)
	if err != nil {
		h.logger.Error("load session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":     responses,
		"is_emergency": h.chat.IsEmergency(session),
	})
}

// SessionHistory maneja GET /api/sessions/:id/history.
func (h *ChatHandler) SessionHistory(c *gin.Context) {
	session, err := h.chat.Session(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":             "session not found",
				"needs_new_session": true,
			})
			return
		}
		h.logger.Error("load session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":      session.Messages,
		"triage_result": session.TriageResult,
	})
}
