package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	chatH *ChatHandler,
	clinicianH *ClinicianHandler,
	webhookH *WebhookHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	api := r.Group("/api")
	api.GET("/languages", chatH.ListLanguages)
	api.POST("/sessions", chatH.CreateSession)
	api.POST("/sessions/:id/messages", chatH.SendMessage)
	api.GET("/sessions/:id/history", chatH.SessionHistory)

	clinician := api.Group("/clinician")
	clinician.GET("/sessions", clinicianH.ListSessions)
	clinician.GET("/sessions/:id", clinicianH.SessionDetail)
	clinician.GET("/sessions/:id/report", clinicianH.SessionReport)

	webhooks := api.Group("/webhooks")
	webhooks.POST("/sms", webhookH.SMS)
	webhooks.POST("/whatsapp", webhookH.WhatsApp)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
