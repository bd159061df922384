package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go/twiml"
	"go.uber.org/zap"

	"triage-bot/internal/domain"
	"triage-bot/internal/i18n"
	"triage-bot/internal/service"
)

// WebhookHandler recibe los webhooks de Twilio para SMS y WhatsApp y
// responde con TwiML. Los errores degradan a un mensaje de disculpa: el
// canal nunca recibe un fallo crudo.
type WebhookHandler struct {
	logger      *zap.Logger
	messaging   *service.MessagingService
	tr          *i18n.Translator
	defaultLang string
}

func NewWebhookHandler(logger *zap.Logger, messaging *service.MessagingService, tr *i18n.Translator, defaultLang string) *WebhookHandler {
	return &WebhookHandler{
		logger:      logger,
		messaging:   messaging,
		tr:          tr,
		defaultLang: defaultLang,
	}
}

// SMS maneja POST /api/webhooks/sms. Las respuestas se combinan en un solo
// mensaje para no exceder los límites del canal.
func (h *WebhookHandler) SMS(c *gin.Context) {
	from := c.PostForm("From")
	body := c.PostForm("Body")

	responses, err := h.messaging.HandleInbound(from, body)
	if err != nil {
		h.logger.Error("sms webhook failed", zap.Error(err))
		h.renderTwiML(c, []twiml.Element{&twiml.MessagingMessage{
			Body: h.tr.Translate("sms_fallback", h.defaultLang, nil),
		}})
		return
	}

	combined := service.CombineForSMS(responses, h.tr.Translate("sms_truncated", h.defaultLang, nil))
	h.renderTwiML(c, []twiml.Element{&twiml.MessagingMessage{Body: combined}})
}

// WhatsApp maneja POST /api/webhooks/whatsapp. A diferencia de SMS, cada
// respuesta del bot viaja como mensaje individual.
func (h *WebhookHandler) WhatsApp(c *gin.Context) {
	from := c.PostForm("From")
	body := c.PostForm("Body")

	responses, err := h.messaging.HandleInbound(from, body)
	if err != nil {
		h.logger.Error("whatsapp webhook failed", zap.Error(err))
		h.renderTwiML(c, []twiml.Element{&twiml.MessagingMessage{
			Body: h.tr.Translate("sms_fallback", h.defaultLang, nil),
		}})
		return
	}

	verbs := make([]twiml.Element, 0, len(responses))
	for _, msg := range responses {
		text := msg.Text
		if isEmergencyText(msg) {
			text = "🚨 " + text
		}
		verbs = append(verbs, &twiml.MessagingMessage{Body: text})
	}
	h.renderTwiML(c, verbs)
}

func (h *WebhookHandler) renderTwiML(c *gin.Context, verbs []twiml.Element) {
	doc, err := twiml.Messages(verbs)
	if err != nil {
		h.logger.Error("twiml render failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/xml", []byte(doc))
}

func isEmergencyText(msg domain.ChatMessage) bool {
	return strings.Contains(strings.ToUpper(msg.Text), "EMERGENCY") ||
		strings.Contains(strings.ToUpper(msg.Text), "EMERGENCIA")
}
