package service

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"triage-bot/internal/domain"
)

// Límite conservador por debajo del tope de segmentos concatenados de SMS.
const maxSMSLength = 1400

// MessagingService es el shim para canales SMS/WhatsApp: mapea números de
// teléfono a sesiones y reduce las respuestas del bot al formato del canal.
type MessagingService struct {
	logger *zap.Logger
	chat   *ChatService
	lang   string

	mu              sync.Mutex
	sessionsByPhone map[string]string
}

func NewMessagingService(logger *zap.Logger, chat *ChatService, lang string) *MessagingService {
	return &MessagingService{
		logger:          logger,
		chat:            chat,
		lang:            lang,
		sessionsByPhone: make(map[string]string),
	}
}

// HandleInbound procesa un mensaje entrante de un número, creando la sesión
// en el primer contacto con user id derivado del teléfono.
func (m *MessagingService) HandleInbound(from, body string) ([]domain.ChatMessage, error) {
	sessionID, err := m.sessionForPhone(from)
	if err != nil {
		return nil, err
	}
	return m.chat.ProcessUserInput(sessionID, body, m.lang)
}

func (m *MessagingService) sessionForPhone(phone string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sessionID, ok := m.sessionsByPhone[phone]; ok && m.chat.HasSession(sessionID) {
		return sessionID, nil
	}

	session, err := m.chat.CreateSession("phone_"+phone, m.lang)
	if err != nil {
		return "", err
	}
	m.sessionsByPhone[phone] = session.SessionID
	m.logger.Info("messaging session created",
		zap.String("session_id", session.SessionID),
		zap.String("phone", phone),
	)
	return session.SessionID, nil
}

// CombineForSMS concatena respuestas hasta el límite de caracteres y marca
// el truncado con el aviso dado.
func CombineForSMS(msgs []domain.ChatMessage, truncationNotice string) string {
	if len(msgs) == 0 {
		return ""
	}

	var combined []string
	charCount := 0
	for _, msg := range msgs {
		if charCount+len(msg.Text) >= maxSMSLength {
			break
		}
		combined = append(combined, msg.Text)
		charCount += len(msg.Text)
	}

	result := strings.Join(combined, "\n\n")
	if len(combined) < len(msgs) {
		result += "\n\n" + truncationNotice
	}
	return result
}
