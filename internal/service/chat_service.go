package service

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"triage-bot/internal/domain"
	"triage-bot/internal/i18n"
	"triage-bot/internal/repository"
)

// ChatService es el controlador de conversación: dueño del registro de
// sesiones, de la máquina de estados por sesión y de la orquestación del
// motor de triaje.
type ChatService struct {
	logger           *zap.Logger
	sessions         repository.SessionRepository
	engine           *TriageEngine
	tr               *i18n.Translator
	emergencyNumbers string

	// Serializa las mutaciones de sesión: el diseño asume a lo sumo una
	// operación en vuelo por sesión y el registro solo sincroniza el mapa.
	mu sync.Mutex
}

func NewChatService(
	logger *zap.Logger,
	sessions repository.SessionRepository,
	engine *TriageEngine,
	tr *i18n.Translator,
	emergencyNumbers string,
) *ChatService {
	return &ChatService{
		logger:           logger,
		sessions:         sessions,
		engine:           engine,
		tr:               tr,
		emergencyNumbers: emergencyNumbers,
	}
}

// CreateSession registra una sesión nueva en estado greeting y agrega los
// tres mensajes de bienvenida localizados.
func (s *ChatService) CreateSession(userID, lang string) (*domain.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := uuid.NewString()
	if userID == "" {
		userID = "user_" + sessionID[:8]
	}

	session := &domain.ChatSession{
		SessionID:    sessionID,
		UserID:       userID,
		Messages:     []domain.ChatMessage{},
		CurrentState: domain.StateGreeting,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}

	for _, key := range []string{"bot_greeting_1", "bot_greeting_2", "bot_greeting_3"} {
		s.appendBotMessage(session, s.tr.Translate(key, lang, nil))
	}

	s.logger.Info("session created",
		zap.String("session_id", sessionID),
		zap.String("user_id", userID),
		zap.String("language", lang),
	)
	return session, nil
}

// HasSession consulta si el id existe en el registro.
func (s *ChatService) HasSession(sessionID string) bool {
	return s.sessions.Exists(sessionID)
}

// Session devuelve la sesión completa para el historial.
func (s *ChatService) Session(sessionID string) (*domain.ChatSession, error) {
	return s.sessions.GetByID(sessionID)
}

// ProcessUserInput agrega el mensaje del usuario, despacha según el estado
// actual y devuelve exactamente los mensajes del bot de este turno.
func (s *ChatService) ProcessUserInput(sessionID, text, lang string) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}

	s.appendUserMessage(session, text)

	var responses []domain.ChatMessage
	switch session.CurrentState {
	case domain.StateGreeting, domain.StateSymptomCollection:
		responses = s.handleSymptomReport(session, text, lang)
	case domain.StateFollowUp:
		responses = s.handleFollowUp(session, text, lang)
	default:
		// completed no es terminal estricto: input posterior recibe la
		// respuesta genérica y el estado no se reabre.
		responses = []domain.ChatMessage{
			s.appendBotMessage(session, s.tr.Translate("default_response", lang, nil)),
		}
	}

	return responses, nil
}

// handleSymptomReport corre el triaje sobre el texto y arma la secuencia de
// mensajes según la urgencia. Siempre transiciona a follow_up.
func (s *ChatService) handleSymptomReport(session *domain.ChatSession, text, lang string) []domain.ChatMessage {
	responses := []domain.ChatMessage{
		s.appendBotMessage(session, s.tr.Translate("symptom_acknowledge", lang, nil)),
	}

	result := s.engine.Triage(text, lang)
	session.TriageResult = &result

	s.logger.Info("triage performed",
		zap.String("session_id", session.SessionID),
		zap.String("urgency", string(result.Urgency)),
		zap.Float64("confidence", result.Confidence),
		zap.Int("red_flags", len(result.RedFlags)),
	)

	if result.Urgency == domain.UrgencyEmergency {
		for _, key := range []string{"emergency_alert_1", "emergency_alert_2", "emergency_alert_3", "emergency_alert_4"} {
			responses = append(responses, s.appendBotMessage(session, s.tr.Translate(key, lang, nil)))
		}
		responses = append(responses, s.appendBotMessage(session,
			s.tr.Translate("emergency_services", lang, map[string]string{"numbers": s.emergencyNumbers})))
	} else {
		responses = append(responses, s.appendBotMessage(session,
			s.tr.Translate("assessment_result", lang, map[string]string{"condition": result.Condition})))
		responses = append(responses, s.appendBotMessage(session,
			s.tr.Translate("urgency_level", lang, map[string]string{"urgency": s.urgencyDisplayName(result.Urgency, lang)})))

		responses = append(responses, s.appendBotMessage(session, s.tr.Translate("recommendations_header", lang, nil)))
		for _, rec := range result.Recommendations {
			responses = append(responses, s.appendBotMessage(session, "• "+rec))
		}
		responses = append(responses, s.appendBotMessage(session, s.tr.Translate("next_steps_header", lang, nil)))
		for _, step := range result.NextSteps {
			responses = append(responses, s.appendBotMessage(session, "• "+step))
		}
	}

	responses = append(responses, s.appendBotMessage(session, s.helpfulResources(result.Urgency, lang)))

	session.CurrentState = domain.StateFollowUp

	responses = append(responses, s.appendBotMessage(session, s.tr.Translate("followup_question", lang, nil)))
	return responses
}

// handleFollowUp resuelve el turno de seguimiento por intención. Síntomas
// nuevos son una auto-transición follow_up -> follow_up por la misma ruta
// de intake, no una llamada recursiva.
func (s *ChatService) handleFollowUp(session *domain.ChatSession, text, lang string) []domain.ChatMessage {
	switch classifyFollowUpIntent(text) {
	case intentNewSymptoms:
		return s.handleSymptomReport(session, text, lang)

	case intentQuestion:
		responses := []domain.ChatMessage{
			s.appendBotMessage(session, s.tr.Translate("followup_assessment_explanation", lang, nil)),
		}
		if session.TriageResult != nil {
			key := "followup_manageable_explanation"
			switch session.TriageResult.Urgency {
			case domain.UrgencyEmergency:
				key = "followup_emergency_explanation"
			case domain.UrgencyUrgent:
				key = "followup_urgent_explanation"
			}
			responses = append(responses, s.appendBotMessage(session, s.tr.Translate(key, lang, nil)))
		}
		return responses

	case intentClosing:
		responses := []domain.ChatMessage{
			s.appendBotMessage(session, s.tr.Translate("followup_goodbye_1", lang, nil)),
			s.appendBotMessage(session, s.tr.Translate("followup_goodbye_2", lang, nil)),
		}
		session.CurrentState = domain.StateCompleted
		return responses

	default:
		return []domain.ChatMessage{
			s.appendBotMessage(session, s.tr.Translate("followup_general_1", lang, nil)),
			s.appendBotMessage(session, s.tr.Translate("followup_general_2", lang, nil)),
		}
	}
}

// IsEmergency indica si la última clasificación de la sesión fue emergencia.
func (s *ChatService) IsEmergency(session *domain.ChatSession) bool {
	return session != nil &&
		session.TriageResult != nil &&
		session.TriageResult.Urgency == domain.UrgencyEmergency
}

// SessionSummary condensa una sesión para revisión clínica.
func (s *ChatService) SessionSummary(sessionID string) (domain.SessionSummary, error) {
	session, err := s.sessions.GetByID(sessionID)
	if err != nil {
		return domain.SessionSummary{}, err
	}
	return summarize(session), nil
}

// AllSessions lista los resúmenes de todas las sesiones en orden de creación.
func (s *ChatService) AllSessions() []domain.SessionSummary {
	sessions := s.sessions.List()
	out := make([]domain.SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, summarize(session))
	}
	return out
}

func summarize(session *domain.ChatSession) domain.SessionSummary {
	var symptoms []string
	for _, msg := range session.Messages {
		if msg.Sender == domain.SenderUser {
			symptoms = append(symptoms, msg.Text)
		}
	}
	return domain.SessionSummary{
		SessionID:    session.SessionID,
		UserID:       session.UserID,
		CreatedAt:    session.CreatedAt,
		Symptoms:     strings.Join(symptoms, " "),
		TriageResult: session.TriageResult,
		MessageCount: len(session.Messages),
		Status:       session.CurrentState,
	}
}

// urgencyDisplayName mapea el nivel a su nombre visible traducido.
func (s *ChatService) urgencyDisplayName(urgency domain.UrgencyLevel, lang string) string {
	key := "outpatient"
	switch urgency {
	case domain.UrgencyEmergency:
		key = "emergency"
	case domain.UrgencyUrgent:
		key = "urgent"
	case domain.UrgencySelfCare:
		key = "self_care"
	}
	return s.tr.Translate(key, lang, nil)
}

// helpfulResources elige el mensaje de recursos fijo del nivel alcanzado.
func (s *ChatService) helpfulResources(urgency domain.UrgencyLevel, lang string) string {
	switch urgency {
	case domain.UrgencyEmergency:
		return s.tr.Translate("helpful_emergency", lang, nil)
	case domain.UrgencyUrgent:
		return s.tr.Translate("helpful_urgent", lang, nil)
	case domain.UrgencyOutpatient:
		return s.tr.Translate("helpful_outpatient", lang, nil)
	default:
		return s.tr.Translate("helpful_selfcare", lang, nil)
	}
}

func (s *ChatService) appendUserMessage(session *domain.ChatSession, text string) domain.ChatMessage {
	return appendMessage(session, domain.SenderUser, text, domain.KindText)
}

func (s *ChatService) appendBotMessage(session *domain.ChatSession, text string) domain.ChatMessage {
	return appendMessage(session, domain.SenderBot, text, domain.KindText)
}

func appendMessage(session *domain.ChatSession, sender domain.Sender, text string, kind domain.MessageKind) domain.ChatMessage {
	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Sender:    sender,
		Text:      text,
		Kind:      kind,
	}
	session.Messages = append(session.Messages, msg)
	return msg
}
