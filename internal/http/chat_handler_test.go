package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"triage-bot/internal/i18n"
	"triage-bot/internal/report"
	"triage-bot/internal/repository"
	"triage-bot/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	tr := i18n.NewTranslator()
	chatSvc := service.NewChatService(
		logger,
		repository.NewMemorySessionRepository(),
		service.NewTriageEngine(tr),
		tr,
		"911 (US) or 108 (India)",
	)
	messagingSvc := service.NewMessagingService(logger, chatSvc, "en")
	reportSvc := report.NewService(logger, tr, "")

	return NewRouter(
		logger,
		NewChatHandler(logger, chatSvc, tr, "en"),
		NewClinicianHandler(logger, chatSvc, reportSvc, "en"),
		NewWebhookHandler(logger, messagingSvc, tr, "en"),
	)
}

func createTestSession(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewBufferString(`{"user_id":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		SessionID string `json:"session_id"`
		Messages  []struct {
			Sender string `json:"sender"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatalf("expected session id")
	}
	if len(resp.Messages) != 3 {
		t.Fatalf("expected 3 greeting messages, got %d", len(resp.Messages))
	}
	return resp.SessionID
}

func TestSendMessage_EmergencyFlag(t *testing.T) {
	router := newTestRouter()
	sessionID := createTestSession(t, router)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"message":"I have severe chest pain"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/messages", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		IsEmergency bool `json:"is_emergency"`
		Messages    []struct {
			Sender string `json:"sender"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.IsEmergency {
		t.Fatalf("expected emergency flag")
	}
	if len(resp.Messages) == 0 {
		t.Fatalf("expected bot messages")
	}
}

func TestSendMessage_UnknownSession(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"message":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/nope/messages", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var resp struct {
		NeedsNewSession bool `json:"needs_new_session"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.NeedsNewSession {
		t.Fatalf("expected needs_new_session hint")
	}
}

func TestSendMessage_EmptyMessage(t *testing.T) {
	router := newTestRouter()
	sessionID := createTestSession(t, router)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"message":"   "}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/messages", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSessionHistory(t *testing.T) {
	router := newTestRouter()
	sessionID := createTestSession(t, router)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"message":"I have a runny nose"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/messages", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/sessions/"+sessionID+"/history", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Messages []struct {
			Sender string `json:"sender"`
		} `json:"messages"`
		TriageResult *struct {
			Urgency string `json:"urgency"`
		} `json:"triage_result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// 3 saludos + mensaje del usuario + 14 respuestas del bot.
	if len(resp.Messages) != 18 {
		t.Fatalf("expected 18 messages, got %d", len(resp.Messages))
	}
	if resp.TriageResult == nil || resp.TriageResult.Urgency != "outpatient" {
		t.Fatalf("expected outpatient triage result, got %+v", resp.TriageResult)
	}
}

func TestClinicianSessions(t *testing.T) {
	router := newTestRouter()
	sessionID := createTestSession(t, router)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clinician/sessions", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Sessions []struct {
			SessionID string `json:"session_id"`
		} `json:"sessions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Sessions) != 1 || resp.Sessions[0].SessionID != sessionID {
		t.Fatalf("expected summary for %q, got %+v", sessionID, resp.Sessions)
	}
}

func TestListLanguages(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"es"`) {
		t.Fatalf("expected spanish in language list: %s", w.Body.String())
	}
}

func TestSMSWebhook(t *testing.T) {
	router := newTestRouter()

	form := url.Values{}
	form.Set("From", "+14155550100")
	form.Set("Body", "I have a mild headache")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/sms", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<Response>") || !strings.Contains(body, "<Message>") {
		t.Fatalf("expected twiml response, got %s", body)
	}
}
