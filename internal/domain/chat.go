package domain

import "time"

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type MessageKind string

const (
	KindText         MessageKind = "text"
	KindTriageResult MessageKind = "triage_result"
	KindOptions      MessageKind = "options"
)

// ChatMessage es una entrada del historial de conversación. Se crea una vez
// y nunca se edita ni se borra.
type ChatMessage struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Sender    Sender      `json:"sender"`
	Text      string      `json:"message"`
	Kind      MessageKind `json:"message_type"`
}

// ConversationState modela la máquina de estados del diálogo.
type ConversationState string

const (
	StateGreeting          ConversationState = "greeting"
	StateSymptomCollection ConversationState = "symptom_collection"
	StateFollowUp          ConversationState = "follow_up"
	StateCompleted         ConversationState = "completed"
)

// ChatSession es una conversación en curso. Messages es append-only y su
// orden de inserción es el orden canónico; TriageResult guarda la última
// clasificación, no un histórico.
type ChatSession struct {
	SessionID    string            `json:"session_id"`
	UserID       string            `json:"user_id"`
	Messages     []ChatMessage     `json:"messages"`
	CurrentState ConversationState `json:"current_state"`
	TriageResult *TriageResult     `json:"triage_result,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// SessionSummary es la vista condensada de una sesión para revisión clínica.
type SessionSummary struct {
	SessionID    string            `json:"session_id"`
	UserID       string            `json:"user_id"`
	CreatedAt    time.Time         `json:"created_at"`
	Symptoms     string            `json:"symptoms"`
	TriageResult *TriageResult     `json:"triage_result,omitempty"`
	MessageCount int               `json:"message_count"`
	Status       ConversationState `json:"status"`
}
