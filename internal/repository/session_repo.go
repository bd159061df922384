package repository

import (
	"errors"
	"sync"

	"triage-bot/internal/domain"
)

// ErrSessionNotFound distingue el id de sesión desconocido de cualquier
// falla interna: el transporte decide si crear una sesión nueva.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository abstrae el registro de sesiones de chat.
type SessionRepository interface {
	Create(session *domain.ChatSession) error
	GetByID(id string) (*domain.ChatSession, error)
	Exists(id string) bool
	List() []*domain.ChatSession
}

// MemorySessionRepository guarda las sesiones en un mapa en memoria por la
// vida del proceso. No hay expiración: el registro original tampoco la
// define y un TTL sería un cambio de comportamiento.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.ChatSession
	order    []string
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]*domain.ChatSession),
	}
}

func (r *MemorySessionRepository) Create(session *domain.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.SessionID]; !exists {
		r.order = append(r.order, session.SessionID)
	}
	r.sessions[session.SessionID] = session
	return nil
}

func (r *MemorySessionRepository) GetByID(id string) (*domain.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *MemorySessionRepository) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sessions[id]
	return ok
}

// List devuelve las sesiones en orden de creación.
func (r *MemorySessionRepository) List() []*domain.ChatSession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ChatSession, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.sessions[id])
	}
	return out
}
