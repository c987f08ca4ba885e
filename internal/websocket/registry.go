package websocket

import (
	"sync"

	"voice-ecommerce-be/internal/pkg/logger"
)

// Registry tracks live voice sessions by ID. It only answers "who is
// connected right now"; durable session metadata lives in the session
// repository.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	logger logger.ILogger
}

func NewRegistry(log logger.ILogger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		logger:   log,
	}
}

func (r *Registry) Register(s *Session) {
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	r.logger.Info("websocket", "session registered", map[string]interface{}{
		"session_id": s.ID,
	})
}

func (r *Registry) Unregister(s *Session) {
	r.mu.Lock()
	delete(r.sessions, s.ID)
	r.mu.Unlock()
	r.logger.Info("websocket", "session unregistered", map[string]interface{}{
		"session_id": s.ID,
	})
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count reports the number of live sessions, surfaced on the health endpoint.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
