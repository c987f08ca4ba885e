package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"voice-ecommerce-be/internal/model"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes. Expiry is a safety net for
	// sessions whose cleanup never ran; normal disconnects delete eagerly.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *model.VoiceSession) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*model.VoiceSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*model.VoiceSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
