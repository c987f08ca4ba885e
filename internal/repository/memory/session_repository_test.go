package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-ecommerce-be/internal/model"
)

func TestSessionRepository_SaveGetDelete(t *testing.T) {
	repo := NewSessionRepository()

	session := &model.VoiceSession{
		ID:        "sess_1",
		Model:     "gpt-realtime-mini-2025-12-15",
		StartedAt: time.Now(),
	}
	repo.Save(session)
	assert.Equal(t, 1, repo.Count())

	got, found := repo.Get("sess_1")
	require.True(t, found)
	assert.Equal(t, session, got)

	repo.Delete("sess_1")
	_, found = repo.Get("sess_1")
	assert.False(t, found)
	assert.Equal(t, 0, repo.Count())
}

func TestSessionRepository_GetUnknown(t *testing.T) {
	repo := NewSessionRepository()

	_, found := repo.Get("missing")
	assert.False(t, found)
}
