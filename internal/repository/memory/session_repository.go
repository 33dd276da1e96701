package memory

import (
	"time"

	"ai-studyaid-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository is the in-process study session store. Sessions expire
// after the configured idle TTL; nothing survives the process.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl, cleanupInterval time.Duration) *SessionRepository {
	c := cache.New(ttl, cleanupInterval)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *entity.StudySession) {
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionId uuid.UUID) (*entity.StudySession, bool) {
	if x, found := r.cache.Get(sessionId.String()); found {
		return x.(*entity.StudySession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionId uuid.UUID) {
	r.cache.Delete(sessionId.String())
}

// Touch refreshes the TTL for an active session.
func (r *SessionRepository) Touch(session *entity.StudySession) {
	r.Save(session)
}
