package cache

import (
	"sync"

	"herbadmin/models"
)

// SessionCache stores resolved sessions by token so the sqlite store is only
// hit on a cache miss.
type SessionCache struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewSessionCache() *SessionCache {
	return &SessionCache{sessions: make(map[string]models.Session)}
}

func (c *SessionCache) Add(s models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[s.ID] = s
}

func (c *SessionCache) Find(token string) (models.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sessions[token]
	return s, ok
}

func (c *SessionCache) Delete(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, token)
}
