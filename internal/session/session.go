// Package session holds the credential sent to the plan service. It is
// in-memory only; the token comes from config or the environment.
package session

import (
	"strings"
	"sync"
)

type Session struct {
	mu    sync.RWMutex
	token string
}

func New(token string) *Session {
	return &Session{token: strings.TrimSpace(token)}
}

func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = strings.TrimSpace(token)
	s.mu.Unlock()
}

func (s *Session) Clear() { s.SetToken("") }

// Bearer returns the Authorization header value, or "" without a token.
func (s *Session) Bearer() string {
	t := s.Token()
	if t == "" {
		return ""
	}
	return "Bearer " + t
}
