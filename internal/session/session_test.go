package session

import "testing"

func TestSession_Bearer(t *testing.T) {
	s := New("  abc  ")
	if got := s.Bearer(); got != "Bearer abc" {
		t.Fatalf("expected trimmed bearer, got %q", got)
	}
	s.SetToken("")
	if got := s.Bearer(); got != "" {
		t.Fatalf("expected no header without a token, got %q", got)
	}
}

func TestSession_NilIsAnonymous(t *testing.T) {
	var s *Session
	if s.Token() != "" || s.Bearer() != "" {
		t.Fatalf("expected nil session to be anonymous")
	}
}

func TestSession_Clear(t *testing.T) {
	s := New("abc")
	s.Clear()
	if s.Token() != "" {
		t.Fatalf("expected cleared token, got %q", s.Token())
	}
}
