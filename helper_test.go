package passbook

import (
	"path/filepath"
	"testing"
)

// newTestEngine returns an engine backed by a fresh file in a temp dir.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.json")
	e, err := NewEngine(path)
	if err != nil {
		t.Fatalf("NewEngine(%q): %v", path, err)
	}
	return e
}

// open creates an account and logs into it.
func open(t *testing.T, e *Engine, name, pin string) Session {
	t.Helper()
	id, err := e.CreateAccount(name, pin)
	if err != nil {
		t.Fatalf("CreateAccount(%q): %v", name, err)
	}
	s, err := e.Login(id, pin)
	if err != nil {
		t.Fatalf("Login(%q): %v", id, err)
	}
	return s
}

// amount parses a 2-decimal amount string or fails the test.
func amount(t *testing.T, s string) Money {
	t.Helper()
	m, err := ParseAmount(s)
	if err != nil {
		t.Fatalf("ParseAmount(%q): %v", s, err)
	}
	return m
}
