package auth

import (
	"errors"
	"testing"
	"time"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("test-secret", "admin", "pass123", time.Hour)

	token, err := m.CreateToken("admin")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	username, err := m.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if username != "admin" {
		t.Errorf("username: got %q, want %q", username, "admin")
	}
}

func TestVerifyTokenWrongKey(t *testing.T) {
	issuer := NewSessionManager("key-one", "admin", "pass123", time.Hour)
	verifier := NewSessionManager("key-two", "admin", "pass123", time.Hour)

	token, err := issuer.CreateToken("admin")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	if _, err := verifier.VerifyToken(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("foreign signature accepted, err=%v", err)
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	m := NewSessionManager("test-secret", "admin", "pass123", time.Hour)

	if _, err := m.VerifyToken("not-a-token"); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("garbage token accepted, err=%v", err)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	m := NewSessionManager("test-secret", "admin", "pass123", -time.Minute)

	token, err := m.CreateToken("admin")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	if _, err := m.VerifyToken(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expired token accepted, err=%v", err)
	}
}

func TestVerifyCredentials(t *testing.T) {
	m := NewSessionManager("test-secret", "admin", "pass123", time.Hour)

	if !m.VerifyCredentials("admin", "pass123") {
		t.Error("valid credentials rejected")
	}
	if m.VerifyCredentials("admin", "wrong") {
		t.Error("wrong password accepted")
	}
	if m.VerifyCredentials("someone", "pass123") {
		t.Error("wrong username accepted")
	}
}
