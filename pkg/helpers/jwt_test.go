package helpers

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("access", "refresh", time.Minute, time.Hour)
	tok, exp, err := m.GenerateAccessToken("user-1", "sid-1")
	if err != nil {
		t.Fatal(err)
	}
	if time.Until(exp) > time.Minute {
		t.Fatalf("access expiry %v too far out", exp)
	}
	claims, err := m.ParseAccessToken(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "user-1" || claims.SessionID != "sid-1" {
		t.Fatalf("claims %+v", claims)
	}
	if _, err := m.ParseRefreshToken(tok); err == nil {
		t.Fatal("access token parsed with refresh secret")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewJWTManager("access", "refresh", -time.Minute, time.Hour)
	tok, _, err := m.GenerateAccessToken("user-1", "sid-1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.ParseAccessToken(tok); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestEmptySubjectRejected(t *testing.T) {
	m := NewJWTManager("access", "refresh", time.Minute, time.Hour)
	tok, _, _ := m.GenerateAccessToken("", "sid")
	if _, err := m.ParseAccessToken(tok); err == nil {
		t.Fatal("token without user id accepted")
	}
}
