package utils

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("staff-123", "admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	sub, role, err := TokenClaims(token)
	if err != nil {
		t.Fatal(err)
	}
	if sub != "staff-123" || role != "admin" {
		t.Errorf("claims = (%q, %q), want (staff-123, admin)", sub, role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("staff-123", "admin", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := TokenClaims(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("staff-123", "admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := TokenClaims(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Error("hash of identical input differs")
	}
	if a == HashToken("other-token") {
		t.Error("hash collision for different inputs")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
