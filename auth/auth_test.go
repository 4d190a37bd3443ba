package auth

import (
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	id1 := NewID()
	id2 := NewID()

	if id1 == "" || id2 == "" {
		t.Fatal("expected non-empty IDs")
	}
	if id1 == id2 {
		t.Error("expected unique IDs")
	}
	if len(id1) != 36 {
		t.Errorf("expected canonical UUID length 36, got %d", len(id1))
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Error("hash must not equal plaintext")
	}

	if err := CheckPassword("correct horse battery staple", hash); err != nil {
		t.Errorf("expected password to verify, got %v", err)
	}

	if err := CheckPassword("wrong password", hash); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("samepassword")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("samepassword")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("bcrypt hashes of the same password should differ (random salt)")
	}
}

func TestGenerateSessionToken(t *testing.T) {
	token1, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}
	token2, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	if token1 == token2 {
		t.Error("expected unique tokens")
	}
	if strings.ContainsAny(token1, "+/=") {
		t.Errorf("token should be URL-safe without padding: %s", token1)
	}
	// 24 bytes base64 without padding = 32 chars
	if len(token1) != 32 {
		t.Errorf("expected 32-char token, got %d", len(token1))
	}
}

func TestAdminKey(t *testing.T) {
	electionID := "election-123"
	salt := "test-salt"

	key := GenerateAdminKey(electionID, salt)
	if key == "" {
		t.Fatal("expected non-empty admin key")
	}

	// Deterministic
	if key != GenerateAdminKey(electionID, salt) {
		t.Error("admin key should be deterministic")
	}

	// Valid key passes
	if err := ValidateAdminKey(electionID, key, salt); err != nil {
		t.Errorf("expected valid key, got %v", err)
	}

	// Wrong key fails
	if err := ValidateAdminKey(electionID, "bogus", salt); err != ErrInvalidAdminKey {
		t.Errorf("expected ErrInvalidAdminKey, got %v", err)
	}

	// Different salt produces different key
	if key == GenerateAdminKey(electionID, "other-salt") {
		t.Error("different salts should produce different keys")
	}

	// Different election produces different key
	if key == GenerateAdminKey("election-456", salt) {
		t.Error("different elections should produce different keys")
	}
}
