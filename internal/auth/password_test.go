package auth

import "testing"

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("correct")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	h2, err := HashPassword("correct")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (per-call salt)")
	}
	if h1 == "correct" {
		t.Fatalf("hash must not equal the plaintext")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if !CheckPassword("correct", hash) {
		t.Fatalf("expected match for correct password")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("garbage hash must never match")
	}
}

func TestHashPassword_EmptyString(t *testing.T) {
	hash, err := HashPassword("")
	if err != nil {
		t.Fatalf("empty password must hash like any other input: %v", err)
	}
	if !CheckPassword("", hash) {
		t.Fatalf("empty password must verify against its own hash")
	}
}
