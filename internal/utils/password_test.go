package utils

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "pw123" {
		t.Error("Hash must not equal the plaintext password")
	}
	if !CheckPasswordHash("pw123", hash) {
		t.Error("Expected the correct password to verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("Expected the wrong password to fail verification")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if first == second {
		t.Error("Two hashes of the same password should differ (salt)")
	}
}
