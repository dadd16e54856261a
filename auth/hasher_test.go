package auth

import (
	"strings"
	"testing"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("!Jessica123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hashed == "!Jessica123" || !strings.HasPrefix(hashed, "$2") {
		t.Errorf("hash does not look like bcrypt output: %q", hashed)
	}

	if !hasher.Verify("!Jessica123", hashed) {
		t.Error("Verify should accept the original password")
	}
	if hasher.Verify("!Jessica124", hashed) {
		t.Error("Verify should reject a different password")
	}
	if hasher.Verify("!Jessica123", "not-a-hash") {
		t.Error("Verify should reject a malformed stored hash")
	}
}
