package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/socialmedia-go/config"
)

func testTokenService(ttl time.Duration) *TokenService {
	return NewTokenService(config.AuthConfig{
		JWTSecret:           "test-secret",
		AccessTokenDuration: ttl,
	})
}

func configWithSecret(secret string) config.AuthConfig {
	return config.AuthConfig{JWTSecret: secret, AccessTokenDuration: time.Hour}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := testTokenService(time.Hour)

	token, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != 42 {
		t.Errorf("Verify = %d, want 42", userID)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := testTokenService(-1 * time.Minute)

	token, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	svc := testTokenService(time.Hour)
	other := NewTokenService(config.AuthConfig{JWTSecret: "other-secret", AccessTokenDuration: time.Hour})

	token, err := other.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign token: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := testTokenService(time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q): err = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	svc := testTokenService(time.Hour)

	token, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"

	if _, err := svc.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("tampered token: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyMissingSubjectClaim(t *testing.T) {
	svc := testTokenService(time.Hour)

	// Valid signature and expiration, but no user_id claim.
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("missing user_id: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	svc := testTokenService(time.Hour)

	claims := &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("alg=none token: err = %v, want ErrInvalidToken", err)
	}
}
