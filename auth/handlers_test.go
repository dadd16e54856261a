package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/user/socialmedia-go/apperror"
)

type stubAuthService struct {
	resp *TokenResponse
	err  error
	got  LoginRequest
}

func (s *stubAuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	s.got = req
	return s.resp, s.err
}

func postLoginForm(handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleLoginSuccess(t *testing.T) {
	stub := &stubAuthService{resp: &TokenResponse{AccessToken: "tok", TokenType: "bearer"}}
	handler := NewHandlers(stub).HandleLogin()

	rec := postLoginForm(handler, url.Values{
		"username": {"jessica@gmail.com"},
		"password": {"!Jessica123"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TokenType != "bearer" || resp.AccessToken != "tok" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if stub.got.Username != "jessica@gmail.com" {
		t.Errorf("service saw username %q", stub.got.Username)
	}
}

func TestHandleLoginMissingFields(t *testing.T) {
	handler := NewHandlers(&stubAuthService{}).HandleLogin()

	rec := postLoginForm(handler, url.Values{"username": {"jessica@gmail.com"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleLoginBadCredentials(t *testing.T) {
	stub := &stubAuthService{err: apperror.NewUnauthorizedError("Invalid Credentials.", nil)}
	handler := NewHandlers(stub).HandleLogin()

	rec := postLoginForm(handler, url.Values{
		"username": {"jessica@gmail.com"},
		"password": {"wrong"},
	})

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	var resp apperror.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Detail != "Invalid Credentials." {
		t.Errorf("detail = %q", resp.Detail)
	}
}
