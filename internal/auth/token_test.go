package auth

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(42, LoginTokenTTL)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	userID, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(7, -time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a")
	verifier := NewTokenService("secret-b")

	token, err := issuer.Issue(7, LoginTokenTTL)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalidSignature) {
		t.Errorf("expected ErrTokenInvalidSignature, got %v", err)
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := NewTokenService("test-secret")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(tok); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("token %q: expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}

func TestExtractToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc123", "abc123"},
		{"bearer abc123", "abc123"},
		{"Basic abc123", ""},
		{"abc123", ""},
	}

	for _, tc := range cases {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			r.Header.Set("Authorization", tc.header)
		}
		if got := ExtractToken(r); got != tc.want {
			t.Errorf("header %q: expected %q, got %q", tc.header, tc.want, got)
		}
	}
}
