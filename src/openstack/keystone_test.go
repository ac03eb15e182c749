package openstack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
)

const keystoneTokenBody = `{
	"token": {
		"methods": ["password"],
		"user": {"id": "u-1", "name": "admin", "domain": {"id": "default", "name": "Default"}},
		"project": {"id": "p-1", "name": "admin", "domain": {"id": "default", "name": "Default"}},
		"roles": [{"id": "r-1", "name": "admin"}, {"id": "r-2", "name": "member"}],
		"expires_at": "2026-01-01T13:00:00Z",
		"issued_at": "2026-01-01T12:00:00Z"
	}
}`

func TestAuthenticate(t *testing.T) {
	var gotReq AuthRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/tokens" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode auth request: %v", err)
		}
		w.Header().Set("X-Subject-Token", "tok-abc")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(keystoneTokenBody))
	}))
	defer srv.Close()

	c := NewIdentityClient(srv.URL, time.Second)
	token, payload, err := c.Authenticate(context.Background(), NewPasswordAuthRequest("admin", "secret", "admin", "Default"))
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if token != "tok-abc" {
		t.Fatalf("got token %q, want tok-abc", token)
	}
	if payload.User.Name != "admin" || payload.Project == nil || payload.Project.ID != "p-1" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if len(payload.Roles) != 2 || payload.Roles[0].Name != "admin" {
		t.Fatalf("unexpected roles: %+v", payload.Roles)
	}
	if payload.ExpiresAt != "2026-01-01T13:00:00Z" {
		t.Fatalf("unexpected expiry: %q", payload.ExpiresAt)
	}

	user := gotReq.Auth.Identity.Password.User
	if user.Name != "admin" || user.Password != "secret" || user.Domain.Name != "Default" {
		t.Fatalf("unexpected wire credentials: %+v", user)
	}
	if gotReq.Auth.Scope == nil || gotReq.Auth.Scope.Project.Name != "admin" {
		t.Fatalf("unexpected scope: %+v", gotReq.Auth.Scope)
	}
}

func TestAuthenticateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"code": 401, "message": "The request you have made requires authentication."}}`))
	}))
	defer srv.Close()

	c := NewIdentityClient(srv.URL, time.Second)
	_, _, err := c.Authenticate(context.Background(), NewPasswordAuthRequest("admin", "wrong", "admin", "Default"))
	if err == nil {
		t.Fatalf("expected error from rejected credentials")
	}
	var svcErr *models.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %T: %v", err, err)
	}
	if svcErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", svcErr.StatusCode)
	}
}

func TestAuthenticateMissingTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(keystoneTokenBody))
	}))
	defer srv.Close()

	c := NewIdentityClient(srv.URL, time.Second)
	_, _, err := c.Authenticate(context.Background(), NewPasswordAuthRequest("admin", "secret", "admin", "Default"))
	if err == nil {
		t.Fatalf("expected error when X-Subject-Token is absent")
	}
}

func TestValidateToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth-Token") != "tok-abc" || r.Header.Get("X-Subject-Token") != "tok-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewIdentityClient(srv.URL, time.Second)
	if !c.ValidateToken(context.Background(), "tok-abc") {
		t.Fatalf("expected valid token to validate")
	}
	if c.ValidateToken(context.Background(), "tok-other") {
		t.Fatalf("expected unknown token to be invalid")
	}
}
