package session

import (
	"testing"
	"time"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
)

func testSession(id, token string, expiresAt time.Time) models.Session {
	return models.Session{
		ID:        id,
		Token:     token,
		UserID:    "u-1",
		UserName:  "admin",
		ExpiresAt: expiresAt,
	}
}

func TestStorePutGet(t *testing.T) {
	store := NewStore()
	sess := testSession("sid-1", "tok-1", time.Now().Add(time.Hour))
	store.Put(sess)

	got, ok := store.Get("tok-1")
	if !ok {
		t.Fatalf("expected session for token")
	}
	if got.UserName != "admin" {
		t.Fatalf("got user %q, want admin", got.UserName)
	}
	if store.Len() != 1 {
		t.Fatalf("got len %d, want 1", store.Len())
	}
}

func TestStoreGetAbsent(t *testing.T) {
	store := NewStore()
	if _, ok := store.Get("missing"); ok {
		t.Fatalf("expected no session for unknown token")
	}
	if _, ok := store.GetByID("missing"); ok {
		t.Fatalf("expected no session for unknown id")
	}
}

func TestStoreGetByID(t *testing.T) {
	store := NewStore()
	store.Put(testSession("sid-1", "tok-1", time.Now().Add(time.Hour)))

	got, ok := store.GetByID("sid-1")
	if !ok {
		t.Fatalf("expected session for id")
	}
	if got.Token != "tok-1" {
		t.Fatalf("got token %q, want tok-1", got.Token)
	}
}

func TestStoreExpiredEviction(t *testing.T) {
	store := NewStore()
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	store.Put(testSession("sid-1", "tok-1", clock.Add(time.Minute)))

	if _, ok := store.Get("tok-1"); !ok {
		t.Fatalf("session should be live before expiry")
	}

	clock = clock.Add(time.Minute)
	if _, ok := store.Get("tok-1"); ok {
		t.Fatalf("session should be gone at its expiry instant")
	}
	if store.Len() != 0 {
		t.Fatalf("expired session should be evicted, len = %d", store.Len())
	}

	// The cookie index goes with the token entry.
	if _, ok := store.GetByID("sid-1"); ok {
		t.Fatalf("expired session should not resolve by id")
	}
}

func TestStoreRemoveIdempotent(t *testing.T) {
	store := NewStore()
	store.Put(testSession("sid-1", "tok-1", time.Now().Add(time.Hour)))

	store.Remove("tok-1")
	store.Remove("tok-1")
	if store.Len() != 0 {
		t.Fatalf("got len %d after remove, want 0", store.Len())
	}
	if _, ok := store.GetByID("sid-1"); ok {
		t.Fatalf("removed session should not resolve by id")
	}

	store.RemoveByID("sid-1")
}

func TestStoreRemoveByID(t *testing.T) {
	store := NewStore()
	store.Put(testSession("sid-1", "tok-1", time.Now().Add(time.Hour)))

	store.RemoveByID("sid-1")
	if _, ok := store.Get("tok-1"); ok {
		t.Fatalf("RemoveByID should drop the token entry too")
	}
}

func TestStorePutOverwritesToken(t *testing.T) {
	store := NewStore()
	store.Put(testSession("sid-1", "tok-1", time.Now().Add(time.Hour)))
	store.Put(testSession("sid-2", "tok-1", time.Now().Add(2*time.Hour)))

	got, ok := store.Get("tok-1")
	if !ok {
		t.Fatalf("expected session after overwrite")
	}
	if got.ID != "sid-2" {
		t.Fatalf("got id %q, want sid-2", got.ID)
	}
	if store.Len() != 1 {
		t.Fatalf("overwrite should not grow the store, len = %d", store.Len())
	}

	// The superseded cookie id must stop resolving; only the new one works.
	if _, ok := store.GetByID("sid-1"); ok {
		t.Fatalf("stale cookie id should not resolve after overwrite")
	}
	if sess, ok := store.GetByID("sid-2"); !ok || sess.ID != "sid-2" {
		t.Fatalf("new cookie id should resolve to the overwriting session")
	}
}
