package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
	"github.com/Jaeki-Lee/mini-cloud/src/openstack"
)

const statsNovaBody = `{
	"servers": [
		{"id": "srv-1", "name": "a", "status": "ACTIVE"},
		{"id": "srv-2", "name": "b", "status": "active"},
		{"id": "srv-3", "name": "c", "status": "SHUTOFF"}
	]
}`

const statsGlanceBody = `{
	"images": [
		{"id": "img-1", "name": "u", "status": "active", "visibility": "public"},
		{"id": "img-2", "name": "v", "status": "ACTIVE", "visibility": "private"},
		{"id": "img-3", "name": "w", "status": "queued", "visibility": "public"}
	]
}`

func TestStats(t *testing.T) {
	nova := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statsNovaBody))
	}))
	defer nova.Close()
	glance := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statsGlanceBody))
	}))
	defer glance.Close()

	svc := NewStatsService(
		openstack.NewComputeClient(nova.URL, time.Second),
		openstack.NewImageClient(glance.URL, time.Second),
		testLogger(),
	)

	stats, err := svc.Stats(context.Background(), scopedSession())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	want := models.DashboardStats{
		TotalInstances:   3,
		RunningInstances: 2,
		TotalImages:      3,
		ActiveImages:     2,
		PublicImages:     2,
	}
	if stats != want {
		t.Fatalf("got %+v, want %+v", stats, want)
	}
}

func TestStatsImageOutageDegrades(t *testing.T) {
	nova := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statsNovaBody))
	}))
	defer nova.Close()

	svc := NewStatsService(
		openstack.NewComputeClient(nova.URL, time.Second),
		openstack.NewImageClient("http://127.0.0.1:1", 100*time.Millisecond),
		testLogger(),
	)

	stats, err := svc.Stats(context.Background(), scopedSession())
	if err != nil {
		t.Fatalf("Stats with Glance down: %v", err)
	}
	if stats.TotalInstances != 3 || stats.RunningInstances != 2 {
		t.Fatalf("instance counts should survive a Glance outage: %+v", stats)
	}
	if stats.TotalImages != 0 || stats.ActiveImages != 0 || stats.PublicImages != 0 {
		t.Fatalf("image counts should degrade to zero: %+v", stats)
	}
}

func TestStatsInstanceOutageSurfaces(t *testing.T) {
	glance := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statsGlanceBody))
	}))
	defer glance.Close()

	svc := NewStatsService(
		openstack.NewComputeClient("http://127.0.0.1:1", 100*time.Millisecond),
		openstack.NewImageClient(glance.URL, time.Second),
		testLogger(),
	)

	if _, err := svc.Stats(context.Background(), scopedSession()); err == nil {
		t.Fatalf("expected error when Nova is unreachable")
	}
}

func TestStatsRequiresProject(t *testing.T) {
	svc := NewStatsService(
		openstack.NewComputeClient("http://127.0.0.1:0", time.Second),
		openstack.NewImageClient("http://127.0.0.1:0", time.Second),
		testLogger(),
	)

	sess := models.Session{Token: "tok-abc", ExpiresAt: time.Now().Add(time.Hour)}
	if _, err := svc.Stats(context.Background(), sess); !errors.Is(err, models.ErrNoProject) {
		t.Fatalf("got %v, want ErrNoProject", err)
	}
}
