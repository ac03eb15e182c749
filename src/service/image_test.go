package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jaeki-Lee/mini-cloud/src/openstack"
)

func TestImagesDegradeToEmpty(t *testing.T) {
	svc := NewImageService(openstack.NewImageClient("http://127.0.0.1:1", 100*time.Millisecond), testLogger())

	images := svc.Images(context.Background(), scopedSession())
	if images == nil || len(images) != 0 {
		t.Fatalf("unreachable Glance should yield an empty list, got %v", images)
	}
}

func TestImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"images": [{"id": "img-1", "name": "ubuntu", "status": "active", "visibility": "public"}]}`))
	}))
	defer srv.Close()

	svc := NewImageService(openstack.NewImageClient(srv.URL, time.Second), testLogger())
	images := svc.Images(context.Background(), scopedSession())
	if len(images) != 1 || images[0].ID != "img-1" {
		t.Fatalf("unexpected images: %+v", images)
	}
}
