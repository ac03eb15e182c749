package openstack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestListImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/images" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"images": [
				{
					"id": "img-1",
					"name": "ubuntu-24.04",
					"status": "active",
					"visibility": "public",
					"size": 632291328,
					"disk_format": "qcow2",
					"container_format": "bare"
				},
				{
					"id": "img-2",
					"name": "queued-upload",
					"status": "queued",
					"visibility": "private",
					"size": null,
					"disk_format": null,
					"container_format": null
				}
			]
		}`))
	}))
	defer srv.Close()

	c := NewImageClient(srv.URL, time.Second)
	images, err := c.ListImages(context.Background(), "tok-abc")
	if err != nil {
		t.Fatalf("ListImages: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("got %d images, want 2", len(images))
	}
	if images[0].Size == nil || *images[0].Size != 632291328 {
		t.Fatalf("unexpected size: %+v", images[0].Size)
	}
	// A queued image has no payload yet; nullable fields stay empty.
	if images[1].Size != nil || images[1].DiskFormat != "" {
		t.Fatalf("unexpected queued image: %+v", images[1])
	}
}
