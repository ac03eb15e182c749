package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
)

func TestMapUpstreamError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found sentinel", models.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("GET /v2.0/networks/x returned 404: %w", models.ErrNotFound), http.StatusNotFound},
		{"missing project scope", models.ErrNoProject, http.StatusUnauthorized},
		{"upstream 4xx propagated", models.NewServiceError(http.StatusConflict, "", "conflict"), http.StatusConflict},
		{"upstream 5xx becomes 502", models.NewServiceError(http.StatusInternalServerError, "", "boom"), http.StatusBadGateway},
		{"network failure becomes 502", errors.New("connection refused"), http.StatusBadGateway},
	}

	for _, tc := range cases {
		apiErr := MapUpstreamError(tc.err, "/api/test")
		if apiErr.Status != tc.want {
			t.Errorf("%s: got status %d, want %d", tc.name, apiErr.Status, tc.want)
		}
		if apiErr.Instance != "/api/test" {
			t.Errorf("%s: got instance %q", tc.name, apiErr.Instance)
		}
	}
}
