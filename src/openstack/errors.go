package openstack

import (
	"fmt"
	"net/http"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
)

// checkStatus converts a non-2xx upstream response into a typed error.
// 404 maps to the domain ErrNotFound sentinel so services can distinguish
// "absent resource" from "upstream broken"; everything else keeps the
// upstream status and body in a ServiceError.
func checkStatus(resp *http.Response, body []byte, op string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s returned 404: %w", op, models.ErrNotFound)
	}
	return models.NewServiceError(
		resp.StatusCode,
		string(body),
		fmt.Sprintf("%s returned status %d", op, resp.StatusCode),
	)
}
