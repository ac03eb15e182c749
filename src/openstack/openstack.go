// Package openstack contains thin typed HTTP clients for the OpenStack
// services the dashboard talks to: Keystone (identity), Nova (compute),
// Neutron (network) and Glance (image). Each client is stateless; the
// bearer token is supplied per call.
package openstack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const authTokenHeader = "X-Auth-Token"

// client is the shared base for all upstream clients: a base URL plus an
// http.Client with the configured per-call timeout.
type client struct {
	baseURL    string
	httpClient *http.Client
}

func newClient(baseURL string, timeout time.Duration) client {
	return client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// send issues a request against the upstream and returns the response body.
// A nil token skips the auth header (only the Keystone login call does this).
func (c client) send(ctx context.Context, method, path, token string, reqBody any) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(authTokenHeader, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp, respBody, nil
}

// getJSON performs an authenticated GET and decodes a 2xx body into out.
// Non-2xx statuses become a ServiceError via checkStatus at the call site.
func (c client) getJSON(ctx context.Context, path, token string, out any) error {
	resp, body, err := c.send(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	if err := checkStatus(resp, body, "GET "+path); err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response for GET %s: %w", path, err)
	}
	return nil
}
