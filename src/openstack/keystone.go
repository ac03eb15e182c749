package openstack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
)

// subjectTokenHeader carries the issued token in Keystone's auth response.
// The token is never part of the response body.
const subjectTokenHeader = "X-Subject-Token"

// AuthRequest is the Keystone v3 password-authentication request body.
type AuthRequest struct {
	Auth Auth `json:"auth"`
}

type Auth struct {
	Identity Identity `json:"identity"`
	Scope    *Scope   `json:"scope,omitempty"`
}

type Identity struct {
	Methods  []string `json:"methods"`
	Password Password `json:"password"`
}

type Password struct {
	User PasswordUser `json:"user"`
}

type PasswordUser struct {
	Name     string `json:"name"`
	Domain   Domain `json:"domain"`
	Password string `json:"password"`
}

type Domain struct {
	Name string `json:"name"`
}

type Scope struct {
	Project ScopeProject `json:"project"`
}

type ScopeProject struct {
	Name   string `json:"name"`
	Domain Domain `json:"domain"`
}

// NewPasswordAuthRequest builds a password-method auth request scoped to the
// given project and domain.
func NewPasswordAuthRequest(username, password, project, domain string) AuthRequest {
	d := Domain{Name: domain}
	return AuthRequest{
		Auth: Auth{
			Identity: Identity{
				Methods: []string{"password"},
				Password: Password{
					User: PasswordUser{
						Name:     username,
						Domain:   d,
						Password: password,
					},
				},
			},
			Scope: &Scope{
				Project: ScopeProject{Name: project, Domain: d},
			},
		},
	}
}

// TokenPayload is the identity payload Keystone returns alongside the token.
type TokenPayload struct {
	Methods   []string      `json:"methods"`
	User      TokenUser     `json:"user"`
	Project   *TokenProject `json:"project"`
	Roles     []TokenRole   `json:"roles"`
	ExpiresAt string        `json:"expires_at"`
	IssuedAt  string        `json:"issued_at"`
}

type TokenUser struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Domain TokenDomain `json:"domain"`
}

type TokenProject struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Domain TokenDomain `json:"domain"`
}

type TokenRole struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TokenDomain struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type authResponse struct {
	Token TokenPayload `json:"token"`
}

// IdentityClient talks to Keystone. The base URL includes the API version
// prefix (e.g. http://keystone:5000/v3).
type IdentityClient struct {
	client
}

func NewIdentityClient(baseURL string, timeout time.Duration) *IdentityClient {
	return &IdentityClient{client: newClient(baseURL, timeout)}
}

// Authenticate posts the credentials and returns the issued bearer token
// (from the X-Subject-Token response header) plus the identity payload.
func (c *IdentityClient) Authenticate(ctx context.Context, authReq AuthRequest) (string, TokenPayload, error) {
	resp, body, err := c.send(ctx, http.MethodPost, "/auth/tokens", "", authReq)
	if err != nil {
		return "", TokenPayload{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", TokenPayload{}, models.NewServiceError(
			resp.StatusCode,
			string(body),
			fmt.Sprintf("authentication failed with status %d", resp.StatusCode),
		)
	}

	token := resp.Header.Get(subjectTokenHeader)
	if token == "" {
		return "", TokenPayload{}, fmt.Errorf("no %s header in Keystone response", subjectTokenHeader)
	}

	var parsed authResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", TokenPayload{}, fmt.Errorf("failed to unmarshal Keystone identity payload: %w", err)
	}
	return token, parsed.Token, nil
}

// ValidateToken asks Keystone whether the token is still valid.
func (c *IdentityClient) ValidateToken(ctx context.Context, token string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/tokens", nil)
	if err != nil {
		return false
	}
	req.Header.Set(authTokenHeader, token)
	req.Header.Set(subjectTokenHeader, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
