package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
	"github.com/Jaeki-Lee/mini-cloud/src/openstack"
	"github.com/Jaeki-Lee/mini-cloud/src/session"
)

// AuthService orchestrates login against Keystone and owns the session
// lifecycle on top of the session store.
type AuthService struct {
	identity *openstack.IdentityClient
	store    *session.Store
	log      *logrus.Logger
}

func NewAuthService(identity *openstack.IdentityClient, store *session.Store, log *logrus.Logger) *AuthService {
	return &AuthService{
		identity: identity,
		store:    store,
		log:      log,
	}
}

// Login authenticates the credentials against Keystone, stores a session
// keyed by the issued token, and returns the session plus the response the
// frontend renders. Failures come back as an error; the handler maps it to
// a status, it is never raised further.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, models.AuthResponse, error) {
	authReq := openstack.NewPasswordAuthRequest(
		req.Username,
		req.Password,
		resolveProject(req.Project),
		resolveDomain(req.Domain),
	)

	token, payload, err := s.identity.Authenticate(ctx, authReq)
	if err != nil {
		s.log.WithError(err).WithField("username", req.Username).Error("Keystone authentication failed")
		return models.Session{}, models.AuthResponse{
			Success: false,
			Message: "Authentication failed: " + err.Error(),
		}, err
	}

	expiresAt, err := time.Parse(time.RFC3339, payload.ExpiresAt)
	if err != nil {
		s.log.WithError(err).Error("Keystone returned an unparseable token expiry")
		return models.Session{}, models.AuthResponse{
			Success: false,
			Message: "Authentication failed: invalid token expiry from identity service",
		}, fmt.Errorf("failed to parse token expiry %q: %w", payload.ExpiresAt, err)
	}

	sess := models.Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    payload.User.ID,
		UserName:  payload.User.Name,
		ExpiresAt: expiresAt,
	}
	for _, role := range payload.Roles {
		sess.Roles = append(sess.Roles, role.Name)
	}

	user := models.UserInfo{
		ID:     payload.User.ID,
		Name:   payload.User.Name,
		Domain: payload.User.Domain.Name,
		Roles:  sess.Roles,
	}
	if payload.Project != nil {
		sess.ProjectID = payload.Project.ID
		sess.ProjectName = payload.Project.Name
		user.Project = &models.ProjectInfo{
			ID:     payload.Project.ID,
			Name:   payload.Project.Name,
			Domain: payload.Project.Domain.Name,
		}
	}

	sess.Identity = user
	s.store.Put(sess)
	s.log.WithFields(logrus.Fields{
		"user":    sess.UserName,
		"project": sess.ProjectName,
	}).Info("Login successful")

	return sess, models.AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    &user,
	}, nil
}

// Validate resolves a cookie-carried session id to its live session.
func (s *AuthService) Validate(sessionID string) (models.Session, bool) {
	return s.store.GetByID(sessionID)
}

// Logout drops the session behind the cookie-carried id.
func (s *AuthService) Logout(sessionID string) {
	s.store.RemoveByID(sessionID)
}

// resolveProject applies the sample deployment's project fallback: blank
// (empty or whitespace-only) or the literal "default" selects the admin
// project; anything else passes through unchanged. A real deployment would
// make this configurable.
func resolveProject(project string) string {
	if strings.TrimSpace(project) == "" || project == "default" {
		return "admin"
	}
	return project
}

// resolveDomain maps the default domain id to Keystone's display name.
func resolveDomain(domain string) string {
	if domain == "" || domain == "default" {
		return "Default"
	}
	return domain
}
