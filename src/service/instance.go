package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
	"github.com/Jaeki-Lee/mini-cloud/src/openstack"
)

// InstanceService fronts Nova for everything instance- and flavor-shaped.
// Instance operations are project-scoped; failures surface to the handler
// (no empty-result substitution for reads that feed mutations).
type InstanceService struct {
	compute *openstack.ComputeClient
	log     *logrus.Logger
}

func NewInstanceService(compute *openstack.ComputeClient, log *logrus.Logger) *InstanceService {
	return &InstanceService{
		compute: compute,
		log:     log,
	}
}

// List returns every instance in the session's project.
func (s *InstanceService) List(ctx context.Context, sess models.Session) (models.InstanceList, error) {
	if sess.ProjectID == "" {
		return models.InstanceList{}, models.ErrNoProject
	}
	return s.compute.ListServers(ctx, sess.Token, sess.ProjectID)
}

// Get returns the detail view of one instance.
func (s *InstanceService) Get(ctx context.Context, sess models.Session, instanceID string) (models.Instance, error) {
	if sess.ProjectID == "" {
		return models.Instance{}, models.ErrNoProject
	}
	return s.compute.GetServer(ctx, sess.Token, sess.ProjectID, instanceID)
}

// Create submits an instance-create request.
func (s *InstanceService) Create(ctx context.Context, sess models.Session, req models.CreateInstanceRequest) (models.Instance, error) {
	if sess.ProjectID == "" {
		return models.Instance{}, models.ErrNoProject
	}

	instance, err := s.compute.CreateServer(ctx, sess.Token, sess.ProjectID, req)
	if err != nil {
		s.log.WithError(err).WithField("name", req.Name).Error("Failed to create instance")
		return models.Instance{}, err
	}

	s.log.WithFields(logrus.Fields{
		"instance": instance.ID,
		"name":     instance.Name,
	}).Info("Instance created")
	return instance, nil
}

// PerformAction issues a lifecycle action (or deletion) against an instance.
func (s *InstanceService) PerformAction(ctx context.Context, sess models.Session, instanceID string, action models.InstanceAction, force bool) error {
	if sess.ProjectID == "" {
		return models.ErrNoProject
	}

	if err := s.compute.PerformAction(ctx, sess.Token, sess.ProjectID, instanceID, action, force); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"instance": instanceID,
			"action":   action,
		}).Error("Instance action failed")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"instance": instanceID,
		"action":   action,
	}).Info("Instance action performed")
	return nil
}

// Flavors returns the flavors visible to the session's token.
func (s *InstanceService) Flavors(ctx context.Context, sess models.Session) ([]models.Flavor, error) {
	return s.compute.ListFlavors(ctx, sess.Token)
}
