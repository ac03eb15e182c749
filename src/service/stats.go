package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
	"github.com/Jaeki-Lee/mini-cloud/src/openstack"
)

// StatsService aggregates instance and image counts for the dashboard
// landing page. The instance fetch is load-bearing and surfaces its error;
// the image counts degrade to zero when Glance is unreachable.
type StatsService struct {
	compute *openstack.ComputeClient
	image   *openstack.ImageClient
	log     *logrus.Logger
}

func NewStatsService(compute *openstack.ComputeClient, image *openstack.ImageClient, log *logrus.Logger) *StatsService {
	return &StatsService{
		compute: compute,
		image:   image,
		log:     log,
	}
}

// Stats computes the dashboard counters for the session's project.
func (s *StatsService) Stats(ctx context.Context, sess models.Session) (models.DashboardStats, error) {
	if sess.ProjectID == "" {
		return models.DashboardStats{}, models.ErrNoProject
	}

	instances, err := s.compute.ListServers(ctx, sess.Token, sess.ProjectID)
	if err != nil {
		s.log.WithError(err).Error("Failed to fetch instances for stats")
		return models.DashboardStats{}, err
	}

	var images []models.Image
	images, err = s.image.ListImages(ctx, sess.Token)
	if err != nil {
		s.log.WithError(err).Warn("Failed to fetch images for stats, counting zero")
		images = nil
	}

	stats := models.DashboardStats{
		TotalInstances: len(instances.Instances),
		TotalImages:    len(images),
	}
	for _, inst := range instances.Instances {
		if strings.EqualFold(inst.Status, "ACTIVE") {
			stats.RunningInstances++
		}
	}
	for _, img := range images {
		if strings.EqualFold(img.Status, "active") {
			stats.ActiveImages++
		}
		if strings.EqualFold(img.Visibility, "public") {
			stats.PublicImages++
		}
	}
	return stats, nil
}
