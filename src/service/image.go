package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
	"github.com/Jaeki-Lee/mini-cloud/src/openstack"
)

// ImageService fronts Glance. The image list is reference data the
// dashboard can render without, so upstream failures degrade to an empty
// list instead of failing the request.
type ImageService struct {
	image *openstack.ImageClient
	log   *logrus.Logger
}

func NewImageService(image *openstack.ImageClient, log *logrus.Logger) *ImageService {
	return &ImageService{
		image: image,
		log:   log,
	}
}

// Images lists the images visible to the session's token.
func (s *ImageService) Images(ctx context.Context, sess models.Session) []models.Image {
	images, err := s.image.ListImages(ctx, sess.Token)
	if err != nil {
		s.log.WithError(err).Warn("Failed to list images, returning empty set")
		return []models.Image{}
	}
	return images
}
