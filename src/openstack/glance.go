package openstack

import (
	"context"
	"time"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
)

// glanceImage is the wire shape of a Glance v2 image.
type glanceImage struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Status          string  `json:"status"`
	Visibility      string  `json:"visibility"`
	Size            *int64  `json:"size"`
	DiskFormat      *string `json:"disk_format"`
	ContainerFormat *string `json:"container_format"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type glanceImageListResponse struct {
	Images []glanceImage `json:"images"`
}

// ImageClient talks to Glance.
type ImageClient struct {
	client
}

func NewImageClient(baseURL string, timeout time.Duration) *ImageClient {
	return &ImageClient{client: newClient(baseURL, timeout)}
}

// ListImages returns every image visible to the token.
func (c *ImageClient) ListImages(ctx context.Context, token string) ([]models.Image, error) {
	var parsed glanceImageListResponse
	if err := c.getJSON(ctx, "/v2/images", token, &parsed); err != nil {
		return nil, err
	}

	images := make([]models.Image, 0, len(parsed.Images))
	for _, img := range parsed.Images {
		images = append(images, models.Image{
			ID:              img.ID,
			Name:            img.Name,
			Status:          img.Status,
			Visibility:      img.Visibility,
			Size:            img.Size,
			DiskFormat:      stringOr(img.DiskFormat, ""),
			ContainerFormat: stringOr(img.ContainerFormat, ""),
			CreatedAt:       img.CreatedAt,
			UpdatedAt:       img.UpdatedAt,
		})
	}
	return images, nil
}
