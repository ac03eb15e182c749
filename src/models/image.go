package models

// Image is the dashboard view of a Glance image.
type Image struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	Visibility      string `json:"visibility"`
	Size            *int64 `json:"size,omitempty"`
	DiskFormat      string `json:"diskFormat,omitempty"`
	ContainerFormat string `json:"containerFormat,omitempty"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// DashboardStats aggregates counts over instances and images for the
// dashboard landing page.
type DashboardStats struct {
	TotalInstances   int `json:"totalInstances"`
	RunningInstances int `json:"runningInstances"`
	TotalImages      int `json:"totalImages"`
	ActiveImages     int `json:"activeImages"`
	PublicImages     int `json:"publicImages"`
}
