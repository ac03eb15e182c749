package models

import "time"

// InstanceAction is a lifecycle action the dashboard can request on an
// instance. Every action except DELETE maps to a Nova action-endpoint
// payload; DELETE removes the server resource itself.
type InstanceAction string

const (
	ActionStart   InstanceAction = "START"
	ActionStop    InstanceAction = "STOP"
	ActionRestart InstanceAction = "RESTART"
	ActionPause   InstanceAction = "PAUSE"
	ActionUnpause InstanceAction = "UNPAUSE"
	ActionSuspend InstanceAction = "SUSPEND"
	ActionResume  InstanceAction = "RESUME"
	ActionDelete  InstanceAction = "DELETE"
)

// Valid reports whether the action is one the dashboard knows how to issue.
func (a InstanceAction) Valid() bool {
	switch a {
	case ActionStart, ActionStop, ActionRestart, ActionPause,
		ActionUnpause, ActionSuspend, ActionResume, ActionDelete:
		return true
	}
	return false
}

// CreateInstanceRequest represents the body of an instance-create request.
type CreateInstanceRequest struct {
	Name           string   `json:"name" binding:"required"`
	ImageID        string   `json:"imageId" binding:"required"`
	FlavorID       string   `json:"flavorId" binding:"required"`
	NetworkIDs     []string `json:"networkIds"`
	KeyName        string   `json:"keyName"`
	SecurityGroups []string `json:"securityGroups"`
	UserData       string   `json:"userData"`
}

// InstanceActionRequest represents the body of an instance-action request.
type InstanceActionRequest struct {
	Action InstanceAction `json:"action" binding:"required"`
	Force  bool           `json:"force"`
}

// InstanceActionResponse reports the outcome of an action request.
type InstanceActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Instance is the detail view of a compute instance.
type Instance struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Status             string               `json:"status"`
	PowerState         string               `json:"powerState"`
	VMState            string               `json:"vmState"`
	TaskState          string               `json:"taskState,omitempty"`
	ImageID            string               `json:"imageId,omitempty"`
	FlavorID           string               `json:"flavorId"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
	Networks           map[string][]string  `json:"networks"`
	SecurityGroups     []SecurityGroupRef   `json:"securityGroups"`
	KeyName            string               `json:"keyName,omitempty"`
	AvailabilityZone   string               `json:"availabilityZone"`
	HostID             string               `json:"hostId,omitempty"`
	HypervisorHostname string               `json:"hypervisorHostname,omitempty"`
}

// InstanceSummary is the list view of a compute instance.
type InstanceSummary struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Status     string              `json:"status"`
	PowerState string              `json:"powerState"`
	ImageID    string              `json:"imageId,omitempty"`
	FlavorID   string              `json:"flavorId"`
	CreatedAt  time.Time           `json:"createdAt"`
	Networks   map[string][]string `json:"networks"`
}

// InstanceList wraps the list view with its count.
type InstanceList struct {
	Instances  []InstanceSummary `json:"instances"`
	TotalCount int               `json:"totalCount"`
}

// SecurityGroupRef is the security-group reference Nova attaches to a server.
type SecurityGroupRef struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Flavor is a named compute sizing template.
type Flavor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	VCPUs    int    `json:"vcpus"`
	RAM      int    `json:"ram"`
	Disk     int    `json:"disk"`
	IsPublic bool   `json:"isPublic"`
}
