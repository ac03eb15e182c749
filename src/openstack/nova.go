package openstack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
)

// powerStateUnknown is the sentinel for servers whose extended status
// attributes are missing from the Nova response.
const powerStateUnknown = "unknown"

// novaServer is the wire shape of a server in Nova's detail responses.
// The OS-EXT-* attributes are optional extensions; absent values are
// coerced to sentinels rather than failing the whole response.
type novaServer struct {
	ID                 string                        `json:"id"`
	Name               string                        `json:"name"`
	Status             string                        `json:"status"`
	PowerState         *int                          `json:"OS-EXT-STS:power_state"`
	VMState            *string                       `json:"OS-EXT-STS:vm_state"`
	TaskState          *string                       `json:"OS-EXT-STS:task_state"`
	Image              imageRef                      `json:"image"`
	Flavor             flavorRef                     `json:"flavor"`
	Created            string                        `json:"created"`
	Updated            string                        `json:"updated"`
	Addresses          map[string][]novaAddress      `json:"addresses"`
	SecurityGroups     []novaSecurityGroup           `json:"security_groups"`
	KeyName            *string                       `json:"key_name"`
	AvailabilityZone   *string                       `json:"OS-EXT-AZ:availability_zone"`
	HostID             *string                       `json:"hostId"`
	HypervisorHostname *string                       `json:"OS-EXT-SRV-ATTR:hypervisor_hostname"`
}

type novaAddress struct {
	Addr string `json:"addr"`
}

type novaSecurityGroup struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type flavorRef struct {
	ID string `json:"id"`
}

// imageRef tolerates both wire forms Nova uses for the image field:
// an object with an id, or an empty string for boot-from-volume servers.
type imageRef struct {
	ID string
}

func (r *imageRef) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || data[0] == '"' {
		return nil
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("unexpected image reference shape: %w", err)
	}
	r.ID = obj.ID
	return nil
}

type novaServerListResponse struct {
	Servers []novaServer `json:"servers"`
}

type novaServerResponse struct {
	Server novaServer `json:"server"`
}

type novaFlavor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	VCPUs    int    `json:"vcpus"`
	RAM      int    `json:"ram"`
	Disk     int    `json:"disk"`
	IsPublic *bool  `json:"os-flavor-access:is_public"`
}

type novaFlavorListResponse struct {
	Flavors []novaFlavor `json:"flavors"`
}

// createServerRequest is the wire shape of a server-create request.
type createServerRequest struct {
	Server createServerBody `json:"server"`
}

type createServerBody struct {
	Name           string              `json:"name"`
	ImageRef       string              `json:"imageRef"`
	FlavorRef      string              `json:"flavorRef"`
	Networks       []serverNetworkRef  `json:"networks,omitempty"`
	KeyName        string              `json:"key_name,omitempty"`
	SecurityGroups []serverSecGroupRef `json:"security_groups,omitempty"`
	UserData       string              `json:"user_data,omitempty"`
}

type serverNetworkRef struct {
	UUID string `json:"uuid"`
}

type serverSecGroupRef struct {
	Name string `json:"name"`
}

// ComputeClient talks to Nova. URLs are project-scoped:
// {base}/v2.1/{projectID}/servers.
type ComputeClient struct {
	client
}

func NewComputeClient(baseURL string, timeout time.Duration) *ComputeClient {
	return &ComputeClient{client: newClient(baseURL, timeout)}
}

// ListServers returns the detail view of every server in the project.
func (c *ComputeClient) ListServers(ctx context.Context, token, projectID string) (models.InstanceList, error) {
	var parsed novaServerListResponse
	path := fmt.Sprintf("/v2.1/%s/servers/detail", projectID)
	if err := c.getJSON(ctx, path, token, &parsed); err != nil {
		return models.InstanceList{}, err
	}

	summaries := make([]models.InstanceSummary, 0, len(parsed.Servers))
	for _, s := range parsed.Servers {
		summaries = append(summaries, s.toSummary())
	}
	return models.InstanceList{Instances: summaries, TotalCount: len(summaries)}, nil
}

// GetServer returns the detail view of a single server.
func (c *ComputeClient) GetServer(ctx context.Context, token, projectID, serverID string) (models.Instance, error) {
	var parsed novaServerResponse
	path := fmt.Sprintf("/v2.1/%s/servers/%s", projectID, serverID)
	if err := c.getJSON(ctx, path, token, &parsed); err != nil {
		return models.Instance{}, err
	}
	return parsed.Server.toInstance(), nil
}

// CreateServer submits a server-create request and returns Nova's view of
// the new server.
func (c *ComputeClient) CreateServer(ctx context.Context, token, projectID string, req models.CreateInstanceRequest) (models.Instance, error) {
	body := createServerRequest{
		Server: createServerBody{
			Name:      req.Name,
			ImageRef:  req.ImageID,
			FlavorRef: req.FlavorID,
			KeyName:   req.KeyName,
			UserData:  req.UserData,
		},
	}
	for _, id := range req.NetworkIDs {
		body.Server.Networks = append(body.Server.Networks, serverNetworkRef{UUID: id})
	}
	for _, name := range req.SecurityGroups {
		body.Server.SecurityGroups = append(body.Server.SecurityGroups, serverSecGroupRef{Name: name})
	}

	path := fmt.Sprintf("/v2.1/%s/servers", projectID)
	resp, respBody, err := c.send(ctx, http.MethodPost, path, token, body)
	if err != nil {
		return models.Instance{}, err
	}
	if err := checkStatus(resp, respBody, "POST "+path); err != nil {
		return models.Instance{}, err
	}

	var parsed novaServerResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return models.Instance{}, fmt.Errorf("failed to unmarshal create-server response: %w", err)
	}
	return parsed.Server.toInstance(), nil
}

// PerformAction issues the lifecycle action against the server. DELETE
// removes the server resource; every other action posts the matching verb
// payload to the action endpoint.
func (c *ComputeClient) PerformAction(ctx context.Context, token, projectID, serverID string, action models.InstanceAction, force bool) error {
	if action == models.ActionDelete {
		return c.deleteServer(ctx, token, projectID, serverID)
	}

	payload, err := actionPayload(action, force)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/v2.1/%s/servers/%s/action", projectID, serverID)
	resp, respBody, err := c.send(ctx, http.MethodPost, path, token, payload)
	if err != nil {
		return err
	}
	return checkStatus(resp, respBody, "POST "+path)
}

func (c *ComputeClient) deleteServer(ctx context.Context, token, projectID, serverID string) error {
	path := fmt.Sprintf("/v2.1/%s/servers/%s", projectID, serverID)
	resp, respBody, err := c.send(ctx, http.MethodDelete, path, token, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, respBody, "DELETE "+path)
}

// ListFlavors returns every flavor visible to the token.
func (c *ComputeClient) ListFlavors(ctx context.Context, token string) ([]models.Flavor, error) {
	var parsed novaFlavorListResponse
	if err := c.getJSON(ctx, "/v2.1/flavors/detail", token, &parsed); err != nil {
		return nil, err
	}

	flavors := make([]models.Flavor, 0, len(parsed.Flavors))
	for _, f := range parsed.Flavors {
		isPublic := true
		if f.IsPublic != nil {
			isPublic = *f.IsPublic
		}
		flavors = append(flavors, models.Flavor{
			ID:       f.ID,
			Name:     f.Name,
			VCPUs:    f.VCPUs,
			RAM:      f.RAM,
			Disk:     f.Disk,
			IsPublic: isPublic,
		})
	}
	return flavors, nil
}

func actionPayload(action models.InstanceAction, force bool) (map[string]any, error) {
	switch action {
	case models.ActionStart:
		return map[string]any{"os-start": nil}, nil
	case models.ActionStop:
		return map[string]any{"os-stop": nil}, nil
	case models.ActionRestart:
		rebootType := "SOFT"
		if force {
			rebootType = "HARD"
		}
		return map[string]any{"reboot": map[string]string{"type": rebootType}}, nil
	case models.ActionPause:
		return map[string]any{"pause": nil}, nil
	case models.ActionUnpause:
		return map[string]any{"unpause": nil}, nil
	case models.ActionSuspend:
		return map[string]any{"suspend": nil}, nil
	case models.ActionResume:
		return map[string]any{"resume": nil}, nil
	}
	return nil, fmt.Errorf("unsupported instance action %q", action)
}

func (s novaServer) toSummary() models.InstanceSummary {
	return models.InstanceSummary{
		ID:         s.ID,
		Name:       s.Name,
		Status:     s.Status,
		PowerState: s.powerState(),
		ImageID:    s.Image.ID,
		FlavorID:   s.Flavor.ID,
		CreatedAt:  parseNovaTime(s.Created),
		Networks:   s.networks(),
	}
}

func (s novaServer) toInstance() models.Instance {
	groups := make([]models.SecurityGroupRef, 0, len(s.SecurityGroups))
	for _, g := range s.SecurityGroups {
		ref := models.SecurityGroupRef{Name: g.Name}
		if g.Description != nil {
			ref.Description = *g.Description
		}
		groups = append(groups, ref)
	}

	return models.Instance{
		ID:                 s.ID,
		Name:               s.Name,
		Status:             s.Status,
		PowerState:         s.powerState(),
		VMState:            stringOr(s.VMState, powerStateUnknown),
		TaskState:          stringOr(s.TaskState, ""),
		ImageID:            s.Image.ID,
		FlavorID:           s.Flavor.ID,
		CreatedAt:          parseNovaTime(s.Created),
		UpdatedAt:          parseNovaTime(s.Updated),
		Networks:           s.networks(),
		SecurityGroups:     groups,
		KeyName:            stringOr(s.KeyName, ""),
		AvailabilityZone:   stringOr(s.AvailabilityZone, powerStateUnknown),
		HostID:             stringOr(s.HostID, ""),
		HypervisorHostname: stringOr(s.HypervisorHostname, ""),
	}
}

func (s novaServer) powerState() string {
	if s.PowerState == nil {
		return powerStateUnknown
	}
	return strconv.Itoa(*s.PowerState)
}

func (s novaServer) networks() map[string][]string {
	networks := make(map[string][]string, len(s.Addresses))
	for name, addrs := range s.Addresses {
		ips := make([]string, 0, len(addrs))
		for _, a := range addrs {
			ips = append(ips, a.Addr)
		}
		networks[name] = ips
	}
	return networks
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

// parseNovaTime decodes Nova's ISO-8601 timestamps. Unparseable values
// fall back to the zero time rather than failing the response.
func parseNovaTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
