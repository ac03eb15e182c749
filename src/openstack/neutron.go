package openstack

import (
	"context"
	"net/url"
	"time"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
)

// neutronNetwork is the wire shape of a Neutron network.
type neutronNetwork struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	AdminStateUp   bool     `json:"admin_state_up"`
	Status         string   `json:"status"`
	Shared         bool     `json:"shared"`
	RouterExternal bool     `json:"router:external"`
	TenantID       string   `json:"tenant_id"`
	ProjectID      string   `json:"project_id"`
	Subnets        []string `json:"subnets"`
	Description    string   `json:"description"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

type neutronNetworkListResponse struct {
	Networks []neutronNetwork `json:"networks"`
}

type neutronNetworkResponse struct {
	Network neutronNetwork `json:"network"`
}

type neutronSecurityGroup struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	TenantID    string                     `json:"tenant_id"`
	ProjectID   string                     `json:"project_id"`
	Rules       []neutronSecurityGroupRule `json:"security_group_rules"`
	CreatedAt   string                     `json:"created_at"`
	UpdatedAt   string                     `json:"updated_at"`
}

type neutronSecurityGroupRule struct {
	ID              string  `json:"id"`
	Direction       string  `json:"direction"`
	EtherType       string  `json:"ethertype"`
	Protocol        *string `json:"protocol"`
	PortRangeMin    *int    `json:"port_range_min"`
	PortRangeMax    *int    `json:"port_range_max"`
	RemoteIPPrefix  *string `json:"remote_ip_prefix"`
	RemoteGroupID   *string `json:"remote_group_id"`
	SecurityGroupID string  `json:"security_group_id"`
	TenantID        string  `json:"tenant_id"`
	ProjectID       string  `json:"project_id"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type neutronSecurityGroupListResponse struct {
	SecurityGroups []neutronSecurityGroup `json:"security_groups"`
}

type neutronSecurityGroupResponse struct {
	SecurityGroup neutronSecurityGroup `json:"security_group"`
}

// NetworkClient talks to Neutron.
type NetworkClient struct {
	client
}

func NewNetworkClient(baseURL string, timeout time.Duration) *NetworkClient {
	return &NetworkClient{client: newClient(baseURL, timeout)}
}

// ListNetworks returns the networks visible to the token. An empty
// projectID returns the full visible set.
func (c *NetworkClient) ListNetworks(ctx context.Context, token, projectID string) ([]models.Network, error) {
	var parsed neutronNetworkListResponse
	path := "/v2.0/networks"
	if projectID != "" {
		path += "?project_id=" + url.QueryEscape(projectID)
	}
	if err := c.getJSON(ctx, path, token, &parsed); err != nil {
		return nil, err
	}

	networks := make([]models.Network, 0, len(parsed.Networks))
	for _, n := range parsed.Networks {
		networks = append(networks, n.toModel())
	}
	return networks, nil
}

// GetNetwork returns a single network, or models.ErrNotFound.
func (c *NetworkClient) GetNetwork(ctx context.Context, token, networkID string) (models.Network, error) {
	var parsed neutronNetworkResponse
	if err := c.getJSON(ctx, "/v2.0/networks/"+networkID, token, &parsed); err != nil {
		return models.Network{}, err
	}
	return parsed.Network.toModel(), nil
}

// ListSecurityGroups returns the security groups visible to the token. An
// empty projectID returns the full visible set.
func (c *NetworkClient) ListSecurityGroups(ctx context.Context, token, projectID string) ([]models.SecurityGroup, error) {
	var parsed neutronSecurityGroupListResponse
	path := "/v2.0/security-groups"
	if projectID != "" {
		path += "?project_id=" + url.QueryEscape(projectID)
	}
	if err := c.getJSON(ctx, path, token, &parsed); err != nil {
		return nil, err
	}

	groups := make([]models.SecurityGroup, 0, len(parsed.SecurityGroups))
	for _, g := range parsed.SecurityGroups {
		groups = append(groups, g.toModel())
	}
	return groups, nil
}

// GetSecurityGroup returns a single security group, or models.ErrNotFound.
func (c *NetworkClient) GetSecurityGroup(ctx context.Context, token, groupID string) (models.SecurityGroup, error) {
	var parsed neutronSecurityGroupResponse
	if err := c.getJSON(ctx, "/v2.0/security-groups/"+groupID, token, &parsed); err != nil {
		return models.SecurityGroup{}, err
	}
	return parsed.SecurityGroup.toModel(), nil
}

func (n neutronNetwork) toModel() models.Network {
	return models.Network{
		ID:             n.ID,
		Name:           n.Name,
		AdminStateUp:   n.AdminStateUp,
		Status:         n.Status,
		Shared:         n.Shared,
		RouterExternal: n.RouterExternal,
		TenantID:       n.TenantID,
		ProjectID:      n.ProjectID,
		Subnets:        n.Subnets,
		Description:    n.Description,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func (g neutronSecurityGroup) toModel() models.SecurityGroup {
	rules := make([]models.SecurityGroupRule, 0, len(g.Rules))
	for _, r := range g.Rules {
		rules = append(rules, models.SecurityGroupRule{
			ID:              r.ID,
			Direction:       r.Direction,
			EtherType:       r.EtherType,
			Protocol:        stringOr(r.Protocol, ""),
			PortRangeMin:    r.PortRangeMin,
			PortRangeMax:    r.PortRangeMax,
			RemoteIPPrefix:  stringOr(r.RemoteIPPrefix, ""),
			RemoteGroupID:   stringOr(r.RemoteGroupID, ""),
			SecurityGroupID: r.SecurityGroupID,
			TenantID:        r.TenantID,
			ProjectID:       r.ProjectID,
			CreatedAt:       r.CreatedAt,
			UpdatedAt:       r.UpdatedAt,
		})
	}

	return models.SecurityGroup{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		TenantID:    g.TenantID,
		ProjectID:   g.ProjectID,
		Rules:       rules,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
