package models

// Network is the dashboard view of a Neutron network.
type Network struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	AdminStateUp   bool     `json:"adminStateUp"`
	Status         string   `json:"status"`
	Shared         bool     `json:"shared"`
	RouterExternal bool     `json:"routerExternal"`
	TenantID       string   `json:"tenantId"`
	ProjectID      string   `json:"projectId"`
	Subnets        []string `json:"subnets"`
	Description    string   `json:"description,omitempty"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
}

// SecurityGroup is the dashboard view of a Neutron security group.
type SecurityGroup struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	TenantID    string              `json:"tenantId"`
	ProjectID   string              `json:"projectId"`
	Rules       []SecurityGroupRule `json:"securityGroupRules"`
	CreatedAt   string              `json:"createdAt,omitempty"`
	UpdatedAt   string              `json:"updatedAt,omitempty"`
}

// SecurityGroupRule is a single ingress/egress rule of a security group.
type SecurityGroupRule struct {
	ID              string `json:"id"`
	Direction       string `json:"direction"`
	EtherType       string `json:"etherType"`
	Protocol        string `json:"protocol,omitempty"`
	PortRangeMin    *int   `json:"portRangeMin,omitempty"`
	PortRangeMax    *int   `json:"portRangeMax,omitempty"`
	RemoteIPPrefix  string `json:"remoteIpPrefix,omitempty"`
	RemoteGroupID   string `json:"remoteGroupId,omitempty"`
	SecurityGroupID string `json:"securityGroupId"`
	TenantID        string `json:"tenantId"`
	ProjectID       string `json:"projectId"`
	CreatedAt       string `json:"createdAt,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}
