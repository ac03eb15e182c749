package openstack

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
)

func TestListNetworksProjectFilter(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2.0/networks" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{
			"networks": [
				{
					"id": "net-1",
					"name": "private",
					"admin_state_up": true,
					"status": "ACTIVE",
					"shared": false,
					"router:external": false,
					"project_id": "p-1",
					"subnets": ["sub-1"]
				}
			]
		}`))
	}))
	defer srv.Close()

	c := NewNetworkClient(srv.URL, time.Second)
	networks, err := c.ListNetworks(context.Background(), "tok-abc", "p-1")
	if err != nil {
		t.Fatalf("ListNetworks: %v", err)
	}
	if gotQuery != "project_id=p-1" {
		t.Fatalf("got query %q, want project_id=p-1", gotQuery)
	}
	if len(networks) != 1 || networks[0].Name != "private" || !networks[0].AdminStateUp {
		t.Fatalf("unexpected networks: %+v", networks)
	}

	if _, err := c.ListNetworks(context.Background(), "tok-abc", ""); err != nil {
		t.Fatalf("ListNetworks unscoped: %v", err)
	}
	if gotQuery != "" {
		t.Fatalf("unscoped list should not filter, got query %q", gotQuery)
	}
}

func TestGetNetworkNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"NeutronError": {"type": "NetworkNotFound", "message": "Network missing could not be found."}}`))
	}))
	defer srv.Close()

	c := NewNetworkClient(srv.URL, time.Second)
	_, err := c.GetNetwork(context.Background(), "tok-abc", "missing")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestGetSecurityGroup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2.0/security-groups/sg-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"security_group": {
				"id": "sg-1",
				"name": "default",
				"description": "Default security group",
				"project_id": "p-1",
				"security_group_rules": [
					{
						"id": "rule-1",
						"direction": "ingress",
						"ethertype": "IPv4",
						"protocol": "tcp",
						"port_range_min": 22,
						"port_range_max": 22,
						"remote_ip_prefix": "0.0.0.0/0",
						"security_group_id": "sg-1"
					},
					{
						"id": "rule-2",
						"direction": "egress",
						"ethertype": "IPv4",
						"protocol": null,
						"port_range_min": null,
						"port_range_max": null,
						"security_group_id": "sg-1"
					}
				]
			}
		}`))
	}))
	defer srv.Close()

	c := NewNetworkClient(srv.URL, time.Second)
	group, err := c.GetSecurityGroup(context.Background(), "tok-abc", "sg-1")
	if err != nil {
		t.Fatalf("GetSecurityGroup: %v", err)
	}
	if len(group.Rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(group.Rules))
	}

	ssh := group.Rules[0]
	if ssh.Protocol != "tcp" || ssh.PortRangeMin == nil || *ssh.PortRangeMin != 22 {
		t.Fatalf("unexpected ssh rule: %+v", ssh)
	}
	// Null protocol and port range mean "any"; the nils must survive mapping.
	egress := group.Rules[1]
	if egress.Protocol != "" || egress.PortRangeMin != nil || egress.PortRangeMax != nil {
		t.Fatalf("unexpected egress rule: %+v", egress)
	}
}

func TestUpstreamServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("neutron is down"))
	}))
	defer srv.Close()

	c := NewNetworkClient(srv.URL, time.Second)
	_, err := c.ListSecurityGroups(context.Background(), "tok-abc", "")
	if err == nil {
		t.Fatalf("expected error from 503 upstream")
	}
	var svcErr *models.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %T: %v", err, err)
	}
	if svcErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("got status %d, want 503", svcErr.StatusCode)
	}
}
