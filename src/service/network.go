package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
	"github.com/Jaeki-Lee/mini-cloud/src/openstack"
)

// NetworkService fronts Neutron for networks and security groups. List
// reads degrade to an empty result when the upstream fails; detail lookups
// surface their error so absent resources stay distinguishable from
// upstream outages.
type NetworkService struct {
	network *openstack.NetworkClient
	log     *logrus.Logger
}

func NewNetworkService(network *openstack.NetworkClient, log *logrus.Logger) *NetworkService {
	return &NetworkService{
		network: network,
		log:     log,
	}
}

// Networks lists the networks visible to the session, filtered to its
// project when one is scoped.
func (s *NetworkService) Networks(ctx context.Context, sess models.Session) []models.Network {
	networks, err := s.network.ListNetworks(ctx, sess.Token, sess.ProjectID)
	if err != nil {
		s.log.WithError(err).Warn("Failed to list networks, returning empty set")
		return []models.Network{}
	}
	return networks
}

// Network returns one network, or models.ErrNotFound.
func (s *NetworkService) Network(ctx context.Context, sess models.Session, networkID string) (models.Network, error) {
	return s.network.GetNetwork(ctx, sess.Token, networkID)
}

// SecurityGroups lists the security groups visible to the session.
func (s *NetworkService) SecurityGroups(ctx context.Context, sess models.Session) []models.SecurityGroup {
	groups, err := s.network.ListSecurityGroups(ctx, sess.Token, sess.ProjectID)
	if err != nil {
		s.log.WithError(err).Warn("Failed to list security groups, returning empty set")
		return []models.SecurityGroup{}
	}
	return groups
}

// SecurityGroup returns one security group, or models.ErrNotFound.
func (s *NetworkService) SecurityGroup(ctx context.Context, sess models.Session, groupID string) (models.SecurityGroup, error) {
	return s.network.GetSecurityGroup(ctx, sess.Token, groupID)
}
