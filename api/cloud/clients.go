package cloud

import (
	"context"
	"fmt"

	compute "cloud.google.com/go/compute/apiv1"
	"github.com/nukefromorbit/provisioner/api/cloud/gke"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/container/v1"
	"google.golang.org/api/option"
)

// Clients bundles the provider clients the provisioning helpers are called
// with. Credentials are resolved by the caller and passed through as client
// options.
type Clients struct {
	Addresses  *compute.GlobalAddressesClient
	Operations *compute.GlobalOperationsClient
	Clusters   gke.ClusterManager
}

// NewClients creates the Compute Engine and GKE clients.
func NewClients(ctx context.Context, opts ...option.ClientOption) (*Clients, error) {
	addresses, err := compute.NewGlobalAddressesRESTClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed creating global addresses client: %w", err)
	}

	operations, err := compute.NewGlobalOperationsRESTClient(ctx, opts...)
	if err != nil {
		addresses.Close()
		return nil, fmt.Errorf("failed creating global operations client: %w", err)
	}

	containerService, err := container.NewService(ctx, opts...)
	if err != nil {
		addresses.Close()
		operations.Close()
		return nil, fmt.Errorf("failed creating container service: %w", err)
	}

	return &Clients{
		Addresses:  addresses,
		Operations: operations,
		Clusters:   gke.NewClusterManager(containerService),
	}, nil
}

// Close releases the Compute Engine connections. The container service has
// nothing to release.
func (c *Clients) Close() {
	if err := c.Addresses.Close(); err != nil {
		log.Warn().Err(err).Msg("failed closing global addresses client")
	}
	if err := c.Operations.Close(); err != nil {
		log.Warn().Err(err).Msg("failed closing global operations client")
	}
}
