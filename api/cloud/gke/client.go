package gke

import (
	"context"

	"google.golang.org/api/container/v1"
)

// ClusterManager is the part of the GKE cluster manager API used to manage
// load test clusters.
type ClusterManager interface {
	CreateCluster(ctx context.Context, parent string, req *container.CreateClusterRequest) (*container.Operation, error)
	DeleteCluster(ctx context.Context, name string) (*container.Operation, error)
	GetCluster(ctx context.Context, name string) (*container.Cluster, error)
	GetOperation(ctx context.Context, name string) (*container.Operation, error)
}

type clusterManager struct {
	locations *container.ProjectsLocationsService
}

// NewClusterManager returns a ClusterManager backed by the container service.
func NewClusterManager(svc *container.Service) ClusterManager {
	return &clusterManager{
		locations: svc.Projects.Locations,
	}
}

func (c *clusterManager) CreateCluster(ctx context.Context, parent string, req *container.CreateClusterRequest) (*container.Operation, error) {
	return c.locations.Clusters.Create(parent, req).Context(ctx).Do()
}

func (c *clusterManager) DeleteCluster(ctx context.Context, name string) (*container.Operation, error) {
	return c.locations.Clusters.Delete(name).Context(ctx).Do()
}

func (c *clusterManager) GetCluster(ctx context.Context, name string) (*container.Cluster, error) {
	return c.locations.Clusters.Get(name).Context(ctx).Do()
}

func (c *clusterManager) GetOperation(ctx context.Context, name string) (*container.Operation, error) {
	return c.locations.Operations.Get(name).Context(ctx).Do()
}
