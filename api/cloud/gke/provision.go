package gke

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	provisioner "github.com/nukefromorbit/provisioner/api"
	cloudErrors "github.com/nukefromorbit/provisioner/api/cloud/errors"
	"google.golang.org/api/container/v1"
)

var validate = validator.New()

func locationPath(project, zone string) string {
	return fmt.Sprintf("projects/%s/locations/%s", project, zone)
}

// ClusterPath returns the fully qualified resource name of a cluster.
func ClusterPath(name, project, zone string) string {
	return fmt.Sprintf("%s/clusters/%s", locationPath(project, zone), name)
}

// OperationPath returns the fully qualified resource name of a cluster
// operation.
func OperationPath(operation, project, zone string) string {
	return fmt.Sprintf("%s/operations/%s", locationPath(project, zone), operation)
}

// NewCreateClusterRequest builds the creation request for a load test
// cluster: a single node pool sized by the spec, with the cloud-platform
// scope, enrolled in the regular release channel.
func NewCreateClusterRequest(spec provisioner.ClusterSpec) (*container.CreateClusterRequest, error) {
	if err := validate.Struct(spec); err != nil {
		return nil, cloudErrors.NewErrInvalidSpec(err)
	}

	// https://cloud.google.com/kubernetes-engine/docs/reference/rest/v1/projects.locations.clusters#Cluster
	nodePool := container.NodePool{
		Name:             provisioner.NodePoolName,
		InitialNodeCount: int64(spec.NodeCount),
		Config: &container.NodeConfig{
			MachineType: spec.MachineType,
			OauthScopes: []string{provisioner.CloudPlatformScope},
		},
	}

	return &container.CreateClusterRequest{
		Parent: locationPath(spec.Project, spec.Zone),
		Cluster: &container.Cluster{
			Name: spec.Name,
			ReleaseChannel: &container.ReleaseChannel{
				Channel: provisioner.ReleaseChannel,
			},
			NodePools: []*container.NodePool{&nodePool},
		},
	}, nil
}
