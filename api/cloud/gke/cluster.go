package gke

import (
	"context"

	provisioner "github.com/nukefromorbit/provisioner/api"
	cloudErrors "github.com/nukefromorbit/provisioner/api/cloud/errors"
	"github.com/rs/zerolog/log"
)

// CreateCluster submits the creation of a load test cluster and returns the
// name of the operation tracking it.
func CreateCluster(ctx context.Context, client ClusterManager, spec provisioner.ClusterSpec) (string, error) {
	req, err := NewCreateClusterRequest(spec)
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("project", spec.Project).
		Str("zone", spec.Zone).
		Str("cluster", spec.Name).
		Int("node_count", spec.NodeCount).
		Str("machine_type", spec.MachineType).
		Msg("creating cluster")

	op, err := client.CreateCluster(ctx, req.Parent, req)
	if err != nil {
		return "", cloudErrors.NewErrRemoteAPI(cloudErrors.ProviderGKE, err)
	}

	return op.Name, nil
}

// DeleteCluster submits the deletion of a cluster and returns the name of the
// operation tracking it.
func DeleteCluster(ctx context.Context, client ClusterManager, name, project, zone string) (string, error) {
	log.Debug().
		Str("project", project).
		Str("zone", zone).
		Str("cluster", name).
		Msg("deleting cluster")

	op, err := client.DeleteCluster(ctx, ClusterPath(name, project, zone))
	if err != nil {
		return "", cloudErrors.NewErrRemoteAPI(cloudErrors.ProviderGKE, err)
	}

	return op.Name, nil
}

// FetchCredentials reads the cluster descriptor and returns the CA
// certificate and API endpoint needed to talk to the cluster. Both are empty
// until the control plane has been provisioned, which is reported as an
// ErrNotReady.
func FetchCredentials(ctx context.Context, client ClusterManager, name, project, zone string) (*provisioner.ClusterCredentials, error) {
	log.Debug().
		Str("project", project).
		Str("zone", zone).
		Str("cluster", name).
		Msg("fetching cluster")

	cluster, err := client.GetCluster(ctx, ClusterPath(name, project, zone))
	if err != nil {
		return nil, cloudErrors.NewErrRemoteAPI(cloudErrors.ProviderGKE, err)
	}

	creds := &provisioner.ClusterCredentials{
		Endpoint: cluster.Endpoint,
	}
	if cluster.MasterAuth != nil {
		creds.CACert = cluster.MasterAuth.ClusterCaCertificate
	}

	if creds.Endpoint == "" || creds.CACert == "" {
		return nil, cloudErrors.NewErrNotReady("cluster "+name, cluster.Status)
	}

	return creds, nil
}
