package gke

import (
	"context"
	"strings"

	provisioner "github.com/nukefromorbit/provisioner/api"
	cloudErrors "github.com/nukefromorbit/provisioner/api/cloud/errors"
	"github.com/rs/zerolog/log"
)

// GetOperationStatus performs a single read of a cluster operation. The
// operation may be given by the short name returned from CreateCluster or
// DeleteCluster, or by its full resource name.
func GetOperationStatus(ctx context.Context, client ClusterManager, operation, project, zone string) (*provisioner.ClusterOperationStatus, error) {
	name := operation
	if !strings.HasPrefix(operation, "projects/") {
		name = OperationPath(operation, project, zone)
	}

	log.Debug().
		Str("operation", name).
		Msg("reading cluster operation status")

	op, err := client.GetOperation(ctx, name)
	if err != nil {
		return nil, cloudErrors.NewErrRemoteAPI(cloudErrors.ProviderGKE, err)
	}

	return &provisioner.ClusterOperationStatus{
		Status: op.Status,
		Detail: op.Detail,
	}, nil
}
