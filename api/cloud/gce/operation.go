package gce

import (
	"context"

	"github.com/googleapis/gax-go/v2"
	provisioner "github.com/nukefromorbit/provisioner/api"
	cloudErrors "github.com/nukefromorbit/provisioner/api/cloud/errors"
	"github.com/rs/zerolog/log"
	computepb "google.golang.org/genproto/googleapis/cloud/compute/v1"
)

// OperationClient reads global Compute Engine operations.
// *compute.GlobalOperationsClient satisfies it.
type OperationClient interface {
	Get(ctx context.Context, req *computepb.GetGlobalOperationRequest, opts ...gax.CallOption) (*computepb.Operation, error)
}

// GetOperationStatus performs a single read of a global operation. Polling,
// and any backoff between polls, is left to the caller.
func GetOperationStatus(ctx context.Context, client OperationClient, operation, project string) (provisioner.OperationStatus, error) {
	log.Debug().
		Str("project", project).
		Str("operation", operation).
		Msg("reading global operation status")

	// https://cloud.google.com/compute/docs/reference/rest/v1/globalOperations/get
	op, err := client.Get(ctx, &computepb.GetGlobalOperationRequest{
		Project:   project,
		Operation: operation,
	})
	if err != nil {
		return "", cloudErrors.NewErrRemoteAPI(cloudErrors.ProviderCompute, err)
	}

	// Unset and unknown enum values fall through as contract violations.
	status := provisioner.OperationStatus(op.GetStatus().String())
	switch status {
	case provisioner.OperationPending, provisioner.OperationRunning, provisioner.OperationDone:
		return status, nil
	}

	return "", cloudErrors.NewErrUnexpectedStatus("operation %s reported unexpected status %q", operation, op.GetStatus().String())
}
