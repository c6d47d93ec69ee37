package gce

import (
	"context"
	"net/netip"

	compute "cloud.google.com/go/compute/apiv1"
	"github.com/googleapis/gax-go/v2"
	cloudErrors "github.com/nukefromorbit/provisioner/api/cloud/errors"
	"github.com/rs/zerolog/log"
	computepb "google.golang.org/genproto/googleapis/cloud/compute/v1"
	"google.golang.org/protobuf/proto"
)

// AddressClient is the part of the Compute Engine global addresses API used
// to manage static IPs. *compute.GlobalAddressesClient satisfies it.
type AddressClient interface {
	Insert(ctx context.Context, req *computepb.InsertGlobalAddressRequest, opts ...gax.CallOption) (*compute.Operation, error)
	Delete(ctx context.Context, req *computepb.DeleteGlobalAddressRequest, opts ...gax.CallOption) (*compute.Operation, error)
	Get(ctx context.Context, req *computepb.GetGlobalAddressRequest, opts ...gax.CallOption) (*computepb.Address, error)
}

// CreateGlobalAddress requests a global static IP address suitable for a GKE
// ingress and returns the name of the operation tracking its allocation.
func CreateGlobalAddress(ctx context.Context, client AddressClient, name, project string) (string, error) {
	log.Debug().
		Str("project", project).
		Str("address", name).
		Msg("creating global address")

	// https://cloud.google.com/compute/docs/reference/rest/v1/globalAddresses/insert
	op, err := client.Insert(ctx, &computepb.InsertGlobalAddressRequest{
		Project: project,
		AddressResource: &computepb.Address{
			Name: proto.String(name),
		},
	})
	if err != nil {
		return "", cloudErrors.NewErrRemoteAPI(cloudErrors.ProviderCompute, err)
	}

	return op.Name(), nil
}

// DeleteGlobalAddress releases a global static IP address and returns the name
// of the operation tracking the deletion.
func DeleteGlobalAddress(ctx context.Context, client AddressClient, name, project string) (string, error) {
	log.Debug().
		Str("project", project).
		Str("address", name).
		Msg("deleting global address")

	// https://cloud.google.com/compute/docs/reference/rest/v1/globalAddresses/delete
	op, err := client.Delete(ctx, &computepb.DeleteGlobalAddressRequest{
		Project: project,
		Address: name,
	})
	if err != nil {
		return "", cloudErrors.NewErrRemoteAPI(cloudErrors.ProviderCompute, err)
	}

	return op.Name(), nil
}

// FetchAddressValue returns the IP literal allocated to a global address. The
// address must have finished provisioning, otherwise an ErrNotReady is
// returned.
func FetchAddressValue(ctx context.Context, client AddressClient, name, project string) (string, error) {
	log.Debug().
		Str("project", project).
		Str("address", name).
		Msg("fetching global address")

	// https://cloud.google.com/compute/docs/reference/rest/v1/globalAddresses/get
	address, err := client.Get(ctx, &computepb.GetGlobalAddressRequest{
		Project: project,
		Address: name,
	})
	if err != nil {
		return "", cloudErrors.NewErrRemoteAPI(cloudErrors.ProviderCompute, err)
	}

	if address.GetStatus() == computepb.Address_RESERVING.String() || address.GetAddress() == "" {
		return "", cloudErrors.NewErrNotReady("address "+name, address.GetStatus())
	}

	value := address.GetAddress()
	if _, err := netip.ParseAddr(value); err != nil {
		return "", cloudErrors.NewErrUnexpectedStatus("address %s has an invalid value %q: %v", name, value, err)
	}

	return value, nil
}
