package main

import (
	"context"
	"encoding/json"
	"fmt"

	provisioner "github.com/nukefromorbit/provisioner/api"
	"github.com/nukefromorbit/provisioner/api/cli"
	"github.com/nukefromorbit/provisioner/api/cloud/gce"
	"github.com/nukefromorbit/provisioner/api/cloud/gke"
)

type facade struct {
	addresses  gce.AddressClient
	operations gce.OperationClient
	clusters   gke.ClusterManager
}

// run executes the selected command with a single provider call and returns
// what should be printed on stdout.
func run(ctx context.Context, flags *provisioner.CLIFlags, project string, f facade) (string, error) {
	if flags.Target == nil {
		return "", fmt.Errorf("unknown command %q", flags.Command)
	}

	address := provisioner.AddressRequest{Name: *flags.Target, Project: project}

	switch flags.Command {
	case cli.CommandAddressCreate:
		return gce.CreateGlobalAddress(ctx, f.addresses, address.Name, address.Project)

	case cli.CommandAddressDelete:
		return gce.DeleteGlobalAddress(ctx, f.addresses, address.Name, address.Project)

	case cli.CommandAddressStatus:
		status, err := gce.GetOperationStatus(ctx, f.operations, *flags.Target, project)
		return string(status), err

	case cli.CommandAddressFetch:
		return gce.FetchAddressValue(ctx, f.addresses, address.Name, address.Project)

	case cli.CommandClusterCreate:
		return gke.CreateCluster(ctx, f.clusters, provisioner.ClusterSpec{
			Name:        *flags.Target,
			Project:     project,
			Zone:        *flags.Zone,
			NodeCount:   *flags.NodeCount,
			MachineType: *flags.MachineType,
		})

	case cli.CommandClusterDelete:
		return gke.DeleteCluster(ctx, f.clusters, *flags.Target, project, *flags.Zone)

	case cli.CommandClusterStatus:
		status, err := gke.GetOperationStatus(ctx, f.clusters, *flags.Target, project, *flags.Zone)
		if err != nil {
			return "", err
		}
		out, err := json.Marshal(status)
		return string(out), err

	case cli.CommandClusterKubeconfig:
		paths := provisioner.KubeconfigPaths{
			TemplateDir: *flags.TemplateDir,
			RenderedDir: *flags.RenderedDir,
		}
		return gke.RenderKubeconfig(ctx, f.clusters, *flags.Target, project, *flags.Zone, paths)
	}

	return "", fmt.Errorf("unknown command %q", flags.Command)
}
