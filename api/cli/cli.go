package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	provisioner "github.com/nukefromorbit/provisioner/api"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Service implements the CLIService interface
type Service struct{}

const (
	CommandAddressCreate = "address create"
	CommandAddressDelete = "address delete"
	CommandAddressStatus = "address status"
	CommandAddressFetch  = "address fetch"

	CommandClusterCreate     = "cluster create"
	CommandClusterDelete     = "cluster delete"
	CommandClusterStatus     = "cluster status"
	CommandClusterKubeconfig = "cluster kubeconfig"
)

// ParseFlags parse the CLI flags and return a provisioner.CLIFlags struct
func (*Service) ParseFlags(version string) (*provisioner.CLIFlags, error) {
	return Parse(version, os.Args[1:])
}

// Parse parses args. When --env-file is given the file is loaded into the
// environment and args are parsed a second time so that variables defined in
// it act as flag defaults.
func Parse(version string, args []string) (*provisioner.CLIFlags, error) {
	flags, err := parse(version, args)
	if err != nil {
		return nil, err
	}

	if *flags.EnvFile == "" {
		return flags, nil
	}

	if err := godotenv.Load(*flags.EnvFile); err != nil {
		return nil, fmt.Errorf("failed loading env file %s: %w", *flags.EnvFile, err)
	}

	return parse(version, args)
}

func parse(version string, args []string) (*provisioner.CLIFlags, error) {
	app := kingpin.New("provisioner", "Stands up and tears down GKE load test clusters and their global static IP.")
	app.Version(version)

	flags := &provisioner.CLIFlags{
		Project:           app.Flag("project", "GCP project the resources live in. Defaults to the project of the credentials").Envar("GOOGLE_CLOUD_PROJECT").String(),
		Credentials:       app.Flag("credentials", "Path to a service account JSON key").Envar("GOOGLE_APPLICATION_CREDENTIALS").String(),
		CredentialsBase64: app.Flag("credentials-base64", "Base64 encoded service account JSON key").Envar("GOOGLE_CREDENTIALS_BASE64").String(),
		EnvFile:           app.Flag("env-file", "Dotenv file loaded before flags are resolved").String(),
		LogLevel:          app.Flag("log-level", "Set the log level").Default("INFO").Enum("DEBUG", "INFO", "WARN", "ERROR"),
	}

	targets := map[string]*string{}

	address := app.Command("address", "Manage global static IP addresses.")
	targets[CommandAddressCreate] = address.Command("create", "Create a global address and print the operation name.").
		Arg("name", "Address name").Required().String()
	targets[CommandAddressDelete] = address.Command("delete", "Delete a global address and print the operation name.").
		Arg("name", "Address name").Required().String()
	targets[CommandAddressStatus] = address.Command("status", "Print the status of a global operation: PENDING, RUNNING or DONE.").
		Arg("operation", "Operation name").Required().String()
	targets[CommandAddressFetch] = address.Command("fetch", "Print the IP allocated to a global address.").
		Arg("name", "Address name").Required().String()

	cluster := app.Command("cluster", "Manage load test clusters.")
	flags.Zone = cluster.Flag("zone", "Zone the cluster lives in").Envar("GOOGLE_CLOUD_ZONE").Required().String()

	clusterCreate := cluster.Command("create", "Create a cluster and print the operation name.")
	targets[CommandClusterCreate] = clusterCreate.Arg("name", "Cluster name").Required().String()
	flags.NodeCount = clusterCreate.Flag("node-count", "Number of nodes in the load test pool").Default("3").Int()
	flags.MachineType = clusterCreate.Flag("machine-type", "Machine type of the load test pool nodes").Default("e2-standard-4").String()

	targets[CommandClusterDelete] = cluster.Command("delete", "Delete a cluster and print the operation name.").
		Arg("name", "Cluster name").Required().String()
	targets[CommandClusterStatus] = cluster.Command("status", "Print the status and detail of a cluster operation.").
		Arg("operation", "Operation name").Required().String()

	kubeconfig := cluster.Command("kubeconfig", "Render the kubeconfig of a cluster and print its path.")
	targets[CommandClusterKubeconfig] = kubeconfig.Arg("name", "Cluster name").Required().String()
	flags.TemplateDir = kubeconfig.Flag("template-dir", "Directory holding the kubeconfig.yaml template").Default(provisioner.DefaultTemplateDir).String()
	flags.RenderedDir = kubeconfig.Flag("rendered-dir", "Directory the rendered kubeconfig.yaml is written to").Default(provisioner.DefaultRenderedDir).String()

	command, err := app.Parse(args)
	if err != nil {
		return nil, err
	}

	flags.Command = command
	flags.Target = targets[command]

	return flags, nil
}

// ValidateFlags validates the values of the flags.
func (*Service) ValidateFlags(flags *provisioner.CLIFlags) error {
	if *flags.Credentials != "" && *flags.CredentialsBase64 != "" {
		return fmt.Errorf("only one of --credentials and --credentials-base64 can be used")
	}

	if flags.Command == CommandClusterCreate && *flags.NodeCount < 1 {
		return fmt.Errorf("invalid value for --node-count: %d, must be at least 1", *flags.NodeCount)
	}

	return nil
}
