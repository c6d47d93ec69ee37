package main

import (
	"context"
	"fmt"

	provisioner "github.com/nukefromorbit/provisioner/api"
	"github.com/nukefromorbit/provisioner/api/cli"
	"github.com/nukefromorbit/provisioner/api/cloud"
	"github.com/rs/zerolog/log"
)

func initCLI() *provisioner.CLIFlags {
	var cliService provisioner.CLIService = &cli.Service{}
	flags, err := cliService.ParseFlags(provisioner.Version)
	if err != nil {
		log.Fatal().Err(err).Msg("failed parsing flags")
	}

	err = cliService.ValidateFlags(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("failed validating flags")
	}
	return flags
}

func initKey(flags *provisioner.CLIFlags) cloud.Key {
	switch {
	case *flags.Credentials != "":
		key, err := cloud.LoadKey(*flags.Credentials)
		if err != nil {
			log.Fatal().Err(err).Msg("failed loading credentials")
		}
		return key

	case *flags.CredentialsBase64 != "":
		key, err := cloud.ExtractKey(*flags.CredentialsBase64)
		if err != nil {
			log.Fatal().Err(err).Msg("failed decoding credentials")
		}
		return key
	}

	return cloud.Key{}
}

func main() {
	configureLogger()

	flags := initCLI()
	setLoggingLevel(*flags.LogLevel)

	ctx := context.Background()

	key := initKey(flags)
	opts, err := key.ClientOptions(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed resolving credentials")
	}

	project := *flags.Project
	if project == "" {
		project = key.ProjectID
	}
	if project == "" {
		log.Fatal().Msg("no project given and none found in the credentials, use --project")
	}

	clients, err := cloud.NewClients(ctx, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed creating clients")
	}

	out, err := run(ctx, flags, project, facade{
		addresses:  clients.Addresses,
		operations: clients.Operations,
		clusters:   clients.Clusters,
	})
	clients.Close()
	if err != nil {
		log.Fatal().Err(err).Str("command", flags.Command).Msg("command failed")
	}

	fmt.Println(out)
}
