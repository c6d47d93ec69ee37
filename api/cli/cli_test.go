package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddressCommands(t *testing.T) {
	tests := []struct {
		args    []string
		command string
		target  string
	}{
		{[]string{"--project", "p", "address", "create", "ip1"}, CommandAddressCreate, "ip1"},
		{[]string{"--project", "p", "address", "delete", "ip1"}, CommandAddressDelete, "ip1"},
		{[]string{"--project", "p", "address", "status", "operation-1"}, CommandAddressStatus, "operation-1"},
		{[]string{"--project", "p", "address", "fetch", "ip1"}, CommandAddressFetch, "ip1"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			flags, err := Parse("test", tt.args)
			require.NoError(t, err)

			assert.Equal(t, tt.command, flags.Command)
			assert.Equal(t, tt.target, *flags.Target)
			assert.Equal(t, "p", *flags.Project)
			assert.Equal(t, "INFO", *flags.LogLevel)
		})
	}
}

func TestParseClusterCreate(t *testing.T) {
	flags, err := Parse("test", []string{
		"--project", "p", "--log-level", "DEBUG",
		"cluster", "--zone", "us-central1-a",
		"create", "lt", "--node-count", "5", "--machine-type", "e2-standard-8",
	})
	require.NoError(t, err)

	assert.Equal(t, CommandClusterCreate, flags.Command)
	assert.Equal(t, "lt", *flags.Target)
	assert.Equal(t, "us-central1-a", *flags.Zone)
	assert.Equal(t, 5, *flags.NodeCount)
	assert.Equal(t, "e2-standard-8", *flags.MachineType)
	assert.Equal(t, "DEBUG", *flags.LogLevel)
}

func TestParseClusterKubeconfigDefaults(t *testing.T) {
	flags, err := Parse("test", []string{"cluster", "--zone", "us-central1-a", "kubeconfig", "lt"})
	require.NoError(t, err)

	assert.Equal(t, CommandClusterKubeconfig, flags.Command)
	assert.Equal(t, "templates", *flags.TemplateDir)
	assert.Equal(t, "rendered", *flags.RenderedDir)
}

func TestParseClusterRequiresZone(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_ZONE", "")

	_, err := Parse("test", []string{"cluster", "delete", "lt"})
	assert.Error(t, err)
}

func TestParseEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provisioner.env")
	require.NoError(t, os.WriteFile(path, []byte("GOOGLE_CLOUD_PROJECT=from-env-file\nGOOGLE_CLOUD_ZONE=europe-west1-b\n"), 0o600))
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("GOOGLE_CLOUD_ZONE", "")
	os.Unsetenv("GOOGLE_CLOUD_PROJECT")
	os.Unsetenv("GOOGLE_CLOUD_ZONE")

	flags, err := Parse("test", []string{"--env-file", path, "cluster", "--zone", "us-east1-c", "status", "operation-1"})
	require.NoError(t, err)

	assert.Equal(t, "from-env-file", *flags.Project)
	// Explicit flags win over the env file.
	assert.Equal(t, "us-east1-c", *flags.Zone)
}

func TestValidateFlags(t *testing.T) {
	service := &Service{}

	flags, err := Parse("test", []string{"--credentials", "key.json", "--credentials-base64", "e30=", "address", "fetch", "ip1"})
	require.NoError(t, err)
	assert.Error(t, service.ValidateFlags(flags))

	flags, err = Parse("test", []string{"cluster", "--zone", "z", "create", "lt", "--node-count", "0"})
	require.NoError(t, err)
	assert.Error(t, service.ValidateFlags(flags))

	flags, err = Parse("test", []string{"cluster", "--zone", "z", "create", "lt"})
	require.NoError(t, err)
	assert.NoError(t, service.ValidateFlags(flags))
}
