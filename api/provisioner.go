package provisioner

import "path/filepath"

const (
	// Version is the version of the provisioner
	Version = "1.0.0"

	// NodePoolName is the name of the single node pool every load test
	// cluster is created with.
	NodePoolName = "load-test-pool"
	// CloudPlatformScope is the only OAuth scope granted to cluster nodes.
	CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
	// ReleaseChannel is the GKE release channel clusters are enrolled in.
	ReleaseChannel = "REGULAR"

	// KubeconfigFileName is both the template file name inside the template
	// directory and the rendered file name inside the rendered directory.
	KubeconfigFileName = "kubeconfig.yaml"
	// DefaultTemplateDir and DefaultRenderedDir are the directory names used
	// when no explicit location is configured.
	DefaultTemplateDir = "templates"
	DefaultRenderedDir = "rendered"
)

type (
	// AddressRequest identifies a global static IP address.
	AddressRequest struct {
		Name    string
		Project string
	}

	// OperationStatus is the status of a Compute Engine operation.
	OperationStatus string

	// ClusterOperationStatus is the status of a GKE long-running operation as
	// reported by the cluster manager API. No normalization is applied.
	ClusterOperationStatus struct {
		// Status is the operation status name. DONE once the operation has
		// completed.
		Status string `json:"status"`
		// Detail holds the diagnostic text attached to the operation.
		Detail string `json:"detail"`
	}

	// ClusterSpec fully determines a cluster creation request.
	ClusterSpec struct {
		Name        string `validate:"required"`
		Project     string `validate:"required"`
		Zone        string `validate:"required"`
		NodeCount   int    `validate:"min=1"`
		MachineType string `validate:"required"`
	}

	// ClusterCredentials are the values pulled from a cluster descriptor to
	// render a kubeconfig.
	ClusterCredentials struct {
		CACert   string
		Endpoint string
	}

	// KubeconfigPaths locates the kubeconfig template and the directory the
	// rendered file is written to.
	KubeconfigPaths struct {
		TemplateDir string
		RenderedDir string
	}

	// CLIFlags represents the command line flags and the selected command.
	CLIFlags struct {
		Command           string
		Project           *string
		Credentials       *string
		CredentialsBase64 *string
		EnvFile           *string
		LogLevel          *string
		TemplateDir       *string
		RenderedDir       *string

		// Positional argument of the selected command: a resource name or an
		// operation name.
		Target *string

		Zone        *string
		NodeCount   *int
		MachineType *string
	}

	// CLIService represents a service for managing CLI
	CLIService interface {
		ParseFlags(version string) (*CLIFlags, error)
		ValidateFlags(flags *CLIFlags) error
	}
)

const (
	OperationPending OperationStatus = "PENDING"
	OperationRunning OperationStatus = "RUNNING"
	OperationDone    OperationStatus = "DONE"
)

// ClusterDone is the GKE operation status name reported on completion.
const ClusterDone = "DONE"

// Done reports whether the cluster operation has completed.
func (s ClusterOperationStatus) Done() bool {
	return s.Status == ClusterDone
}

// NewKubeconfigPaths returns the conventional templates/ and rendered/
// directories beside each other under baseDir.
func NewKubeconfigPaths(baseDir string) KubeconfigPaths {
	return KubeconfigPaths{
		TemplateDir: filepath.Join(baseDir, DefaultTemplateDir),
		RenderedDir: filepath.Join(baseDir, DefaultRenderedDir),
	}
}
