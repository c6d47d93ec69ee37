package gke

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cbroglie/mustache"
	provisioner "github.com/nukefromorbit/provisioner/api"
	cloudErrors "github.com/nukefromorbit/provisioner/api/cloud/errors"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"k8s.io/client-go/tools/clientcmd"
)

// RenderKubeconfig fetches the cluster descriptor and renders the kubeconfig
// template with the cluster name, project, zone, CA certificate and endpoint.
// The result is written to the rendered directory and its absolute path is
// returned.
//
// The write is not atomic: an interrupted write can leave a partial file.
func RenderKubeconfig(ctx context.Context, client ClusterManager, name, project, zone string, paths provisioner.KubeconfigPaths) (string, error) {
	creds, err := FetchCredentials(ctx, client, name, project, zone)
	if err != nil {
		return "", err
	}

	rendered, err := renderKubeconfig(paths.TemplateDir, map[string]string{
		"name":     name,
		"project":  project,
		"zone":     zone,
		"ca_cert":  creds.CACert,
		"endpoint": creds.Endpoint,
	})
	if err != nil {
		return "", err
	}

	renderedPath, err := filepath.Abs(filepath.Join(paths.RenderedDir, provisioner.KubeconfigFileName))
	if err != nil {
		return "", cloudErrors.NewErrIO(err, paths.RenderedDir)
	}

	if err := os.MkdirAll(filepath.Dir(renderedPath), 0o755); err != nil {
		return "", cloudErrors.NewErrIO(err, filepath.Dir(renderedPath))
	}

	// The file grants access to the cluster.
	if err := os.WriteFile(renderedPath, []byte(rendered), 0o600); err != nil {
		return "", cloudErrors.NewErrIO(err, renderedPath)
	}

	log.Info().
		Str("cluster", name).
		Str("path", renderedPath).
		Msg("kubeconfig rendered")

	return renderedPath, nil
}

func renderKubeconfig(templateDir string, values map[string]string) (string, error) {
	templatePath := filepath.Join(templateDir, provisioner.KubeconfigFileName)

	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return "", cloudErrors.NewErrIO(err, templatePath)
	}

	rendered, err := mustache.Render(string(tmpl), values)
	if err != nil {
		return "", errors.Wrap(err, "failed to render kubeconfig template")
	}

	if _, err := clientcmd.Load([]byte(rendered)); err != nil {
		return "", errors.Wrapf(err, "rendered kubeconfig from %s is invalid", templatePath)
	}

	return rendered, nil
}
