package cloud

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	provisioner "github.com/nukefromorbit/provisioner/api"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// Key is a service account JSON key together with the project it belongs to.
// A zero Key stands for application default credentials.
type Key struct {
	Bytes     []byte
	ProjectID string
}

// ExtractKey decodes a base64 encoded service account key and returns the key
// itself as well as its project ID.
func ExtractKey(apiKey string) (Key, error) {
	var k Key

	bytes, err := base64.StdEncoding.DecodeString(apiKey)
	if err != nil {
		return k, fmt.Errorf("GCP service account key appears to be invalid: %w", err)
	}

	return newKey(bytes)
}

// LoadKey reads a service account JSON keyfile.
func LoadKey(path string) (Key, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Key{}, fmt.Errorf("failed reading keyfile %s: %w", path, err)
	}

	return newKey(bytes)
}

func newKey(src []byte) (Key, error) {
	k := Key{Bytes: src}

	projectID, err := parseProjectID(src)
	if err != nil {
		return k, fmt.Errorf("GCP service account key appears to be invalid: %w", err)
	}
	k.ProjectID = projectID
	return k, nil
}

// ClientOptions resolves the credentials carried by the key, or the
// application default credentials for a zero Key. The project ID is filled
// in from the credentials when the key does not carry one.
func (k *Key) ClientOptions(ctx context.Context) ([]option.ClientOption, error) {
	if len(k.Bytes) == 0 {
		creds, err := google.FindDefaultCredentials(ctx, provisioner.CloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("failed finding default credentials: %w", err)
		}
		if k.ProjectID == "" {
			k.ProjectID = creds.ProjectID
		}
		return []option.ClientOption{option.WithCredentials(creds)}, nil
	}

	creds, err := google.CredentialsFromJSON(ctx, k.Bytes, provisioner.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("failed parsing credentials: %w", err)
	}
	return []option.ClientOption{option.WithCredentials(creds)}, nil
}

// parseProjectID reads a GCP json keyfile and attempts to extract the
// project_id value.
func parseProjectID(src []byte) (string, error) {
	r := bytes.NewReader(src)
	dec := json.NewDecoder(r)

	data := make(map[string]interface{})
	err := dec.Decode(&data)
	if err != nil {
		return "", fmt.Errorf("failed parsing json keyfile: %w", err)
	}

	tmp, ok := data["project_id"]
	if !ok {
		return "", fmt.Errorf("failed finding project_id in keyfile")
	}

	id, ok := tmp.(string)
	if !ok {
		return "", fmt.Errorf("project_id in keyfile is not a string")
	}
	return id, nil
}
