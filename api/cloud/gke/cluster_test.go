package gke

import (
	"context"
	"net/http"
	"testing"

	provisioner "github.com/nukefromorbit/provisioner/api"
	cloudErrors "github.com/nukefromorbit/provisioner/api/cloud/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/container/v1"
	"google.golang.org/api/googleapi"
)

// recordingClusterManager records the requests it receives and answers with
// canned values.
type recordingClusterManager struct {
	parent    string
	create    *container.CreateClusterRequest
	deleted   string
	operation string
	fetched   string

	op      *container.Operation
	cluster *container.Cluster
	err     error
}

func (m *recordingClusterManager) CreateCluster(ctx context.Context, parent string, req *container.CreateClusterRequest) (*container.Operation, error) {
	m.parent = parent
	m.create = req
	return m.op, m.err
}

func (m *recordingClusterManager) DeleteCluster(ctx context.Context, name string) (*container.Operation, error) {
	m.deleted = name
	return m.op, m.err
}

func (m *recordingClusterManager) GetCluster(ctx context.Context, name string) (*container.Cluster, error) {
	m.fetched = name
	return m.cluster, m.err
}

func (m *recordingClusterManager) GetOperation(ctx context.Context, name string) (*container.Operation, error) {
	m.operation = name
	return m.op, m.err
}

func TestCreateCluster(t *testing.T) {
	client := &recordingClusterManager{op: &container.Operation{Name: "operation-1", Status: "RUNNING"}}
	spec := provisioner.ClusterSpec{Name: "lt", Project: "p", Zone: "us-central1-a", NodeCount: 3, MachineType: "e2-standard-4"}

	op, err := CreateCluster(context.Background(), client, spec)
	require.NoError(t, err)
	assert.Equal(t, "operation-1", op)

	assert.Equal(t, "projects/p/locations/us-central1-a", client.parent)
	require.NotNil(t, client.create)
	require.Len(t, client.create.Cluster.NodePools, 1)
	assert.Equal(t, "load-test-pool", client.create.Cluster.NodePools[0].Name)
}

func TestCreateClusterInvalidSpecSkipsRequest(t *testing.T) {
	client := &recordingClusterManager{}

	_, err := CreateCluster(context.Background(), client, provisioner.ClusterSpec{Name: "lt"})

	var invalid *cloudErrors.ErrInvalidSpec
	require.ErrorAs(t, err, &invalid)
	assert.Nil(t, client.create)
	assert.Empty(t, client.parent)
}

func TestCreateClusterRemoteError(t *testing.T) {
	client := &recordingClusterManager{err: &googleapi.Error{Code: http.StatusConflict, Message: "Already exists: projects/p/locations/us-central1-a/clusters/lt."}}
	spec := provisioner.ClusterSpec{Name: "lt", Project: "p", Zone: "us-central1-a", NodeCount: 3, MachineType: "e2-standard-4"}

	_, err := CreateCluster(context.Background(), client, spec)

	var remote *cloudErrors.ErrRemoteAPI
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, cloudErrors.ProviderGKE, remote.Provider)
	assert.Equal(t, http.StatusConflict, remote.Code)
}

func TestDeleteCluster(t *testing.T) {
	client := &recordingClusterManager{op: &container.Operation{Name: "operation-2"}}

	op, err := DeleteCluster(context.Background(), client, "lt", "p", "us-central1-a")
	require.NoError(t, err)
	assert.Equal(t, "operation-2", op)
	assert.Equal(t, "projects/p/locations/us-central1-a/clusters/lt", client.deleted)
}

func TestDeleteClusterNotFound(t *testing.T) {
	client := &recordingClusterManager{err: &googleapi.Error{Code: http.StatusNotFound}}

	_, err := DeleteCluster(context.Background(), client, "lt", "p", "us-central1-a")
	assert.True(t, cloudErrors.IsNotFound(err))
}

func TestGetOperationStatus(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		want      string
	}{
		{"short name", "operation-1", "projects/p/locations/us-central1-a/operations/operation-1"},
		{"full name", "projects/p/locations/us-central1-a/operations/operation-1", "projects/p/locations/us-central1-a/operations/operation-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &recordingClusterManager{op: &container.Operation{
				Name:   "operation-1",
				Status: "ABORTING",
				Detail: "node pool creation was cancelled",
			}}

			status, err := GetOperationStatus(context.Background(), client, tt.operation, "p", "us-central1-a")
			require.NoError(t, err)
			assert.Equal(t, tt.want, client.operation)

			// Statuses are passed through untouched.
			assert.Equal(t, "ABORTING", status.Status)
			assert.Equal(t, "node pool creation was cancelled", status.Detail)
			assert.False(t, status.Done())
		})
	}
}

func TestFetchCredentialsNotReady(t *testing.T) {
	client := &recordingClusterManager{cluster: &container.Cluster{Name: "lt", Status: "PROVISIONING"}}

	creds, err := FetchCredentials(context.Background(), client, "lt", "p", "us-central1-a")
	assert.Nil(t, creds)
	assert.True(t, cloudErrors.IsNotReady(err))
	assert.Equal(t, "projects/p/locations/us-central1-a/clusters/lt", client.fetched)
}
