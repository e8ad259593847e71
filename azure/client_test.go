package azure_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cloudcostlabs/m365-gateway/azure"
	"github.com/cloudcostlabs/m365-gateway/internal/errors"
)

const testToken = "test-bearer-token"

func TestListVirtualMachines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/subscriptions/sub-1/providers/Microsoft.Compute/virtualMachines", r.URL.Path)
		require.Equal(t, "2023-03-01", r.URL.Query().Get("api-version"))
		require.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"value":[
			{"id":"/subscriptions/sub-1/resourceGroups/rg-prod/providers/Microsoft.Compute/virtualMachines/web-1",
			 "name":"web-1","location":"westeurope","properties":{"timeCreated":"2024-01-15T10:00:00Z"}},
			{"id":"/subscriptions/sub-1/resourceGroups/rg-dev/providers/Microsoft.Compute/virtualMachines/db-1",
			 "name":"db-1","location":"northeurope","properties":{}}
		]}`))
	}))
	t.Cleanup(srv.Close)

	client := azure.NewClient(srv.URL, time.Second)
	vms, err := client.ListVirtualMachines(context.Background(), testToken, "sub-1")
	require.NoError(t, err)
	require.Equal(t, []azure.VM{
		{Name: "web-1", ResourceGroup: "rg-prod", Location: "westeurope", ProvisioningTime: "2024-01-15T10:00:00Z"},
		{Name: "db-1", ResourceGroup: "rg-dev", Location: "northeurope", ProvisioningTime: "Unknown"},
	}, vms)
}

func TestListVirtualMachinesUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := azure.NewClient(srv.URL, time.Second)
	_, err := client.ListVirtualMachines(context.Background(), testToken, "sub-1")
	require.ErrorIs(t, err, errors.ErrUpstream)
}

func TestListVirtualMachinesTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	client := azure.NewClient(srv.URL, 20*time.Millisecond)
	_, err := client.ListVirtualMachines(context.Background(), testToken, "sub-1")
	require.ErrorIs(t, err, errors.ErrUpstreamTimeout)
}

func TestListVirtualMachinesEmptySubscription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"value":[]}`))
	}))
	t.Cleanup(srv.Close)

	client := azure.NewClient(srv.URL, time.Second)
	vms, err := client.ListVirtualMachines(context.Background(), testToken, "sub-1")
	require.NoError(t, err)
	require.Empty(t, vms)
}
