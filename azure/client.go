// Package azure is a minimal Azure Resource Manager client for the VM
// listing the cost reports consume.
package azure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cloudcostlabs/m365-gateway/internal/errors"
)

// DefaultBaseURL is the ARM endpoint.
const DefaultBaseURL = "https://management.azure.com"

const computeAPIVersion = "2023-03-01"

// VM is the trimmed-down virtual machine record the dashboard renders.
// ResourceGroup is parsed out of the ARM resource ID; ProvisioningTime
// falls back to "Unknown" when the resource carries no creation timestamp.
type VM struct {
	Name             string `json:"name"`
	ResourceGroup    string `json:"resourceGroup"`
	Location         string `json:"location"`
	ProvisioningTime string `json:"provisioningTime"`
}

type vmResource struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	Properties struct {
		TimeCreated string `json:"timeCreated"`
	} `json:"properties"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an ARM client. baseURL may be empty for the production
// endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListVirtualMachines lists every VM in the subscription.
func (c *Client) ListVirtualMachines(ctx context.Context, token, subscriptionID string) ([]VM, error) {
	endpoint := fmt.Sprintf(
		"%s/subscriptions/%s/providers/Microsoft.Compute/virtualMachines?api-version=%s",
		c.baseURL, url.PathEscape(subscriptionID), computeAPIVersion,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "azure.ListVirtualMachines new request")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if (errors.As(err, &urlErr) && urlErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Wrapf(errors.ErrUpstreamTimeout, "%v", err)
		}
		return nil, errors.Wrapf(errors.ErrUpstream, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(errors.ErrUpstream, "list virtual machines returned %d", resp.StatusCode)
	}

	var envelope struct {
		Value []vmResource `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrapf(errors.ErrUpstream, "decode virtual machines: %v", err)
	}

	vms := make([]VM, 0, len(envelope.Value))
	for _, res := range envelope.Value {
		vms = append(vms, VM{
			Name:             res.Name,
			ResourceGroup:    resourceGroupFromID(res.ID),
			Location:         res.Location,
			ProvisioningTime: provisioningTime(res.Properties.TimeCreated),
		})
	}
	return vms, nil
}

// resourceGroupFromID extracts the resource group segment of an ARM
// resource ID: /subscriptions/{sub}/resourceGroups/{rg}/providers/...
func resourceGroupFromID(id string) string {
	parts := strings.Split(id, "/")
	if len(parts) > 4 && strings.EqualFold(parts[3], "resourceGroups") {
		return parts[4]
	}
	return ""
}

func provisioningTime(timeCreated string) string {
	if timeCreated == "" {
		return "Unknown"
	}
	return timeCreated
}
