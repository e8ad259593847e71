package config

import "strings"

// AzureConfig exposes the Entra ID app registration and subscription
// settings the gateway authenticates and proxies with.
type AzureConfig interface {
	GetTenantID() string
	GetClientID() string
	GetClientSecret() string
	GetRedirectURI() string
	GetScopes() []string
	GetFrontendURL() string
	GetSubscriptionID() string
}

type Azure struct{}

var _ AzureConfig = Azure{}

func (Azure) GetTenantID() string {
	return GetEnv("TENANT_ID", "common")
}

func (Azure) GetClientID() string {
	return GetEnv("CLIENT_ID", "")
}

func (Azure) GetClientSecret() string {
	return GetEnv("CLIENT_SECRET", "")
}

func (Azure) GetRedirectURI() string {
	return GetEnv("REDIRECT_URI", "http://localhost:3200/auth/callback")
}

// GetScopes returns the space-delimited SCOPES variable as a slice.
func (Azure) GetScopes() []string {
	return strings.Fields(GetEnv("SCOPES", "User.Read"))
}

func (Azure) GetFrontendURL() string {
	return strings.TrimSuffix(GetEnv("FRONTEND_URL", "http://localhost:3000"), "/")
}

func (Azure) GetSubscriptionID() string {
	return GetEnv("AZURE_SUBSCRIPTION_ID", "")
}
