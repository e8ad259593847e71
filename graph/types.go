package graph

// AssignedLicense is a single license assignment on a directory user.
// Graph reports the SKU GUID on the assignment itself; the part number is
// present only when the caller expanded it, so consumers fall back from
// SKUPartNumber to SKUID.
type AssignedLicense struct {
	SKUID         string `json:"skuId,omitempty"`
	SKUPartNumber string `json:"skuPartNumber,omitempty"`
}

// User is a directory user record. AccountEnabled is a pointer so a user
// fetched without $select=accountEnabled is distinguishable from a
// disabled one.
type User struct {
	ID                string            `json:"id,omitempty"`
	DisplayName       string            `json:"displayName"`
	UserPrincipalName string            `json:"userPrincipalName,omitempty"`
	Department        string            `json:"department,omitempty"`
	AccountEnabled    *bool             `json:"accountEnabled,omitempty"`
	AssignedLicenses  []AssignedLicense `json:"assignedLicenses"`
}

// Group is a directory group. GroupTypes contains "Unified" for Microsoft
// 365 groups and is empty for plain security groups.
type Group struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	GroupTypes  []string `json:"groupTypes"`
}

// Member is a group member as returned by the members endpoint.
type Member struct {
	DisplayName       string `json:"displayName"`
	UserPrincipalName string `json:"userPrincipalName,omitempty"`
}

// listEnvelope is Graph's collection wrapper.
type listEnvelope[T any] struct {
	Value []T `json:"value"`
}
