package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes
	RouteAuthLogin    = "/auth/login"
	RouteAuthCallback = "/auth/callback"

	// Directory Routes
	RouteUsers       = "/api/users"
	RouteUserAccount = "/api/users/{id}/account"
	RouteUserSignOut = "/api/users/{id}/signout"
	RouteGroups      = "/api/groups"

	// FinOps Routes - Cost Tracking
	RouteCostTracking        = "/api/finops/cost-tracking"
	RouteAzureVMs            = "/api/finops/cost-tracking/azure-vms"
	RouteLicenseByDepartment = "/api/finops/cost-tracking/license-by-department"
	RouteLicenseForecast     = "/api/finops/cost-tracking/license-forecast"

	// FinOps Routes - License Optimization
	RouteLicenseOptimization = "/api/finops/license-optimization"
	RouteRecommendDowngrade  = "/api/finops/license-optimization/recommend-downgrade"
	RouteTrackUsage          = "/api/finops/license-optimization/track-usage"

	// FinOps Routes - Sample Reports
	RouteAutomatedCostControl = "/api/finops/automated-cost-control"
	RouteWasteDetection       = "/api/finops/waste-detection"
	RouteIdleResources        = "/api/finops/waste-detection/idle-resources"
	RouteShadowIT             = "/api/finops/shadow-it"
)
