package server

import "net/http"

func (s *Server) initRoutes() {
	// LOGIN
	s.RegisterRouteFunc("GET "+RouteAuthLogin, s.Std(s.LoginHandler()))
	s.RegisterRouteFunc("GET "+RouteAuthCallback, s.Std(s.CallbackHandler()))

	// Directory proxy routes (require the session cookie)
	s.RegisterRouteFunc("GET "+RouteUsers, s.Authed(s.UsersHandler()))
	s.RegisterRouteFunc("PATCH "+RouteUserAccount, s.Authed(s.AccountStatusHandler()))
	s.RegisterRouteFunc("POST "+RouteUserSignOut, s.Authed(s.SignOutHandler()))
	s.RegisterRouteFunc("GET "+RouteGroups, s.Authed(s.GroupsHandler()))

	// Cost tracking
	s.RegisterRouteFunc("GET "+RouteCostTracking, s.Authed(s.CostTrackingHandler()))
	s.RegisterRouteFunc("GET "+RouteAzureVMs, s.Authed(s.AzureVMsHandler()))
	s.RegisterRouteFunc("GET "+RouteLicenseByDepartment, s.Authed(s.LicenseByDepartmentHandler()))
	s.RegisterRouteFunc("GET "+RouteLicenseForecast, s.Authed(s.LicenseForecastHandler()))

	// License optimization
	s.RegisterRouteFunc("GET "+RouteLicenseOptimization, s.Authed(s.LicenseOptimizationHandler()))
	s.RegisterRouteFunc("GET "+RouteRecommendDowngrade, s.Authed(s.RecommendDowngradeHandler()))
	s.RegisterRouteFunc("GET "+RouteTrackUsage, s.Std(s.TrackUsageHandler()))

	// Sample reports (static payloads, no session required)
	s.RegisterRouteFunc("GET "+RouteAutomatedCostControl, s.Std(s.AutomatedCostControlHandler()))
	s.RegisterRouteFunc("GET "+RouteWasteDetection, s.Std(s.WasteDetectionHandler()))
	s.RegisterRouteFunc("GET "+RouteIdleResources, s.Authed(s.IdleResourcesHandler()))
	s.RegisterRouteFunc("GET "+RouteShadowIT, s.Std(s.ShadowITHandler()))
}

// Std applies the baseline middleware chain.
func (s *Server) Std(h http.HandlerFunc) http.HandlerFunc {
	return ChainMiddleware(h, s.LoggingMiddleware, s.RecoverMiddleware)
}

// Authed applies the baseline chain plus the session cookie check.
func (s *Server) Authed(h http.HandlerFunc) http.HandlerFunc {
	return ChainMiddleware(h, s.LoggingMiddleware, s.RecoverMiddleware, s.RequireSession)
}
