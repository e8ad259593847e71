package server

import "net/http"

// Sample report handlers. These mirror the fixed payloads the dashboard's
// remaining FinOps pages render until their upstream integrations exist,
// so the contracts are pinned here rather than in the frontend.

// TrackUsageHandler returns sample per-license activity rows.
func (s *Server) TrackUsageHandler() http.HandlerFunc {
	usage := []map[string]any{
		{"license": "ENTERPRISEPACK", "users": 42, "active": 31},
		{"license": "SPE_E5", "users": 12, "active": 12},
		{"license": "POWER_BI_PRO", "users": 25, "active": 9},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"usage": usage})
	}
}

// AutomatedCostControlHandler returns the placeholder cost-control payload.
func (s *Server) AutomatedCostControlHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"autoShutdowns": nil,
			"budgetAlerts":  nil,
			"policyBlocks":  nil,
			"message":       "Live data integration required",
		})
	}
}

// WasteDetectionHandler returns the placeholder waste summary. The live
// idle-resource listing lives under /waste-detection/idle-resources.
func (s *Server) WasteDetectionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"idleResources":  0,
			"rightSize":      0,
			"spotVsReserved": "",
		})
	}
}

// ShadowITHandler returns the placeholder SaaS spend summary.
func (s *Server) ShadowITHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"unauthorizedApps": 0,
			"teamsVsZoom":      map[string]int{"teams": 0, "zoom": 0},
		})
	}
}
