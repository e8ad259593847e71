package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/cloudcostlabs/m365-gateway/azure"
	"github.com/cloudcostlabs/m365-gateway/finops"
	"github.com/cloudcostlabs/m365-gateway/graph"
	"github.com/cloudcostlabs/m365-gateway/session"
)

// CostTrackingHandler groups license counts by department.
func (s *Server) CostTrackingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, ok := s.fetchUsers(w, r, "Failed to fetch cost data", "displayName", "department", "assignedLicenses")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"costByDept": finops.CostByDepartment(users)})
	}
}

// LicenseByDepartmentHandler reports license usage per department. Same
// bucketing as cost tracking under a different contract key.
func (s *Server) LicenseByDepartmentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, ok := s.fetchUsers(w, r, "Failed to fetch license usage data", "displayName", "department", "assignedLicenses")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"usage": finops.CostByDepartment(users)})
	}
}

// LicenseForecastHandler projects yearly license spend per SKU.
func (s *Server) LicenseForecastHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, ok := s.fetchUsers(w, r, "Failed to fetch license price/usage data", "assignedLicenses")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, finops.Forecast(users, s.config.GetSKUPrices()))
	}
}

// LicenseOptimizationHandler maps each license SKU to its holders.
func (s *Server) LicenseOptimizationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, ok := s.fetchUsers(w, r, "Failed to fetch license data", "displayName", "assignedLicenses", "userPrincipalName")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"licenses": finops.LicensesBySKU(users)})
	}
}

// RecommendDowngradeHandler flags priced licenses held by disabled
// accounts.
func (s *Server) RecommendDowngradeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, ok := s.fetchUsers(w, r, "Failed to fetch license data", "displayName", "userPrincipalName", "accountEnabled", "assignedLicenses")
		if !ok {
			return
		}
		recommendations := finops.RecommendDowngrades(users, s.config.GetSKUPrices())
		writeJSON(w, http.StatusOK, map[string]any{"recommendations": recommendations})
	}
}

// AzureVMsHandler lists the subscription's virtual machines.
func (s *Server) AzureVMsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vms, ok := s.fetchVMs(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"count": len(vms), "vms": vms})
	}
}

// IdleResourcesHandler reports the live VM listing as idle-resource
// candidates. Without instance-view metrics every running VM is a
// candidate, so the contract mirrors the VM listing under the
// waste-detection key.
func (s *Server) IdleResourcesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vms, ok := s.fetchVMs(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"idleResources": len(vms), "vms": vms})
	}
}

// fetchUsers pulls users with the given $select columns, mapping any
// upstream failure to the handler's static 500 message.
func (s *Server) fetchUsers(w http.ResponseWriter, r *http.Request, failMessage string, fields ...string) ([]graph.User, bool) {
	sess, _ := session.FromContext(r.Context())
	users, err := s.graph.ListUsers(r.Context(), sess.Token, fields...)
	if err != nil {
		log.Err(err).Str("path", r.URL.Path).Msg("list users for report")
		writeJSONError(w, failMessage, http.StatusInternalServerError)
		return nil, false
	}
	return users, true
}

func (s *Server) fetchVMs(w http.ResponseWriter, r *http.Request) ([]azure.VM, bool) {
	sess, _ := session.FromContext(r.Context())
	vms, err := s.azure.ListVirtualMachines(r.Context(), sess.Token, s.config.GetSubscriptionID())
	if err != nil {
		log.Err(err).Str("path", r.URL.Path).Msg("list virtual machines")
		writeJSONError(w, "Failed to fetch Azure VM data", http.StatusInternalServerError)
		return nil, false
	}
	if vms == nil {
		vms = []azure.VM{}
	}
	return vms, true
}
