package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/cloudcostlabs/m365-gateway/session"
)

// userSelectFields are the columns every user-facing listing needs.
var userSelectFields = []string{
	"id", "displayName", "userPrincipalName", "department", "accountEnabled", "assignedLicenses",
}

// UsersHandler lists directory users.
func (s *Server) UsersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())
		users, err := s.graph.ListUsers(r.Context(), sess.Token, userSelectFields...)
		if err != nil {
			log.Err(err).Msg("list users")
			writeJSONError(w, "Failed to fetch users", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

type accountStatusRequest struct {
	Enabled *bool `json:"enabled"`
}

// AccountStatusHandler enables or disables a user's account. The body must
// carry a strict boolean; anything else is rejected before any downstream
// call is made.
func (s *Server) AccountStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body accountStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Enabled == nil {
			writeJSONError(w, "Invalid 'enabled' value. Must be true or false.", http.StatusBadRequest)
			return
		}

		sess, _ := session.FromContext(r.Context())
		if err := s.graph.SetAccountEnabled(r.Context(), sess.Token, r.PathValue("id"), *body.Enabled); err != nil {
			log.Err(err).Str("user", r.PathValue("id")).Msg("update account status")
			writeJSONError(w, "Failed to update account status.", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// SignOutHandler revokes the user's sign-in sessions. Fire and forget: the
// upstream's success status is the only confirmation surfaced.
func (s *Server) SignOutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())
		if err := s.graph.RevokeSignInSessions(r.Context(), sess.Token, r.PathValue("id")); err != nil {
			log.Err(err).Str("user", r.PathValue("id")).Msg("revoke sign-in sessions")
			writeJSONError(w, "Failed to sign out user.", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
