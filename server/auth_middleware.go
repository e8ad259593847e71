package server

import (
	"net/http"

	"github.com/cloudcostlabs/m365-gateway/session"
)

// RequireSession reads the session cookie and injects the session into the
// request context. A missing cookie fails here with 401 before any
// downstream call is attempted.
func (s *Server) RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := session.FromRequest(r)
		if err != nil {
			writeJSONError(w, "Unauthorized: Missing token", http.StatusUnauthorized)
			return
		}
		next(w, r.WithContext(session.WithSession(r.Context(), sess)))
	}
}
