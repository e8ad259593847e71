package server

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/cloudcostlabs/m365-gateway/internal/errors"
	"github.com/cloudcostlabs/m365-gateway/msauth"
	"github.com/cloudcostlabs/m365-gateway/session"
)

// LoginHandler redirects the browser to the Entra ID authorize endpoint
// with a fresh one-time state.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authURL, err := s.flow.BeginLogin()
		if err != nil {
			log.Err(err).Msg("begin login")
			writeJSONError(w, "Authentication failed.", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, authURL, http.StatusFound)
	}
}

// CallbackHandler completes the code exchange, establishes the cookie
// session, and sends the browser to the dashboard with the caller's
// display name.
func (s *Server) CallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		login, err := s.flow.CompleteLogin(r.Context(), query.Get("state"), query.Get("code"))
		if err != nil {
			switch {
			case errors.Is(err, errors.ErrMissingCode):
				writeJSONError(w, "Missing code parameter.", http.StatusBadRequest)
			case errors.Is(err, errors.ErrStateMismatch):
				log.Warn().Err(err).Msg("callback state rejected")
				writeJSONError(w, "Invalid state parameter.", http.StatusBadRequest)
			default:
				log.Err(err).Msg("oauth callback")
				writeJSONError(w, "Authentication failed.", http.StatusInternalServerError)
			}
			return
		}

		session.Write(w, login.Token.AccessToken, msauth.CookieMaxAge(login.Token))

		// Display name is not secret, but it must be escaped before it
		// lands in a Location header.
		dashboardURL := s.config.GetFrontendURL() + "/dashboard?name=" + url.QueryEscape(login.DisplayName)
		http.Redirect(w, r, dashboardURL, http.StatusFound)
	}
}
