// Package msauth runs the OAuth2 authorization-code flow against Entra ID.
// The gateway keeps the whole dance server-side so the bearer token never
// reaches page scripts; the session cookie set by the caller is the only
// artifact that leaves this package.
package msauth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"github.com/cloudcostlabs/m365-gateway/graph"
	"github.com/cloudcostlabs/m365-gateway/internal/config"
	"github.com/cloudcostlabs/m365-gateway/internal/errors"
	"github.com/cloudcostlabs/m365-gateway/msauth/flowstate"
)

// Login is the outcome of a completed code exchange: the token to place in
// the session cookie and the display name for the dashboard redirect.
type Login struct {
	Token       *oauth2.Token
	DisplayName string
}

// Flow drives the three-step redirect flow. States are one-time values:
// generated fresh per BeginLogin, verified and consumed by CompleteLogin.
type Flow struct {
	oauth  *oauth2.Config
	states flowstate.Repo
	graph  *graph.Client
}

// New builds a Flow against the tenant's Entra ID endpoints.
func New(cfg config.AzureConfig, states flowstate.Repo, graphClient *graph.Client) *Flow {
	return NewWithEndpoint(cfg, microsoft.AzureADEndpoint(cfg.GetTenantID()), states, graphClient)
}

// NewWithEndpoint builds a Flow against an explicit OAuth2 endpoint.
func NewWithEndpoint(cfg config.AzureConfig, endpoint oauth2.Endpoint, states flowstate.Repo, graphClient *graph.Client) *Flow {
	return &Flow{
		oauth: &oauth2.Config{
			ClientID:     cfg.GetClientID(),
			ClientSecret: cfg.GetClientSecret(),
			RedirectURL:  cfg.GetRedirectURI(),
			Scopes:       cfg.GetScopes(),
			Endpoint:     endpoint,
		},
		states: states,
		graph:  graphClient,
	}
}

// BeginLogin registers a fresh random state and returns the authorization
// URL to redirect the browser to.
func (f *Flow) BeginLogin() (string, error) {
	state := uuid.NewString()
	if err := f.states.Upsert(state, &flowstate.FlowState{CreatedAt: time.Now()}); err != nil {
		return "", errors.Wrapf(err, "msauth.BeginLogin store state")
	}
	return f.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("response_mode", "query")), nil
}

// CompleteLogin verifies and consumes the state, exchanges the one-time
// code for an access token, and fetches the caller's profile for the
// dashboard greeting.
func (f *Flow) CompleteLogin(ctx context.Context, state, code string) (*Login, error) {
	if code == "" {
		return nil, errors.ErrMissingCode
	}

	if _, err := f.states.Get(state); err != nil {
		return nil, errors.Wrapf(errors.ErrStateMismatch, "state %q: %v", state, err)
	}
	if err := f.states.Delete(state); err != nil {
		return nil, errors.Wrapf(err, "msauth.CompleteLogin consume state")
	}

	token, err := f.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrTokenExchange, "%v", err)
	}

	me, err := f.graph.Me(ctx, token.AccessToken)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrProfileFetch, "%v", err)
	}

	return &Login{Token: token, DisplayName: me.DisplayName}, nil
}

// CookieMaxAge derives the session cookie lifetime from the token expiry.
func CookieMaxAge(token *oauth2.Token) int {
	if token.Expiry.IsZero() {
		return 0
	}
	return int(time.Until(token.Expiry).Seconds())
}
