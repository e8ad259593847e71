package msauth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/cloudcostlabs/m365-gateway/graph"
	"github.com/cloudcostlabs/m365-gateway/internal/config"
	"github.com/cloudcostlabs/m365-gateway/internal/errors"
	"github.com/cloudcostlabs/m365-gateway/msauth"
	"github.com/cloudcostlabs/m365-gateway/msauth/flowstate"
)

const (
	testClientID     = "client-1"
	testClientSecret = "secret-1"
	testRedirectURI  = "http://localhost:3200/auth/callback"
	testAccessToken  = "upstream-access-token"
)

type fakeIdentityProvider struct {
	tokenStatus   int
	profileStatus int
}

// setupFlow stands up a fake token endpoint and Graph API and wires a Flow
// against them.
func setupFlow(t *testing.T, provider fakeIdentityProvider) *msauth.Flow {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "authorization_code", r.FormValue("grant_type"))
		if provider.tokenStatus != 0 {
			w.WriteHeader(provider.tokenStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"` + testAccessToken + `","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("GET /me", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer "+testAccessToken, r.Header.Get("Authorization"))
		if provider.profileStatus != 0 {
			w.WriteHeader(provider.profileStatus)
			return
		}
		_, _ = w.Write([]byte(`{"displayName":"Adele Vance"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	t.Setenv("TENANT_ID", "tenant-1")
	t.Setenv("CLIENT_ID", testClientID)
	t.Setenv("CLIENT_SECRET", testClientSecret)
	t.Setenv("REDIRECT_URI", testRedirectURI)
	t.Setenv("SCOPES", "User.Read Directory.Read.All")

	endpoint := oauth2.Endpoint{
		AuthURL:  srv.URL + "/authorize",
		TokenURL: srv.URL + "/token",
	}
	graphClient := graph.NewClient(srv.URL, time.Second)
	return msauth.NewWithEndpoint(config.New(), endpoint, flowstate.NewInMemoryRepo(), graphClient)
}

// beginLogin runs BeginLogin and returns the parsed redirect URL.
func beginLogin(t *testing.T, flow *msauth.Flow) *url.URL {
	t.Helper()
	authURL, err := flow.BeginLogin()
	require.NoError(t, err)
	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	return parsed
}

func TestBeginLoginBuildsAuthorizeURL(t *testing.T) {
	flow := setupFlow(t, fakeIdentityProvider{})

	query := beginLogin(t, flow).Query()
	require.Equal(t, testClientID, query.Get("client_id"))
	require.Equal(t, "code", query.Get("response_type"))
	require.Equal(t, "query", query.Get("response_mode"))
	require.Equal(t, testRedirectURI, query.Get("redirect_uri"))
	require.Equal(t, "User.Read Directory.Read.All", query.Get("scope"))
	require.NotEmpty(t, query.Get("state"))
}

func TestBeginLoginStatesAreUnpredictable(t *testing.T) {
	flow := setupFlow(t, fakeIdentityProvider{})

	first := beginLogin(t, flow).Query().Get("state")
	second := beginLogin(t, flow).Query().Get("state")
	require.NotEqual(t, first, second)
}

func TestCompleteLogin(t *testing.T) {
	flow := setupFlow(t, fakeIdentityProvider{})
	state := beginLogin(t, flow).Query().Get("state")

	login, err := flow.CompleteLogin(context.Background(), state, "one-time-code")
	require.NoError(t, err)
	require.Equal(t, testAccessToken, login.Token.AccessToken)
	require.Equal(t, "Adele Vance", login.DisplayName)
	require.Positive(t, msauth.CookieMaxAge(login.Token))
}

func TestCompleteLoginMissingCode(t *testing.T) {
	flow := setupFlow(t, fakeIdentityProvider{})
	state := beginLogin(t, flow).Query().Get("state")

	_, err := flow.CompleteLogin(context.Background(), state, "")
	require.ErrorIs(t, err, errors.ErrMissingCode)
}

func TestCompleteLoginRejectsUnknownState(t *testing.T) {
	flow := setupFlow(t, fakeIdentityProvider{})

	_, err := flow.CompleteLogin(context.Background(), "never-issued", "one-time-code")
	require.ErrorIs(t, err, errors.ErrStateMismatch)
}

func TestCompleteLoginStateIsSingleUse(t *testing.T) {
	flow := setupFlow(t, fakeIdentityProvider{})
	state := beginLogin(t, flow).Query().Get("state")

	_, err := flow.CompleteLogin(context.Background(), state, "one-time-code")
	require.NoError(t, err)

	_, err = flow.CompleteLogin(context.Background(), state, "one-time-code")
	require.ErrorIs(t, err, errors.ErrStateMismatch)
}

func TestCompleteLoginTokenExchangeFailure(t *testing.T) {
	flow := setupFlow(t, fakeIdentityProvider{tokenStatus: http.StatusInternalServerError})
	state := beginLogin(t, flow).Query().Get("state")

	_, err := flow.CompleteLogin(context.Background(), state, "one-time-code")
	require.ErrorIs(t, err, errors.ErrTokenExchange)
}

func TestCompleteLoginProfileFetchFailure(t *testing.T) {
	flow := setupFlow(t, fakeIdentityProvider{profileStatus: http.StatusInternalServerError})
	state := beginLogin(t, flow).Query().Get("state")

	_, err := flow.CompleteLogin(context.Background(), state, "one-time-code")
	require.ErrorIs(t, err, errors.ErrProfileFetch)
}
