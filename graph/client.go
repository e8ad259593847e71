// Package graph is a minimal Microsoft Graph client covering the directory
// calls the gateway proxies. Every call takes the caller's bearer token;
// the client holds no credentials of its own.
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cloudcostlabs/m365-gateway/internal/errors"
)

// DefaultBaseURL is the Graph v1.0 endpoint.
const DefaultBaseURL = "https://graph.microsoft.com/v1.0"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Graph client. baseURL may be empty for the production
// endpoint. timeout bounds each call end to end.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Me fetches the profile of the token's owner.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.getJSON(ctx, token, "/me", nil, &user); err != nil {
		return nil, errors.Wrapf(err, "graph.Me")
	}
	return &user, nil
}

// ListUsers fetches directory users. selectFields become the $select query
// so each caller pulls only the columns its report needs.
func (c *Client) ListUsers(ctx context.Context, token string, selectFields ...string) ([]User, error) {
	var query url.Values
	if len(selectFields) > 0 {
		query = url.Values{"$select": []string{strings.Join(selectFields, ",")}}
	}
	var envelope listEnvelope[User]
	if err := c.getJSON(ctx, token, "/users", query, &envelope); err != nil {
		return nil, errors.Wrapf(err, "graph.ListUsers")
	}
	return envelope.Value, nil
}

// SetAccountEnabled enables or disables a user's sign-in.
func (c *Client) SetAccountEnabled(ctx context.Context, token, userID string, enabled bool) error {
	body, err := json.Marshal(map[string]bool{"accountEnabled": enabled})
	if err != nil {
		return errors.Wrapf(err, "graph.SetAccountEnabled marshal")
	}
	path := "/users/" + url.PathEscape(userID)
	if err := c.send(ctx, token, http.MethodPatch, path, body); err != nil {
		return errors.Wrapf(err, "graph.SetAccountEnabled")
	}
	return nil
}

// RevokeSignInSessions invalidates all refresh and session tokens issued to
// the user. Fire and forget: Graph reports acceptance, not termination.
func (c *Client) RevokeSignInSessions(ctx context.Context, token, userID string) error {
	path := "/users/" + url.PathEscape(userID) + "/revokeSignInSessions"
	if err := c.send(ctx, token, http.MethodPost, path, nil); err != nil {
		return errors.Wrapf(err, "graph.RevokeSignInSessions")
	}
	return nil
}

// ListGroups fetches directory groups.
func (c *Client) ListGroups(ctx context.Context, token string) ([]Group, error) {
	var envelope listEnvelope[Group]
	if err := c.getJSON(ctx, token, "/groups", nil, &envelope); err != nil {
		return nil, errors.Wrapf(err, "graph.ListGroups")
	}
	return envelope.Value, nil
}

// ListGroupMembers fetches the members of a single group.
func (c *Client) ListGroupMembers(ctx context.Context, token, groupID string) ([]Member, error) {
	path := "/groups/" + url.PathEscape(groupID) + "/members"
	var envelope listEnvelope[Member]
	if err := c.getJSON(ctx, token, path, nil, &envelope); err != nil {
		return nil, errors.Wrapf(err, "graph.ListGroupMembers %s", groupID)
	}
	return envelope.Value, nil
}

func (c *Client) getJSON(ctx context.Context, token, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrapf(err, "new request %s", path)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return requestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Wrapf(errors.ErrUpstream, "GET %s returned %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(errors.ErrUpstream, "decode %s: %v", path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, token, method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "new request %s", path)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return requestError(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Wrapf(errors.ErrUpstream, "%s %s returned %d", method, path, resp.StatusCode)
	}
	return nil
}

// requestError classifies transport failures, keeping timeouts distinct so
// callers can log them apart from plain upstream failures.
func requestError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return errors.Wrapf(errors.ErrUpstreamTimeout, "%v", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrapf(errors.ErrUpstreamTimeout, "%v", err)
	}
	return fmt.Errorf("%w: %v", errors.ErrUpstream, err)
}
