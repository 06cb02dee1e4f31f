package backend

import (
	"context"
	"net/http"
	"net/url"
)

// SessionCookie is the cookie the backend uses to track a signed-in user.
const SessionCookie = "session_id"

func (c *Client) Login(ctx context.Context, creds Credentials) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/login", creds, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/logout", nil, nil)
}

// LoggedIn reports whether the jar holds a session cookie for the backend.
func (c *Client) LoggedIn() bool {
	u, err := url.Parse(c.baseURL)
	if err != nil || c.httpClient.Jar == nil {
		return false
	}
	for _, ck := range c.httpClient.Jar.Cookies(u) {
		if ck.Name == SessionCookie && ck.Value != "" {
			return true
		}
	}
	return false
}
