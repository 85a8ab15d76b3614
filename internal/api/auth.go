package api

import (
	"context"
	"strings"
)

// AuthAPI is the typed gateway to the identity endpoints. Login and Logout
// only acknowledge with a message; establishing a session is observable
// solely through a subsequent CurrentUser call.
type AuthAPI struct {
	c *Client
}

// NewAuthAPI binds the identity gateway to a transport.
func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

type loginPayload struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

type registerPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with either an email or a username. An identifier
// containing '@' is sent as the email field, anything else as the username
// field; the server accepts exactly one of the two.
func (a *AuthAPI) Login(ctx context.Context, identifier, password string) error {
	payload := loginPayload{Password: password}
	if strings.Contains(identifier, "@") {
		payload.Email = identifier
	} else {
		payload.Username = identifier
	}

	var reply messageResponse
	return a.c.Post(ctx, "/auth/login", payload, &reply)
}

// Register creates an account. It does not establish a session; callers who
// want one must log in afterwards.
func (a *AuthAPI) Register(ctx context.Context, username, email, password string) error {
	payload := registerPayload{Username: username, Email: email, Password: password}

	var reply messageResponse
	return a.c.Post(ctx, "/auth/register", payload, &reply)
}

// Logout invalidates the remote session.
func (a *AuthAPI) Logout(ctx context.Context) error {
	var reply messageResponse
	return a.c.Post(ctx, "/auth/logout", nil, &reply)
}

// CurrentUser returns the identity bound to the session cookie. With no
// valid session it fails with ErrUnauthenticated, which is the normal signal
// for "not logged in" rather than an exceptional condition.
func (a *AuthAPI) CurrentUser(ctx context.Context) (Identity, error) {
	var identity Identity
	if err := a.c.Get(ctx, "/auth/me", &identity); err != nil {
		return Identity{}, err
	}
	return identity, nil
}
