package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogin_EmailIdentifier(t *testing.T) {
	var gotPath string
	var gotPayload map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		io.WriteString(w, `{"message":"ok"}`)
	})

	auth := NewAuthAPI(c)
	require.NoError(t, auth.Login(context.Background(), "alex@test.com", "secret123"))

	require.Equal(t, "/auth/login", gotPath)
	require.Equal(t, map[string]string{
		"email":    "alex@test.com",
		"password": "secret123",
	}, gotPayload)
}

func TestLogin_UsernameIdentifier(t *testing.T) {
	var gotPayload map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		io.WriteString(w, `{"message":"ok"}`)
	})

	auth := NewAuthAPI(c)
	require.NoError(t, auth.Login(context.Background(), "alex", "secret123"))

	require.Equal(t, map[string]string{
		"username": "alex",
		"password": "secret123",
	}, gotPayload)
}

func TestRegister_SendsAllFields(t *testing.T) {
	var gotPath string
	var gotPayload map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		io.WriteString(w, `{"message":"created"}`)
	})

	auth := NewAuthAPI(c)
	require.NoError(t, auth.Register(context.Background(), "alex", "alex@test.com", "secret123"))

	require.Equal(t, "/auth/register", gotPath)
	require.Equal(t, map[string]string{
		"username": "alex",
		"email":    "alex@test.com",
		"password": "secret123",
	}, gotPayload)
}

func TestLogout_PostsWithoutBody(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		gotBody, _ = io.ReadAll(r.Body)
		io.WriteString(w, `{"message":"bye"}`)
	})

	auth := NewAuthAPI(c)
	require.NoError(t, auth.Logout(context.Background()))

	require.Equal(t, "/auth/logout", gotPath)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Empty(t, gotBody)
}

func TestCurrentUser_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		io.WriteString(w, `{"id":1,"username":"alex"}`)
	})

	auth := NewAuthAPI(c)
	identity, err := auth.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, Identity{ID: 1, Username: "alex"}, identity)
}

func TestCurrentUser_Unauthenticated(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"detail":"Not authenticated"}`)
	})

	auth := NewAuthAPI(c)
	_, err := auth.CurrentUser(context.Background())
	require.ErrorIs(t, err, ErrUnauthenticated)
}
