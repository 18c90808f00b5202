package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPAuthenticator_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/user/login", r.URL.Path)

		var body loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Password != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		json.NewEncoder(w).Encode(loginResponse{Token: "tok", ExpiresIn: 3600, UserID: "user-1"})
	}))
	defer srv.Close()

	auth := NewHTTPAuthenticator(srv.URL)

	creds, err := auth.Login("a@b.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok", creds.Token)
	require.Equal(t, time.Hour, creds.ExpiresIn)
	require.Equal(t, "user-1", creds.UserID)

	_, err = auth.Login("a@b.com", "wrong")
	require.Error(t, err)
}
