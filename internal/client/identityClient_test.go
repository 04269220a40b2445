package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khalti-storefront-demo/internal/apperr"
	"khalti-storefront-demo/internal/config"
)

func identityServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestSignInReturnsUser(t *testing.T) {
	srv := identityServer(t, http.StatusOK, `{"email":"jo@example.com"}`)
	defer srv.Close()

	c := NewIdentityClient(&config.Identity{BaseURL: srv.URL, APIKey: "test-key"})

	user, err := c.SignIn(context.Background(), "jo@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jo@example.com", user.Email)
}

func TestProviderErrorsMapToEnumeratedCodes(t *testing.T) {
	cases := []struct {
		status  int
		message string
		want    apperr.AuthErrorCode
	}{
		{http.StatusBadRequest, "EMAIL_EXISTS", apperr.AuthDuplicateAccount},
		{http.StatusBadRequest, "EMAIL_NOT_FOUND", apperr.AuthBadCredentials},
		{http.StatusBadRequest, "INVALID_PASSWORD", apperr.AuthBadCredentials},
		{http.StatusBadRequest, "INVALID_LOGIN_CREDENTIALS", apperr.AuthBadCredentials},
		{http.StatusBadRequest, "TOO_MANY_ATTEMPTS_TRY_LATER : try again", apperr.AuthRateLimited},
		{http.StatusInternalServerError, "SOMETHING_ELSE", apperr.AuthProviderDown},
	}

	for _, tc := range cases {
		srv := identityServer(t, tc.status, `{"error":{"message":"`+tc.message+`"}}`)

		c := NewIdentityClient(&config.Identity{BaseURL: srv.URL, APIKey: "test-key"})
		_, err := c.SignIn(context.Background(), "jo@example.com", "pw")

		var authErr *apperr.AuthError
		require.ErrorAs(t, err, &authErr, "message %s", tc.message)
		assert.Equal(t, tc.want, authErr.Code, "message %s", tc.message)

		srv.Close()
	}
}

func TestUnreachableProviderIsProviderDown(t *testing.T) {
	c := NewIdentityClient(&config.Identity{BaseURL: "http://127.0.0.1:1", APIKey: "test-key"})

	_, err := c.SignUp(context.Background(), "jo@example.com", "pw")

	var authErr *apperr.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apperr.AuthProviderDown, authErr.Code)
}
