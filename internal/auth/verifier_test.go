package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokeninfoServer(body string, status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestGoogleVerifierAccepts(t *testing.T) {
	srv := newTokeninfoServer(`{
		"aud": "client-123",
		"sub": "g-1",
		"email": "andi@example.org",
		"email_verified": "true",
		"name": "Andi",
		"picture": "https://example.org/andi.png"
	}`, http.StatusOK)
	defer srv.Close()

	v := NewGoogleVerifier(srv.Client(), "client-123")
	v.infoURL = srv.URL

	identity, err := v.Verify(context.Background(), "token")
	require.NoError(t, err)

	assert.Equal(t, "g-1", identity.GoogleID)
	assert.Equal(t, "andi@example.org", identity.Email)
	assert.True(t, identity.EmailVerified)
}

func TestGoogleVerifierRejectsWrongAudience(t *testing.T) {
	srv := newTokeninfoServer(`{"aud": "someone-else", "sub": "g-1"}`, http.StatusOK)
	defer srv.Close()

	v := NewGoogleVerifier(srv.Client(), "client-123")
	v.infoURL = srv.URL

	_, err := v.Verify(context.Background(), "token")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestGoogleVerifierRejectsBadToken(t *testing.T) {
	srv := newTokeninfoServer(`{"error": "invalid_token"}`, http.StatusBadRequest)
	defer srv.Close()

	v := NewGoogleVerifier(srv.Client(), "client-123")
	v.infoURL = srv.URL

	_, err := v.Verify(context.Background(), "token")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestGoogleVerifierUnverifiedEmailFlag(t *testing.T) {
	srv := newTokeninfoServer(`{
		"aud": "client-123",
		"sub": "g-1",
		"email": "andi@example.org",
		"email_verified": "false"
	}`, http.StatusOK)
	defer srv.Close()

	v := NewGoogleVerifier(srv.Client(), "client-123")
	v.infoURL = srv.URL

	identity, err := v.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.False(t, identity.EmailVerified)
}

func TestGoogleVerifierRequiresClientID(t *testing.T) {
	v := NewGoogleVerifier(http.DefaultClient, "")
	_, err := v.Verify(context.Background(), "token")
	assert.Error(t, err)
}
