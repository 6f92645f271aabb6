package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fivetwenty-io/personio/pkg/personio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(serverURL string, scopes ...string) *ClientCredentialsTokenManager {
	return NewClientCredentialsTokenManager(&ClientCredentialsConfig{
		TokenURL:     serverURL + "/v2/auth/token",
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		Scopes:       scopes,
	})
}

func TestGetTokenExchangesClientCredentials(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/auth/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "test-client", r.PostForm.Get("client_id"))
		assert.Equal(t, "test-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "personnel.read absences.read", r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "token-1",
			"refresh_token": "refresh-1",
			"token_type": "bearer",
			"expires_in": 86400,
			"scope": "personnel.read absences.read"
		}`))
	}))
	defer server.Close()

	manager := newManager(server.URL, "personnel.read", "absences.read")

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	stored := manager.store.Get()
	require.NotNil(t, stored)
	assert.Equal(t, "refresh-1", stored.RefreshToken)
	assert.Equal(t, []string{"personnel.read", "absences.read"}, stored.Scopes)
	assert.WithinDuration(t, time.Now().Add(86400*time.Second), stored.ExpiresAt, 5*time.Second)
}

func TestGetTokenOmitsScopeWhenUnset(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.False(t, r.PostForm.Has("scope"))

		_, _ = w.Write([]byte(`{"access_token": "token-1", "expires_in": 3600}`))
	}))
	defer server.Close()

	_, err := newManager(server.URL).GetToken(context.Background())
	require.NoError(t, err)
}

func TestGetTokenReusesCachedToken(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		_, _ = w.Write([]byte(`{"access_token": "token-1", "expires_in": 3600}`))
	}))
	defer server.Close()

	manager := newManager(server.URL)

	first, err := manager.GetToken(context.Background())
	require.NoError(t, err)

	second, err := manager.GetToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, requests)
}

func TestGetTokenRefreshesExpiredToken(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		_, _ = w.Write([]byte(`{"access_token": "fresh-token", "expires_in": 3600}`))
	}))
	defer server.Close()

	manager := newManager(server.URL)
	manager.store.Set(&Token{
		AccessToken: "stale-token",
		ExpiresAt:   time.Now().Add(time.Minute),
	})

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, 1, requests)
}

func TestGetTokenSingleExchangeUnderConcurrency(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		requests int
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		mu.Unlock()

		_, _ = w.Write([]byte(`{"access_token": "token-1", "expires_in": 3600}`))
	}))
	defer server.Close()

	manager := newManager(server.URL)

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := manager.GetToken(context.Background())
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, requests)
}

func TestGetTokenInvalidClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "invalid_client", "trace_id": "t1"}`))
	}))
	defer server.Close()

	_, err := newManager(server.URL).GetToken(context.Background())
	require.Error(t, err)

	var authErr *personio.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	require.NotNil(t, authErr.Response)
	assert.Equal(t, personio.AuthErrorInvalidClient, authErr.Response.Code)
	assert.Contains(t, authErr.Error(), "The client credentials are invalid.")
}

func TestGetTokenUnparseableErrorBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`gateway timeout`))
	}))
	defer server.Close()

	_, err := newManager(server.URL).GetToken(context.Background())
	require.Error(t, err)

	var authErr *personio.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Nil(t, authErr.Response)

	var unexpected *personio.UnexpectedResponseError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, http.StatusInternalServerError, unexpected.StatusCode)
}

func TestGetTokenTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newManager(server.URL).GetToken(context.Background())
	require.Error(t, err)

	var authErr *personio.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.True(t, personio.IsCommunicationError(err))
}

func TestRefreshTokenForcesExchange(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		_, _ = w.Write([]byte(`{"access_token": "token-1", "expires_in": 3600}`))
	}))
	defer server.Close()

	manager := newManager(server.URL)

	_, err := manager.GetToken(context.Background())
	require.NoError(t, err)

	require.NoError(t, manager.RefreshToken(context.Background()))
	assert.Equal(t, 2, requests)
}

func TestSetToken(t *testing.T) {
	t.Parallel()

	manager := newManager("http://unused")
	manager.SetToken("manual-token", time.Now().Add(time.Hour))

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "manual-token", token)
}
