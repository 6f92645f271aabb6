package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/pkg/personio"
)

// ErrEmptyAccessToken is returned when the token endpoint answers with a
// 2xx response that carries no access token.
var ErrEmptyAccessToken = errors.New("token response carries no access token")

// TokenManager handles token acquisition and refresh.
type TokenManager interface {
	// GetToken returns a valid access token, fetching or refreshing one
	// first when the cached token is missing or about to expire.
	GetToken(ctx context.Context) (string, error)

	// RefreshToken forces a new token exchange.
	RefreshToken(ctx context.Context) error

	// SetToken stores a token directly, bypassing the exchange.
	SetToken(token string, expiresAt time.Time)
}

// ClientCredentialsConfig configures the client credentials token exchange.
type ClientCredentialsConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// ClientCredentialsTokenManager implements TokenManager using the OAuth2
// client credentials grant. Refreshes are serialized under a mutex so
// concurrent callers trigger at most one exchange per expiry window.
type ClientCredentialsTokenManager struct {
	config     *ClientCredentialsConfig
	store      *TokenStore
	httpClient *http.Client
	mu         sync.Mutex
}

// NewClientCredentialsTokenManager creates a token manager for the client
// credentials grant.
func NewClientCredentialsTokenManager(config *ClientCredentialsConfig) *ClientCredentialsTokenManager {
	return &ClientCredentialsTokenManager{
		config: config,
		store:  NewTokenStore(),
		httpClient: &http.Client{
			Timeout: constants.ShortHTTPTimeout,
		},
	}
}

// GetToken returns a valid access token, performing the exchange when the
// cached token is missing or inside the expiry margin.
func (m *ClientCredentialsTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	if err := m.exchange(ctx); err != nil {
		return "", err
	}

	return m.store.Get().AccessToken, nil
}

// RefreshToken forces a new token exchange regardless of the cached token's
// validity.
func (m *ClientCredentialsTokenManager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.exchange(ctx)
}

// SetToken stores a token directly.
func (m *ClientCredentialsTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// exchange performs the form-encoded client credentials exchange against the
// token endpoint. Callers must hold m.mu.
func (m *ClientCredentialsTokenManager) exchange(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.config.ClientID)
	form.Set("client_secret", m.config.ClientSecret)

	if len(m.config.Scopes) > 0 {
		form.Set("scope", strings.Join(m.config.Scopes, " "))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return &personio.AuthenticationError{Err: fmt.Errorf("creating token request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return &personio.AuthenticationError{
			Err: &personio.CommunicationError{Err: fmt.Errorf("requesting token: %w", err)},
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &personio.AuthenticationError{
			Err: &personio.CommunicationError{Err: fmt.Errorf("reading token response: %w", err)},
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		authErr, parseErr := personio.ParseAuthErrorResponse(body)
		if parseErr != nil {
			return &personio.AuthenticationError{
				Err: &personio.UnexpectedResponseError{
					StatusCode:     resp.StatusCode,
					ExpectedStatus: http.StatusOK,
					Body:           body,
					Headers:        resp.Header,
				},
			}
		}

		return &personio.AuthenticationError{Response: authErr}
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return &personio.AuthenticationError{
			Err: &personio.UnexpectedResponseError{
				StatusCode:     resp.StatusCode,
				ExpectedStatus: http.StatusOK,
				Body:           body,
				Headers:        resp.Header,
				Message:        fmt.Sprintf("decoding token response: %v", err),
			},
		}
	}

	if token.AccessToken == "" {
		return &personio.AuthenticationError{Err: ErrEmptyAccessToken}
	}

	// The endpoint always sends expires_in; fall back to a day if it ever
	// stops doing so.
	expiresIn := time.Duration(token.ExpiresIn) * time.Second
	if token.ExpiresIn == 0 {
		expiresIn = 24 * time.Hour
	}

	token.ExpiresAt = time.Now().Add(expiresIn)
	token.Scopes = strings.Fields(token.Scope)

	m.store.Set(&token)

	return nil
}
