// Package personioclient creates Personio API clients.
package personioclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/personio/internal/client"
	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/pkg/personio"
)

// New creates a new Personio API client from a config. The base URL is
// normalized: an empty URL falls back to the production endpoint, a
// scheme-less URL gets https, and trailing slashes are dropped.
func New(config *personio.Config) (personio.Client, error) {
	if config == nil {
		return nil, personio.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	apiClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// NewWithClientCredentials creates a client from the individual credential
// parts.
func NewWithClientCredentials(baseURL, clientID, clientSecret, partnerID, appID string) (personio.Client, error) {
	return New(&personio.Config{
		BaseURL:      baseURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		PartnerID:    partnerID,
		AppID:        appID,
	})
}

func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return strings.TrimSuffix(baseURL, "/")
}
