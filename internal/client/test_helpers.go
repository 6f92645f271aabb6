package client

import (
	"github.com/fivetwenty-io/personio/internal/http"
)

// NewTestClient creates a client against a test server without a token
// manager, so requests carry no Authorization header and no token exchange
// happens.
func NewTestClient(baseURL string, opts ...http.Option) *Client {
	client := &Client{
		httpClient: http.NewClient(baseURL, nil, opts...),
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}
