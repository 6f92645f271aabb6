// Package client implements the Personio API client.
package client

import (
	"context"
	"fmt"
	"regexp"

	"github.com/fivetwenty-io/personio/internal/auth"
	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/internal/http"
	"github.com/fivetwenty-io/personio/pkg/personio"
)

var (
	upperSnakeCase = regexp.MustCompile(`^[A-Z0-9]+(_[A-Z0-9]+)*$`)
	numericID      = regexp.MustCompile(`^[0-9]+$`)
)

// Client implements the personio.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       personio.Logger

	persons         *PersonsClient
	employments     *EmploymentsClient
	absenceTypes    *AbsenceTypesClient
	absencePeriods  *AbsencePeriodsClient
	absenceBalances *AbsenceBalancesClient
	orgUnits        *OrgUnitsClient
}

// New creates a new Personio API client. The partner and app identifiers
// are validated here so a malformed integration ID fails at construction
// instead of on the first request.
func New(config *personio.Config) (*Client, error) {
	if config == nil {
		return nil, personio.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, personio.ErrBaseURLRequired
	}

	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, personio.ErrClientCredentialsRequired
	}

	if !upperSnakeCase.MatchString(config.PartnerID) {
		return nil, fmt.Errorf("%w: %q", personio.ErrInvalidPartnerID, config.PartnerID)
	}

	if !upperSnakeCase.MatchString(config.AppID) {
		return nil, fmt.Errorf("%w: %q", personio.ErrInvalidAppID, config.AppID)
	}

	tokenManager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TokenURL:     config.BaseURL + constants.PathAuthToken,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Scopes:       config.Scopes,
	})

	httpOpts := []http.Option{
		http.WithPersonioHeaders(config.PartnerID, config.AppID),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	client := &Client{
		httpClient:   http.NewClient(config.BaseURL, tokenManager, httpOpts...),
		tokenManager: tokenManager,
		baseURL:      config.BaseURL,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.persons = NewPersonsClient(c.httpClient)
	c.employments = NewEmploymentsClient(c.httpClient)
	c.absenceTypes = NewAbsenceTypesClient(c.httpClient)
	c.absencePeriods = NewAbsencePeriodsClient(c.httpClient)
	c.absenceBalances = NewAbsenceBalancesClient(c.httpClient)
	c.orgUnits = NewOrgUnitsClient(c.httpClient)
}

// Persons returns the persons resource client.
func (c *Client) Persons() personio.PersonsClient {
	return c.persons
}

// Employments returns the employments resource client.
func (c *Client) Employments() personio.EmploymentsClient {
	return c.employments
}

// AbsenceTypes returns the absence types resource client.
func (c *Client) AbsenceTypes() personio.AbsenceTypesClient {
	return c.absenceTypes
}

// AbsencePeriods returns the absence periods resource client.
func (c *Client) AbsencePeriods() personio.AbsencePeriodsClient {
	return c.absencePeriods
}

// AbsenceBalances returns the absence balances resource client.
func (c *Client) AbsenceBalances() personio.AbsenceBalancesClient {
	return c.absenceBalances
}

// OrgUnits returns the org units resource client.
func (c *Client) OrgUnits() personio.OrgUnitsClient {
	return c.orgUnits
}

// GetToken returns the current access token, fetching or refreshing it first
// when needed.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", personio.ErrClientCredentialsRequired
	}

	return c.tokenManager.GetToken(ctx)
}
