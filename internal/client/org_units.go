package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/internal/http"
	"github.com/fivetwenty-io/personio/pkg/personio"
)

// OrgUnitsClient provides access to org unit operations.
type OrgUnitsClient struct {
	httpClient *http.Client
}

// NewOrgUnitsClient creates a new org units client.
func NewOrgUnitsClient(httpClient *http.Client) *OrgUnitsClient {
	return &OrgUnitsClient{httpClient: httpClient}
}

// Get fetches a single org unit by ID. The API requires the unit's type as
// a query parameter; opts.IncludeParentChain additionally resolves the
// chain of ancestors.
func (c *OrgUnitsClient) Get(ctx context.Context, id string, opts *personio.GetOrgUnitOptions) (*personio.OrgUnit, error) {
	if id == "" {
		return nil, personio.ErrOrgUnitIDRequired
	}

	if opts == nil || opts.Type == "" {
		return nil, personio.ErrOrgUnitTypeRequired
	}

	query := url.Values{}
	query.Set("type", opts.Type)

	if opts.IncludeParentChain {
		query.Set("include_parent_chain", "true")
	}

	resp, err := c.httpClient.Get(ctx, constants.PathOrgUnits+"/"+id, query)
	if err != nil {
		return nil, fmt.Errorf("getting org unit %s: %w", id, translateNotFound(err))
	}

	var orgUnit personio.OrgUnit
	if err := json.Unmarshal(resp.Body, &orgUnit); err != nil {
		return nil, decodeError(resp, err)
	}

	return &orgUnit, nil
}
