package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/internal/http"
	"github.com/fivetwenty-io/personio/pkg/personio"
)

// absenceTypesQueryKeys are the query parameters the absence types endpoint
// emits in pagination links.
var absenceTypesQueryKeys = []string{"limit", "cursor"}

// AbsenceTypesClient provides access to absence type operations. The
// endpoint is in beta and requires the Beta header.
type AbsenceTypesClient struct {
	httpClient *http.Client
}

// NewAbsenceTypesClient creates a new absence types client.
func NewAbsenceTypesClient(httpClient *http.Client) *AbsenceTypesClient {
	return &AbsenceTypesClient{httpClient: httpClient}
}

// ListWithPath fetches one page of absence types from the given path.
func (c *AbsenceTypesClient) ListWithPath(ctx context.Context, path string, params *personio.QueryParams) (*personio.ListResponse[personio.AbsenceType], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: nethttp.MethodGet,
		Path:   path,
		Query:  query,
		Beta:   true,
	})
	if err != nil {
		return nil, translateListError(err)
	}

	var list personio.ListResponse[personio.AbsenceType]
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, decodeError(resp, err)
	}

	return &list, nil
}

// ListPages returns a lazy page iterator over absence types.
func (c *AbsenceTypesClient) ListPages(ctx context.Context, opts *personio.ListAbsenceTypesOptions) *personio.PageIterator[personio.AbsenceType] {
	params := personio.NewQueryParams()
	if opts != nil && opts.Limit > 0 {
		params.WithLimit(opts.Limit)
	}

	return personio.NewPageIterator[personio.AbsenceType](
		ctx, c, constants.PathAbsenceTypes, params,
		personio.WithAllowedKeys(absenceTypesQueryKeys...),
	)
}

// List fetches all absence types eagerly.
func (c *AbsenceTypesClient) List(ctx context.Context, opts *personio.ListAbsenceTypesOptions) ([]personio.AbsenceType, error) {
	absenceTypes, err := c.ListPages(ctx, opts).All()
	if err != nil {
		return nil, fmt.Errorf("listing absence types: %w", err)
	}

	return absenceTypes, nil
}

// Get fetches a single absence type by ID.
func (c *AbsenceTypesClient) Get(ctx context.Context, id string) (*personio.AbsenceType, error) {
	if id == "" {
		return nil, personio.ErrAbsenceTypeIDRequired
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: nethttp.MethodGet,
		Path:   constants.PathAbsenceTypes + "/" + id,
		Beta:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("getting absence type %s: %w", id, err)
	}

	var absenceType personio.AbsenceType
	if err := json.Unmarshal(resp.Body, &absenceType); err != nil {
		return nil, decodeError(resp, err)
	}

	return &absenceType, nil
}
