package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/internal/http"
	"github.com/fivetwenty-io/personio/pkg/personio"
)

// personsQueryKeys are the query parameters the persons endpoint emits in
// pagination links.
var personsQueryKeys = []string{
	"limit", "cursor", "id", "email",
	"first_name", "last_name", "preferred_name",
	"created_at", "created_at.gt", "created_at.lt",
	"updated_at", "updated_at.gt", "updated_at.lt",
}

// PersonsClient provides access to person operations.
type PersonsClient struct {
	httpClient *http.Client
}

// NewPersonsClient creates a new persons client.
func NewPersonsClient(httpClient *http.Client) *PersonsClient {
	return &PersonsClient{httpClient: httpClient}
}

// ListWithPath fetches one page of persons from the given path.
func (c *PersonsClient) ListWithPath(ctx context.Context, path string, params *personio.QueryParams) (*personio.ListResponse[personio.Person], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, translateListError(err)
	}

	var list personio.ListResponse[personio.Person]
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, decodeError(resp, err)
	}

	return &list, nil
}

// ListPages returns a lazy page iterator over persons matching opts.
func (c *PersonsClient) ListPages(ctx context.Context, opts *personio.ListPersonsOptions) *personio.PageIterator[personio.Person] {
	return personio.NewPageIterator[personio.Person](
		ctx, c, constants.PathPersons, personsQuery(opts),
		personio.WithAllowedKeys(personsQueryKeys...),
	)
}

// List fetches all persons matching opts eagerly.
func (c *PersonsClient) List(ctx context.Context, opts *personio.ListPersonsOptions) ([]personio.Person, error) {
	persons, err := c.ListPages(ctx, opts).All()
	if err != nil {
		return nil, fmt.Errorf("listing persons: %w", err)
	}

	return persons, nil
}

func personsQuery(opts *personio.ListPersonsOptions) *personio.QueryParams {
	params := personio.NewQueryParams()
	if opts == nil {
		return params
	}

	if opts.Limit > 0 {
		params.WithLimit(opts.Limit)
	}

	if opts.ID != "" {
		params.WithFilter("id", opts.ID)
	}

	if opts.Email != "" {
		params.WithFilter("email", opts.Email)
	}

	if opts.FirstName != "" {
		params.WithFilter("first_name", opts.FirstName)
	}

	if opts.LastName != "" {
		params.WithFilter("last_name", opts.LastName)
	}

	if opts.PreferredName != "" {
		params.WithFilter("preferred_name", opts.PreferredName)
	}

	for _, filter := range opts.CreatedAt {
		applyDateFilter(params, "created_at", filter, time.RFC3339)
	}

	for _, filter := range opts.UpdatedAt {
		applyDateFilter(params, "updated_at", filter, time.RFC3339)
	}

	return params
}

// applyDateFilter renders a point filter onto its wire key. Equals uses the
// bare key; less-than and greater-than use .lt and .gt suffixes.
func applyDateFilter(params *personio.QueryParams, key string, filter personio.DateFilter, layout string) {
	switch filter.Operator {
	case personio.OperatorLessThan:
		key += ".lt"
	case personio.OperatorGreaterThan:
		key += ".gt"
	case personio.OperatorEquals:
	}

	params.WithFilter(key, filter.Value.Format(layout))
}
