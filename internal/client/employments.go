package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/internal/http"
	"github.com/fivetwenty-io/personio/pkg/personio"
)

// dateOnlyLayout is the calendar-date format the employments filters use.
const dateOnlyLayout = "2006-01-02"

// employmentsQueryKeys are the query parameters the employments endpoint
// emits in pagination links.
var employmentsQueryKeys = []string{
	"limit", "cursor", "id",
	"updated_at", "updated_at.gt", "updated_at.lt",
}

// EmploymentsClient provides access to employment operations.
type EmploymentsClient struct {
	httpClient *http.Client
}

// NewEmploymentsClient creates a new employments client.
func NewEmploymentsClient(httpClient *http.Client) *EmploymentsClient {
	return &EmploymentsClient{httpClient: httpClient}
}

// ListWithPath fetches one page of employments from the given path.
func (c *EmploymentsClient) ListWithPath(ctx context.Context, path string, params *personio.QueryParams) (*personio.ListResponse[personio.Employment], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, translateListError(err)
	}

	var list personio.ListResponse[personio.Employment]
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, decodeError(resp, err)
	}

	return &list, nil
}

// ListPages returns a lazy page iterator over a person's employments.
func (c *EmploymentsClient) ListPages(ctx context.Context, personID string, opts *personio.ListEmploymentsOptions) (*personio.PageIterator[personio.Employment], error) {
	if personID == "" {
		return nil, personio.ErrPersonIDRequired
	}

	path := fmt.Sprintf("%s/%s/employments", constants.PathPersons, personID)

	return personio.NewPageIterator[personio.Employment](
		ctx, c, path, employmentsQuery(opts),
		personio.WithAllowedKeys(employmentsQueryKeys...),
	), nil
}

// List fetches all employments of a person eagerly.
func (c *EmploymentsClient) List(ctx context.Context, personID string, opts *personio.ListEmploymentsOptions) ([]personio.Employment, error) {
	iterator, err := c.ListPages(ctx, personID, opts)
	if err != nil {
		return nil, err
	}

	employments, err := iterator.All()
	if err != nil {
		return nil, fmt.Errorf("listing employments of person %s: %w", personID, err)
	}

	return employments, nil
}

// Get fetches a single employment of a person.
func (c *EmploymentsClient) Get(ctx context.Context, personID, employmentID string) (*personio.Employment, error) {
	if personID == "" {
		return nil, personio.ErrPersonIDRequired
	}

	if employmentID == "" {
		return nil, personio.ErrEmploymentIDRequired
	}

	path := fmt.Sprintf("%s/%s/employments/%s", constants.PathPersons, personID, employmentID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting employment %s of person %s: %w", employmentID, personID, err)
	}

	var employment personio.Employment
	if err := json.Unmarshal(resp.Body, &employment); err != nil {
		return nil, decodeError(resp, err)
	}

	return &employment, nil
}

func employmentsQuery(opts *personio.ListEmploymentsOptions) *personio.QueryParams {
	params := personio.NewQueryParams()
	if opts == nil {
		return params
	}

	if opts.Limit > 0 {
		params.WithLimit(opts.Limit)
	}

	if len(opts.IDs) > 0 {
		params.WithFilter("id", strings.Join(opts.IDs, ","))
	}

	for _, filter := range opts.UpdatedAt {
		applyDateFilter(params, "updated_at", filter, dateOnlyLayout)
	}

	return params
}
