package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/internal/http"
	"github.com/fivetwenty-io/personio/pkg/personio"
)

// absencePeriodsQueryKeys are the query parameters the absence periods
// endpoint emits in pagination links. The wire prefix for end filters is
// "ends_from" even though the payload field is ends_at.
var absencePeriodsQueryKeys = []string{
	"limit", "cursor", "id", "absence_type.id", "person.id",
	"starts_from.date_time.gte", "starts_from.date_time.lte",
	"ends_from.date_time.gte", "ends_from.date_time.lte",
	"updated_at.gte", "updated_at.lte",
}

// AbsencePeriodsClient provides access to absence period operations.
type AbsencePeriodsClient struct {
	httpClient *http.Client
}

// NewAbsencePeriodsClient creates a new absence periods client.
func NewAbsencePeriodsClient(httpClient *http.Client) *AbsencePeriodsClient {
	return &AbsencePeriodsClient{httpClient: httpClient}
}

// ListWithPath fetches one page of absence periods from the given path.
func (c *AbsencePeriodsClient) ListWithPath(ctx context.Context, path string, params *personio.QueryParams) (*personio.ListResponse[personio.AbsencePeriod], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, translateListError(err)
	}

	var list personio.ListResponse[personio.AbsencePeriod]
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, decodeError(resp, err)
	}

	return &list, nil
}

// ListPages returns a lazy page iterator over absence periods matching opts.
func (c *AbsencePeriodsClient) ListPages(ctx context.Context, opts *personio.ListAbsencePeriodsOptions) *personio.PageIterator[personio.AbsencePeriod] {
	return personio.NewPageIterator[personio.AbsencePeriod](
		ctx, c, constants.PathAbsencePeriods, absencePeriodsQuery(opts),
		personio.WithAllowedKeys(absencePeriodsQueryKeys...),
	)
}

// List fetches all absence periods matching opts eagerly.
func (c *AbsencePeriodsClient) List(ctx context.Context, opts *personio.ListAbsencePeriodsOptions) ([]personio.AbsencePeriod, error) {
	periods, err := c.ListPages(ctx, opts).All()
	if err != nil {
		return nil, fmt.Errorf("listing absence periods: %w", err)
	}

	return periods, nil
}

// Create creates a new absence period.
func (c *AbsencePeriodsClient) Create(ctx context.Context, req *personio.CreateAbsencePeriodRequest, opts *personio.CreateAbsencePeriodOptions) (*personio.CreateAbsencePeriodResponse, error) {
	if req == nil {
		return nil, personio.ErrRequestBodyRequired
	}

	query := url.Values{}
	if opts != nil && opts.SkipApproval {
		query.Set("skip_approval", "true")
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:         nethttp.MethodPost,
		Path:           constants.PathAbsencePeriods,
		Query:          query,
		Body:           req,
		ExpectedStatus: nethttp.StatusOK,
	})
	if err != nil {
		return nil, fmt.Errorf("creating absence period: %w", err)
	}

	var created personio.CreateAbsencePeriodResponse
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, decodeError(resp, err)
	}

	return &created, nil
}

func absencePeriodsQuery(opts *personio.ListAbsencePeriodsOptions) *personio.QueryParams {
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

	if opts.AbsenceTypeID != "" {
		params.WithFilter("absence_type.id", opts.AbsenceTypeID)
	}

	if opts.PersonID != "" {
		params.WithFilter("person.id", opts.PersonID)
	}

	for _, filter := range opts.StartsFrom {
		applyDateRangeFilter(params, "starts_from.date_time", filter)
	}

	for _, filter := range opts.EndsAt {
		applyDateRangeFilter(params, "ends_from.date_time", filter)
	}

	for _, filter := range opts.UpdatedAt {
		applyDateRangeFilter(params, "updated_at", filter)
	}

	return params
}

// applyDateRangeFilter renders an inclusive range filter onto its wire key
// with a .gte or .lte suffix.
func applyDateRangeFilter(params *personio.QueryParams, key string, filter personio.DateRangeFilter) {
	switch filter.Operator {
	case personio.RangeGreaterThanOrEqual:
		key += ".gte"
	case personio.RangeLessThanOrEqual:
		key += ".lte"
	}

	params.WithFilter(key, filter.Value.Format(time.RFC3339))
}
