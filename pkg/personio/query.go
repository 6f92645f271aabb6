package personio

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/personio/internal/constants"
)

// QueryParams provides a fluent interface for building query parameters for
// the v2 list endpoints.
type QueryParams struct {
	Limit   int
	Cursor  string
	Filters map[string][]string
}

// NewQueryParams creates a new QueryParams instance.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithLimit sets the page size, capped at the server's maximum.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}

	q.Limit = limit

	return q
}

// WithCursor sets the pagination cursor.
func (q *QueryParams) WithCursor(cursor string) *QueryParams {
	q.Cursor = cursor

	return q
}

// WithFilter appends values under a filter key. Repeated calls with the same
// key accumulate values; the wire format allows repeated keys.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the query parameters to url.Values. Zero and empty values
// are omitted.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Cursor != "" {
		values.Set("cursor", q.Cursor)
	}

	for key, filterValues := range q.Filters {
		for _, value := range filterValues {
			values.Add(key, value)
		}
	}

	return values
}

// ParseNextLink parses the query of a pagination next-link href back into
// QueryParams. When allowedKeys is non-empty, every query key must be in the
// set; an unknown key yields ErrUnknownQueryKey. Blank values are kept, as
// the server emits them.
func ParseNextLink(href string, allowedKeys []string) (*QueryParams, error) {
	parsed, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("parsing next link %q: %w", href, err)
	}

	values, err := url.ParseQuery(parsed.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("parsing next link query %q: %w", parsed.RawQuery, err)
	}

	allowed := make(map[string]bool, len(allowedKeys))
	for _, key := range allowedKeys {
		allowed[key] = true
	}

	params := NewQueryParams()

	for key, keyValues := range values {
		if len(allowedKeys) > 0 && !allowed[key] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownQueryKey, key)
		}

		switch key {
		case "limit":
			limit, err := strconv.Atoi(keyValues[len(keyValues)-1])
			if err != nil {
				return nil, fmt.Errorf("parsing next link limit %q: %w", keyValues[len(keyValues)-1], err)
			}

			params.Limit = limit
		case "cursor":
			params.Cursor = keyValues[len(keyValues)-1]
		default:
			params.Filters[key] = append(params.Filters[key], keyValues...)
		}
	}

	return params, nil
}
