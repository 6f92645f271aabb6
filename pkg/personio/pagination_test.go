package personio_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/personio/pkg/personio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID string `json:"id"`
}

var errBackend = errors.New("backend exploded")

// pagedClient serves fixed pages keyed by the cursor of the request.
type pagedClient struct {
	pages    map[string]*personio.ListResponse[testItem]
	calls    int
	lastPath string
	failWith error
}

func (c *pagedClient) ListWithPath(ctx context.Context, path string, params *personio.QueryParams) (*personio.ListResponse[testItem], error) {
	c.calls++
	c.lastPath = path

	if c.failWith != nil {
		return nil, c.failWith
	}

	cursor := ""
	if params != nil {
		cursor = params.Cursor
	}

	page, ok := c.pages[cursor]
	if !ok {
		return &personio.ListResponse[testItem]{}, nil
	}

	return page, nil
}

func page(items []testItem, next string) *personio.ListResponse[testItem] {
	resp := &personio.ListResponse[testItem]{Data: items}
	if next != "" {
		resp.Meta = &personio.Meta{Links: map[string]personio.Link{"next": {Href: next}}}
	}

	return resp
}

// fiveItems spreads five items over three pages of size two.
func fiveItems() *pagedClient {
	return &pagedClient{
		pages: map[string]*personio.ListResponse[testItem]{
			"":   page([]testItem{{ID: "1"}, {ID: "2"}}, "/test?cursor=c2&limit=2"),
			"c2": page([]testItem{{ID: "3"}, {ID: "4"}}, "/test?cursor=c3&limit=2"),
			"c3": page([]testItem{{ID: "5"}}, ""),
		},
	}
}

func TestPageIteratorNextPage(t *testing.T) {
	t.Parallel()

	client := fiveItems()
	iterator := personio.NewPageIterator[testItem](context.Background(), client, "/test", nil)

	first, err := iterator.NextPage()
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := iterator.NextPage()
	require.NoError(t, err)
	assert.Len(t, second, 2)

	third, err := iterator.NextPage()
	require.NoError(t, err)
	assert.Len(t, third, 1)

	_, err = iterator.NextPage()
	assert.ErrorIs(t, err, personio.ErrNoMorePages)
	assert.Equal(t, 3, client.calls)
}

func TestPageIteratorPageCount(t *testing.T) {
	t.Parallel()

	// Five items at page size two means exactly ceil(5/2) = 3 requests.
	client := fiveItems()
	iterator := personio.NewPageIterator[testItem](context.Background(), client, "/test",
		personio.NewQueryParams().WithLimit(2))

	items, err := iterator.All()
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, 3, client.calls)
}

func TestPageIteratorItemLevel(t *testing.T) {
	t.Parallel()

	iterator := personio.NewPageIterator[testItem](context.Background(), fiveItems(), "/test", nil)

	var ids []string

	for iterator.HasNext() {
		item, err := iterator.Next()
		require.NoError(t, err)

		ids = append(ids, item.ID)
	}

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)

	_, err := iterator.Next()
	assert.ErrorIs(t, err, personio.ErrNoMoreItems)
}

func TestPageIteratorAll(t *testing.T) {
	t.Parallel()

	iterator := personio.NewPageIterator[testItem](context.Background(), fiveItems(), "/test", nil)

	items, err := iterator.All()
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, "5", items[4].ID)
}

func TestPageIteratorForEach(t *testing.T) {
	t.Parallel()

	iterator := personio.NewPageIterator[testItem](context.Background(), fiveItems(), "/test", nil)

	count := 0

	err := iterator.ForEach(func(item testItem) error {
		count++

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestPageIteratorForEachStopsOnError(t *testing.T) {
	t.Parallel()

	iterator := personio.NewPageIterator[testItem](context.Background(), fiveItems(), "/test", nil)

	err := iterator.ForEach(func(item testItem) error {
		return errBackend
	})
	assert.ErrorIs(t, err, errBackend)
}

func TestPageIteratorPropagatesError(t *testing.T) {
	t.Parallel()

	client := &pagedClient{failWith: errBackend}
	iterator := personio.NewPageIterator[testItem](context.Background(), client, "/test", nil)

	_, err := iterator.NextPage()
	assert.ErrorIs(t, err, errBackend)

	_, err = iterator.NextPage()
	assert.ErrorIs(t, err, personio.ErrNoMorePages)
}

func TestPageIteratorStopsWithoutNextLink(t *testing.T) {
	t.Parallel()

	client := &pagedClient{
		pages: map[string]*personio.ListResponse[testItem]{
			"": page([]testItem{{ID: "1"}}, ""),
		},
	}
	iterator := personio.NewPageIterator[testItem](context.Background(), client, "/test", nil)

	items, err := iterator.All()
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, client.calls)
}

func TestPageIteratorStopsOnUnknownNextLinkKey(t *testing.T) {
	t.Parallel()

	client := &pagedClient{
		pages: map[string]*personio.ListResponse[testItem]{
			"":   page([]testItem{{ID: "1"}}, "/test?cursor=c2&surprise=1"),
			"c2": page([]testItem{{ID: "2"}}, ""),
		},
	}
	iterator := personio.NewPageIterator[testItem](context.Background(), client, "/test", nil,
		personio.WithAllowedKeys("limit", "cursor"))

	items, err := iterator.All()
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, client.calls)
}

func TestPageIteratorStopsOnMalformedNextLink(t *testing.T) {
	t.Parallel()

	client := &pagedClient{
		pages: map[string]*personio.ListResponse[testItem]{
			"": page([]testItem{{ID: "1"}}, "://bad"),
		},
	}
	iterator := personio.NewPageIterator[testItem](context.Background(), client, "/test", nil)

	items, err := iterator.All()
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, client.calls)
}

func TestFetchAllPages(t *testing.T) {
	t.Parallel()

	items, err := personio.FetchAllPages[testItem](context.Background(), fiveItems(), "/test", nil, nil)
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestFetchAllPagesMaxPages(t *testing.T) {
	t.Parallel()

	client := fiveItems()

	items, err := personio.FetchAllPages[testItem](context.Background(), client, "/test", nil,
		&personio.PaginationOptions{MaxPages: 2})
	require.NoError(t, err)
	assert.Len(t, items, 4)
	assert.Equal(t, 2, client.calls)
}

func TestStreamPages(t *testing.T) {
	t.Parallel()

	results := personio.StreamPages[testItem](context.Background(), fiveItems(), "/test", nil, nil)

	var (
		pages int
		items []testItem
	)

	for result := range results {
		require.NoError(t, result.Err)

		pages++

		items = append(items, result.Items...)
	}

	assert.Equal(t, 3, pages)
	assert.Len(t, items, 5)
}

func TestStreamPagesMatchesEagerResult(t *testing.T) {
	t.Parallel()

	eager, err := personio.NewPageIterator[testItem](context.Background(), fiveItems(), "/test", nil).All()
	require.NoError(t, err)

	var streamed []testItem
	for result := range personio.StreamPages[testItem](context.Background(), fiveItems(), "/test", nil, nil) {
		require.NoError(t, result.Err)

		streamed = append(streamed, result.Items...)
	}

	assert.Equal(t, eager, streamed)
}

func TestStreamPagesDeliversError(t *testing.T) {
	t.Parallel()

	client := &pagedClient{failWith: errBackend}
	results := personio.StreamPages[testItem](context.Background(), client, "/test", nil, nil)

	result, ok := <-results
	require.True(t, ok)
	assert.ErrorIs(t, result.Err, errBackend)

	_, ok = <-results
	assert.False(t, ok)
}

func TestStreamPagesBuffersLastPage(t *testing.T) {
	t.Parallel()

	client := &pagedClient{
		pages: map[string]*personio.ListResponse[testItem]{
			"": page([]testItem{{ID: "1"}}, ""),
		},
	}

	results := personio.StreamPages[testItem](context.Background(), client, "/test", nil, nil)

	// A single page fits the channel buffer, so the producer finishes and
	// closes the channel before anyone receives.
	require.Equal(t, 1, cap(results))

	result, ok := <-results
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.Len(t, result.Items, 1)

	_, ok = <-results
	assert.False(t, ok)
}

func TestStreamPagesAbandonedOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	results := personio.StreamPages[testItem](ctx, fiveItems(), "/test", nil, nil)

	first, ok := <-results
	require.True(t, ok)
	require.NoError(t, first.Err)

	cancel()

	// The goroutine must exit even though nobody drains the channel.
	for range results {
		break
	}
}
