package personio

import (
	"context"
	"errors"
)

// PaginationClient fetches one page of a list endpoint.
type PaginationClient[T any] interface {
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[T], error)
}

// PaginationOptions configures the bulk pagination helpers.
type PaginationOptions struct {
	// PageSize overrides the server-side default page size.
	PageSize int
	// MaxPages stops after this many pages; zero means no cap.
	MaxPages int
}

// PageResult is one streamed page or the error that ended the stream.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// IteratorOption configures a PageIterator.
type IteratorOption func(*iteratorSettings)

type iteratorSettings struct {
	allowedKeys []string
}

// WithAllowedKeys restricts which query keys a next link may carry. A next
// link with a key outside the set ends the sequence instead of being
// followed. Without this option all keys are accepted.
func WithAllowedKeys(keys ...string) IteratorOption {
	return func(s *iteratorSettings) {
		s.allowedKeys = keys
	}
}

// PageIterator walks a paginated list endpoint lazily. Pages are fetched one
// request at a time; abandoning the iterator mid-sequence costs nothing. The
// sequence ends when a page carries no next link, or when the next link is
// unparseable or fails key validation.
type PageIterator[T any] struct {
	ctx     context.Context
	client  PaginationClient[T]
	path    string
	params  *QueryParams
	allowed []string

	buffer  []T
	pos     int
	done    bool
	pending error
}

// NewPageIterator creates an iterator over the endpoint at path.
func NewPageIterator[T any](ctx context.Context, client PaginationClient[T], path string, params *QueryParams, opts ...IteratorOption) *PageIterator[T] {
	var settings iteratorSettings
	for _, opt := range opts {
		opt(&settings)
	}

	if params == nil {
		params = NewQueryParams()
	}

	return &PageIterator[T]{
		ctx:     ctx,
		client:  client,
		path:    path,
		params:  params,
		allowed: settings.allowedKeys,
	}
}

// NextPage fetches the next page of items. It returns ErrNoMorePages after
// the sequence has ended.
func (it *PageIterator[T]) NextPage() ([]T, error) {
	if it.done {
		return nil, ErrNoMorePages
	}

	return it.fetch()
}

func (it *PageIterator[T]) fetch() ([]T, error) {
	page, err := it.client.ListWithPath(it.ctx, it.path, it.params)
	if err != nil {
		it.done = true

		return nil, err
	}

	next := page.Meta.NextLink()
	if next == "" {
		it.done = true

		return page.Data, nil
	}

	params, err := ParseNextLink(next, it.allowed)
	if err != nil {
		// A malformed or unrecognized next link is a normal end of the
		// sequence, not a failure.
		it.done = true

		return page.Data, nil
	}

	it.params = params

	return page.Data, nil
}

// HasNext checks if there are more items available, fetching the next page
// when the buffered one is exhausted.
func (it *PageIterator[T]) HasNext() bool {
	if it.pos < len(it.buffer) {
		return true
	}

	if it.pending != nil {
		return true
	}

	for !it.done {
		items, err := it.fetch()
		if err != nil {
			it.pending = err

			return true
		}

		if len(items) > 0 {
			it.buffer = items
			it.pos = 0

			return true
		}
	}

	return false
}

// Next returns the next item. It returns ErrNoMoreItems after the last item
// of the last page.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if it.pending != nil {
		err := it.pending
		it.pending = nil

		return zero, err
	}

	for it.pos >= len(it.buffer) {
		if it.done {
			return zero, ErrNoMoreItems
		}

		items, err := it.fetch()
		if err != nil {
			return zero, err
		}

		it.buffer = items
		it.pos = 0
	}

	item := it.buffer[it.pos]
	it.pos++

	return item, nil
}

// All fetches every remaining page eagerly and returns the flattened items.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for {
		items, err := it.NextPage()
		if errors.Is(err, ErrNoMorePages) {
			return all, nil
		}

		if err != nil {
			return nil, err
		}

		all = append(all, items...)

		if it.done {
			return all, nil
		}
	}
}

// ForEach applies fn to every remaining item, fetching pages as needed. It
// stops at the first error fn returns.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for {
		items, err := it.NextPage()
		if errors.Is(err, ErrNoMorePages) {
			return nil
		}

		if err != nil {
			return err
		}

		for _, item := range items {
			if err := fn(item); err != nil {
				return err
			}
		}

		if it.done {
			return nil
		}
	}
}

// FetchAllPages eagerly fetches pages from a list endpoint and returns the
// flattened items.
func FetchAllPages[T any](ctx context.Context, client PaginationClient[T], path string, params *QueryParams, opts *PaginationOptions) ([]T, error) {
	if params == nil {
		params = NewQueryParams()
	}

	if opts != nil && opts.PageSize > 0 {
		params.WithLimit(opts.PageSize)
	}

	iterator := NewPageIterator[T](ctx, client, path, params)

	var all []T

	pages := 0

	for {
		items, err := iterator.NextPage()
		if errors.Is(err, ErrNoMorePages) {
			return all, nil
		}

		if err != nil {
			return nil, err
		}

		all = append(all, items...)

		pages++
		if opts != nil && opts.MaxPages > 0 && pages >= opts.MaxPages {
			return all, nil
		}
	}
}

// StreamPages fetches pages in the background and delivers them on the
// returned channel. The channel is closed after the last page, after an
// error, or when ctx is cancelled. A result with a non-nil Err is the final
// one. Callers that stop receiving before the channel closes must cancel ctx
// to release the producer goroutine.
func StreamPages[T any](ctx context.Context, client PaginationClient[T], path string, params *QueryParams, opts *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T], 1)

	if params == nil {
		params = NewQueryParams()
	}

	if opts != nil && opts.PageSize > 0 {
		params.WithLimit(opts.PageSize)
	}

	go func() {
		defer close(results)

		iterator := NewPageIterator[T](ctx, client, path, params)

		pages := 0

		for {
			items, err := iterator.NextPage()
			if errors.Is(err, ErrNoMorePages) {
				return
			}

			result := PageResult[T]{Items: items, Err: err}

			select {
			case results <- result:
			case <-ctx.Done():
				return
			}

			if err != nil {
				return
			}

			pages++
			if opts != nil && opts.MaxPages > 0 && pages >= opts.MaxPages {
				return
			}
		}
	}()

	return results
}
