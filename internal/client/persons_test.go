package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fivetwenty-io/personio/pkg/personio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personsServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		assert.Equal(t, "/v2/persons", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Query().Get("cursor") {
		case "":
			_, _ = w.Write([]byte(`{
				"_data": [
					{"id": "1", "email": "ada@example.com", "first_name": "Ada", "last_name": "Lovelace", "status": "ACTIVE"},
					{"id": "2", "email": "alan@example.com", "first_name": "Alan", "last_name": "Turing", "status": "ACTIVE"}
				],
				"_meta": {"links": {"next": {"href": "/v2/persons?cursor=page2&limit=2"}}}
			}`))
		case "page2":
			_, _ = w.Write([]byte(`{
				"_data": [
					{"id": "3", "email": "grace@example.com", "first_name": "Grace", "last_name": "Hopper", "status": "INACTIVE"}
				]
			}`))
		default:
			t.Errorf("unexpected cursor %q", r.URL.Query().Get("cursor"))
		}
	}))

	return server, &requests
}

func TestPersonsListFollowsPagination(t *testing.T) {
	t.Parallel()

	server, requests := personsServer(t)
	defer server.Close()

	persons, err := NewTestClient(server.URL).Persons().List(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, persons, 3)
	assert.Equal(t, "ada@example.com", persons[0].Email)
	assert.Equal(t, personio.PersonStatusInactive, persons[2].Status)
	assert.Equal(t, 2, *requests)
}

func TestPersonsListPagesMatchesEagerResult(t *testing.T) {
	t.Parallel()

	server, _ := personsServer(t)
	defer server.Close()

	client := NewTestClient(server.URL)

	eager, err := client.Persons().List(context.Background(), nil)
	require.NoError(t, err)

	iterator := client.Persons().ListPages(context.Background(), nil)

	var (
		pages    int
		streamed []personio.Person
	)

	for {
		items, err := iterator.NextPage()
		if err != nil {
			assert.ErrorIs(t, err, personio.ErrNoMorePages)

			break
		}

		pages++

		streamed = append(streamed, items...)
	}

	assert.Equal(t, 2, pages)
	assert.Equal(t, eager, streamed)
}

func TestPersonsListSendsFilters(t *testing.T) {
	t.Parallel()

	createdAfter := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "5", query.Get("limit"))
		assert.Equal(t, "jane@example.com", query.Get("email"))
		assert.Equal(t, "Jane", query.Get("first_name"))
		assert.Equal(t, "2024-01-02T03:04:05Z", query.Get("created_at.gt"))
		assert.False(t, query.Has("created_at"))

		_, _ = w.Write([]byte(`{"_data": []}`))
	}))
	defer server.Close()

	_, err := NewTestClient(server.URL).Persons().List(context.Background(), &personio.ListPersonsOptions{
		Limit:     5,
		Email:     "jane@example.com",
		FirstName: "Jane",
		CreatedAt: []personio.DateFilter{personio.DateAfter(createdAfter)},
	})
	require.NoError(t, err)
}

func TestPersonsListStopsOnForeignNextLink(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		_, _ = w.Write([]byte(`{
			"_data": [{"id": "1"}],
			"_meta": {"links": {"next": {"href": "/v2/persons?cursor=x&unknown_param=1"}}}
		}`))
	}))
	defer server.Close()

	persons, err := NewTestClient(server.URL).Persons().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, persons, 1)
	assert.Equal(t, 1, requests)
}

func TestPersonsListErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		checker func(error) bool
	}{
		{
			name:    "400 with envelope becomes bad request",
			status:  http.StatusBadRequest,
			body:    `{"errors": [{"title": "Bad filter", "detail": "unknown field"}]}`,
			checker: personio.IsBadRequest,
		},
		{
			name:    "403 with envelope becomes forbidden",
			status:  http.StatusForbidden,
			body:    `{"errors": [{"title": "Forbidden", "detail": "missing scope"}]}`,
			checker: personio.IsForbidden,
		},
		{
			name:    "400 without envelope stays unexpected",
			status:  http.StatusBadRequest,
			body:    `not json`,
			checker: personio.IsUnexpectedResponse,
		},
		{
			name:    "500 stays unexpected",
			status:  http.StatusInternalServerError,
			body:    `{"errors": [{"title": "Boom", "detail": "server"}]}`,
			checker: personio.IsUnexpectedResponse,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewTestClient(server.URL).Persons().List(context.Background(), nil)
			require.Error(t, err)
			assert.True(t, tt.checker(err))
		})
	}
}
