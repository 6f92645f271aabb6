package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/personio/pkg/personio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrgUnitsGet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/org-units/ou-1", r.URL.Path)
		assert.Equal(t, "department", r.URL.Query().Get("type"))
		assert.Equal(t, "true", r.URL.Query().Get("include_parent_chain"))

		_, _ = w.Write([]byte(`{
			"id": "ou-1",
			"type": "department",
			"name": "Engineering",
			"parent_id": "ou-0",
			"create_time": "2023-01-01T00:00:00Z",
			"parent_chain": [
				{"id": "ou-0", "type": "department", "name": "Company", "create_time": "2020-01-01T00:00:00Z"}
			]
		}`))
	}))
	defer server.Close()

	orgUnit, err := NewTestClient(server.URL).OrgUnits().Get(context.Background(), "ou-1", &personio.GetOrgUnitOptions{
		Type:               "department",
		IncludeParentChain: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Engineering", orgUnit.Name)
	require.Len(t, orgUnit.ParentChain, 1)
	assert.Equal(t, "Company", orgUnit.ParentChain[0].Name)
}

func TestOrgUnitsGetOmitsParentChainParam(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("include_parent_chain"))

		_, _ = w.Write([]byte(`{"id": "ou-1", "type": "team", "name": "Platform"}`))
	}))
	defer server.Close()

	_, err := NewTestClient(server.URL).OrgUnits().Get(context.Background(), "ou-1", &personio.GetOrgUnitOptions{
		Type: "team",
	})
	require.NoError(t, err)
}

func TestOrgUnitsGetRequiresType(t *testing.T) {
	t.Parallel()

	client := NewTestClient("http://unused")

	_, err := client.OrgUnits().Get(context.Background(), "ou-1", nil)
	assert.ErrorIs(t, err, personio.ErrOrgUnitTypeRequired)

	_, err = client.OrgUnits().Get(context.Background(), "ou-1", &personio.GetOrgUnitOptions{})
	assert.ErrorIs(t, err, personio.ErrOrgUnitTypeRequired)

	_, err = client.OrgUnits().Get(context.Background(), "", &personio.GetOrgUnitOptions{Type: "team"})
	assert.ErrorIs(t, err, personio.ErrOrgUnitIDRequired)
}

func TestOrgUnitsGetNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{
			"personio_trace_id": "trace-9",
			"timestamp": "2024-05-01T10:00:00Z",
			"errors": [{"title": "Not found", "detail": "no such org unit"}]
		}`))
	}))
	defer server.Close()

	_, err := NewTestClient(server.URL).OrgUnits().Get(context.Background(), "missing", &personio.GetOrgUnitOptions{
		Type: "department",
	})
	require.Error(t, err)
	assert.True(t, personio.IsNotFound(err))

	var notFound *personio.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.NotNil(t, notFound.Response)
	assert.Equal(t, "trace-9", notFound.Response.PersonioTraceID)
}
