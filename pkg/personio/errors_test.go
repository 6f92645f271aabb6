package personio_test

import (
	"fmt"
	"testing"

	"github.com/fivetwenty-io/personio/pkg/personio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	badRequest := &personio.BadRequestError{
		Response: &personio.ErrorResponse{
			Errors: []personio.APIError{{Title: "Invalid filter", Detail: "unknown field"}},
		},
	}
	assert.Equal(t, "bad request: Invalid filter: unknown field", badRequest.Error())

	notFound := &personio.NotFoundError{
		V1Response: &personio.V1ErrorResponse{
			Error: personio.V1Error{Code: 404, Message: "employee not found"},
		},
	}
	assert.Equal(t, "not found: employee not found (code 404)", notFound.Error())

	unexpected := &personio.UnexpectedResponseError{StatusCode: 500, ExpectedStatus: 200}
	assert.Equal(t, "unexpected response: got status 500, expected 200", unexpected.Error())
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		checker func(error) bool
	}{
		{"bad request", &personio.BadRequestError{}, personio.IsBadRequest},
		{"forbidden", &personio.ForbiddenError{}, personio.IsForbidden},
		{"not found", &personio.NotFoundError{}, personio.IsNotFound},
		{"unexpected response", &personio.UnexpectedResponseError{}, personio.IsUnexpectedResponse},
		{"authentication", &personio.AuthenticationError{}, personio.IsAuthenticationError},
		{"communication", &personio.CommunicationError{}, personio.IsCommunicationError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, tt.checker(tt.err))
			assert.True(t, tt.checker(fmt.Errorf("wrapped: %w", tt.err)))
			assert.False(t, tt.checker(fmt.Errorf("some other error")))
		})
	}
}

func TestAuthenticationErrorUnwrap(t *testing.T) {
	t.Parallel()

	inner := &personio.CommunicationError{Err: fmt.Errorf("connection refused")}
	authErr := &personio.AuthenticationError{Err: inner}

	assert.True(t, personio.IsCommunicationError(authErr))
}

func TestAuthErrorCodeMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "The client credentials are invalid.", personio.AuthErrorInvalidClient.Message())
	assert.Equal(t, "The resource owner or authorization server denied the request.",
		personio.AuthErrorAccessDenied.Message())
	assert.Equal(t, "The authorization server does not support obtaining an authorization code using this method.",
		personio.AuthErrorUnsupportedResponseType.Message())
	assert.Equal(t, "Unknown authentication error occurred.", personio.AuthErrorCode("bogus").Message())
}

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"personio_trace_id": "trace-1",
		"timestamp": "2024-05-01T10:00:00Z",
		"errors": [{"title": "Forbidden", "detail": "missing scope"}]
	}`)

	envelope, err := personio.ParseErrorResponse(body)
	require.NoError(t, err)
	assert.Equal(t, "trace-1", envelope.PersonioTraceID)
	assert.Equal(t, "Forbidden: missing scope", envelope.Error())
}

func TestParseErrorResponseRejectsEmptyEnvelope(t *testing.T) {
	t.Parallel()

	_, err := personio.ParseErrorResponse([]byte(`{"errors": []}`))
	require.Error(t, err)

	_, err = personio.ParseErrorResponse([]byte(`not json`))
	require.Error(t, err)
}

func TestParseV1ErrorResponse(t *testing.T) {
	t.Parallel()

	envelope, err := personio.ParseV1ErrorResponse([]byte(`{"success": false, "error": {"code": 404, "message": "not here"}}`))
	require.NoError(t, err)
	assert.False(t, envelope.Success)
	assert.Equal(t, 404, envelope.Error.Code)

	_, err = personio.ParseV1ErrorResponse([]byte(`{}`))
	require.Error(t, err)
}

func TestParseAuthErrorResponse(t *testing.T) {
	t.Parallel()

	envelope, err := personio.ParseAuthErrorResponse([]byte(`{"error": "invalid_client", "trace_id": "t1"}`))
	require.NoError(t, err)
	assert.Equal(t, personio.AuthErrorInvalidClient, envelope.Code)

	_, err = personio.ParseAuthErrorResponse([]byte(`{"trace_id": "t1"}`))
	require.Error(t, err)
}
