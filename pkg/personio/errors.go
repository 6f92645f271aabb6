package personio

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrBaseURLRequired           = errors.New("base URL is required")
	ErrClientCredentialsRequired = errors.New("client ID and client secret are required")
	ErrConfigRequired            = errors.New("config is required")
	ErrInvalidPartnerID          = errors.New("partner ID must be upper snake case")
	ErrInvalidAppID              = errors.New("app ID must be upper snake case")
	ErrEmployeeIDNotNumeric      = errors.New("employee ID must be a numeric string")
	ErrPersonIDRequired          = errors.New("person ID is required")
	ErrEmploymentIDRequired      = errors.New("employment ID is required")
	ErrAbsenceTypeIDRequired     = errors.New("absence type ID is required")
	ErrOrgUnitIDRequired         = errors.New("org unit ID is required")
	ErrOrgUnitTypeRequired       = errors.New("org unit type is required")
	ErrRequestBodyRequired       = errors.New("request body is required")
	ErrNoMorePages               = errors.New("no more pages available")
	ErrNoMoreItems               = errors.New("no more items available")
	ErrUnknownQueryKey           = errors.New("unknown query parameter")
)

var (
	errEmptyErrorEnvelope = errors.New("no errors in envelope")
	errNoErrorMessage     = errors.New("no error message in envelope")
	errNoErrorCode        = errors.New("no error code in envelope")
)

// APIError is a single entry in the v2 error envelope.
type APIError struct {
	Title  string                 `json:"title"           yaml:"title"`
	Detail string                 `json:"detail"          yaml:"detail"`
	Type   string                 `json:"type,omitempty"  yaml:"type,omitempty"`
	Meta   map[string]interface{} `json:"_meta,omitempty" yaml:"meta,omitempty"`
}

// Error implements the error interface.
func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

// ErrorResponse is the v2 error envelope.
type ErrorResponse struct {
	PersonioTraceID string     `json:"personio_trace_id" yaml:"personio_trace_id"`
	Timestamp       time.Time  `json:"timestamp"         yaml:"timestamp"`
	Errors          []APIError `json:"errors"            yaml:"errors"`
}

// Error implements the error interface.
func (e *ErrorResponse) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("API error (trace %s)", e.PersonioTraceID)
	}

	return e.Errors[0].Error()
}

// V1Error is the error object of the legacy v1 envelope.
type V1Error struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// V1ErrorResponse is the legacy v1 error envelope.
type V1ErrorResponse struct {
	Success bool    `json:"success" yaml:"success"`
	Error   V1Error `json:"error"   yaml:"error"`
}

// ErrorMessage returns the envelope's message with its numeric code.
func (e *V1ErrorResponse) ErrorMessage() string {
	return fmt.Sprintf("%s (code %d)", e.Error.Message, e.Error.Code)
}

// AuthErrorCode is an RFC 6749 error code returned by the token endpoint.
type AuthErrorCode string

// Token endpoint error codes.
const (
	AuthErrorInvalidRequest          AuthErrorCode = "invalid_request"
	AuthErrorInvalidClient           AuthErrorCode = "invalid_client"
	AuthErrorInvalidGrant            AuthErrorCode = "invalid_grant"
	AuthErrorUnauthorizedClient      AuthErrorCode = "unauthorized_client"
	AuthErrorUnsupportedGrantType    AuthErrorCode = "unsupported_grant_type"
	AuthErrorUnsupportedResponseType AuthErrorCode = "unsupported_response_type"
	AuthErrorAccessDenied            AuthErrorCode = "access_denied"
	AuthErrorInvalidScope            AuthErrorCode = "invalid_scope"
	AuthErrorInsufficientScope       AuthErrorCode = "insufficient_scope"
	AuthErrorInvalidToken            AuthErrorCode = "invalid_token"
	AuthErrorServerError             AuthErrorCode = "server_error"
	AuthErrorTemporarilyUnavailable  AuthErrorCode = "temporarily_unavailable"
)

// Message returns a human-readable description for the code.
func (c AuthErrorCode) Message() string {
	switch c {
	case AuthErrorInvalidRequest:
		return "The request is missing a parameter, uses an unsupported parameter, or repeats a parameter."
	case AuthErrorInvalidClient:
		return "The client credentials are invalid."
	case AuthErrorInvalidGrant:
		return "The authorization grant is invalid or expired."
	case AuthErrorUnauthorizedClient:
		return "The client is not authorized to use this grant type."
	case AuthErrorUnsupportedGrantType:
		return "The grant type is not supported by the authorization server."
	case AuthErrorUnsupportedResponseType:
		return "The authorization server does not support obtaining an authorization code using this method."
	case AuthErrorAccessDenied:
		return "The resource owner or authorization server denied the request."
	case AuthErrorInvalidScope:
		return "The requested scope is invalid or unknown."
	case AuthErrorInsufficientScope:
		return "The token does not carry the scopes this request requires."
	case AuthErrorInvalidToken:
		return "The access token is expired, revoked, or malformed."
	case AuthErrorServerError:
		return "The authorization server encountered an internal error."
	case AuthErrorTemporarilyUnavailable:
		return "The authorization server is temporarily unavailable."
	default:
		return "Unknown authentication error occurred."
	}
}

// AuthErrorResponse is the error envelope of the token endpoint.
type AuthErrorResponse struct {
	Code        AuthErrorCode `json:"error"                       yaml:"error"`
	Description string        `json:"error_description,omitempty" yaml:"error_description,omitempty"`
	ErrorURI    string        `json:"error_uri,omitempty"         yaml:"error_uri,omitempty"`
	Timestamp   time.Time     `json:"timestamp"                   yaml:"timestamp"`
	TraceID     string        `json:"trace_id"                    yaml:"trace_id"`
}

// CommunicationError indicates the request never produced an HTTP response,
// for example connection refused, DNS failure, or a timeout.
type CommunicationError struct {
	Err error
}

// Error implements the error interface.
func (e *CommunicationError) Error() string {
	if e.Err == nil {
		return "communication error"
	}

	return fmt.Sprintf("communication error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *CommunicationError) Unwrap() error {
	return e.Err
}

// UnexpectedResponseError indicates the server answered with a status code
// other than the expected one, or with a body that could not be decoded. It
// carries the raw response so callers can inspect or re-parse it.
type UnexpectedResponseError struct {
	StatusCode     int
	ExpectedStatus int
	Body           []byte
	Headers        http.Header
	Message        string
}

// Error implements the error interface.
func (e *UnexpectedResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unexpected response (status %d): %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("unexpected response: got status %d, expected %d", e.StatusCode, e.ExpectedStatus)
}

// AuthenticationError indicates the token exchange failed. Response is set
// when the token endpoint returned a parseable error envelope; otherwise Err
// carries the underlying failure.
type AuthenticationError struct {
	Response *AuthErrorResponse
	Err      error
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	if e.Response != nil {
		return fmt.Sprintf("authentication failed: %s", e.Response.Code.Message())
	}

	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %v", e.Err)
	}

	return "authentication failed"
}

// Unwrap returns the underlying error, if any.
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// BadRequestError indicates a 400 response with a parsed v2 error envelope.
type BadRequestError struct {
	Response *ErrorResponse
}

// Error implements the error interface.
func (e *BadRequestError) Error() string {
	if e.Response != nil {
		return fmt.Sprintf("bad request: %s", e.Response.Error())
	}

	return "bad request"
}

// ForbiddenError indicates a 403 response with a parsed v2 error envelope.
type ForbiddenError struct {
	Response *ErrorResponse
}

// Error implements the error interface.
func (e *ForbiddenError) Error() string {
	if e.Response != nil {
		return fmt.Sprintf("forbidden: %s", e.Response.Error())
	}

	return "forbidden"
}

// NotFoundError indicates a 404 response. Response is set on v2 endpoints,
// V1Response on the legacy absence-balance endpoint.
type NotFoundError struct {
	Response   *ErrorResponse
	V1Response *V1ErrorResponse
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Response != nil {
		return fmt.Sprintf("not found: %s", e.Response.Error())
	}

	if e.V1Response != nil {
		return fmt.Sprintf("not found: %s", e.V1Response.ErrorMessage())
	}

	return "not found"
}

// IsBadRequest checks if an error is a BadRequestError.
func IsBadRequest(err error) bool {
	var badRequestErr *BadRequestError

	return errors.As(err, &badRequestErr)
}

// IsForbidden checks if an error is a ForbiddenError.
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError

	return errors.As(err, &forbiddenErr)
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError

	return errors.As(err, &notFoundErr)
}

// IsUnexpectedResponse checks if an error is an UnexpectedResponseError.
func IsUnexpectedResponse(err error) bool {
	var unexpectedErr *UnexpectedResponseError

	return errors.As(err, &unexpectedErr)
}

// IsAuthenticationError checks if an error is an AuthenticationError.
func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError

	return errors.As(err, &authErr)
}

// IsCommunicationError checks if an error is a CommunicationError.
func IsCommunicationError(err error) bool {
	var commErr *CommunicationError

	return errors.As(err, &commErr)
}

// ParseErrorResponse parses a v2 error envelope from a raw response body.
func ParseErrorResponse(body []byte) (*ErrorResponse, error) {
	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing error response: %w", err)
	}

	if len(envelope.Errors) == 0 {
		return nil, fmt.Errorf("parsing error response: %w", errEmptyErrorEnvelope)
	}

	return &envelope, nil
}

// ParseV1ErrorResponse parses a legacy v1 error envelope from a raw body.
func ParseV1ErrorResponse(body []byte) (*V1ErrorResponse, error) {
	var envelope V1ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing v1 error response: %w", err)
	}

	if envelope.Error.Message == "" {
		return nil, fmt.Errorf("parsing v1 error response: %w", errNoErrorMessage)
	}

	return &envelope, nil
}

// ParseAuthErrorResponse parses a token endpoint error envelope from a raw
// body.
func ParseAuthErrorResponse(body []byte) (*AuthErrorResponse, error) {
	var envelope AuthErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing auth error response: %w", err)
	}

	if envelope.Code == "" {
		return nil, fmt.Errorf("parsing auth error response: %w", errNoErrorCode)
	}

	return &envelope, nil
}
