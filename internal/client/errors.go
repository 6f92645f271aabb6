package client

import (
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/personio/internal/http"
	"github.com/fivetwenty-io/personio/pkg/personio"
)

// translateListError re-parses the raw body of an unexpected list response
// against the v2 error envelope. 400 becomes BadRequestError and 403 becomes
// ForbiddenError; any other status, and any body that fails to parse, keeps
// the original error.
func translateListError(err error) error {
	var unexpected *personio.UnexpectedResponseError
	if !errors.As(err, &unexpected) {
		return err
	}

	switch unexpected.StatusCode {
	case nethttp.StatusBadRequest:
		envelope, parseErr := personio.ParseErrorResponse(unexpected.Body)
		if parseErr != nil {
			return err
		}

		return &personio.BadRequestError{Response: envelope}
	case nethttp.StatusForbidden:
		envelope, parseErr := personio.ParseErrorResponse(unexpected.Body)
		if parseErr != nil {
			return err
		}

		return &personio.ForbiddenError{Response: envelope}
	default:
		return err
	}
}

// translateNotFound maps a 404 with a v2 error envelope to NotFoundError.
func translateNotFound(err error) error {
	var unexpected *personio.UnexpectedResponseError
	if !errors.As(err, &unexpected) || unexpected.StatusCode != nethttp.StatusNotFound {
		return err
	}

	envelope, parseErr := personio.ParseErrorResponse(unexpected.Body)
	if parseErr != nil {
		return err
	}

	return &personio.NotFoundError{Response: envelope}
}

// translateV1NotFound maps a 404 with a legacy v1 envelope to NotFoundError.
func translateV1NotFound(err error) error {
	var unexpected *personio.UnexpectedResponseError
	if !errors.As(err, &unexpected) || unexpected.StatusCode != nethttp.StatusNotFound {
		return err
	}

	envelope, parseErr := personio.ParseV1ErrorResponse(unexpected.Body)
	if parseErr != nil {
		return err
	}

	return &personio.NotFoundError{V1Response: envelope}
}

// decodeError wraps a JSON decode failure of an otherwise successful
// response so callers still see the raw body.
func decodeError(resp *http.Response, err error) error {
	return &personio.UnexpectedResponseError{
		StatusCode:     resp.StatusCode,
		ExpectedStatus: resp.StatusCode,
		Body:           resp.Body,
		Headers:        resp.Headers,
		Message:        fmt.Sprintf("decoding response body: %v", err),
	}
}
