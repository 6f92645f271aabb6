package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/internal/http"
	"github.com/fivetwenty-io/personio/pkg/personio"
)

// AbsenceBalancesClient provides access to the legacy v1 balance endpoint.
type AbsenceBalancesClient struct {
	httpClient *http.Client
}

// NewAbsenceBalancesClient creates a new absence balances client.
func NewAbsenceBalancesClient(httpClient *http.Client) *AbsenceBalancesClient {
	return &AbsenceBalancesClient{httpClient: httpClient}
}

// Get fetches the absence balances of an employee. The legacy endpoint keys
// employees by numeric ID, so anything non-numeric is rejected before any
// network call.
func (c *AbsenceBalancesClient) Get(ctx context.Context, employeeID string) ([]personio.AbsenceBalance, error) {
	if !numericID.MatchString(employeeID) {
		return nil, fmt.Errorf("%w: %q", personio.ErrEmployeeIDNotNumeric, employeeID)
	}

	path := fmt.Sprintf("%s/%s/absences/balance", constants.PathEmployees, employeeID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting absence balance of employee %s: %w", employeeID, translateV1NotFound(err))
	}

	var envelope personio.AbsenceBalanceResponse
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, decodeError(resp, err)
	}

	return envelope.Data, nil
}
