package personio

import (
	"context"
	"time"
)

// Client provides access to all Personio API resources.
type Client interface {
	// Persons returns the persons resource client.
	Persons() PersonsClient

	// Employments returns the employments resource client.
	Employments() EmploymentsClient

	// AbsenceTypes returns the absence types resource client.
	AbsenceTypes() AbsenceTypesClient

	// AbsencePeriods returns the absence periods resource client.
	AbsencePeriods() AbsencePeriodsClient

	// AbsenceBalances returns the absence balances resource client.
	AbsenceBalances() AbsenceBalancesClient

	// OrgUnits returns the org units resource client.
	OrgUnits() OrgUnitsClient

	// GetToken returns the current access token, fetching or refreshing it
	// first when needed.
	GetToken(ctx context.Context) (string, error)
}

// PersonsClient provides access to person operations.
type PersonsClient interface {
	// List fetches all persons matching opts eagerly.
	List(ctx context.Context, opts *ListPersonsOptions) ([]Person, error)

	// ListPages returns a lazy page iterator over persons matching opts.
	ListPages(ctx context.Context, opts *ListPersonsOptions) *PageIterator[Person]
}

// EmploymentsClient provides access to employment operations.
type EmploymentsClient interface {
	// List fetches all employments of a person eagerly.
	List(ctx context.Context, personID string, opts *ListEmploymentsOptions) ([]Employment, error)

	// ListPages returns a lazy page iterator over a person's employments.
	ListPages(ctx context.Context, personID string, opts *ListEmploymentsOptions) (*PageIterator[Employment], error)

	// Get fetches a single employment of a person.
	Get(ctx context.Context, personID, employmentID string) (*Employment, error)
}

// AbsenceTypesClient provides access to absence type operations.
type AbsenceTypesClient interface {
	// List fetches all absence types eagerly.
	List(ctx context.Context, opts *ListAbsenceTypesOptions) ([]AbsenceType, error)

	// ListPages returns a lazy page iterator over absence types.
	ListPages(ctx context.Context, opts *ListAbsenceTypesOptions) *PageIterator[AbsenceType]

	// Get fetches a single absence type by ID.
	Get(ctx context.Context, id string) (*AbsenceType, error)
}

// AbsencePeriodsClient provides access to absence period operations.
type AbsencePeriodsClient interface {
	// List fetches all absence periods matching opts eagerly.
	List(ctx context.Context, opts *ListAbsencePeriodsOptions) ([]AbsencePeriod, error)

	// ListPages returns a lazy page iterator over absence periods.
	ListPages(ctx context.Context, opts *ListAbsencePeriodsOptions) *PageIterator[AbsencePeriod]

	// Create creates a new absence period.
	Create(ctx context.Context, req *CreateAbsencePeriodRequest, opts *CreateAbsencePeriodOptions) (*CreateAbsencePeriodResponse, error)
}

// AbsenceBalancesClient provides access to the legacy balance endpoint.
type AbsenceBalancesClient interface {
	// Get fetches the absence balances of an employee. The employee ID must
	// be a numeric string; anything else fails before any network call.
	Get(ctx context.Context, employeeID string) ([]AbsenceBalance, error)
}

// OrgUnitsClient provides access to org unit operations.
type OrgUnitsClient interface {
	// Get fetches a single org unit by ID. opts.Type is required.
	Get(ctx context.Context, id string, opts *GetOrgUnitOptions) (*OrgUnit, error)
}

// Logger interface for custom logging implementations.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config holds client configuration.
type Config struct {
	// BaseURL of the API endpoint, e.g. https://api.personio.de
	BaseURL string

	// ClientID for the OAuth2 client credentials grant.
	ClientID string

	// ClientSecret for the OAuth2 client credentials grant.
	ClientSecret string

	// PartnerID identifies the integration vendor. Must be upper snake
	// case, e.g. VENDOR_NAME.
	PartnerID string

	// AppID identifies the integration app. Must be upper snake case.
	AppID string

	// Scopes to request during the token exchange. Optional; the server
	// grants the client's full scope set when empty.
	Scopes []string

	// HTTPTimeout for API requests (default: 30 seconds).
	HTTPTimeout time.Duration

	// RetryMax is the number of transport-level retries (default: 0, no
	// retries).
	RetryMax int

	// RetryWaitMin is the minimum wait between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum wait between retries.
	RetryWaitMax time.Duration

	// UserAgent for HTTP requests.
	UserAgent string

	// Debug enables request/response logging.
	Debug bool

	// Logger receives log output. Optional.
	Logger Logger
}
