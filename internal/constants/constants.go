package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as the token exchange.
	ShortHTTPTimeout = 10 * time.Second
)

// Token lifecycle.
const (
	// TokenExpirationMargin is subtracted from a token's stated expiry so a
	// token is never used when it could expire mid-request.
	TokenExpirationMargin = 3 * time.Minute
)

// API base and endpoint paths.
const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.personio.de"

	// PathAuthToken is the token exchange endpoint.
	PathAuthToken = "/v2/auth/token"

	// PathPersons is the persons list endpoint.
	PathPersons = "/v2/persons"

	// PathAbsenceTypes is the absence types endpoint.
	PathAbsenceTypes = "/v2/absence-types"

	// PathAbsencePeriods is the absence periods endpoint.
	PathAbsencePeriods = "/v2/absence-periods"

	// PathEmployees is the legacy employees endpoint prefix.
	PathEmployees = "/v1/company/employees"

	// PathOrgUnits is the org units endpoint.
	PathOrgUnits = "/v2/org-units"
)

// Request headers.
const (
	// HeaderPartnerID carries the vendor-assigned partner identifier.
	HeaderPartnerID = "X-Personio-Partner-ID"

	// HeaderAppID carries the vendor-assigned app identifier.
	HeaderAppID = "X-Personio-App-ID"

	// HeaderBeta marks requests against beta endpoints.
	HeaderBeta = "Beta"
)

// Pagination limits.
const (
	// DefaultPageSize is the server-side default number of items per page.
	DefaultPageSize = 10

	// MaxPageSize is the largest page size the v2 list endpoints accept.
	MaxPageSize = 50
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// JSONIndentSize is the number of spaces for JSON indentation.
const JSONIndentSize = 2
