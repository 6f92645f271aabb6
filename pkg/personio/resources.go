package personio

import "time"

// Gender of a person.
type Gender string

// Gender values.
const (
	GenderUnspecified Gender = "UNSPECIFIED"
	GenderMale        Gender = "MALE"
	GenderFemale      Gender = "FEMALE"
	GenderDiverse     Gender = "DIVERSE"
)

// PersonStatus is the account status of a person.
type PersonStatus string

// PersonStatus values.
const (
	PersonStatusUnspecified PersonStatus = "UNSPECIFIED"
	PersonStatusActive      PersonStatus = "ACTIVE"
	PersonStatusInactive    PersonStatus = "INACTIVE"
)

// CustomAttributeType is the value kind of a custom attribute. Unlike every
// other enum in the API these values are lowercase on the wire.
type CustomAttributeType string

// CustomAttributeType values.
const (
	CustomAttributeTypeUnspecified CustomAttributeType = "unspecified"
	CustomAttributeTypeString      CustomAttributeType = "string"
	CustomAttributeTypeInt         CustomAttributeType = "int"
	CustomAttributeTypeDouble      CustomAttributeType = "double"
	CustomAttributeTypeDate        CustomAttributeType = "date"
	CustomAttributeTypeBoolean     CustomAttributeType = "boolean"
	CustomAttributeTypeStringList  CustomAttributeType = "string_list"
)

// CustomAttribute is a company-defined extra field on a person.
type CustomAttribute struct {
	ID       string              `json:"id"              yaml:"id"`
	Type     CustomAttributeType `json:"type"            yaml:"type"`
	GlobalID string              `json:"global_id"       yaml:"global_id"`
	Label    string              `json:"label,omitempty" yaml:"label,omitempty"`
	Value    interface{}         `json:"value"           yaml:"value"`
}

// ProfilePicture is the location of a person's profile picture.
type ProfilePicture struct {
	URL string `json:"url" yaml:"url"`
}

// EmploymentRef references an employment by ID.
type EmploymentRef struct {
	ID string `json:"id" yaml:"id"`
}

// Person represents a person resource.
type Person struct {
	ID               string            `json:"id"                          yaml:"id"`
	Email            string            `json:"email"                       yaml:"email"`
	CreatedAt        *time.Time        `json:"created_at,omitempty"        yaml:"created_at,omitempty"`
	UpdatedAt        time.Time         `json:"updated_at"                  yaml:"updated_at"`
	FirstName        string            `json:"first_name"                  yaml:"first_name"`
	LastName         string            `json:"last_name"                   yaml:"last_name"`
	PreferredName    string            `json:"preferred_name"              yaml:"preferred_name"`
	Gender           Gender            `json:"gender,omitempty"            yaml:"gender,omitempty"`
	ProfilePicture   *ProfilePicture   `json:"profile_picture,omitempty"   yaml:"profile_picture,omitempty"`
	Status           PersonStatus      `json:"status"                      yaml:"status"`
	CustomAttributes []CustomAttribute `json:"custom_attributes,omitempty" yaml:"custom_attributes,omitempty"`
	Employments      []EmploymentRef   `json:"employments"                 yaml:"employments"`
}

// AbsenceTypeUnit is the unit an absence type is tracked in.
type AbsenceTypeUnit string

// AbsenceTypeUnit values.
const (
	AbsenceTypeUnitDay  AbsenceTypeUnit = "DAY"
	AbsenceTypeUnitHour AbsenceTypeUnit = "HOUR"
)

// AbsenceType represents an absence type resource.
type AbsenceType struct {
	ID       string          `json:"id"       yaml:"id"`
	Name     string          `json:"name"     yaml:"name"`
	Category string          `json:"category" yaml:"category"`
	Unit     AbsenceTypeUnit `json:"unit"     yaml:"unit"`
}

// HalfDayType marks which half of a day an absence boundary falls on.
type HalfDayType string

// HalfDayType values.
const (
	HalfDayFirstHalf  HalfDayType = "FIRST_HALF"
	HalfDaySecondHalf HalfDayType = "SECOND_HALF"
)

// PersonRef references a person by ID.
type PersonRef struct {
	ID string `json:"id" yaml:"id"`
}

// AbsenceTypeRef references an absence type by ID.
type AbsenceTypeRef struct {
	ID string `json:"id" yaml:"id"`
}

// AbsenceBoundary is the start or end boundary of an absence period.
type AbsenceBoundary struct {
	DateTime time.Time   `json:"date_time"      yaml:"date_time"`
	Type     HalfDayType `json:"type,omitempty" yaml:"type,omitempty"`
}

// ApprovalStatus of an absence period.
type ApprovalStatus string

// ApprovalStatus values.
const (
	ApprovalStatusPending             ApprovalStatus = "PENDING"
	ApprovalStatusApproved            ApprovalStatus = "APPROVED"
	ApprovalStatusDeletionPending     ApprovalStatus = "DELETION_PENDING"
	ApprovalStatusSubstituteRequested ApprovalStatus = "SUBSTITUTE_REQUESTED"
)

// AbsencePeriod represents an absence period resource.
type AbsencePeriod struct {
	ID          string           `json:"id"                yaml:"id"`
	Person      PersonRef        `json:"person"            yaml:"person"`
	StartsFrom  AbsenceBoundary  `json:"starts_from"       yaml:"starts_from"`
	EndsAt      *AbsenceBoundary `json:"ends_at,omitempty" yaml:"ends_at,omitempty"`
	Comment     string           `json:"comment,omitempty" yaml:"comment,omitempty"`
	AbsenceType AbsenceTypeRef   `json:"absence_type"      yaml:"absence_type"`
	CreatedAt   time.Time        `json:"created_at"        yaml:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"        yaml:"updated_at"`
}

// CreateAbsencePeriodRequest is the payload for creating an absence period.
type CreateAbsencePeriodRequest struct {
	Person      PersonRef        `json:"person"            yaml:"person"`
	StartsFrom  AbsenceBoundary  `json:"starts_from"       yaml:"starts_from"`
	EndsAt      *AbsenceBoundary `json:"ends_at,omitempty" yaml:"ends_at,omitempty"`
	Comment     string           `json:"comment,omitempty" yaml:"comment,omitempty"`
	AbsenceType AbsenceTypeRef   `json:"absence_type"      yaml:"absence_type"`
}

// CreateAbsencePeriodResponse is the response to a create request.
type CreateAbsencePeriodResponse struct {
	ID   string `json:"id"              yaml:"id"`
	Meta *Meta  `json:"_meta,omitempty" yaml:"meta,omitempty"`
}

// EmploymentStatus of an employment.
type EmploymentStatus string

// EmploymentStatus values.
const (
	EmploymentStatusUnspecified EmploymentStatus = "UNSPECIFIED"
	EmploymentStatusActive      EmploymentStatus = "ACTIVE"
	EmploymentStatusInactive    EmploymentStatus = "INACTIVE"
	EmploymentStatusOnboarding  EmploymentStatus = "ONBOARDING"
	EmploymentStatusLeave       EmploymentStatus = "LEAVE"
)

// EmploymentType distinguishes internal and external employments.
type EmploymentType string

// EmploymentType values.
const (
	EmploymentTypeUnspecified EmploymentType = "UNSPECIFIED"
	EmploymentTypeInternal    EmploymentType = "INTERNAL"
	EmploymentTypeExternal    EmploymentType = "EXTERNAL"
)

// TerminationType is the reason category for an ended employment.
type TerminationType string

// TerminationType values.
const (
	TerminationTypeUnspecified           TerminationType = "UNSPECIFIED"
	TerminationTypeEmployee              TerminationType = "EMPLOYEE"
	TerminationTypeFired                 TerminationType = "FIRED"
	TerminationTypeDeath                 TerminationType = "DEATH"
	TerminationTypeContractExpired       TerminationType = "CONTRACT_EXPIRED"
	TerminationTypeAgreement             TerminationType = "AGREEMENT"
	TerminationTypeSubCompanySwitch      TerminationType = "SUB_COMPANY_SWITCH"
	TerminationTypeIrrevocableSuspension TerminationType = "IRREVOCABLE_SUSPENSION"
	TerminationTypeCancellation          TerminationType = "CANCELLATION"
	TerminationTypeCollectiveAgreement   TerminationType = "COLLECTIVE_AGREEMENT"
	TerminationTypeSettlementAgreement   TerminationType = "SETTLEMENT_AGREEMENT"
	TerminationTypeRetirement            TerminationType = "RETIREMENT"
	TerminationTypeCourtSettlement       TerminationType = "COURT_SETTLEMENT"
	TerminationTypeQuit                  TerminationType = "QUIT"
)

// Position is the title attached to an employment.
type Position struct {
	Title string `json:"title" yaml:"title"`
}

// SupervisorRef references a supervisor person by ID.
type SupervisorRef struct {
	ID string `json:"id" yaml:"id"`
}

// OfficeRef references an office by ID.
type OfficeRef struct {
	ID string `json:"id" yaml:"id"`
}

// LegalEntityRef references a legal entity by ID.
type LegalEntityRef struct {
	ID string `json:"id" yaml:"id"`
}

// SubCompanyRef references a sub company by ID.
//
// Deprecated: the API replaced sub companies with legal entities.
type SubCompanyRef struct {
	ID string `json:"id" yaml:"id"`
}

// OrgUnitRef references an org unit by type and ID.
type OrgUnitRef struct {
	Type string `json:"type" yaml:"type"`
	ID   string `json:"id"   yaml:"id"`
}

// CostCenter is a weighted cost center assignment.
type CostCenter struct {
	ID     string  `json:"id"     yaml:"id"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Termination details of an ended employment. Dates are calendar dates in
// YYYY-MM-DD form.
type Termination struct {
	TerminationDate string          `json:"termination_date,omitempty" yaml:"termination_date,omitempty"`
	LastWorkingDay  string          `json:"last_working_day,omitempty" yaml:"last_working_day,omitempty"`
	TerminatedAt    *time.Time      `json:"terminated_at,omitempty"    yaml:"terminated_at,omitempty"`
	Type            TerminationType `json:"type,omitempty"             yaml:"type,omitempty"`
	Reason          string          `json:"reason,omitempty"           yaml:"reason,omitempty"`
}

// Employment represents an employment resource. Date-only fields are
// calendar dates in YYYY-MM-DD form.
type Employment struct {
	ID                         string           `json:"id"                                      yaml:"id"`
	Position                   Position         `json:"position"                                yaml:"position"`
	Status                     EmploymentStatus `json:"status"                                  yaml:"status"`
	WeeklyWorkingHours         *float64         `json:"weekly_working_hours,omitempty"          yaml:"weekly_working_hours,omitempty"`
	FullTimeWeeklyWorkingHours *float64         `json:"full_time_weekly_working_hours,omitempty" yaml:"full_time_weekly_working_hours,omitempty"`
	ProbationEndDate           string           `json:"probation_end_date,omitempty"            yaml:"probation_end_date,omitempty"`
	EmploymentStartDate        string           `json:"employment_start_date,omitempty"         yaml:"employment_start_date,omitempty"`
	EmploymentEndDate          string           `json:"employment_end_date,omitempty"           yaml:"employment_end_date,omitempty"`
	ContractEndDate            string           `json:"contract_end_date,omitempty"             yaml:"contract_end_date,omitempty"`
	Type                       EmploymentType   `json:"type,omitempty"                          yaml:"type,omitempty"`
	CreatedAt                  *time.Time       `json:"created_at,omitempty"                    yaml:"created_at,omitempty"`
	UpdatedAt                  time.Time        `json:"updated_at"                              yaml:"updated_at"`
	Supervisor                 *SupervisorRef   `json:"supervisor,omitempty"                    yaml:"supervisor,omitempty"`
	Office                     *OfficeRef       `json:"office,omitempty"                        yaml:"office,omitempty"`
	OrgUnits                   []OrgUnitRef     `json:"org_units,omitempty"                     yaml:"org_units,omitempty"`
	Person                     PersonRef        `json:"person"                                  yaml:"person"`
	Termination                *Termination     `json:"termination,omitempty"                   yaml:"termination,omitempty"`
	CostCenters                []CostCenter     `json:"cost_centers,omitempty"                  yaml:"cost_centers,omitempty"`
	LegalEntity                *LegalEntityRef  `json:"legal_entity,omitempty"                  yaml:"legal_entity,omitempty"`
	SubCompany                 *SubCompanyRef   `json:"sub_company,omitempty"                   yaml:"sub_company,omitempty"`
	Meta                       *Meta            `json:"_meta,omitempty"                         yaml:"meta,omitempty"`
}

// AbsenceBalance is one balance entry of the legacy balance endpoint.
type AbsenceBalance struct {
	ID               int64   `json:"id"                yaml:"id"`
	Name             string  `json:"name"              yaml:"name"`
	Category         string  `json:"category"          yaml:"category"`
	Balance          float64 `json:"balance"           yaml:"balance"`
	AvailableBalance float64 `json:"available_balance" yaml:"available_balance"`
}

// AbsenceBalanceResponse is the legacy envelope of the balance endpoint.
type AbsenceBalanceResponse struct {
	Success bool             `json:"success" yaml:"success"`
	Data    []AbsenceBalance `json:"data"    yaml:"data"`
}

// OrgUnitParent is one ancestor in an org unit's parent chain.
type OrgUnitParent struct {
	ID           string    `json:"id"                     yaml:"id"`
	Type         string    `json:"type"                   yaml:"type"`
	Name         string    `json:"name"                   yaml:"name"`
	ResourceURI  string    `json:"resource_uri,omitempty" yaml:"resource_uri,omitempty"`
	Abbreviation string    `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	Description  string    `json:"description,omitempty"  yaml:"description,omitempty"`
	ParentID     string    `json:"parent_id,omitempty"    yaml:"parent_id,omitempty"`
	CreateTime   time.Time `json:"create_time"            yaml:"create_time"`
}

// OrgUnit represents an org unit resource.
type OrgUnit struct {
	ID           string          `json:"id"                     yaml:"id"`
	Type         string          `json:"type"                   yaml:"type"`
	Name         string          `json:"name"                   yaml:"name"`
	ResourceURI  string          `json:"resource_uri,omitempty" yaml:"resource_uri,omitempty"`
	Abbreviation string          `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	Description  string          `json:"description,omitempty"  yaml:"description,omitempty"`
	ParentID     string          `json:"parent_id,omitempty"    yaml:"parent_id,omitempty"`
	CreateTime   time.Time       `json:"create_time"            yaml:"create_time"`
	ParentChain  []OrgUnitParent `json:"parent_chain,omitempty" yaml:"parent_chain,omitempty"`
	Meta         *Meta           `json:"_meta,omitempty"        yaml:"meta,omitempty"`
}

// ListPersonsOptions filters the persons list endpoint.
type ListPersonsOptions struct {
	Limit         int
	ID            string
	Email         string
	FirstName     string
	LastName      string
	PreferredName string
	CreatedAt     []DateFilter
	UpdatedAt     []DateFilter
}

// ListEmploymentsOptions filters a person's employments list endpoint.
type ListEmploymentsOptions struct {
	Limit int
	// IDs restricts the result to these employment IDs.
	IDs []string
	// UpdatedAt filters compare against calendar dates, not timestamps.
	UpdatedAt []DateFilter
}

// ListAbsenceTypesOptions filters the absence types list endpoint.
type ListAbsenceTypesOptions struct {
	Limit int
}

// ListAbsencePeriodsOptions filters the absence periods list endpoint.
type ListAbsencePeriodsOptions struct {
	Limit         int
	ID            string
	AbsenceTypeID string
	PersonID      string
	StartsFrom    []DateRangeFilter
	EndsAt        []DateRangeFilter
	UpdatedAt     []DateRangeFilter
}

// CreateAbsencePeriodOptions tweaks absence period creation.
type CreateAbsencePeriodOptions struct {
	// SkipApproval creates the period without running the approval workflow.
	SkipApproval bool
}

// GetOrgUnitOptions configures an org unit fetch. Type is required by the
// API.
type GetOrgUnitOptions struct {
	Type               string
	IncludeParentChain bool
}
