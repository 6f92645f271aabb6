package personio

// Link represents a single pagination link.
type Link struct {
	Href string `json:"href" yaml:"href"`
}

// Meta is the pagination metadata carried in the "_meta" field of list
// responses. Endpoints may put arbitrary extra keys next to "links"; only the
// links matter for pagination.
type Meta struct {
	Links map[string]Link `json:"links,omitempty" yaml:"links,omitempty"`
}

// NextLink returns the href of the "next" pagination link, or an empty string
// when the metadata carries no next link. A missing next link is the normal
// end of a paginated sequence.
func (m *Meta) NextLink() string {
	if m == nil {
		return ""
	}

	link, ok := m.Links["next"]
	if !ok {
		return ""
	}

	return link.Href
}

// ListResponse represents a paginated list response.
type ListResponse[T any] struct {
	Data []T   `json:"_data"           yaml:"data"`
	Meta *Meta `json:"_meta,omitempty" yaml:"meta,omitempty"`
}

// PersonList represents a paginated list of Person resources.
type PersonList = ListResponse[Person]

// AbsenceTypeList represents a paginated list of AbsenceType resources.
type AbsenceTypeList = ListResponse[AbsenceType]

// AbsencePeriodList represents a paginated list of AbsencePeriod resources.
type AbsencePeriodList = ListResponse[AbsencePeriod]

// EmploymentList represents a paginated list of Employment resources.
type EmploymentList = ListResponse[Employment]
