package personio

import "time"

// Operator compares a field against a single point in time.
type Operator int

// Point filter operators.
const (
	OperatorEquals Operator = iota
	OperatorLessThan
	OperatorGreaterThan
)

// DateFilter filters a timestamp field against a single value.
type DateFilter struct {
	Value    time.Time
	Operator Operator
}

// DateEquals matches timestamps equal to t.
func DateEquals(t time.Time) DateFilter {
	return DateFilter{Value: t, Operator: OperatorEquals}
}

// DateBefore matches timestamps strictly before t.
func DateBefore(t time.Time) DateFilter {
	return DateFilter{Value: t, Operator: OperatorLessThan}
}

// DateAfter matches timestamps strictly after t.
func DateAfter(t time.Time) DateFilter {
	return DateFilter{Value: t, Operator: OperatorGreaterThan}
}

// RangeOperator compares a field against an inclusive bound.
type RangeOperator int

// Range filter operators.
const (
	RangeLessThanOrEqual RangeOperator = iota
	RangeGreaterThanOrEqual
)

// DateRangeFilter filters a timestamp field against an inclusive bound.
type DateRangeFilter struct {
	Value    time.Time
	Operator RangeOperator
}

// OnOrBefore matches timestamps at or before t.
func OnOrBefore(t time.Time) DateRangeFilter {
	return DateRangeFilter{Value: t, Operator: RangeLessThanOrEqual}
}

// OnOrAfter matches timestamps at or after t.
func OnOrAfter(t time.Time) DateRangeFilter {
	return DateRangeFilter{Value: t, Operator: RangeGreaterThanOrEqual}
}
