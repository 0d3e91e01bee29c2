package reporting

import "context"

// SampleStore reads rating samples matching a filter. Implementations must
// return skill samples ordered by skill name ascending then entry date
// ascending, and overall samples ordered by review date ascending; the
// aggregation strategies rely on that ordering.
type SampleStore interface {
	SkillSamples(ctx context.Context, filter Filter) ([]RatingSample, error)
	OverallRatings(ctx context.Context, filter Filter) ([]OverallSample, error)
}

// Directory resolves display names by id, used only when a report matched
// no samples but still owes the caller its scope identity.
type Directory interface {
	OrganizationName(ctx context.Context, id int64) (string, error)
	DepartmentName(ctx context.Context, id int64) (string, error)
	EmployeeName(ctx context.Context, id int64) (first, last string, err error)
}
