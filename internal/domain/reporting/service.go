package reporting

import (
	"context"
	"time"
)

// Service runs the four report operations. Summary reports always produce
// an envelope (or a not-found error when the scope id is unknown); timeline
// reports return nil when nothing matched, because a timeline without rows
// has no identity to attach.
type Service struct {
	samples   SampleStore
	directory Directory
}

func NewService(samples SampleStore, directory Directory) *Service {
	return &Service{samples: samples, directory: directory}
}

type OrgDeptQuery struct {
	OrganizationID int64
	DepartmentID   *int64
	SkillID        *int64
	Period         PeriodType
	StartDate      *time.Time
	EndDate        *time.Time
}

type EmployeeQuery struct {
	EmployeeID int64
	SkillID    *int64
	Period     PeriodType
	StartDate  *time.Time
	EndDate    *time.Time
}

func (q OrgDeptQuery) filter() Filter {
	return Filter{
		OrganizationID: q.OrganizationID,
		DepartmentID:   q.DepartmentID,
		SkillID:        q.SkillID,
		StartDate:      q.StartDate,
		EndDate:        q.EndDate,
	}
}

func (q EmployeeQuery) filter() Filter {
	return Filter{
		EmployeeID: q.EmployeeID,
		SkillID:    q.SkillID,
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
	}
}

func (s *Service) OrgDeptReport(ctx context.Context, q OrgDeptQuery) (*OrgDeptReport, error) {
	period := q.Period
	if period == "" {
		period = DefaultPeriod
	}

	filter := q.filter()
	rows, err := s.samples.SkillSamples(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &OrgDeptReport{
		OrganizationID: q.OrganizationID,
		Skills:         groupBuckets(rows, period, true),
	}

	if len(rows) > 0 {
		report.OrganizationName = rows[0].OrganizationName
		if q.DepartmentID != nil {
			report.DepartmentID = q.DepartmentID
			name := rows[0].DepartmentName
			report.DepartmentName = &name
		}
	} else {
		name, err := s.directory.OrganizationName(ctx, q.OrganizationID)
		if err != nil {
			return nil, err
		}
		report.OrganizationName = name
		if q.DepartmentID != nil {
			deptName, err := s.directory.DepartmentName(ctx, *q.DepartmentID)
			if err != nil {
				return nil, err
			}
			report.DepartmentID = q.DepartmentID
			report.DepartmentName = &deptName
		}
	}

	overall, err := s.samples.OverallRatings(ctx, filter.withoutSkill())
	if err != nil {
		return nil, err
	}
	report.OverallRatings = overallSeries(overall, period)

	return report, nil
}

func (s *Service) EmployeeReport(ctx context.Context, q EmployeeQuery) (*EmployeeReport, error) {
	period := q.Period
	if period == "" {
		period = DefaultPeriod
	}

	filter := q.filter()
	rows, err := s.samples.SkillSamples(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &EmployeeReport{
		EmployeeID: q.EmployeeID,
		Skills:     groupBuckets(rows, period, false),
	}

	if len(rows) > 0 {
		report.FirstName = rows[0].FirstName
		report.LastName = rows[0].LastName
	} else {
		first, last, err := s.directory.EmployeeName(ctx, q.EmployeeID)
		if err != nil {
			return nil, err
		}
		report.FirstName = first
		report.LastName = last
	}

	overall, err := s.samples.OverallRatings(ctx, filter.withoutSkill())
	if err != nil {
		return nil, err
	}
	report.OverallRatings = overallSeries(overall, period)

	return report, nil
}

// EmployeeSkillTimeline returns nil without error when no samples matched.
func (s *Service) EmployeeSkillTimeline(ctx context.Context, q EmployeeQuery) (*EmployeeTimeline, error) {
	rows, err := s.samples.SkillSamples(ctx, q.filter())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return &EmployeeTimeline{
		EmployeeID: rows[0].EmployeeID,
		FirstName:  rows[0].FirstName,
		LastName:   rows[0].LastName,
		Skills:     skillTimelines(rows),
	}, nil
}

// OrgDeptSkillTimeline returns nil without error when no samples matched.
// Department identity is only exposed when the department filter was given.
func (s *Service) OrgDeptSkillTimeline(ctx context.Context, q OrgDeptQuery) (*OrgDeptTimeline, error) {
	rows, err := s.samples.SkillSamples(ctx, q.filter())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	timeline := &OrgDeptTimeline{
		OrganizationID:   rows[0].OrganizationID,
		OrganizationName: rows[0].OrganizationName,
		Skills:           dailySkillTimelines(rows),
	}
	if q.DepartmentID != nil {
		timeline.DepartmentID = q.DepartmentID
		name := rows[0].DepartmentName
		timeline.DepartmentName = &name
	}
	return timeline, nil
}
