package reporting

import (
	"fmt"
	"strings"
	"time"
)

// PeriodType selects the calendar bucket width for summary reports.
type PeriodType string

const (
	PeriodDay     PeriodType = "day"
	PeriodWeek    PeriodType = "week"
	PeriodMonth   PeriodType = "month"
	PeriodQuarter PeriodType = "quarter"
	PeriodYear    PeriodType = "year"
)

// DefaultPeriod applies when a report request leaves periodType unset.
const DefaultPeriod = PeriodQuarter

func ParsePeriodType(raw string) (PeriodType, error) {
	switch PeriodType(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return DefaultPeriod, nil
	case PeriodDay:
		return PeriodDay, nil
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodMonth:
		return PeriodMonth, nil
	case PeriodQuarter:
		return PeriodQuarter, nil
	case PeriodYear:
		return PeriodYear, nil
	}
	return "", fmt.Errorf("unknown period type %q", raw)
}

// RatingSample is one dated skill rating as read from the reporting views.
// Employee-scoped reads leave the organization/department fields zero;
// organization-scoped reads leave the name fields of the employee blank.
type RatingSample struct {
	EmployeeID       int64
	FirstName        string
	LastName         string
	OrganizationID   int64
	OrganizationName string
	DepartmentID     int64
	DepartmentName   string
	SkillID          int64
	SkillName        string
	Rating           float64
	EntryDate        time.Time
}

// OverallSample is one review-level overall score, independent of skills.
type OverallSample struct {
	ReviewDate time.Time
	Rating     float64
}

type PeriodBucket struct {
	PeriodStart   time.Time `json:"periodStart"`
	AvgRating     float64   `json:"avgRating"`
	MinRating     float64   `json:"minRating"`
	MaxRating     float64   `json:"maxRating"`
	SampleCount   int64     `json:"sampleCount"`
	EmployeeCount int64     `json:"employeeCount,omitempty"`
}

type SkillSummary struct {
	SkillName string         `json:"skillName"`
	Periods   []PeriodBucket `json:"periods"`
}

type OverallRatingPeriod struct {
	PeriodStart time.Time `json:"periodStart"`
	AvgRating   float64   `json:"avgRating"`
}

type OrgDeptReport struct {
	OrganizationID   int64                 `json:"organizationId"`
	OrganizationName string                `json:"organizationName"`
	DepartmentID     *int64                `json:"departmentId"`
	DepartmentName   *string               `json:"departmentName"`
	Skills           []SkillSummary        `json:"skills"`
	OverallRatings   []OverallRatingPeriod `json:"overallRatings"`
}

type EmployeeReport struct {
	EmployeeID     int64                 `json:"employeeId"`
	FirstName      string                `json:"firstName"`
	LastName       string                `json:"lastName"`
	Skills         []SkillSummary        `json:"skills"`
	OverallRatings []OverallRatingPeriod `json:"overallRatings"`
}

// TimelinePoint keeps the raw per-sample rating for single-employee timelines.
type TimelinePoint struct {
	Date   time.Time `json:"date"`
	Rating float64   `json:"rating"`
}

type SkillTimeline struct {
	SkillID   int64           `json:"skillId"`
	SkillName string          `json:"skillName"`
	Points    []TimelinePoint `json:"timeline"`
	MinRating float64         `json:"minRating"`
	MaxRating float64         `json:"maxRating"`
	AvgRating float64         `json:"avgRating"`
}

type EmployeeTimeline struct {
	EmployeeID int64           `json:"employeeId"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Skills     []SkillTimeline `json:"skills"`
}

// DayPoint aggregates all samples of one skill on one calendar day across
// the employees in scope.
type DayPoint struct {
	Date      time.Time `json:"date"`
	MinRating float64   `json:"minRating"`
	MaxRating float64   `json:"maxRating"`
	AvgRating float64   `json:"avgRating"`
}

type DaySkillTimeline struct {
	SkillID   int64      `json:"skillId"`
	SkillName string     `json:"skillName"`
	Points    []DayPoint `json:"timeline"`
}

type OrgDeptTimeline struct {
	OrganizationID   int64              `json:"organizationId"`
	OrganizationName string             `json:"organizationName"`
	DepartmentID     *int64             `json:"departmentId"`
	DepartmentName   *string            `json:"departmentName"`
	Skills           []DaySkillTimeline `json:"skills"`
}
