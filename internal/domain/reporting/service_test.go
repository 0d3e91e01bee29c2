package reporting

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeSampleStore struct {
	skillSamples   []RatingSample
	overallSamples []OverallSample
	err            error

	lastSkillFilter   Filter
	lastOverallFilter Filter
}

func (f *fakeSampleStore) SkillSamples(_ context.Context, filter Filter) ([]RatingSample, error) {
	f.lastSkillFilter = filter
	return f.skillSamples, f.err
}

func (f *fakeSampleStore) OverallRatings(_ context.Context, filter Filter) ([]OverallSample, error) {
	f.lastOverallFilter = filter
	return f.overallSamples, f.err
}

type fakeDirectory struct {
	orgName   string
	orgErr    error
	deptName  string
	deptErr   error
	firstName string
	lastName  string
	empErr    error

	orgCalls  int
	deptCalls int
	empCalls  int
}

func (f *fakeDirectory) OrganizationName(context.Context, int64) (string, error) {
	f.orgCalls++
	return f.orgName, f.orgErr
}

func (f *fakeDirectory) DepartmentName(context.Context, int64) (string, error) {
	f.deptCalls++
	return f.deptName, f.deptErr
}

func (f *fakeDirectory) EmployeeName(context.Context, int64) (string, string, error) {
	f.empCalls++
	return f.firstName, f.lastName, f.empErr
}

func orgSample(skillName string, rating float64, day time.Time) RatingSample {
	return RatingSample{
		EmployeeID:       1,
		FirstName:        "Mia",
		LastName:         "Virtanen",
		OrganizationID:   7,
		OrganizationName: "Acme Oy",
		DepartmentID:     3,
		DepartmentName:   "Engineering",
		SkillName:        skillName,
		SkillID:          10,
		Rating:           rating,
		EntryDate:        day,
	}
}

func TestOrgDeptReportIdentityFromFirstRow(t *testing.T) {
	store := &fakeSampleStore{skillSamples: []RatingSample{
		orgSample("Go", 4, date(2026, time.March, 2)),
	}}
	directory := &fakeDirectory{}
	svc := NewService(store, directory)

	report, err := svc.OrgDeptReport(context.Background(), OrgDeptQuery{OrganizationID: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.OrganizationName != "Acme Oy" {
		t.Fatalf("expected name from result row, got %q", report.OrganizationName)
	}
	if directory.orgCalls != 0 {
		t.Fatal("directory must not be consulted when samples carry identity")
	}
	if report.DepartmentID != nil || report.DepartmentName != nil {
		t.Fatalf("department fields must stay null without a department filter, got %+v", report)
	}
	if store.lastSkillFilter.OrganizationID != 7 {
		t.Fatalf("filter not scoped to organization: %+v", store.lastSkillFilter)
	}
}

func TestOrgDeptReportEmptyScopeFallsBackToDirectory(t *testing.T) {
	store := &fakeSampleStore{}
	directory := &fakeDirectory{orgName: "Quiet Org", deptName: "Dormant"}
	svc := NewService(store, directory)

	deptID := int64(3)
	report, err := svc.OrgDeptReport(context.Background(), OrgDeptQuery{OrganizationID: 7, DepartmentID: &deptID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.OrganizationName != "Quiet Org" {
		t.Fatalf("expected directory name, got %q", report.OrganizationName)
	}
	if report.DepartmentName == nil || *report.DepartmentName != "Dormant" {
		t.Fatalf("expected department name resolved, got %+v", report.DepartmentName)
	}
	if len(report.Skills) != 0 {
		t.Fatalf("expected empty skills list, got %+v", report.Skills)
	}
	if directory.orgCalls != 1 || directory.deptCalls != 1 {
		t.Fatalf("expected one lookup each, got org=%d dept=%d", directory.orgCalls, directory.deptCalls)
	}
}

func TestOrgDeptReportUnknownOrganization(t *testing.T) {
	store := &fakeSampleStore{}
	directory := &fakeDirectory{orgErr: ErrOrganizationNotFound}
	svc := NewService(store, directory)

	_, err := svc.OrgDeptReport(context.Background(), OrgDeptQuery{OrganizationID: 404})
	if !errors.Is(err, ErrOrganizationNotFound) {
		t.Fatalf("expected ErrOrganizationNotFound, got %v", err)
	}
}

func TestOrgDeptReportDefaultsToQuarter(t *testing.T) {
	store := &fakeSampleStore{skillSamples: []RatingSample{
		orgSample("Go", 4, date(2026, time.February, 15)),
	}}
	svc := NewService(store, &fakeDirectory{})

	report, err := svc.OrgDeptReport(context.Background(), OrgDeptQuery{OrganizationID: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	start := report.Skills[0].Periods[0].PeriodStart
	if !start.Equal(date(2026, time.January, 1)) {
		t.Fatalf("expected quarter bucketing by default, got %v", start)
	}
}

func TestOrgDeptReportOverallSeriesIgnoresSkillFilter(t *testing.T) {
	skillID := int64(10)
	store := &fakeSampleStore{overallSamples: []OverallSample{
		{ReviewDate: date(2026, time.January, 20), Rating: 4},
	}}
	directory := &fakeDirectory{orgName: "Acme Oy"}
	svc := NewService(store, directory)

	report, err := svc.OrgDeptReport(context.Background(), OrgDeptQuery{OrganizationID: 7, SkillID: &skillID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastSkillFilter.SkillID == nil {
		t.Fatal("skill samples must keep the skill filter")
	}
	if store.lastOverallFilter.SkillID != nil {
		t.Fatal("overall ratings must drop the skill filter")
	}
	if len(report.OverallRatings) != 1 {
		t.Fatalf("expected one overall period, got %+v", report.OverallRatings)
	}
}

func TestEmployeeReportNameFallback(t *testing.T) {
	store := &fakeSampleStore{}
	directory := &fakeDirectory{firstName: "Mia", lastName: "Virtanen"}
	svc := NewService(store, directory)

	report, err := svc.EmployeeReport(context.Background(), EmployeeQuery{EmployeeID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.FirstName != "Mia" || report.LastName != "Virtanen" {
		t.Fatalf("expected directory names, got %+v", report)
	}
	if directory.empCalls != 1 {
		t.Fatalf("expected one employee lookup, got %d", directory.empCalls)
	}
	if store.lastSkillFilter.EmployeeID != 1 || store.lastSkillFilter.OrganizationID != 0 {
		t.Fatalf("filter not scoped to employee: %+v", store.lastSkillFilter)
	}
}

func TestEmployeeReportUnknownEmployee(t *testing.T) {
	store := &fakeSampleStore{}
	directory := &fakeDirectory{empErr: ErrEmployeeNotFound}
	svc := NewService(store, directory)

	_, err := svc.EmployeeReport(context.Background(), EmployeeQuery{EmployeeID: 404})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeSkillTimelineEmptyReturnsNil(t *testing.T) {
	store := &fakeSampleStore{}
	directory := &fakeDirectory{}
	svc := NewService(store, directory)

	timeline, err := svc.EmployeeSkillTimeline(context.Background(), EmployeeQuery{EmployeeID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if timeline != nil {
		t.Fatalf("expected nil timeline for empty scope, got %+v", timeline)
	}
	if directory.empCalls != 0 {
		t.Fatal("timeline must not fall back to the directory")
	}
}

func TestEmployeeSkillTimelineIdentityAndPoints(t *testing.T) {
	store := &fakeSampleStore{skillSamples: []RatingSample{
		orgSample("Go", 4.5, date(2026, time.January, 5)),
		orgSample("Go", 3.5, date(2026, time.February, 10)),
	}}
	svc := NewService(store, &fakeDirectory{})

	timeline, err := svc.EmployeeSkillTimeline(context.Background(), EmployeeQuery{EmployeeID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if timeline.FirstName != "Mia" || timeline.LastName != "Virtanen" {
		t.Fatalf("expected identity from first row, got %+v", timeline)
	}
	if len(timeline.Skills) != 1 || len(timeline.Skills[0].Points) != 2 {
		t.Fatalf("unexpected timeline shape: %+v", timeline.Skills)
	}
}

func TestOrgDeptSkillTimelineDepartmentIdentityGated(t *testing.T) {
	rows := []RatingSample{orgSample("Go", 4, date(2026, time.March, 2))}
	svc := NewService(&fakeSampleStore{skillSamples: rows}, &fakeDirectory{})

	timeline, err := svc.OrgDeptSkillTimeline(context.Background(), OrgDeptQuery{OrganizationID: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if timeline.DepartmentID != nil || timeline.DepartmentName != nil {
		t.Fatalf("department identity must stay null without a filter, got %+v", timeline)
	}

	deptID := int64(3)
	svc = NewService(&fakeSampleStore{skillSamples: rows}, &fakeDirectory{})
	timeline, err = svc.OrgDeptSkillTimeline(context.Background(), OrgDeptQuery{OrganizationID: 7, DepartmentID: &deptID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if timeline.DepartmentName == nil || *timeline.DepartmentName != "Engineering" {
		t.Fatalf("expected department name from rows, got %+v", timeline.DepartmentName)
	}
}

func TestOrgDeptSkillTimelineEmptyReturnsNil(t *testing.T) {
	svc := NewService(&fakeSampleStore{}, &fakeDirectory{})

	timeline, err := svc.OrgDeptSkillTimeline(context.Background(), OrgDeptQuery{OrganizationID: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if timeline != nil {
		t.Fatalf("expected nil timeline, got %+v", timeline)
	}
}
