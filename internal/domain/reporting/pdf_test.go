package reporting

import (
	"bytes"
	"testing"
	"time"
)

func TestRenderOrgDeptPDF(t *testing.T) {
	deptName := "Engineering"
	deptID := int64(3)
	report := &OrgDeptReport{
		OrganizationID:   7,
		OrganizationName: "Acme Oy",
		DepartmentID:     &deptID,
		DepartmentName:   &deptName,
		Skills: []SkillSummary{
			{SkillName: "Go", Periods: []PeriodBucket{
				{PeriodStart: date(2026, time.January, 1), AvgRating: 4, MinRating: 3, MaxRating: 5, SampleCount: 6, EmployeeCount: 2},
			}},
		},
		OverallRatings: []OverallRatingPeriod{
			{PeriodStart: date(2026, time.January, 1), AvgRating: 3.8},
		},
	}

	out, err := RenderOrgDeptPDF(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF, starts with %q", out[:min(len(out), 8)])
	}
}

func TestRenderOrgDeptPDFEmptyReport(t *testing.T) {
	report := &OrgDeptReport{OrganizationID: 7, OrganizationName: "Quiet Org", Skills: []SkillSummary{}}

	out, err := RenderOrgDeptPDF(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatal("empty report must still render a valid PDF")
	}
}
