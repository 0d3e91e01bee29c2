package reporting

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderOrgDeptPDF renders an organization/department summary report as a
// PDF for offline sharing.
func RenderOrgDeptPDF(report *OrgDeptReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Skill Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Organization: %s", report.OrganizationName))
	pdf.Ln(7)
	if report.DepartmentName != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Department: %s", *report.DepartmentName))
		pdf.Ln(7)
	}
	pdf.Ln(3)

	for _, skill := range report.Skills {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, skill.SkillName)
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		for _, period := range skill.Periods {
			pdf.Cell(0, 6, fmt.Sprintf("  %s  avg %.2f  min %.2f  max %.2f  samples %d",
				period.PeriodStart.Format("2006-01-02"), period.AvgRating, period.MinRating, period.MaxRating, period.SampleCount))
			pdf.Ln(5)
		}
		pdf.Ln(2)
	}

	if len(report.OverallRatings) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Overall review ratings")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		for _, period := range report.OverallRatings {
			pdf.Cell(0, 6, fmt.Sprintf("  %s  avg %.2f", period.PeriodStart.Format("2006-01-02"), period.AvgRating))
			pdf.Ln(5)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
