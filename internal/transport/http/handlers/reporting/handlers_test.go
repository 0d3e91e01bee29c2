package reportinghandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"pulse/internal/domain/reporting"
)

type fakeSampleStore struct {
	samples []reporting.RatingSample
	overall []reporting.OverallSample
}

func (f *fakeSampleStore) SkillSamples(context.Context, reporting.Filter) ([]reporting.RatingSample, error) {
	return f.samples, nil
}

func (f *fakeSampleStore) OverallRatings(context.Context, reporting.Filter) ([]reporting.OverallSample, error) {
	return f.overall, nil
}

type fakeDirectory struct {
	orgErr error
	empErr error
}

func (f *fakeDirectory) OrganizationName(context.Context, int64) (string, error) {
	return "Acme Oy", f.orgErr
}

func (f *fakeDirectory) DepartmentName(context.Context, int64) (string, error) {
	return "Engineering", nil
}

func (f *fakeDirectory) EmployeeName(context.Context, int64) (string, string, error) {
	return "Mia", "Virtanen", f.empErr
}

func newServer(store *fakeSampleStore, directory *fakeDirectory) *httptest.Server {
	r := chi.NewRouter()
	h := NewHandler(reporting.NewService(store, directory), nil)
	h.RegisterRoutes(r)
	return httptest.NewServer(r)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func getEnvelope(t *testing.T, url string) (int, envelope) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, env
}

func orgSamples() []reporting.RatingSample {
	return []reporting.RatingSample{{
		EmployeeID:       1,
		OrganizationID:   7,
		OrganizationName: "Acme Oy",
		DepartmentID:     3,
		DepartmentName:   "Engineering",
		SkillID:          10,
		SkillName:        "Go",
		Rating:           4,
		EntryDate:        time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
	}}
}

func TestOrgReportOK(t *testing.T) {
	server := newServer(&fakeSampleStore{samples: orgSamples()}, &fakeDirectory{})
	defer server.Close()

	status, env := getEnvelope(t, server.URL+"/reports/organizations/7?periodType=month")
	if status != http.StatusOK || !env.Success {
		t.Fatalf("expected 200 success, got %d %+v", status, env)
	}

	var report reporting.OrgDeptReport
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.OrganizationName != "Acme Oy" {
		t.Fatalf("unexpected organization name %q", report.OrganizationName)
	}
	if report.DepartmentID != nil {
		t.Fatal("department must stay null without deptId filter")
	}
	if len(report.Skills) != 1 || report.Skills[0].SkillName != "Go" {
		t.Fatalf("unexpected skills: %+v", report.Skills)
	}
	if !report.Skills[0].Periods[0].PeriodStart.Equal(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected monthly bucket, got %+v", report.Skills[0].Periods[0])
	}
}

func TestOrgReportUnknownOrganization(t *testing.T) {
	server := newServer(&fakeSampleStore{}, &fakeDirectory{orgErr: reporting.ErrOrganizationNotFound})
	defer server.Close()

	status, env := getEnvelope(t, server.URL+"/reports/organizations/404")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "not_found" {
		t.Fatalf("expected not_found error, got %+v", env.Error)
	}
}

func TestOrgReportBadPeriodType(t *testing.T) {
	server := newServer(&fakeSampleStore{}, &fakeDirectory{})
	defer server.Close()

	status, env := getEnvelope(t, server.URL+"/reports/organizations/7?periodType=decade")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "invalid_filter" {
		t.Fatalf("expected invalid_filter, got %+v", env.Error)
	}
}

func TestEmployeeReportRejectsDeptFilter(t *testing.T) {
	server := newServer(&fakeSampleStore{}, &fakeDirectory{})
	defer server.Close()

	status, env := getEnvelope(t, server.URL+"/reports/employees/1?deptId=3")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "invalid_filter" {
		t.Fatalf("expected invalid_filter, got %+v", env.Error)
	}
}

func TestEmployeeReportFallbackName(t *testing.T) {
	server := newServer(&fakeSampleStore{}, &fakeDirectory{})
	defer server.Close()

	status, env := getEnvelope(t, server.URL+"/reports/employees/1")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var report reporting.EmployeeReport
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.FirstName != "Mia" || report.LastName != "Virtanen" {
		t.Fatalf("expected directory fallback name, got %+v", report)
	}
	if len(report.Skills) != 0 {
		t.Fatalf("expected empty skills, got %+v", report.Skills)
	}
}

func TestEmployeeTimelineEmptyIs404(t *testing.T) {
	server := newServer(&fakeSampleStore{}, &fakeDirectory{})
	defer server.Close()

	status, env := getEnvelope(t, server.URL+"/reports/employees/1/skills/timeline")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "no_timeline_data" {
		t.Fatalf("expected no_timeline_data, got %+v", env.Error)
	}
}

func TestOrgTimelineOK(t *testing.T) {
	server := newServer(&fakeSampleStore{samples: orgSamples()}, &fakeDirectory{})
	defer server.Close()

	status, env := getEnvelope(t, server.URL+"/reports/organizations/7/skills/timeline")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var timeline reporting.OrgDeptTimeline
	if err := json.Unmarshal(env.Data, &timeline); err != nil {
		t.Fatalf("decode timeline: %v", err)
	}
	if len(timeline.Skills) != 1 || len(timeline.Skills[0].Points) != 1 {
		t.Fatalf("unexpected timeline shape: %+v", timeline.Skills)
	}
}

func TestOrgReportPDFExport(t *testing.T) {
	server := newServer(&fakeSampleStore{samples: orgSamples()}, &fakeDirectory{})
	defer server.Close()

	resp, err := http.Get(server.URL + "/reports/organizations/7/export.pdf")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	head := make([]byte, 5)
	if _, err := resp.Body.Read(head); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.HasPrefix(string(head), "%PDF-") {
		t.Fatalf("body is not a PDF: %q", head)
	}
}
