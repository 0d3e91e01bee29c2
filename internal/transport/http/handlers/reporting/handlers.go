package reportinghandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pulse/internal/domain/reporting"
	"pulse/internal/platform/cache"
	"pulse/internal/transport/http/api"
	"pulse/internal/transport/http/middleware"
	"pulse/internal/transport/http/shared"
)

type Handler struct {
	Service *reporting.Service
	Cache   *cache.Cache
}

func NewHandler(service *reporting.Service, reportCache *cache.Cache) *Handler {
	return &Handler{Service: service, Cache: reportCache}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/organizations/{orgID}", h.handleOrgReport)
		r.Get("/organizations/{orgID}/export.pdf", h.handleOrgReportPDF)
		r.Get("/organizations/{orgID}/skills/timeline", h.handleOrgTimeline)
		r.Get("/employees/{employeeID}", h.handleEmployeeReport)
		r.Get("/employees/{employeeID}/skills/timeline", h.handleEmployeeTimeline)
	})
}

// reportParams carries the parsed query string of a report request.
type reportParams struct {
	period    reporting.PeriodType
	deptID    *int64
	skillID   *int64
	startDate *time.Time
	endDate   *time.Time
}

// parseParams validates the report query string. allowDept is false on
// employee endpoints, where a deptId makes no sense; supplying one there is
// a client error rather than a silently ignored parameter.
func parseParams(w http.ResponseWriter, r *http.Request, allowDept bool) (reportParams, bool) {
	requestID := middleware.GetRequestID(r.Context())
	var params reportParams

	period, err := reporting.ParsePeriodType(r.URL.Query().Get("periodType"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_filter", "periodType must be one of day, week, month, quarter, year", requestID)
		return params, false
	}
	params.period = period

	deptID, err := shared.QueryID(r, "deptId")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_filter", "deptId must be numeric", requestID)
		return params, false
	}
	if deptID != nil && !allowDept {
		api.Fail(w, http.StatusBadRequest, "invalid_filter", "deptId is not valid for employee reports", requestID)
		return params, false
	}
	params.deptID = deptID

	params.skillID, err = shared.QueryID(r, "skillId")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_filter", "skillId must be numeric", requestID)
		return params, false
	}

	if raw := r.URL.Query().Get("startDate"); raw != "" {
		parsed, err := shared.ParseDate(raw)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_filter", "startDate must be a valid date", requestID)
			return params, false
		}
		params.startDate = &parsed
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		parsed, err := shared.ParseDate(raw)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_filter", "endDate must be a valid date", requestID)
			return params, false
		}
		params.endDate = &parsed
	}
	if params.startDate != nil && params.endDate != nil && params.endDate.Before(*params.startDate) {
		api.Fail(w, http.StatusBadRequest, "invalid_filter", "startDate must be on or before endDate", requestID)
		return params, false
	}

	return params, true
}

// respond writes the report payload, serving and refreshing the cache keyed
// by the full request URI. Cached entries hold the data document only, so
// each response still carries its own request id.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data any) {
	requestID := middleware.GetRequestID(r.Context())
	payload, err := json.Marshal(data)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to encode report", requestID)
		return
	}
	h.Cache.Set(r.Context(), r.URL.RequestURI(), payload)
	api.Success(w, json.RawMessage(payload), requestID)
}

func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request) bool {
	payload, ok := h.Cache.Get(r.Context(), r.URL.RequestURI())
	if !ok {
		return false
	}
	api.Success(w, json.RawMessage(payload), middleware.GetRequestID(r.Context()))
	return true
}

func failReport(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, reporting.ErrOrganizationNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "organization not found", requestID)
	case errors.Is(err, reporting.ErrDepartmentNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "department not found", requestID)
	case errors.Is(err, reporting.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to build report", requestID)
	}
}

func (h *Handler) handleOrgReport(w http.ResponseWriter, r *http.Request) {
	orgID, err := shared.PathID(r, "orgID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "organization id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	params, ok := parseParams(w, r, true)
	if !ok {
		return
	}
	if h.serveCached(w, r) {
		return
	}

	report, err := h.Service.OrgDeptReport(r.Context(), reporting.OrgDeptQuery{
		OrganizationID: orgID,
		DepartmentID:   params.deptID,
		SkillID:        params.skillID,
		Period:         params.period,
		StartDate:      params.startDate,
		EndDate:        params.endDate,
	})
	if err != nil {
		failReport(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	h.respond(w, r, report)
}

func (h *Handler) handleOrgReportPDF(w http.ResponseWriter, r *http.Request) {
	orgID, err := shared.PathID(r, "orgID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "organization id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	params, ok := parseParams(w, r, true)
	if !ok {
		return
	}

	report, err := h.Service.OrgDeptReport(r.Context(), reporting.OrgDeptQuery{
		OrganizationID: orgID,
		DepartmentID:   params.deptID,
		SkillID:        params.skillID,
		Period:         params.period,
		StartDate:      params.startDate,
		EndDate:        params.endDate,
	})
	if err != nil {
		failReport(w, err, middleware.GetRequestID(r.Context()))
		return
	}

	payload, err := reporting.RenderOrgDeptPDF(report)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_export_failed", "failed to render report PDF", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="skill-report-`+strconv.FormatInt(orgID, 10)+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (h *Handler) handleEmployeeReport(w http.ResponseWriter, r *http.Request) {
	employeeID, err := shared.PathID(r, "employeeID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	params, ok := parseParams(w, r, false)
	if !ok {
		return
	}
	if h.serveCached(w, r) {
		return
	}

	report, err := h.Service.EmployeeReport(r.Context(), reporting.EmployeeQuery{
		EmployeeID: employeeID,
		SkillID:    params.skillID,
		Period:     params.period,
		StartDate:  params.startDate,
		EndDate:    params.endDate,
	})
	if err != nil {
		failReport(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	h.respond(w, r, report)
}

func (h *Handler) handleEmployeeTimeline(w http.ResponseWriter, r *http.Request) {
	employeeID, err := shared.PathID(r, "employeeID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	params, ok := parseParams(w, r, false)
	if !ok {
		return
	}
	if h.serveCached(w, r) {
		return
	}

	timeline, err := h.Service.EmployeeSkillTimeline(r.Context(), reporting.EmployeeQuery{
		EmployeeID: employeeID,
		SkillID:    params.skillID,
		StartDate:  params.startDate,
		EndDate:    params.endDate,
	})
	if err != nil {
		failReport(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	if timeline == nil {
		api.Fail(w, http.StatusNotFound, "no_timeline_data", "no skill entries match the given filters", middleware.GetRequestID(r.Context()))
		return
	}
	h.respond(w, r, timeline)
}

func (h *Handler) handleOrgTimeline(w http.ResponseWriter, r *http.Request) {
	orgID, err := shared.PathID(r, "orgID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "organization id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	params, ok := parseParams(w, r, true)
	if !ok {
		return
	}
	if h.serveCached(w, r) {
		return
	}

	timeline, err := h.Service.OrgDeptSkillTimeline(r.Context(), reporting.OrgDeptQuery{
		OrganizationID: orgID,
		DepartmentID:   params.deptID,
		SkillID:        params.skillID,
		StartDate:      params.startDate,
		EndDate:        params.endDate,
	})
	if err != nil {
		failReport(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	if timeline == nil {
		api.Fail(w, http.StatusNotFound, "no_timeline_data", "no skill entries match the given filters", middleware.GetRequestID(r.Context()))
		return
	}
	h.respond(w, r, timeline)
}
