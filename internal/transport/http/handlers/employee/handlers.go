package employeehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pulse/internal/domain/employee"
	"pulse/internal/transport/http/api"
	"pulse/internal/transport/http/middleware"
	"pulse/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
}

func NewHandler(service *employee.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Post("/bulk", h.handleBulkCreate)
		r.Get("/{employeeID}", h.handleGet)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Delete("/{employeeID}", h.handleDelete)
		r.Put("/{employeeID}/department/{departmentID}", h.handleChangeDepartment)
		r.Get("/{employeeID}/skill-entries", h.handleListSkillEntries)
		r.Post("/{employeeID}/skill-entries", h.handleAddSkillEntry)
		r.Delete("/{employeeID}/skill-entries/{entryID}", h.handleRemoveSkillEntry)
		r.Get("/{employeeID}/skill-entries/latest", h.handleLatestSkillRatings)
	})
	r.Get("/departments/{departmentID}/employees", h.handleListByDepartment)
}

type employeePayload struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	OrganizationID int64  `json:"organizationId"`
	DepartmentID   int64  `json:"departmentId"`
	OccupationID   int64  `json:"occupationId"`
}

func (p employeePayload) validate(v *shared.Validator) {
	v.Required("firstName", p.FirstName, "firstName is required")
	v.Required("lastName", p.LastName, "lastName is required")
	v.Required("email", p.Email, "email is required")
	v.Positive("organizationId", p.OrganizationID, "organizationId is required")
	v.Positive("departmentId", p.DepartmentID, "departmentId is required")
	v.Positive("occupationId", p.OccupationID, "occupationId is required")
}

func (p employeePayload) model() employee.Employee {
	return employee.Employee{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		OrganizationID: p.OrganizationID,
		DepartmentID:   p.DepartmentID,
		OccupationID:   p.OccupationID,
	}
}

// failCreate maps relation errors shared by create, update and bulk import.
func failCreate(w http.ResponseWriter, err error, requestID string) bool {
	switch {
	case errors.Is(err, employee.ErrDuplicateEmail):
		api.Fail(w, http.StatusConflict, "duplicate_email", "an employee with this email already exists", requestID)
	case errors.Is(err, employee.ErrOrganizationNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "organization not found", requestID)
	case errors.Is(err, employee.ErrDepartmentNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "department not found", requestID)
	case errors.Is(err, employee.ErrOccupationNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "occupation not found", requestID)
	case errors.Is(err, employee.ErrDepartmentMismatch):
		api.Fail(w, http.StatusBadRequest, "department_mismatch", "department does not belong to the organization", requestID)
	default:
		return false
	}
	return true
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)

	total, err := h.Service.Count(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	employees, err := h.Service.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{
		"items":  employees,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListByDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "departmentID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "department id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	employees, err := h.Service.ListByDepartment(r.Context(), id)
	if errors.Is(err, employee.ErrDepartmentNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "department not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.Create(r.Context(), payload.model())
	if err != nil {
		if !failCreate(w, err, middleware.GetRequestID(r.Context())) {
			api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Created(w, map[string]any{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBulkCreate(w http.ResponseWriter, r *http.Request) {
	var payloads []employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payloads); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	for _, payload := range payloads {
		payload.validate(v)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	employees := make([]employee.Employee, 0, len(payloads))
	for _, payload := range payloads {
		employees = append(employees, payload.model())
	}

	ids, err := h.Service.BulkCreate(r.Context(), employees)
	if err != nil {
		if !failCreate(w, err, middleware.GetRequestID(r.Context())) {
			api.Fail(w, http.StatusInternalServerError, "employee_bulk_create_failed", "failed to import employees", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Created(w, map[string]any{"ids": ids, "count": len(ids)}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "employeeID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	e, err := h.Service.Get(r.Context(), id)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, e, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "employeeID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err = h.Service.Update(r.Context(), id, payload.model())
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		if !failCreate(w, err, middleware.GetRequestID(r.Context())) {
			api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Success(w, map[string]any{"updated": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "employeeID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	err = h.Service.Delete(r.Context(), id)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleChangeDepartment(w http.ResponseWriter, r *http.Request) {
	employeeID, err := shared.PathID(r, "employeeID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	departmentID, err := shared.PathID(r, "departmentID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "department id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	err = h.Service.ChangeDepartment(r.Context(), employeeID, departmentID)
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, employee.ErrDepartmentNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "department not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, employee.ErrDepartmentMismatch):
		api.Fail(w, http.StatusBadRequest, "department_mismatch", "target department belongs to a different organization", middleware.GetRequestID(r.Context()))
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "employee_move_failed", "failed to change department", middleware.GetRequestID(r.Context()))
	default:
		api.Success(w, map[string]any{"updated": true}, middleware.GetRequestID(r.Context()))
	}
}

func (h *Handler) handleListSkillEntries(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "employeeID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	entries, err := h.Service.SkillEntries(r.Context(), id)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "skill_entry_list_failed", "failed to list skill entries", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleLatestSkillRatings(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "employeeID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	ratings, err := h.Service.LatestSkillRatings(r.Context(), id)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "skill_entry_list_failed", "failed to load latest skill ratings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, ratings, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAddSkillEntry(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "employeeID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		SkillID int64   `json:"skillId"`
		Rating  float64 `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Positive("skillId", payload.SkillID, "skillId is required")
	v.Rating("rating", payload.Rating)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	entryID, err := h.Service.AddSkillEntry(r.Context(), id, payload.SkillID, payload.Rating)
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, employee.ErrSkillNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "skill not found", middleware.GetRequestID(r.Context()))
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "skill_entry_create_failed", "failed to add skill entry", middleware.GetRequestID(r.Context()))
	default:
		api.Created(w, map[string]any{"id": entryID}, middleware.GetRequestID(r.Context()))
	}
}

func (h *Handler) handleRemoveSkillEntry(w http.ResponseWriter, r *http.Request) {
	employeeID, err := shared.PathID(r, "employeeID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	entryID, err := shared.PathID(r, "entryID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "entry id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	err = h.Service.RemoveSkillEntry(r.Context(), employeeID, entryID)
	if errors.Is(err, employee.ErrSkillEntryNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "skill entry not found for this employee", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "skill_entry_delete_failed", "failed to remove skill entry", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}
