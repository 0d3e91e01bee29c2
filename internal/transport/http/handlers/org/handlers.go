package orghandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pulse/internal/domain/org"
	"pulse/internal/transport/http/api"
	"pulse/internal/transport/http/middleware"
	"pulse/internal/transport/http/shared"
)

type Handler struct {
	Service *org.Service
}

func NewHandler(service *org.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/organizations", func(r chi.Router) {
		r.Get("/", h.handleListOrganizations)
		r.Post("/", h.handleCreateOrganization)
		r.Get("/{orgID}", h.handleGetOrganization)
		r.Put("/{orgID}", h.handleUpdateOrganization)
		r.Delete("/{orgID}", h.handleDeleteOrganization)
		r.Get("/{orgID}/departments", h.handleListOrganizationDepartments)
	})
	r.Route("/departments", func(r chi.Router) {
		r.Get("/", h.handleListDepartments)
		r.Post("/", h.handleCreateDepartment)
		r.Get("/{departmentID}", h.handleGetDepartment)
		r.Put("/{departmentID}", h.handleUpdateDepartment)
		r.Delete("/{departmentID}", h.handleDeleteDepartment)
	})
}

func (h *Handler) handleListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.Service.ListOrganizations(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "organization_list_failed", "failed to list organizations", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, orgs, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateOrganization(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name     string `json:"name"`
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.CreateOrganization(r.Context(), org.Organization{Name: payload.Name, Location: payload.Location})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "organization_create_failed", "failed to create organization", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]any{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "orgID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "organization id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	o, err := h.Service.GetOrganization(r.Context(), id)
	if errors.Is(err, org.ErrOrganizationNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "organization not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "organization_get_failed", "failed to load organization", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, o, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "orgID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "organization id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		Name     string `json:"name"`
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err = h.Service.UpdateOrganization(r.Context(), id, org.Organization{Name: payload.Name, Location: payload.Location})
	if errors.Is(err, org.ErrOrganizationNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "organization not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "organization_update_failed", "failed to update organization", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"updated": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "orgID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "organization id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	err = h.Service.DeleteOrganization(r.Context(), id)
	if errors.Is(err, org.ErrOrganizationNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "organization not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "organization_delete_failed", "failed to delete organization", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListOrganizationDepartments(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "orgID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "organization id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	departments, err := h.Service.ListDepartmentsByOrganization(r.Context(), id)
	if errors.Is(err, org.ErrOrganizationNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "organization not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_list_failed", "failed to list departments", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, departments, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Service.ListDepartments(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_list_failed", "failed to list departments", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, departments, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name           string `json:"name"`
		OrganizationID int64  `json:"organizationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Positive("organizationId", payload.OrganizationID, "organizationId is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.CreateDepartment(r.Context(), org.Department{Name: payload.Name, OrganizationID: payload.OrganizationID})
	if errors.Is(err, org.ErrOrganizationNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "organization not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_create_failed", "failed to create department", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]any{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "departmentID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "department id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	d, err := h.Service.GetDepartment(r.Context(), id)
	if errors.Is(err, org.ErrDepartmentNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "department not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_get_failed", "failed to load department", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, d, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "departmentID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "department id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err = h.Service.UpdateDepartment(r.Context(), id, payload.Name)
	if errors.Is(err, org.ErrDepartmentNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "department not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_update_failed", "failed to update department", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"updated": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "departmentID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "department id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	err = h.Service.DeleteDepartment(r.Context(), id)
	switch {
	case errors.Is(err, org.ErrDepartmentNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "department not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, org.ErrDepartmentHasEmployees):
		api.Fail(w, http.StatusConflict, "department_not_empty", "department still has employees assigned", middleware.GetRequestID(r.Context()))
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "department_delete_failed", "failed to delete department", middleware.GetRequestID(r.Context()))
	default:
		api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
	}
}
