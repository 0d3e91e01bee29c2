package skillhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pulse/internal/domain/skill"
	"pulse/internal/transport/http/api"
	"pulse/internal/transport/http/middleware"
	"pulse/internal/transport/http/shared"
)

type Handler struct {
	Service *skill.Service
}

func NewHandler(service *skill.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/skills", func(r chi.Router) {
		r.Get("/", h.handleListSkills)
		r.Post("/", h.handleCreateSkill)
		r.Get("/{skillID}", h.handleGetSkill)
		r.Put("/{skillID}", h.handleUpdateSkill)
		r.Delete("/{skillID}", h.handleDeleteSkill)
	})
	r.Route("/occupations", func(r chi.Router) {
		r.Get("/", h.handleListOccupations)
		r.Post("/", h.handleCreateOccupation)
		r.Get("/{occupationID}", h.handleGetOccupation)
		r.Put("/{occupationID}", h.handleUpdateOccupation)
		r.Delete("/{occupationID}", h.handleDeleteOccupation)
	})
}

type skillPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	EscoID      string `json:"escoId"`
}

func (h *Handler) handleListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.Service.ListSkills(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "skill_list_failed", "failed to list skills", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, skills, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var payload skillPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.CreateSkill(r.Context(), skill.Skill{Name: payload.Name, Description: payload.Description, EscoID: payload.EscoID})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "skill_create_failed", "failed to create skill", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]any{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "skillID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "skill id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	sk, err := h.Service.GetSkill(r.Context(), id)
	if errors.Is(err, skill.ErrSkillNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "skill not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "skill_get_failed", "failed to load skill", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, sk, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "skillID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "skill id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	var payload skillPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err = h.Service.UpdateSkill(r.Context(), id, skill.Skill{Name: payload.Name, Description: payload.Description, EscoID: payload.EscoID})
	if errors.Is(err, skill.ErrSkillNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "skill not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "skill_update_failed", "failed to update skill", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"updated": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "skillID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "skill id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	err = h.Service.DeleteSkill(r.Context(), id)
	if errors.Is(err, skill.ErrSkillNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "skill not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "skill_delete_failed", "failed to delete skill", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListOccupations(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	occupations, err := h.Service.ListOccupations(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "occupation_list_failed", "failed to list occupations", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, occupations, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateOccupation(w http.ResponseWriter, r *http.Request) {
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

	id, err := h.Service.CreateOccupation(r.Context(), skill.Occupation{Name: payload.Name})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "occupation_create_failed", "failed to create occupation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]any{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetOccupation(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "occupationID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "occupation id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	o, err := h.Service.GetOccupation(r.Context(), id)
	if errors.Is(err, skill.ErrOccupationNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "occupation not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "occupation_get_failed", "failed to load occupation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, o, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateOccupation(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "occupationID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "occupation id must be numeric", middleware.GetRequestID(r.Context()))
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

	err = h.Service.UpdateOccupation(r.Context(), id, payload.Name)
	if errors.Is(err, skill.ErrOccupationNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "occupation not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "occupation_update_failed", "failed to update occupation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"updated": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteOccupation(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "occupationID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "occupation id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	err = h.Service.DeleteOccupation(r.Context(), id)
	if errors.Is(err, skill.ErrOccupationNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "occupation not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "occupation_delete_failed", "failed to delete occupation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}
