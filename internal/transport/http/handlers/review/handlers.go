package reviewhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pulse/internal/domain/review"
	"pulse/internal/transport/http/api"
	"pulse/internal/transport/http/middleware"
	"pulse/internal/transport/http/shared"
)

type Handler struct {
	Service *review.Service
}

func NewHandler(service *review.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{reviewID}", h.handleGet)
		r.Put("/{reviewID}", h.handleUpdate)
		r.Delete("/{reviewID}", h.handleDelete)
	})
}

type reviewPayload struct {
	EmployeeID    int64   `json:"employeeId"`
	ReviewDate    string  `json:"reviewDate"`
	OverallRating float64 `json:"overallRating"`
	Reviewer      string  `json:"reviewer"`
	Notes         string  `json:"notes"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter := review.ListFilter{}

	if employeeID, err := shared.QueryID(r, "employeeId"); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_filter", "employeeId must be numeric", middleware.GetRequestID(r.Context()))
		return
	} else if employeeID != nil {
		filter.EmployeeID = *employeeID
	}

	if raw := r.URL.Query().Get("startDate"); raw != "" {
		parsed, err := shared.ParseDate(raw)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_filter", "startDate must be a valid date", middleware.GetRequestID(r.Context()))
			return
		}
		filter.From = &parsed
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		parsed, err := shared.ParseDate(raw)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_filter", "endDate must be a valid date", middleware.GetRequestID(r.Context()))
			return
		}
		filter.To = &parsed
	}

	reviews, err := h.Service.List(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_list_failed", "failed to list reviews", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, reviews, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload reviewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Positive("employeeId", payload.EmployeeID, "employeeId is required")
	v.Rating("overallRating", payload.OverallRating)
	var reviewDate time.Time
	if payload.ReviewDate != "" {
		if parsed, ok := v.Date("reviewDate", payload.ReviewDate); ok {
			reviewDate = parsed
		}
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.Create(r.Context(), review.Review{
		EmployeeID:    payload.EmployeeID,
		ReviewDate:    reviewDate,
		OverallRating: payload.OverallRating,
		Reviewer:      payload.Reviewer,
		Notes:         payload.Notes,
	})
	if errors.Is(err, review.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_create_failed", "failed to create review", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]any{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "reviewID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "review id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	rv, err := h.Service.Get(r.Context(), id)
	if errors.Is(err, review.ErrReviewNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "review not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_get_failed", "failed to load review", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rv, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "reviewID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "review id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	var payload reviewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Rating("overallRating", payload.OverallRating)
	reviewDate, _ := v.Date("reviewDate", payload.ReviewDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err = h.Service.Update(r.Context(), id, review.Review{
		ReviewDate:    reviewDate,
		OverallRating: payload.OverallRating,
		Reviewer:      payload.Reviewer,
		Notes:         payload.Notes,
	})
	if errors.Is(err, review.ErrReviewNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "review not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_update_failed", "failed to update review", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"updated": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "reviewID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "review id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	err = h.Service.Delete(r.Context(), id)
	if errors.Is(err, review.ErrReviewNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "review not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_delete_failed", "failed to delete review", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}
