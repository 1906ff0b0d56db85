package handler

import (
	"errors"
	"net/http"

	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
	"github.com/btspl-dev/asset-tracker/backend/internal/repository"
)

func (h *Handler) GetAllDropdownOptions(w http.ResponseWriter, r *http.Request) {
	category := domain.DropdownCategory(r.URL.Query().Get("category"))
	if category != "" && !domain.ValidDropdownCategory(category) {
		h.errorResponse(w, r, "unknown dropdown category")
		return
	}

	options := h.repository.GetDropdownOptions(category)
	h.successResponse(w, r, "dropdown options retrieved", options)
}

func (h *Handler) CreateDropdownOption(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category" validate:"required"`
		Value    string `json:"value" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	option := &domain.DropdownOption{
		Category: domain.DropdownCategory(req.Category),
		Value:    req.Value,
	}

	if err := h.repository.CreateDropdownOption(option); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidCategory),
			errors.Is(err, repository.ErrDuplicateValue):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "dropdown option created", option)
}

func (h *Handler) UpdateDropdownOption(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value string `json:"value" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	option := r.Context().Value(DropdownOptionCtx).(*domain.DropdownOption)
	option.Value = req.Value

	if err := h.repository.UpdateDropdownOption(option); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateValue):
			h.errorResponse(w, r, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "dropdown option not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "dropdown option updated", option)
}

// DeleteDropdownOption removes a taxonomy value without touching assets that
// already carry it; the taxonomy only constrains future input.
func (h *Handler) DeleteDropdownOption(w http.ResponseWriter, r *http.Request) {
	option := r.Context().Value(DropdownOptionCtx).(*domain.DropdownOption)

	if err := h.repository.DeleteDropdownOption(option.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "dropdown option not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "dropdown option deleted", nil)
}
