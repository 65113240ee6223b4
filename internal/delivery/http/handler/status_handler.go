package handler

import (
	"net/http"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/response"
	"clinic-admin/pkg/validator"
)

type StatusHandler struct {
	statusUsecase usecase.StatusUsecase
	validator     *validator.CustomValidator
}

func NewStatusHandler(statusUsecase usecase.StatusUsecase, validator *validator.CustomValidator) *StatusHandler {
	return &StatusHandler{
		statusUsecase: statusUsecase,
		validator:     validator,
	}
}

// Create handles status creation
func (h *StatusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusForm
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	status, err := h.statusUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create status")
		return
	}

	response.Success(w, http.StatusCreated, "Status created successfully", status)
}

// GetList handles paginated status listing
func (h *StatusHandler) GetList(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	req := dto.GetStatusListRequest{
		PageRequest: q.page(),
		Name:        q.stringValue("name"),
	}
	if q.failed() {
		response.ValidationError(w, q.errs)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	list, err := h.statusUsecase.GetList(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to get statuses")
		return
	}

	response.Success(w, http.StatusOK, "Statuses retrieved successfully", list)
}

// Get handles getting a status by ID
func (h *StatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid status ID")
		return
	}

	status, err := h.statusUsecase.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get status")
		return
	}

	response.Success(w, http.StatusOK, "Status retrieved successfully", status)
}

// Update handles status update
func (h *StatusHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid status ID")
		return
	}

	var req dto.StatusForm
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	status, err := h.statusUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update status")
		return
	}

	response.Success(w, http.StatusOK, "Status updated successfully", status)
}

// Delete handles status deletion
func (h *StatusHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid status ID")
		return
	}

	if err := h.statusUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete status")
		return
	}

	response.Success(w, http.StatusOK, "Status deleted successfully", nil)
}

// Options handles the dropdown lookup list
func (h *StatusHandler) Options(w http.ResponseWriter, r *http.Request) {
	options, err := h.statusUsecase.Options(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get statuses")
		return
	}

	response.Success(w, http.StatusOK, "Statuses retrieved successfully", options)
}
