package handler

import (
	"net/http"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/response"
	"clinic-admin/pkg/validator"
)

type SpecialtyHandler struct {
	specialtyUsecase usecase.SpecialtyUsecase
	validator        *validator.CustomValidator
}

func NewSpecialtyHandler(specialtyUsecase usecase.SpecialtyUsecase, validator *validator.CustomValidator) *SpecialtyHandler {
	return &SpecialtyHandler{
		specialtyUsecase: specialtyUsecase,
		validator:        validator,
	}
}

// Create handles specialty creation
// @Summary Create a new specialty
// @Tags Specialties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SpecialtyForm true "Specialty Form"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /specialties [post]
func (h *SpecialtyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SpecialtyForm
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialty, err := h.specialtyUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create specialty")
		return
	}

	response.Success(w, http.StatusCreated, "Specialty created successfully", specialty)
}

// GetList handles paginated specialty listing
// @Summary List specialties
// @Tags Specialties
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param itemsPerPage query int false "Items per page" default(10)
// @Param name query string false "Name contains"
// @Success 200 {object} response.Response
// @Router /specialties [get]
func (h *SpecialtyHandler) GetList(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	req := dto.GetSpecialtyListRequest{
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

	list, err := h.specialtyUsecase.GetList(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", list)
}

// Get handles getting a specialty by ID
// @Summary Get specialty by ID
// @Tags Specialties
// @Security BearerAuth
// @Produce json
// @Param id path int true "Specialty ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /specialties/{id} [get]
func (h *SpecialtyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid specialty ID")
		return
	}

	specialty, err := h.specialtyUsecase.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty retrieved successfully", specialty)
}

// Update handles specialty update
// @Summary Update a specialty
// @Tags Specialties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Specialty ID"
// @Param request body dto.SpecialtyForm true "Specialty Form"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /specialties/{id} [put]
func (h *SpecialtyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid specialty ID")
		return
	}

	var req dto.SpecialtyForm
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialty, err := h.specialtyUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty updated successfully", specialty)
}

// Delete handles specialty deletion
// @Summary Delete a specialty
// @Tags Specialties
// @Security BearerAuth
// @Produce json
// @Param id path int true "Specialty ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /specialties/{id} [delete]
func (h *SpecialtyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid specialty ID")
		return
	}

	if err := h.specialtyUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty deleted successfully", nil)
}

// Options handles the dropdown lookup list
// @Summary List every specialty
// @Tags Specialties
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /specialties/options [get]
func (h *SpecialtyHandler) Options(w http.ResponseWriter, r *http.Request) {
	options, err := h.specialtyUsecase.Options(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", options)
}
