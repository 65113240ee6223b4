package handler

import (
	"errors"
	"net/http"

	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/response"
)

type errorMapping struct {
	target  error
	write   func(w http.ResponseWriter, message string)
	message string
}

// domainErrors maps use case sentinels to responses.
var domainErrors = []errorMapping{
	{usecase.ErrSpecialtyNotFound, response.NotFound, "Specialty not found"},
	{usecase.ErrStatusNotFound, response.NotFound, "Status not found"},
	{usecase.ErrPatientNotFound, response.NotFound, "Patient not found"},
	{usecase.ErrDoctorNotFound, response.NotFound, "Doctor not found"},
	{usecase.ErrAppointmentNotFound, response.NotFound, "Appointment not found"},
	{usecase.ErrUserNotFound, response.NotFound, "User not found"},

	{usecase.ErrSpecialtyNameExists, response.Conflict, "Specialty name already exists"},
	{usecase.ErrStatusNameExists, response.Conflict, "Status name already exists"},
	{usecase.ErrSpecialtyInUse, response.Conflict, "Specialty is still in use"},
	{usecase.ErrStatusInUse, response.Conflict, "Status is still in use"},
	{usecase.ErrPatientReferenced, response.Conflict, "Patient has appointments"},
	{usecase.ErrDoctorReferenced, response.Conflict, "Doctor has appointments"},

	{usecase.ErrUnknownSpecialty, response.UnprocessableEntity, "Specialty does not exist"},
	{usecase.ErrUnknownStatus, response.UnprocessableEntity, "Status does not exist"},
	{usecase.ErrUnknownPatient, response.UnprocessableEntity, "Patient does not exist"},
	{usecase.ErrUnknownDoctor, response.UnprocessableEntity, "Doctor does not exist"},
	{usecase.ErrSpecialtyNotOffered, response.UnprocessableEntity, "Doctor does not practise the requested specialty"},

	{usecase.ErrInvalidAppointmentDate, response.BadRequest, "Invalid appointment date"},
}

// writeError responds with the status mapped to err, or 500 with fallback.
func writeError(w http.ResponseWriter, err error, fallback string) {
	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			m.write(w, m.message)
			return
		}
	}
	response.InternalServerError(w, fallback)
}
