package converter

import (
	"time"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Related records are embedded in full; the date is emitted as RFC 3339 UTC.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		Patient:         *PatientToResponse(&appointment.Patient),
		Doctor:          *DoctorToResponse(&appointment.Doctor),
		Specialty:       *SpecialtyToResponse(&appointment.Specialty),
		AppointmentDate: appointment.AppointmentDate.UTC().Format(time.RFC3339),
		Observation:     appointment.Observation,
	}

	for _, s := range appointment.Specialties {
		response.SpecialtyIDs = append(response.SpecialtyIDs, s.ID)
	}

	return response
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
