package converter

import (
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
)

// SpecialtyToResponse converts a Specialty entity to SpecialtyResponse DTO
func SpecialtyToResponse(specialty *entity.Specialty) *dto.SpecialtyResponse {
	if specialty == nil {
		return nil
	}
	return &dto.SpecialtyResponse{ID: specialty.ID, Name: specialty.Name}
}

func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i := range specialties {
		responses[i] = *SpecialtyToResponse(&specialties[i])
	}
	return responses
}

// StatusToResponse converts a Status entity to StatusResponse DTO
func StatusToResponse(status *entity.Status) *dto.StatusResponse {
	if status == nil {
		return nil
	}
	return &dto.StatusResponse{ID: status.ID, Name: status.Name}
}

func StatusesToResponses(statuses []entity.Status) []dto.StatusResponse {
	responses := make([]dto.StatusResponse, len(statuses))
	for i := range statuses {
		responses[i] = *StatusToResponse(&statuses[i])
	}
	return responses
}
