package repository

import (
	"context"

	"clinic-admin/internal/domain/entity"
)

// DoctorRepository persists doctors together with their specialty set.
// Update replaces the specialty association with doctor.Specialties.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindAll(ctx context.Context, filter entity.DoctorFilter, page entity.Page) ([]entity.Doctor, int64, error)
	FindByID(ctx context.Context, id int) (*entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id int) (int64, error)
}
