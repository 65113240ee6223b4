package repository

import (
	"context"

	"clinic-admin/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindAll(ctx context.Context, filter entity.PatientFilter, page entity.Page) ([]entity.Patient, int64, error)
	FindByID(ctx context.Context, id int) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id int) (int64, error)
}
