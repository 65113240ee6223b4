package repository

import (
	"context"

	"clinic-admin/internal/domain/entity"
)

type SpecialtyRepository interface {
	Create(ctx context.Context, specialty *entity.Specialty) error
	FindAll(ctx context.Context, filter entity.NameFilter, page entity.Page) ([]entity.Specialty, int64, error)
	FindByID(ctx context.Context, id int) (*entity.Specialty, error)
	FindByIDs(ctx context.Context, ids []int) ([]entity.Specialty, error)
	ListAll(ctx context.Context) ([]entity.Specialty, error)
	Update(ctx context.Context, specialty *entity.Specialty) error
	Delete(ctx context.Context, id int) (int64, error)
}
