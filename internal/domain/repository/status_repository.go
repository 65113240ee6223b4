package repository

import (
	"context"

	"clinic-admin/internal/domain/entity"
)

type StatusRepository interface {
	Create(ctx context.Context, status *entity.Status) error
	FindAll(ctx context.Context, filter entity.NameFilter, page entity.Page) ([]entity.Status, int64, error)
	FindByID(ctx context.Context, id int) (*entity.Status, error)
	ListAll(ctx context.Context) ([]entity.Status, error)
	Update(ctx context.Context, status *entity.Status) error
	Delete(ctx context.Context, id int) (int64, error)
}
