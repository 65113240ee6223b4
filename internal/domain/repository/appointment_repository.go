package repository

import (
	"context"

	"clinic-admin/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindAll(ctx context.Context, filter entity.AppointmentFilter, page entity.Page) ([]entity.Appointment, int64, error)
	FindByID(ctx context.Context, id int) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id int) (int64, error)
}
