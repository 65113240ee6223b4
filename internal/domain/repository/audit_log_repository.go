package repository

import (
	"context"

	"clinic-admin/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context, page entity.Page) ([]entity.AuditLog, int64, error)
}
