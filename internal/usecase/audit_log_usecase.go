package usecase

import (
	"context"

	"clinic-admin/internal/converter"
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/repository"
	"clinic-admin/pkg/pagination"

	"github.com/sirupsen/logrus"
)

type AuditLogUsecase interface {
	GetList(ctx context.Context, req *dto.GetAuditLogListRequest) (*dto.GetAuditLogListResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetList(ctx context.Context, req *dto.GetAuditLogListRequest) (*dto.GetAuditLogListResponse, error) {
	logs, total, err := u.auditLogRepo.FindAll(ctx, toPage(req.PageRequest))
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.GetAuditLogListResponse{
		Total: pagination.ReconcileTotal(total, len(logs)),
		Items: converter.AuditLogsToResponses(logs),
	}, nil
}
