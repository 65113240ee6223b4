package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"clinic-admin/internal/converter"
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/delivery/http/middleware"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"
	"clinic-admin/internal/service"
	"clinic-admin/pkg/pagination"

	"github.com/sirupsen/logrus"
)

var (
	ErrStatusNotFound   = errors.New("status not found")
	ErrStatusNameExists = errors.New("status name already exists")
	ErrStatusInUse      = errors.New("status is still referenced")
	ErrUnknownStatus    = errors.New("status does not exist")
)

type StatusUsecase interface {
	Create(ctx context.Context, form *dto.StatusForm) (*dto.StatusResponse, error)
	GetList(ctx context.Context, req *dto.GetStatusListRequest) (*dto.GetStatusListResponse, error)
	Get(ctx context.Context, id int) (*dto.StatusResponse, error)
	Update(ctx context.Context, id int, form *dto.StatusForm) (*dto.StatusResponse, error)
	Delete(ctx context.Context, id int) error
	Options(ctx context.Context) ([]dto.StatusResponse, error)
}

type statusUsecase struct {
	log          *logrus.Logger
	statusRepo   repository.StatusRepository
	cache        service.LookupCache
	auditService service.AuditService
}

func NewStatusUsecase(
	log *logrus.Logger,
	statusRepo repository.StatusRepository,
	cache service.LookupCache,
	auditService service.AuditService,
) StatusUsecase {
	return &statusUsecase{
		log:          log,
		statusRepo:   statusRepo,
		cache:        cache,
		auditService: auditService,
	}
}

func (u *statusUsecase) Create(ctx context.Context, form *dto.StatusForm) (*dto.StatusResponse, error) {
	status := &entity.Status{Name: strings.TrimSpace(form.Name)}

	if err := u.statusRepo.Create(ctx, status); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrStatusNameExists
		}
		u.log.Warnf("Failed to create status: %+v", err)
		return nil, err
	}

	u.invalidateOptions(ctx)
	resp := converter.StatusToResponse(status)
	u.auditService.LogCreate(ctx, middleware.ActorFromContext(ctx), entity.AuditActionStatusCreate, "status", strconv.Itoa(status.ID), resp)

	return resp, nil
}

func (u *statusUsecase) GetList(ctx context.Context, req *dto.GetStatusListRequest) (*dto.GetStatusListResponse, error) {
	filter := entity.NameFilter{Name: textFilter(req.Name)}

	statuses, total, err := u.statusRepo.FindAll(ctx, filter, toPage(req.PageRequest))
	if err != nil {
		u.log.Warnf("Failed to find statuses: %+v", err)
		return nil, err
	}

	return &dto.GetStatusListResponse{
		Total: pagination.ReconcileTotal(total, len(statuses)),
		Items: converter.StatusesToResponses(statuses),
	}, nil
}

func (u *statusUsecase) Get(ctx context.Context, id int) (*dto.StatusResponse, error) {
	status, err := u.statusRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find status: %+v", err)
		return nil, err
	}
	if status == nil {
		return nil, ErrStatusNotFound
	}

	return converter.StatusToResponse(status), nil
}

func (u *statusUsecase) Update(ctx context.Context, id int, form *dto.StatusForm) (*dto.StatusResponse, error) {
	status, err := u.statusRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find status: %+v", err)
		return nil, err
	}
	if status == nil {
		return nil, ErrStatusNotFound
	}

	oldValue := converter.StatusToResponse(status)
	status.Name = strings.TrimSpace(form.Name)

	if err := u.statusRepo.Update(ctx, status); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrStatusNameExists
		}
		u.log.Warnf("Failed to update status: %+v", err)
		return nil, err
	}

	u.invalidateOptions(ctx)
	newValue := converter.StatusToResponse(status)
	u.auditService.LogUpdate(ctx, middleware.ActorFromContext(ctx), entity.AuditActionStatusUpdate, "status", strconv.Itoa(id), oldValue, newValue)

	return newValue, nil
}

func (u *statusUsecase) Delete(ctx context.Context, id int) error {
	status, err := u.statusRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find status: %+v", err)
		return err
	}
	if status == nil {
		return ErrStatusNotFound
	}

	affected, err := u.statusRepo.Delete(ctx, id)
	if err != nil {
		if isForeignKeyError(err, "status") {
			return ErrStatusInUse
		}
		u.log.Warnf("Failed to delete status: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrStatusNotFound
	}

	u.invalidateOptions(ctx)
	u.auditService.LogDelete(ctx, middleware.ActorFromContext(ctx), entity.AuditActionStatusDelete, "status", strconv.Itoa(id), converter.StatusToResponse(status))

	return nil
}

// Options returns every status for form dropdowns.
func (u *statusUsecase) Options(ctx context.Context) ([]dto.StatusResponse, error) {
	var cached []dto.StatusResponse
	hit, err := u.cache.Get(ctx, service.LookupKeyStatuses, &cached)
	if err != nil {
		u.log.Warnf("Failed to read status options from cache: %+v", err)
	}
	if hit {
		return cached, nil
	}

	statuses, err := u.statusRepo.ListAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list statuses: %+v", err)
		return nil, err
	}

	options := converter.StatusesToResponses(statuses)
	if err := u.cache.Set(ctx, service.LookupKeyStatuses, options); err != nil {
		u.log.Warnf("Failed to cache status options: %+v", err)
	}

	return options, nil
}

func (u *statusUsecase) invalidateOptions(ctx context.Context) {
	if err := u.cache.Invalidate(ctx, service.LookupKeyStatuses); err != nil {
		u.log.Warnf("Failed to invalidate status options: %+v", err)
	}
}
