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
	ErrSpecialtyNotFound   = errors.New("specialty not found")
	ErrSpecialtyNameExists = errors.New("specialty name already exists")
	ErrSpecialtyInUse      = errors.New("specialty is still referenced")
	ErrUnknownSpecialty    = errors.New("specialty does not exist")
)

type SpecialtyUsecase interface {
	Create(ctx context.Context, form *dto.SpecialtyForm) (*dto.SpecialtyResponse, error)
	GetList(ctx context.Context, req *dto.GetSpecialtyListRequest) (*dto.GetSpecialtyListResponse, error)
	Get(ctx context.Context, id int) (*dto.SpecialtyResponse, error)
	Update(ctx context.Context, id int, form *dto.SpecialtyForm) (*dto.SpecialtyResponse, error)
	Delete(ctx context.Context, id int) error
	Options(ctx context.Context) ([]dto.SpecialtyResponse, error)
}

type specialtyUsecase struct {
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
	cache         service.LookupCache
	auditService  service.AuditService
}

func NewSpecialtyUsecase(
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
	cache service.LookupCache,
	auditService service.AuditService,
) SpecialtyUsecase {
	return &specialtyUsecase{
		log:           log,
		specialtyRepo: specialtyRepo,
		cache:         cache,
		auditService:  auditService,
	}
}

func (u *specialtyUsecase) Create(ctx context.Context, form *dto.SpecialtyForm) (*dto.SpecialtyResponse, error) {
	specialty := &entity.Specialty{Name: strings.TrimSpace(form.Name)}

	if err := u.specialtyRepo.Create(ctx, specialty); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialtyNameExists
		}
		u.log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}

	u.invalidateOptions(ctx)
	resp := converter.SpecialtyToResponse(specialty)
	u.auditService.LogCreate(ctx, middleware.ActorFromContext(ctx), entity.AuditActionSpecialtyCreate, "specialty", strconv.Itoa(specialty.ID), resp)

	return resp, nil
}

func (u *specialtyUsecase) GetList(ctx context.Context, req *dto.GetSpecialtyListRequest) (*dto.GetSpecialtyListResponse, error) {
	filter := entity.NameFilter{Name: textFilter(req.Name)}

	specialties, total, err := u.specialtyRepo.FindAll(ctx, filter, toPage(req.PageRequest))
	if err != nil {
		u.log.Warnf("Failed to find specialties: %+v", err)
		return nil, err
	}

	return &dto.GetSpecialtyListResponse{
		Total: pagination.ReconcileTotal(total, len(specialties)),
		Items: converter.SpecialtiesToResponses(specialties),
	}, nil
}

func (u *specialtyUsecase) Get(ctx context.Context, id int) (*dto.SpecialtyResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) Update(ctx context.Context, id int, form *dto.SpecialtyForm) (*dto.SpecialtyResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	oldValue := converter.SpecialtyToResponse(specialty)
	specialty.Name = strings.TrimSpace(form.Name)

	if err := u.specialtyRepo.Update(ctx, specialty); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialtyNameExists
		}
		u.log.Warnf("Failed to update specialty: %+v", err)
		return nil, err
	}

	u.invalidateOptions(ctx)
	newValue := converter.SpecialtyToResponse(specialty)
	u.auditService.LogUpdate(ctx, middleware.ActorFromContext(ctx), entity.AuditActionSpecialtyUpdate, "specialty", strconv.Itoa(id), oldValue, newValue)

	return newValue, nil
}

func (u *specialtyUsecase) Delete(ctx context.Context, id int) error {
	specialty, err := u.specialtyRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return err
	}
	if specialty == nil {
		return ErrSpecialtyNotFound
	}

	affected, err := u.specialtyRepo.Delete(ctx, id)
	if err != nil {
		if isForeignKeyError(err, "specialt") {
			return ErrSpecialtyInUse
		}
		u.log.Warnf("Failed to delete specialty: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSpecialtyNotFound
	}

	u.invalidateOptions(ctx)
	u.auditService.LogDelete(ctx, middleware.ActorFromContext(ctx), entity.AuditActionSpecialtyDelete, "specialty", strconv.Itoa(id), converter.SpecialtyToResponse(specialty))

	return nil
}

// Options returns every specialty for form dropdowns, cached in Redis.
func (u *specialtyUsecase) Options(ctx context.Context) ([]dto.SpecialtyResponse, error) {
	var cached []dto.SpecialtyResponse
	hit, err := u.cache.Get(ctx, service.LookupKeySpecialties, &cached)
	if err != nil {
		u.log.Warnf("Failed to read specialty options from cache: %+v", err)
	}
	if hit {
		return cached, nil
	}

	specialties, err := u.specialtyRepo.ListAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list specialties: %+v", err)
		return nil, err
	}

	options := converter.SpecialtiesToResponses(specialties)
	if err := u.cache.Set(ctx, service.LookupKeySpecialties, options); err != nil {
		u.log.Warnf("Failed to cache specialty options: %+v", err)
	}

	return options, nil
}

func (u *specialtyUsecase) invalidateOptions(ctx context.Context) {
	if err := u.cache.Invalidate(ctx, service.LookupKeySpecialties); err != nil {
		u.log.Warnf("Failed to invalidate specialty options: %+v", err)
	}
}
