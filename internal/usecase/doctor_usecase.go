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
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrDoctorReferenced = errors.New("doctor has appointments")
	ErrUnknownDoctor    = errors.New("doctor does not exist")
)

type DoctorUsecase interface {
	Create(ctx context.Context, form *dto.DoctorForm) (*dto.DoctorResponse, error)
	GetList(ctx context.Context, req *dto.GetDoctorListRequest) (*dto.GetDoctorListResponse, error)
	Get(ctx context.Context, id int) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id int, form *dto.DoctorForm) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id int) error
}

type doctorUsecase struct {
	log           *logrus.Logger
	doctorRepo    repository.DoctorRepository
	specialtyRepo repository.SpecialtyRepository
	statusRepo    repository.StatusRepository
	auditService  service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	specialtyRepo repository.SpecialtyRepository,
	statusRepo repository.StatusRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:           log,
		doctorRepo:    doctorRepo,
		specialtyRepo: specialtyRepo,
		statusRepo:    statusRepo,
		auditService:  auditService,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, form *dto.DoctorForm) (*dto.DoctorResponse, error) {
	specialties, err := resolveSpecialties(ctx, u.specialtyRepo, form.Specialty)
	if err != nil {
		return nil, err
	}
	status, err := resolveStatus(ctx, u.statusRepo, form.StatusID)
	if err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{
		Name:        strings.TrimSpace(form.Name),
		StatusID:    form.StatusID,
		Specialties: specialties,
	}
	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, mapDoctorWriteError(err)
	}
	doctor.Status = status

	resp := converter.DoctorToResponse(doctor)
	u.auditService.LogCreate(ctx, middleware.ActorFromContext(ctx), entity.AuditActionDoctorCreate, "doctor", strconv.Itoa(doctor.ID), resp)

	return resp, nil
}

func (u *doctorUsecase) GetList(ctx context.Context, req *dto.GetDoctorListRequest) (*dto.GetDoctorListResponse, error) {
	filter := entity.DoctorFilter{
		Name:        strings.TrimSpace(req.Name),
		StatusID:    req.StatusID,
		SpecialtyID: req.SpecialtyID,
	}

	doctors, total, err := u.doctorRepo.FindAll(ctx, filter, toPage(req.PageRequest))
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.GetDoctorListResponse{
		Total: pagination.ReconcileTotal(total, len(doctors)),
		Items: converter.DoctorsToResponses(doctors),
	}, nil
}

func (u *doctorUsecase) Get(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id int, form *dto.DoctorForm) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	specialties, err := resolveSpecialties(ctx, u.specialtyRepo, form.Specialty)
	if err != nil {
		return nil, err
	}
	status, err := resolveStatus(ctx, u.statusRepo, form.StatusID)
	if err != nil {
		return nil, err
	}

	oldValue := converter.DoctorToResponse(doctor)

	doctor.Name = strings.TrimSpace(form.Name)
	doctor.StatusID = form.StatusID
	doctor.Status = nil
	doctor.Specialties = specialties

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, mapDoctorWriteError(err)
	}
	doctor.Status = status

	newValue := converter.DoctorToResponse(doctor)
	u.auditService.LogUpdate(ctx, middleware.ActorFromContext(ctx), entity.AuditActionDoctorUpdate, "doctor", strconv.Itoa(id), oldValue, newValue)

	return newValue, nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id int) error {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	affected, err := u.doctorRepo.Delete(ctx, id)
	if err != nil {
		if isForeignKeyError(err, "appointments_doctor") {
			return ErrDoctorReferenced
		}
		u.log.Warnf("Failed delete doctor: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	u.auditService.LogDelete(ctx, middleware.ActorFromContext(ctx), entity.AuditActionDoctorDelete, "doctor", strconv.Itoa(id), converter.DoctorToResponse(doctor))

	return nil
}

func mapDoctorWriteError(err error) error {
	switch {
	case isForeignKeyError(err, "status"):
		return ErrUnknownStatus
	case isForeignKeyError(err, "specialt"):
		return ErrUnknownSpecialty
	default:
		return err
	}
}

// resolveSpecialties loads the specialties behind a list of ids, keeping
// the submitted order. Every id must exist.
func resolveSpecialties(ctx context.Context, specialtyRepo repository.SpecialtyRepository, ids []int) ([]entity.Specialty, error) {
	if len(ids) == 0 {
		return []entity.Specialty{}, nil
	}

	found, err := specialtyRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]entity.Specialty, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	specialties := make([]entity.Specialty, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, ErrUnknownSpecialty
		}
		specialties = append(specialties, s)
	}
	return specialties, nil
}
