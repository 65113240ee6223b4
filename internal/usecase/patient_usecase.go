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
	ErrPatientNotFound   = errors.New("patient not found")
	ErrPatientReferenced = errors.New("patient has appointments")
	ErrUnknownPatient    = errors.New("patient does not exist")
)

type PatientUsecase interface {
	Create(ctx context.Context, form *dto.PatientForm) (*dto.PatientResponse, error)
	GetList(ctx context.Context, req *dto.GetPatientListRequest) (*dto.GetPatientListResponse, error)
	Get(ctx context.Context, id int) (*dto.PatientResponse, error)
	Update(ctx context.Context, id int, form *dto.PatientForm) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id int) error
}

type patientUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	statusRepo   repository.StatusRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	statusRepo repository.StatusRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		patientRepo:  patientRepo,
		statusRepo:   statusRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) Create(ctx context.Context, form *dto.PatientForm) (*dto.PatientResponse, error) {
	status, err := resolveStatus(ctx, u.statusRepo, form.StatusID)
	if err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		Name:     strings.TrimSpace(form.Name),
		StatusID: form.StatusID,
	}
	if err := u.patientRepo.Create(ctx, patient); err != nil {
		if isForeignKeyError(err, "status") {
			return nil, ErrUnknownStatus
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}
	patient.Status = status

	resp := converter.PatientToResponse(patient)
	u.auditService.LogCreate(ctx, middleware.ActorFromContext(ctx), entity.AuditActionPatientCreate, "patient", strconv.Itoa(patient.ID), resp)

	return resp, nil
}

func (u *patientUsecase) GetList(ctx context.Context, req *dto.GetPatientListRequest) (*dto.GetPatientListResponse, error) {
	filter := entity.PatientFilter{
		Name:     textFilter(req.Name),
		StatusID: req.StatusID,
	}

	patients, total, err := u.patientRepo.FindAll(ctx, filter, toPage(req.PageRequest))
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return &dto.GetPatientListResponse{
		Total: pagination.ReconcileTotal(total, len(patients)),
		Items: converter.PatientsToResponses(patients),
	}, nil
}

func (u *patientUsecase) Get(ctx context.Context, id int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id int, form *dto.PatientForm) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	status, err := resolveStatus(ctx, u.statusRepo, form.StatusID)
	if err != nil {
		return nil, err
	}

	oldValue := converter.PatientToResponse(patient)
	patient.Name = strings.TrimSpace(form.Name)
	patient.StatusID = form.StatusID

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		if isForeignKeyError(err, "status") {
			return nil, ErrUnknownStatus
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}
	patient.Status = status

	newValue := converter.PatientToResponse(patient)
	u.auditService.LogUpdate(ctx, middleware.ActorFromContext(ctx), entity.AuditActionPatientUpdate, "patient", strconv.Itoa(id), oldValue, newValue)

	return newValue, nil
}

func (u *patientUsecase) Delete(ctx context.Context, id int) error {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	affected, err := u.patientRepo.Delete(ctx, id)
	if err != nil {
		if isForeignKeyError(err, "patient") {
			return ErrPatientReferenced
		}
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	u.auditService.LogDelete(ctx, middleware.ActorFromContext(ctx), entity.AuditActionPatientDelete, "patient", strconv.Itoa(id), converter.PatientToResponse(patient))

	return nil
}

// resolveStatus loads the status a form points to; a nil id means no status.
func resolveStatus(ctx context.Context, statusRepo repository.StatusRepository, statusID *int) (*entity.Status, error) {
	if statusID == nil {
		return nil, nil
	}
	status, err := statusRepo.FindByID(ctx, *statusID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, ErrUnknownStatus
	}
	return status, nil
}
