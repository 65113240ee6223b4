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
	"clinic-admin/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrSpecialtyNotOffered    = errors.New("doctor does not practise the requested specialty")
	ErrInvalidAppointmentDate = errors.New("invalid appointment date")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, form *dto.AppointmentForm) (*dto.AppointmentResponse, error)
	GetList(ctx context.Context, req *dto.GetAppointmentListRequest) (*dto.GetAppointmentListResponse, error)
	Get(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id int, form *dto.AppointmentForm) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id int) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	specialtyRepo   repository.SpecialtyRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	specialtyRepo repository.SpecialtyRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		specialtyRepo:   specialtyRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, form *dto.AppointmentForm) (*dto.AppointmentResponse, error) {
	appointment := &entity.Appointment{}
	if err := u.apply(ctx, appointment, form); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, mapAppointmentWriteError(err)
	}

	resp := converter.AppointmentToResponse(appointment)
	u.auditService.LogCreate(ctx, middleware.ActorFromContext(ctx), entity.AuditActionAppointmentCreate, "appointment", strconv.Itoa(appointment.ID), resp)

	return resp, nil
}

func (u *appointmentUsecase) GetList(ctx context.Context, req *dto.GetAppointmentListRequest) (*dto.GetAppointmentListResponse, error) {
	filter := entity.AppointmentFilter{
		PatientName: textFilter(req.PatientName),
		DoctorName:  textFilter(req.DoctorName),
		SpecialtyID: req.SpecialtyID,
	}

	appointments, total, err := u.appointmentRepo.FindAll(ctx, filter, toPage(req.PageRequest))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.GetAppointmentListResponse{
		Total: pagination.ReconcileTotal(total, len(appointments)),
		Items: converter.AppointmentsToResponses(appointments),
	}, nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id int, form *dto.AppointmentForm) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(appointment)

	if err := u.apply(ctx, appointment, form); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, mapAppointmentWriteError(err)
	}

	newValue := converter.AppointmentToResponse(appointment)
	u.auditService.LogUpdate(ctx, middleware.ActorFromContext(ctx), entity.AuditActionAppointmentUpdate, "appointment", strconv.Itoa(id), oldValue, newValue)

	return newValue, nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.LogDelete(ctx, middleware.ActorFromContext(ctx), entity.AuditActionAppointmentDelete, "appointment", strconv.Itoa(id), converter.AppointmentToResponse(appointment))

	return nil
}

// apply resolves every reference in the form and copies it onto appointment.
// The first submitted specialty becomes the primary one and each specialty
// must be practised by the chosen doctor.
func (u *appointmentUsecase) apply(ctx context.Context, appointment *entity.Appointment, form *dto.AppointmentForm) error {
	date, err := validator.ParseDateTime(form.AppointmentDate)
	if err != nil {
		return ErrInvalidAppointmentDate
	}
	if len(form.SpecialtyID) == 0 {
		return ErrUnknownSpecialty
	}

	patient, err := u.patientRepo.FindByID(ctx, form.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrUnknownPatient
	}

	doctor, err := u.doctorRepo.FindByID(ctx, form.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrUnknownDoctor
	}

	specialties, err := resolveSpecialties(ctx, u.specialtyRepo, form.SpecialtyID)
	if err != nil {
		if !errors.Is(err, ErrUnknownSpecialty) {
			u.log.Warnf("Failed to find specialties: %+v", err)
		}
		return err
	}
	for _, s := range specialties {
		if !doctor.HasSpecialty(s.ID) {
			return ErrSpecialtyNotOffered
		}
	}

	appointment.PatientID = patient.ID
	appointment.Patient = *patient
	appointment.DoctorID = doctor.ID
	appointment.Doctor = *doctor
	appointment.SpecialtyID = specialties[0].ID
	appointment.Specialty = specialties[0]
	appointment.Specialties = specialties
	appointment.AppointmentDate = date
	appointment.Observation = strings.TrimSpace(form.Observation)

	return nil
}

func mapAppointmentWriteError(err error) error {
	switch {
	case isForeignKeyError(err, "appointments_patient"):
		return ErrUnknownPatient
	case isForeignKeyError(err, "appointments_doctor"):
		return ErrUnknownDoctor
	case isForeignKeyError(err, "specialt"):
		return ErrUnknownSpecialty
	default:
		return err
	}
}
