package repository

import (
	"context"
	"errors"

	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Patient", "Doctor", "Specialty", "Specialties").Create(appointment).Error; err != nil {
			return err
		}
		return tx.Model(appointment).Association("Specialties").Replace(appointment.Specialties)
	})
}

func (r *appointmentRepository) FindAll(ctx context.Context, filter entity.AppointmentFilter, page entity.Page) ([]entity.Appointment, int64, error) {
	var appointments []entity.Appointment
	var total int64

	where := func(db *gorm.DB) *gorm.DB {
		if filter.PatientName != nil {
			db = db.Where("appointments.patient_id IN (SELECT id FROM patients WHERE "+ilike("name")+")", likePattern(*filter.PatientName))
		}
		if filter.DoctorName != nil {
			db = db.Where("appointments.doctor_id IN (SELECT id FROM doctors WHERE "+ilike("name")+")", likePattern(*filter.DoctorName))
		}
		if filter.SpecialtyID != nil {
			db = db.Where(
				"(appointments.specialty_id = ? OR appointments.id IN (SELECT appointment_id FROM appointment_specialties WHERE specialty_id = ?))",
				*filter.SpecialtyID, *filter.SpecialtyID,
			)
		}
		return db
	}

	if err := r.db.WithContext(ctx).Model(&entity.Appointment{}).Scopes(where).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.preload(r.db.WithContext(ctx)).
		Scopes(where, paginate(page)).
		Order("appointments.appointment_date DESC, appointments.id DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}

	return appointments, total, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.preload(r.db.WithContext(ctx)).Where("appointments.id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Patient", "Doctor", "Specialty", "Specialties").Save(appointment).Error; err != nil {
			return err
		}
		return tx.Model(appointment).Association("Specialties").Replace(appointment.Specialties)
	})
}

func (r *appointmentRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Patient.Status").
		Preload("Doctor.Status").
		Preload("Doctor.Specialties").
		Preload("Specialty").
		Preload("Specialties")
}
