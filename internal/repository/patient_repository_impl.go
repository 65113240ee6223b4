package repository

import (
	"context"
	"errors"

	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if err := r.db.WithContext(ctx).Omit("Status").Create(patient).Error; err != nil {
		return err
	}
	return r.reload(ctx, patient)
}

func (r *patientRepository) FindAll(ctx context.Context, filter entity.PatientFilter, page entity.Page) ([]entity.Patient, int64, error) {
	var patients []entity.Patient
	var total int64

	where := func(db *gorm.DB) *gorm.DB {
		if filter.Name != nil {
			db = db.Where(ilike("name"), likePattern(*filter.Name))
		}
		if filter.StatusID != nil {
			db = db.Where("status_id = ?", *filter.StatusID)
		}
		return db
	}

	if err := r.db.WithContext(ctx).Model(&entity.Patient{}).Scopes(where).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Scopes(where, paginate(page)).
		Preload("Status").
		Order("name ASC, id ASC").
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}

	return patients, total, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Preload("Status").Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	if err := r.db.WithContext(ctx).Omit("Status").Save(patient).Error; err != nil {
		return err
	}
	return r.reload(ctx, patient)
}

func (r *patientRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

// reload refreshes the status association after a write.
func (r *patientRepository) reload(ctx context.Context, patient *entity.Patient) error {
	patient.Status = nil
	if patient.StatusID == nil {
		return nil
	}
	var status entity.Status
	if err := r.db.WithContext(ctx).Where("id = ?", *patient.StatusID).First(&status).Error; err != nil {
		return err
	}
	patient.Status = &status
	return nil
}
