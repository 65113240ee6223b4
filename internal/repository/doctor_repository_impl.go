package repository

import (
	"context"
	"errors"

	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Status", "Specialties").Create(doctor).Error; err != nil {
			return err
		}
		if len(doctor.Specialties) > 0 {
			if err := tx.Model(doctor).Association("Specialties").Replace(doctor.Specialties); err != nil {
				return err
			}
		}
		return nil
	})
}

// FindAll returns doctors matching the filter. The specialty filter matches
// doctors that practise the specialty among others.
func (r *doctorRepository) FindAll(ctx context.Context, filter entity.DoctorFilter, page entity.Page) ([]entity.Doctor, int64, error) {
	var doctors []entity.Doctor
	var total int64

	where := func(db *gorm.DB) *gorm.DB {
		if filter.Name != "" {
			db = db.Where(ilike("doctors.name"), likePattern(filter.Name))
		}
		if filter.StatusID != nil {
			db = db.Where("doctors.status_id = ?", *filter.StatusID)
		}
		if filter.SpecialtyID != nil {
			db = db.Where("doctors.id IN (SELECT doctor_id FROM doctor_specialties WHERE specialty_id = ?)", *filter.SpecialtyID)
		}
		return db
	}

	if err := r.db.WithContext(ctx).Model(&entity.Doctor{}).Scopes(where).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Scopes(where, paginate(page)).
		Preload("Status").
		Preload("Specialties", func(db *gorm.DB) *gorm.DB { return db.Order("specialties.name ASC") }).
		Order("doctors.name ASC, doctors.id ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}

	return doctors, total, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).
		Preload("Status").
		Preload("Specialties", func(db *gorm.DB) *gorm.DB { return db.Order("specialties.name ASC") }).
		Where("id = ?", id).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Status", "Specialties").Save(doctor).Error; err != nil {
			return err
		}
		return tx.Model(doctor).Association("Specialties").Replace(doctor.Specialties)
	})
}

func (r *doctorRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
