package repository

import (
	"context"
	"errors"

	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type specialtyRepository struct {
	db *gorm.DB
}

func NewSpecialtyRepository(db *gorm.DB) domainRepo.SpecialtyRepository {
	return &specialtyRepository{db: db}
}

func (r *specialtyRepository) Create(ctx context.Context, specialty *entity.Specialty) error {
	return r.db.WithContext(ctx).Create(specialty).Error
}

func (r *specialtyRepository) FindAll(ctx context.Context, filter entity.NameFilter, page entity.Page) ([]entity.Specialty, int64, error) {
	var specialties []entity.Specialty
	var total int64

	where := func(db *gorm.DB) *gorm.DB {
		if filter.Name != nil {
			db = db.Where(ilike("name"), likePattern(*filter.Name))
		}
		return db
	}

	if err := r.db.WithContext(ctx).Model(&entity.Specialty{}).Scopes(where).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Scopes(where, paginate(page)).Order("name ASC").Find(&specialties).Error; err != nil {
		return nil, 0, err
	}

	return specialties, total, nil
}

func (r *specialtyRepository) FindByID(ctx context.Context, id int) (*entity.Specialty, error) {
	var specialty entity.Specialty
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&specialty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepository) FindByIDs(ctx context.Context, ids []int) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	if len(ids) == 0 {
		return specialties, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) ListAll(ctx context.Context) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	err := r.db.WithContext(ctx).Order("name ASC").Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) Update(ctx context.Context, specialty *entity.Specialty) error {
	return r.db.WithContext(ctx).Save(specialty).Error
}

func (r *specialtyRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Specialty{})
	return result.RowsAffected, result.Error
}
