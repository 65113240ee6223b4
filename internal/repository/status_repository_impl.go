package repository

import (
	"context"
	"errors"

	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type statusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) domainRepo.StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) Create(ctx context.Context, status *entity.Status) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *statusRepository) FindAll(ctx context.Context, filter entity.NameFilter, page entity.Page) ([]entity.Status, int64, error) {
	var statuses []entity.Status
	var total int64

	where := func(db *gorm.DB) *gorm.DB {
		if filter.Name != nil {
			db = db.Where(ilike("name"), likePattern(*filter.Name))
		}
		return db
	}

	if err := r.db.WithContext(ctx).Model(&entity.Status{}).Scopes(where).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Scopes(where, paginate(page)).Order("name ASC").Find(&statuses).Error; err != nil {
		return nil, 0, err
	}

	return statuses, total, nil
}

func (r *statusRepository) FindByID(ctx context.Context, id int) (*entity.Status, error) {
	var status entity.Status
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&status).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &status, nil
}

func (r *statusRepository) ListAll(ctx context.Context) ([]entity.Status, error) {
	var statuses []entity.Status
	err := r.db.WithContext(ctx).Order("name ASC").Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *statusRepository) Update(ctx context.Context, status *entity.Status) error {
	return r.db.WithContext(ctx).Save(status).Error
}

func (r *statusRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Status{})
	return result.RowsAffected, result.Error
}
