package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"zebratime/internal/domain"
)

type TableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

func (r *TableRepository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	var t domain.Table
	tx := r.db.WithContext(ctx).First(&t, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &t, nil
}

// ListByBusiness returns the active table inventory sorted the way the
// selection policy walks it: smallest capacity first.
func (r *TableRepository) ListByBusiness(ctx context.Context, businessID int64) ([]domain.Table, error) {
	var out []domain.Table
	tx := r.db.WithContext(ctx).
		Where("business_id = ? AND is_active = ?", businessID, true).
		Order("capacity, label").
		Find(&out)
	return out, tx.Error
}

func (r *TableRepository) ListAllByBusiness(ctx context.Context, businessID int64) ([]domain.Table, error) {
	var out []domain.Table
	tx := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("capacity, label").
		Find(&out)
	return out, tx.Error
}

func (r *TableRepository) Create(ctx context.Context, t *domain.Table) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TableRepository) Update(ctx context.Context, t *domain.Table) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TableRepository) Delete(ctx context.Context, id, businessID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&domain.Table{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
