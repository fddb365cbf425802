package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"zebratime/internal/domain"
)

var ErrNotFound = errors.New("record not found")

type BusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	var b domain.Business
	tx := r.db.WithContext(ctx).First(&b, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BusinessRepository) GetBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	var b domain.Business
	tx := r.db.WithContext(ctx).Where("slug = ?", slug).First(&b)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BusinessRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Business, error) {
	var out []domain.Business
	tx := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name").
		Find(&out)
	return out, tx.Error
}

func (r *BusinessRepository) Create(ctx context.Context, b *domain.Business) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BusinessRepository) Update(ctx context.Context, b *domain.Business) error {
	return r.db.WithContext(ctx).Save(b).Error
}
