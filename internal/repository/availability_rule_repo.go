package repository

import (
	"context"

	"gorm.io/gorm"

	"zebratime/internal/domain"
)

type AvailabilityRuleRepository struct {
	db *gorm.DB
}

func NewAvailabilityRuleRepository(db *gorm.DB) *AvailabilityRuleRepository {
	return &AvailabilityRuleRepository{db: db}
}

func (r *AvailabilityRuleRepository) ListByBusiness(ctx context.Context, businessID int64) ([]domain.AvailabilityRule, error) {
	var out []domain.AvailabilityRule
	tx := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("day_of_week, open").
		Find(&out)
	return out, tx.Error
}

func (r *AvailabilityRuleRepository) Create(ctx context.Context, rule *domain.AvailabilityRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *AvailabilityRuleRepository) Update(ctx context.Context, rule *domain.AvailabilityRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *AvailabilityRuleRepository) Delete(ctx context.Context, id, businessID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&domain.AvailabilityRule{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Replace swaps a business's whole weekly schedule in one transaction, the
// way the settings screen saves it.
func (r *AvailabilityRuleRepository) Replace(ctx context.Context, businessID int64, rules []domain.AvailabilityRule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("business_id = ?", businessID).
			Delete(&domain.AvailabilityRule{}).Error; err != nil {
			return err
		}
		for i := range rules {
			rules[i].ID = 0
			rules[i].BusinessID = businessID
		}
		if len(rules) == 0 {
			return nil
		}
		return tx.Create(&rules).Error
	})
}
