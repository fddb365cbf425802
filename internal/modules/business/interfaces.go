package business

import (
	"context"

	"zebratime/internal/domain"
)

type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Business, error)
	Create(ctx context.Context, b *domain.Business) error
	Update(ctx context.Context, b *domain.Business) error
}

type RuleRepository interface {
	ListByBusiness(ctx context.Context, businessID int64) ([]domain.AvailabilityRule, error)
	Create(ctx context.Context, rule *domain.AvailabilityRule) error
	Delete(ctx context.Context, id, businessID int64) error
	Replace(ctx context.Context, businessID int64, rules []domain.AvailabilityRule) error
}

type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	ListAllByBusiness(ctx context.Context, businessID int64) ([]domain.Table, error)
	Create(ctx context.Context, t *domain.Table) error
	Update(ctx context.Context, t *domain.Table) error
	Delete(ctx context.Context, id, businessID int64) error
}
