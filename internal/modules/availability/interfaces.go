package availability

import (
	"context"

	"zebratime/internal/domain"
)

// BusinessRepository resolves the public slug to a business.
type BusinessRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Business, error)
}

// RuleRepository supplies the weekly opening windows.
type RuleRepository interface {
	ListByBusiness(ctx context.Context, businessID int64) ([]domain.AvailabilityRule, error)
}

// TableRepository supplies the active table inventory.
type TableRepository interface {
	ListByBusiness(ctx context.Context, businessID int64) ([]domain.Table, error)
}

// BookingRepository supplies the day's committed bookings.
type BookingRepository interface {
	ListForDate(ctx context.Context, businessID int64, date string) ([]domain.Booking, error)
}
