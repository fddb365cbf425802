package booking

import (
	"context"

	"zebratime/internal/domain"
)

// BookingRepository defines the storage operations the booking service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	CreateAssigned(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListForDate(ctx context.Context, businessID int64, date string) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	CancelWithReason(ctx context.Context, id int64, reason string) error
}

type BusinessRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Business, error)
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

type RuleRepository interface {
	ListByBusiness(ctx context.Context, businessID int64) ([]domain.AvailabilityRule, error)
}

type TableRepository interface {
	ListByBusiness(ctx context.Context, businessID int64) ([]domain.Table, error)
}

// EventSink receives booking lifecycle events for live owner dashboards.
type EventSink interface {
	BookingCreated(businessID int64, b *domain.Booking)
	BookingCancelled(businessID int64, b *domain.Booking)
	BookingStatusChanged(businessID int64, b *domain.Booking)
}
