package assistant

import (
	"context"

	"zebratime/internal/domain"
	"zebratime/internal/modules/booking"
)

// BookingService is the slice of the booking module the webhook drives.
type BookingService interface {
	CreateForSlug(ctx context.Context, slug string, in booking.CreateInput) (*domain.Booking, error)
	CancelByReference(ctx context.Context, reference, reason string) (*domain.Booking, error)
	UpdateByReference(ctx context.Context, reference string, in booking.UpdateInput) (*domain.Booking, error)
	ListForDate(ctx context.Context, businessID int64, date string) ([]domain.Booking, error)
}

// AvailabilityService answers the check_availability action.
type AvailabilityService interface {
	GetBusiness(ctx context.Context, slug string) (*domain.Business, error)
	ListSlots(ctx context.Context, slug, date string, partySize int) ([]string, error)
}
