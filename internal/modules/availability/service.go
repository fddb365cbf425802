package availability

import (
	"context"
	"errors"
	"time"

	"zebratime/internal/domain"
	"zebratime/internal/repository"
	"zebratime/internal/schedule"
)

type Service struct {
	businesses BusinessRepository
	rules      RuleRepository
	tables     TableRepository
	bookings   BookingRepository
}

func NewService(
	businesses BusinessRepository,
	rules RuleRepository,
	tables TableRepository,
	bookings BookingRepository,
) *Service {
	return &Service{
		businesses: businesses,
		rules:      rules,
		tables:     tables,
		bookings:   bookings,
	}
}

// GetBusiness resolves an active business by its public slug.
func (s *Service) GetBusiness(ctx context.Context, slug string) (*domain.Business, error) {
	business, err := s.businesses.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !business.IsActive {
		return nil, ErrNotFound
	}
	return business, nil
}

// ListSlots returns the free "HH:MM" starts for a party on one date. A day
// with no matching rule is a closed day and yields an empty list.
func (s *Service) ListSlots(ctx context.Context, slug, dateStr string, partySize int) ([]string, error) {
	if partySize < 1 {
		return nil, ErrValidation
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrValidation
	}

	business, err := s.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	rules, err := s.rules.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	tables, err := s.tables.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListForDate(ctx, business.ID, dateStr)
	if err != nil {
		return nil, err
	}

	return schedule.ListAvailableSlots(
		rules, tables, bookings,
		date, business.SlotDurationOrDefault(), partySize,
	)
}
