package assistant

import (
	"context"
	"errors"

	"zebratime/internal/domain"
	"zebratime/internal/modules/booking"
)

var ErrUnknownAction = errors.New("unknown webhook action")

type Service struct {
	bookings     BookingService
	availability AvailabilityService
}

func NewService(bookings BookingService, availability AvailabilityService) *Service {
	return &Service{bookings: bookings, availability: availability}
}

type CreateResult struct {
	Reference string               `json:"reference"`
	Status    domain.BookingStatus `json:"status"`
	TableID   *int64               `json:"table_id,omitempty"`
	Assigned  bool                 `json:"assigned"`
}

// Create always stores the booking; with no free table the caller is told
// the guest is waitlisted instead of being turned away mid-call.
func (s *Service) Create(ctx context.Context, req WebhookRequest) (*CreateResult, error) {
	b, err := s.bookings.CreateForSlug(ctx, req.BusinessSlug, booking.CreateInput{
		Date:       req.Payload.Date,
		StartTime:  req.Payload.StartTime,
		PartySize:  req.Payload.PartySize,
		GuestName:  req.Payload.GuestName,
		GuestPhone: req.Payload.GuestPhone,
		Source:     domain.SourceAssistant,
	})
	if err != nil {
		return nil, err
	}

	return &CreateResult{
		Reference: b.Reference,
		Status:    b.Status,
		TableID:   b.TableID,
		Assigned:  b.TableID != nil,
	}, nil
}

func (s *Service) Cancel(ctx context.Context, req WebhookRequest) (*domain.Booking, error) {
	if req.Payload.Reference == "" {
		return nil, booking.ErrValidation
	}
	return s.bookings.CancelByReference(ctx, req.Payload.Reference, req.Payload.Reason)
}

func (s *Service) Update(ctx context.Context, req WebhookRequest) (*domain.Booking, error) {
	if req.Payload.Reference == "" {
		return nil, booking.ErrValidation
	}
	return s.bookings.UpdateByReference(ctx, req.Payload.Reference, booking.UpdateInput{
		Date:      req.Payload.Date,
		StartTime: req.Payload.StartTime,
		PartySize: req.Payload.PartySize,
	})
}

func (s *Service) CheckAvailability(ctx context.Context, req WebhookRequest) ([]string, error) {
	partySize := req.Payload.PartySize
	if partySize == 0 {
		partySize = 2
	}
	return s.availability.ListSlots(ctx, req.BusinessSlug, req.Payload.Date, partySize)
}

func (s *Service) List(ctx context.Context, req WebhookRequest) ([]domain.Booking, error) {
	business, err := s.availability.GetBusiness(ctx, req.BusinessSlug)
	if err != nil {
		return nil, err
	}
	return s.bookings.ListForDate(ctx, business.ID, req.Payload.Date)
}
