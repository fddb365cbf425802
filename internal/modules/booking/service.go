package booking

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"zebratime/internal/domain"
	"zebratime/internal/repository"
	"zebratime/internal/schedule"
)

type Service struct {
	bookings   BookingRepository
	businesses BusinessRepository
	rules      RuleRepository
	tables     TableRepository
	events     EventSink
}

func NewService(
	bookings BookingRepository,
	businesses BusinessRepository,
	rules RuleRepository,
	tables TableRepository,
	events EventSink,
) *Service {
	return &Service{
		bookings:   bookings,
		businesses: businesses,
		rules:      rules,
		tables:     tables,
		events:     events,
	}
}

type CreateInput struct {
	Date       string
	StartTime  string
	PartySize  int
	GuestName  string
	GuestPhone string
	GuestEmail string
	Notes      string
	Source     domain.BookingSource
}

// CreateForSlug resolves the public slug and places the booking.
func (s *Service) CreateForSlug(ctx context.Context, slug string, in CreateInput) (*domain.Booking, error) {
	business, err := s.businesses.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	if !business.IsActive {
		return nil, ErrBusinessNotFound
	}
	return s.Create(ctx, business, in)
}

// CreateForBusiness is the staff path: the owner books on behalf of a guest.
func (s *Service) CreateForBusiness(ctx context.Context, businessID int64, in CreateInput) (*domain.Booking, error) {
	business, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return s.Create(ctx, business, in)
}

// Create runs the assignment policy for one requested window and stores the
// booking. With no free table, web intake against an auto-confirming
// business is rejected; every other path waitlists the booking unassigned.
func (s *Service) Create(ctx context.Context, business *domain.Business, in CreateInput) (*domain.Booking, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, ErrValidation
	}
	start, err := schedule.ToMinutes(in.StartTime)
	if err != nil {
		return nil, ErrValidation
	}
	if in.PartySize < 1 {
		return nil, ErrValidation
	}

	duration := business.SlotDurationOrDefault()
	endTime := schedule.FromMinutes(start + duration)

	rules, err := s.rules.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	slots, err := schedule.GenerateSlots(rules, date, duration)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(slots, in.StartTime) {
		// Closed day or a start outside the opening hours.
		return nil, ErrNotAvailable
	}

	tables, err := s.tables.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	existing, err := s.bookings.ListForDate(ctx, business.ID, in.Date)
	if err != nil {
		return nil, err
	}

	table, err := schedule.AssignTable(tables, existing, in.StartTime, endTime, in.PartySize)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		BusinessID: business.ID,
		Reference:  uuid.NewString(),
		Date:       in.Date,
		StartTime:  in.StartTime,
		EndTime:    endTime,
		PartySize:  in.PartySize,
		Source:     in.Source,
		GuestName:  in.GuestName,
		GuestPhone: in.GuestPhone,
		GuestEmail: in.GuestEmail,
		Notes:      in.Notes,
	}

	if table == nil {
		if in.Source == domain.SourceWeb && business.ConfirmationMode == domain.ConfirmAuto {
			return nil, ErrNotAvailable
		}
		b.Status = domain.BookingPending
		if err := s.bookings.Create(ctx, b); err != nil {
			return nil, err
		}
	} else {
		b.TableID = &table.ID
		b.Status = statusForNewAssigned(business, in.Source)
		if err := s.bookings.CreateAssigned(ctx, b); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return nil, ErrOverbooking
			}
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking" {
				return nil, ErrOverbooking
			}
			return nil, err
		}
	}

	if s.events != nil {
		s.events.BookingCreated(business.ID, b)
	}
	return b, nil
}

func statusForNewAssigned(business *domain.Business, source domain.BookingSource) domain.BookingStatus {
	if source == domain.SourceStaff {
		return domain.BookingReserved
	}
	if business.ConfirmationMode == domain.ConfirmAuto {
		return domain.BookingConfirmed
	}
	return domain.BookingPendingConfirmation
}

func (s *Service) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	b, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) ListForDate(ctx context.Context, businessID int64, dateStr string) ([]domain.Booking, error) {
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return nil, ErrValidation
	}
	return s.bookings.ListForDate(ctx, businessID, dateStr)
}

// statusTransitions lists the statuses a booking may move to from each state.
var statusTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingPending: {
		domain.BookingReserved, domain.BookingConfirmed, domain.BookingRejected, domain.BookingCancelled,
	},
	domain.BookingPendingConfirmation: {
		domain.BookingConfirmed, domain.BookingRejected, domain.BookingCancelled,
	},
	domain.BookingReserved: {
		domain.BookingConfirmed, domain.BookingInProgress, domain.BookingDelayed,
		domain.BookingNoShow, domain.BookingCancelled,
	},
	domain.BookingConfirmed: {
		domain.BookingInProgress, domain.BookingDelayed, domain.BookingNoShow,
		domain.BookingCancelled, domain.BookingCompleted,
	},
	domain.BookingDelayed: {
		domain.BookingInProgress, domain.BookingNoShow, domain.BookingCancelled,
	},
	domain.BookingInProgress: {
		domain.BookingCompleted,
	},
}

func canTransition(from, to domain.BookingStatus) bool {
	return slices.Contains(statusTransitions[from], to)
}

// UpdateStatus moves a booking through its lifecycle on behalf of the owner.
func (s *Service) UpdateStatus(ctx context.Context, businessID, bookingID int64, newStatus string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.BusinessID != businessID {
		return nil, ErrNotFound
	}

	target := domain.BookingStatus(newStatus)
	if !canTransition(b.Status, target) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}

	b, err = s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.BookingStatusChanged(businessID, b)
	}
	return b, nil
}

// Cancel ends a booking with an optional reason.
func (s *Service) Cancel(ctx context.Context, businessID, bookingID int64, reason string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.BusinessID != businessID {
		return nil, ErrNotFound
	}
	return s.cancel(ctx, b, reason)
}

// CancelByReference is the assistant path: callers hold the reference, not
// the row ID.
func (s *Service) CancelByReference(ctx context.Context, reference, reason string) (*domain.Booking, error) {
	b, err := s.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return s.cancel(ctx, b, reason)
}

func (s *Service) cancel(ctx context.Context, b *domain.Booking, reason string) (*domain.Booking, error) {
	switch b.Status {
	case domain.BookingCancelled, domain.BookingCompleted, domain.BookingRejected:
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.CancelWithReason(ctx, b.ID, reason); err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.BookingCancelled(b.BusinessID, b)
	}
	return b, nil
}

type UpdateInput struct {
	Date      string
	StartTime string
	PartySize int
}

// UpdateByReference reschedules or resizes a booking and re-runs the table
// assignment for the new window, ignoring the booking's own old row.
func (s *Service) UpdateByReference(ctx context.Context, reference string, in UpdateInput) (*domain.Booking, error) {
	b, err := s.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !b.Status.BlocksTable() {
		return nil, ErrInvalidStatusTransition
	}

	business, err := s.businesses.GetByID(ctx, b.BusinessID)
	if err != nil {
		return nil, err
	}

	if in.Date == "" {
		in.Date = b.Date
	}
	if in.StartTime == "" {
		in.StartTime = b.StartTime
	}
	if in.PartySize == 0 {
		in.PartySize = b.PartySize
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, ErrValidation
	}
	start, err := schedule.ToMinutes(in.StartTime)
	if err != nil {
		return nil, ErrValidation
	}
	if in.PartySize < 1 {
		return nil, ErrValidation
	}

	duration := business.SlotDurationOrDefault()
	endTime := schedule.FromMinutes(start + duration)

	rules, err := s.rules.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	slots, err := schedule.GenerateSlots(rules, date, duration)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(slots, in.StartTime) {
		return nil, ErrNotAvailable
	}

	tables, err := s.tables.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	existing, err := s.bookings.ListForDate(ctx, business.ID, in.Date)
	if err != nil {
		return nil, err
	}
	others := make([]domain.Booking, 0, len(existing))
	for _, e := range existing {
		if e.ID != b.ID {
			others = append(others, e)
		}
	}

	table, err := schedule.AssignTable(tables, others, in.StartTime, endTime, in.PartySize)
	if err != nil {
		return nil, err
	}

	b.Date = in.Date
	b.StartTime = in.StartTime
	b.EndTime = endTime
	b.PartySize = in.PartySize
	if table == nil {
		b.TableID = nil
		b.Status = domain.BookingPending
	} else {
		b.TableID = &table.ID
		if b.Status == domain.BookingPending {
			b.Status = statusForNewAssigned(business, b.Source)
		}
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.BookingStatusChanged(business.ID, b)
	}
	return b, nil
}
