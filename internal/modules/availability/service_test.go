package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"zebratime/internal/domain"
	"zebratime/internal/repository"
)

// Mock repositories

type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) GetBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

type MockRuleRepository struct {
	mock.Mock
}

func (m *MockRuleRepository) ListByBusiness(ctx context.Context, businessID int64) ([]domain.AvailabilityRule, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).([]domain.AvailabilityRule), args.Error(1)
}

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) ListByBusiness(ctx context.Context, businessID int64) ([]domain.Table, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).([]domain.Table), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListForDate(ctx context.Context, businessID int64, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, businessID, date)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func newTestService() (*Service, *MockBusinessRepository, *MockRuleRepository, *MockTableRepository, *MockBookingRepository) {
	businesses := new(MockBusinessRepository)
	rules := new(MockRuleRepository)
	tables := new(MockTableRepository)
	bookings := new(MockBookingRepository)
	return NewService(businesses, rules, tables, bookings), businesses, rules, tables, bookings
}

func activeBusiness() *domain.Business {
	return &domain.Business{
		ID:               1,
		Slug:             "trattoria-zebra",
		SlotDuration:     60,
		ConfirmationMode: domain.ConfirmAuto,
		IsActive:         true,
	}
}

func TestGetBusiness_UnknownSlug(t *testing.T) {
	svc, businesses, _, _, _ := newTestService()
	businesses.On("GetBySlug", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	_, err := svc.GetBusiness(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetBusiness_InactiveHiddenFromPublic(t *testing.T) {
	svc, businesses, _, _, _ := newTestService()
	b := activeBusiness()
	b.IsActive = false
	businesses.On("GetBySlug", mock.Anything, b.Slug).Return(b, nil)

	_, err := svc.GetBusiness(context.Background(), b.Slug)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSlots_ClosedDayIsEmpty(t *testing.T) {
	svc, businesses, rules, tables, bookings := newTestService()
	b := activeBusiness()
	businesses.On("GetBySlug", mock.Anything, b.Slug).Return(b, nil)
	// Rules exist for Monday only; 2026-12-30 is a Wednesday.
	rules.On("ListByBusiness", mock.Anything, b.ID).Return([]domain.AvailabilityRule{
		{BusinessID: b.ID, DayOfWeek: 1, Open: "09:00", Close: "17:00"},
	}, nil)
	tables.On("ListByBusiness", mock.Anything, b.ID).Return([]domain.Table{
		{ID: 1, BusinessID: b.ID, Label: "T1", Capacity: 4, IsActive: true},
	}, nil)
	bookings.On("ListForDate", mock.Anything, b.ID, "2026-12-30").Return([]domain.Booking{}, nil)

	slots, err := svc.ListSlots(context.Background(), b.Slug, "2026-12-30", 2)

	assert.NoError(t, err)
	assert.Empty(t, slots)
}

func TestListSlots_BookedSlotExcluded(t *testing.T) {
	svc, businesses, rules, tables, bookings := newTestService()
	b := activeBusiness()
	businesses.On("GetBySlug", mock.Anything, b.Slug).Return(b, nil)
	// 2026-12-28 is a Monday.
	rules.On("ListByBusiness", mock.Anything, b.ID).Return([]domain.AvailabilityRule{
		{BusinessID: b.ID, DayOfWeek: 1, Open: "12:00", Close: "15:00"},
	}, nil)
	tableID := int64(1)
	tables.On("ListByBusiness", mock.Anything, b.ID).Return([]domain.Table{
		{ID: tableID, BusinessID: b.ID, Label: "T1", Capacity: 4, IsActive: true},
	}, nil)
	bookings.On("ListForDate", mock.Anything, b.ID, "2026-12-28").Return([]domain.Booking{
		{
			BusinessID: b.ID, TableID: &tableID,
			Date: "2026-12-28", StartTime: "13:00", EndTime: "14:00",
			Status: domain.BookingConfirmed,
		},
	}, nil)

	slots, err := svc.ListSlots(context.Background(), b.Slug, "2026-12-28", 2)

	assert.NoError(t, err)
	assert.Equal(t, []string{"12:00", "14:00"}, slots)
}

func TestListSlots_ValidatesInput(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.ListSlots(context.Background(), "trattoria-zebra", "not-a-date", 2)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.ListSlots(context.Background(), "trattoria-zebra", "2026-12-28", 0)
	assert.ErrorIs(t, err, ErrValidation)
}
