package assistant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"zebratime/internal/domain"
	"zebratime/internal/modules/booking"
)

// Mock services

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateForSlug(ctx context.Context, slug string, in booking.CreateInput) (*domain.Booking, error) {
	args := m.Called(ctx, slug, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) CancelByReference(ctx context.Context, reference, reason string) (*domain.Booking, error) {
	args := m.Called(ctx, reference, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) UpdateByReference(ctx context.Context, reference string, in booking.UpdateInput) (*domain.Booking, error) {
	args := m.Called(ctx, reference, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) ListForDate(ctx context.Context, businessID int64, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, businessID, date)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) GetBusiness(ctx context.Context, slug string) (*domain.Business, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockAvailabilityService) ListSlots(ctx context.Context, slug, date string, partySize int) ([]string, error) {
	args := m.Called(ctx, slug, date, partySize)
	return args.Get(0).([]string), args.Error(1)
}

func newWebhookRouter(bookings *MockBookingService, avail *MockAvailabilityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(bookings, avail))
	h.RegisterRoutes(&r.RouterGroup)
	return r
}

func postWebhook(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestWebhook_CreateRejectsMalformedPayload(t *testing.T) {
	bookings := new(MockBookingService)
	r := newWebhookRouter(bookings, new(MockAvailabilityService))

	w := postWebhook(r, `{
		"action": "create",
		"business_slug": "trattoria-zebra",
		"payload": {"date": "next tuesday", "start_time": "19:00", "party_size": 2, "guest_name": "Maya"}
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), "Date")
	bookings.AssertNotCalled(t, "CreateForSlug", mock.Anything, mock.Anything, mock.Anything)
}

func TestWebhook_CreateValidPayload(t *testing.T) {
	bookings := new(MockBookingService)
	bookings.On("CreateForSlug", mock.Anything, "trattoria-zebra", mock.Anything).Return(&domain.Booking{
		ID: 1, BusinessID: 5, Reference: "ref-1", Status: domain.BookingConfirmed,
	}, nil)
	r := newWebhookRouter(bookings, new(MockAvailabilityService))

	w := postWebhook(r, `{
		"action": "create",
		"business_slug": "trattoria-zebra",
		"payload": {"date": "2026-12-28", "start_time": "19:00", "party_size": 2, "guest_name": "Maya"}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ref-1")
	bookings.AssertExpectations(t)
}

func TestWebhook_CheckAvailabilityRequiresDate(t *testing.T) {
	avail := new(MockAvailabilityService)
	r := newWebhookRouter(new(MockBookingService), avail)

	w := postWebhook(r, `{
		"action": "check_availability",
		"business_slug": "trattoria-zebra",
		"payload": {}
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	avail.AssertNotCalled(t, "ListSlots", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWebhook_UpdateRejectsBadClock(t *testing.T) {
	bookings := new(MockBookingService)
	r := newWebhookRouter(bookings, new(MockAvailabilityService))

	w := postWebhook(r, `{
		"action": "update",
		"payload": {"reference": "ref-1", "start_time": "7pm"}
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	bookings.AssertNotCalled(t, "UpdateByReference", mock.Anything, mock.Anything, mock.Anything)
}

func TestWebhook_UnknownAction(t *testing.T) {
	r := newWebhookRouter(new(MockBookingService), new(MockAvailabilityService))

	w := postWebhook(r, `{"action": "teleport"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_ACTION")
}
