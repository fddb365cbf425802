package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zebratime/internal/domain"
	"zebratime/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/businesses/:slug/bookings", h.CreatePublic)
}

func (h *Handler) RegisterOwnerRoutes(rg *gin.RouterGroup) {
	rg.GET("/businesses/:id/bookings", h.ListForDate)
	rg.POST("/businesses/:id/bookings", h.CreateStaff)
	rg.PATCH("/businesses/:id/bookings/:bookingID/status", h.UpdateStatus)
	rg.DELETE("/businesses/:id/bookings/:bookingID", h.Cancel)
}

// CreatePublic is the web intake endpoint. Its response shape is the
// contract the booking widget expects: {success, booking, message}.
func (h *Handler) CreatePublic(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateForSlug(c.Request.Context(), c.Param("slug"), CreateInput{
		Date:       req.Date,
		StartTime:  req.StartTime,
		PartySize:  req.PartySize,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		GuestEmail: req.GuestEmail,
		Notes:      req.Notes,
		Source:     domain.SourceWeb,
	})
	if err != nil {
		h.writeCreateError(c, err)
		return
	}

	message := "Booking confirmed"
	switch b.Status {
	case domain.BookingPendingConfirmation:
		message = "Booking received, awaiting confirmation"
	case domain.BookingPending:
		message = "No table is free right now, you have been waitlisted"
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"booking": b,
		"message": message,
	})
}

func (h *Handler) writeCreateError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case ErrBusinessNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Business not found")
	case ErrNotAvailable, ErrOverbooking:
		response.Error(c, http.StatusConflict, "NO_AVAILABILITY", "No table is available for the selected time")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
	}
}

func (h *Handler) CreateStaff(c *gin.Context) {
	businessID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid business ID")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateForBusiness(c.Request.Context(), businessID, CreateInput{
		Date:       req.Date,
		StartTime:  req.StartTime,
		PartySize:  req.PartySize,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		GuestEmail: req.GuestEmail,
		Notes:      req.Notes,
		Source:     domain.SourceStaff,
	})
	if err != nil {
		h.writeCreateError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) ListForDate(c *gin.Context) {
	businessID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid business ID")
		return
	}

	bookings, err := h.service.ListForDate(c.Request.Context(), businessID, c.Query("date"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	businessID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid business ID")
		return
	}
	bookingID, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), businessID, bookingID, req.Status)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Cancel(c *gin.Context) {
	businessID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid business ID")
		return
	}
	bookingID, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.service.Cancel(c.Request.Context(), businessID, bookingID, req.Reason)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking can no longer be cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}
