package assistant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zebratime/internal/modules/availability"
	"zebratime/internal/modules/booking"
	"zebratime/internal/pkg/response"
	"zebratime/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/webhook", h.Webhook)
}

// Webhook is the single voice-assistant entry point; the action field
// selects the operation.
func (h *Handler) Webhook(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid webhook body")
		return
	}

	ctx := c.Request.Context()

	switch req.Action {
	case "create":
		if !h.validPayload(c, createPayload{
			Date:      req.Payload.Date,
			StartTime: req.Payload.StartTime,
			PartySize: req.Payload.PartySize,
			GuestName: req.Payload.GuestName,
		}) {
			return
		}
		result, err := h.service.Create(ctx, req)
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusOK, result)

	case "cancel":
		b, err := h.service.Cancel(ctx, req)
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"booking": b})

	case "update":
		if !h.validPayload(c, updatePayload{
			Date:      req.Payload.Date,
			StartTime: req.Payload.StartTime,
			PartySize: req.Payload.PartySize,
		}) {
			return
		}
		b, err := h.service.Update(ctx, req)
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"booking": b})

	case "check_availability":
		if !h.validPayload(c, checkPayload{
			Date:      req.Payload.Date,
			PartySize: req.Payload.PartySize,
		}) {
			return
		}
		slots, err := h.service.CheckAvailability(ctx, req)
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"date": req.Payload.Date, "slots": slots})

	case "list":
		bookings, err := h.service.List(ctx, req)
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"bookings": bookings})

	default:
		response.Error(c, http.StatusBadRequest, "UNKNOWN_ACTION", "Unsupported action")
	}
}

// validPayload runs the per-action validation view and writes the field-level
// errors back to the assistant, which reads them out to the caller.
func (h *Handler) validPayload(c *gin.Context, payload any) bool {
	details := validator.Validate(payload)
	if details == nil {
		return true
	}
	response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payload", details)
	return false
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case booking.ErrValidation, availability.ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payload")
	case booking.ErrBusinessNotFound, booking.ErrNotFound, availability.ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Not found")
	case booking.ErrNotAvailable, booking.ErrOverbooking:
		response.Error(c, http.StatusConflict, "NO_AVAILABILITY", "No availability for the requested window")
	case booking.ErrInvalidStatusTransition:
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking can no longer be changed")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Webhook processing failed")
	}
}
