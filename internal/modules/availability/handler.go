package availability

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zebratime/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/businesses/:slug", h.GetBusiness)
	rg.GET("/businesses/:slug/availability", h.ListSlots)
}

func (h *Handler) GetBusiness(c *gin.Context) {
	business, err := h.service.GetBusiness(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Business not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load business")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"business": business})
}

func (h *Handler) ListSlots(c *gin.Context) {
	dateStr := c.Query("date")
	partySize, err := strconv.Atoi(c.DefaultQuery("party_size", "2"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "party_size must be a number")
		return
	}

	slots, err := h.service.ListSlots(c.Request.Context(), c.Param("slug"), dateStr, partySize)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date or party size")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Business not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute availability")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
