package business

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"zebratime/internal/events"
	"zebratime/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *events.Hub
}

func NewHandler(service *Service, hub *events.Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// RegisterRoutes wires the owner CRUD surface. Routes addressing one
// business run behind the ownership middleware installed by the caller.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, owned *gin.RouterGroup) {
	rg.GET("/businesses", h.ListMine)
	rg.POST("/businesses", h.Create)

	owned.GET("/businesses/:id", h.Get)
	owned.PUT("/businesses/:id", h.Update)

	owned.GET("/businesses/:id/availability-rules", h.ListRules)
	owned.POST("/businesses/:id/availability-rules", h.AddRule)
	owned.PUT("/businesses/:id/availability-rules", h.ReplaceRules)
	owned.DELETE("/businesses/:id/availability-rules/:ruleID", h.DeleteRule)

	owned.GET("/businesses/:id/tables", h.ListTables)
	owned.POST("/businesses/:id/tables", h.AddTable)
	owned.PUT("/businesses/:id/tables/:tableID", h.UpdateTable)
	owned.DELETE("/businesses/:id/tables/:tableID", h.DeleteTable)

	owned.GET("/businesses/:id/events", h.Events)
}

func (h *Handler) ListMine(c *gin.Context) {
	businesses, err := h.service.ListByOwner(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list businesses")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"businesses": businesses})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"business": b})
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), c.GetInt64("business_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"business": b})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.GetInt64("business_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"business": b})
}

func (h *Handler) ListRules(c *gin.Context) {
	rules, err := h.service.ListRules(c.Request.Context(), c.GetInt64("business_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rules": rules})
}

func (h *Handler) AddRule(c *gin.Context) {
	var req RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rule, err := h.service.AddRule(c.Request.Context(), c.GetInt64("business_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"rule": rule})
}

func (h *Handler) ReplaceRules(c *gin.Context) {
	var reqs []RuleRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rules, err := h.service.ReplaceRules(c.Request.Context(), c.GetInt64("business_id"), reqs)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rules": rules})
}

func (h *Handler) DeleteRule(c *gin.Context) {
	ruleID, err := strconv.ParseInt(c.Param("ruleID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid rule ID")
		return
	}

	if err := h.service.DeleteRule(c.Request.Context(), ruleID, c.GetInt64("business_id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListTables(c *gin.Context) {
	tables, err := h.service.ListTables(c.Request.Context(), c.GetInt64("business_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tables": tables})
}

func (h *Handler) AddTable(c *gin.Context) {
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.AddTable(c.Request.Context(), c.GetInt64("business_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"table": t})
}

func (h *Handler) UpdateTable(c *gin.Context) {
	tableID, err := strconv.ParseInt(c.Param("tableID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid table ID")
		return
	}

	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.UpdateTable(c.Request.Context(), tableID, c.GetInt64("business_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"table": t})
}

func (h *Handler) DeleteTable(c *gin.Context) {
	tableID, err := strconv.ParseInt(c.Param("tableID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid table ID")
		return
	}

	if err := h.service.DeleteTable(c.Request.Context(), tableID, c.GetInt64("business_id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Events upgrades the connection and streams booking events for the business
// until the dashboard goes away.
func (h *Handler) Events(c *gin.Context) {
	businessID := c.GetInt64("business_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("events_upgrade_failed business_id=%d error=%q", businessID, err)
		return
	}

	h.hub.Register(businessID, conn)
	defer h.hub.Unregister(businessID, conn)

	// Drain control frames; the read fails when the client disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Request failed")
	}
}
