package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	auditRepo "github.com/AFCVentura/Bookstore/internal/database/audit"
	"github.com/AFCVentura/Bookstore/internal/entities"
)

const (
	auditPageSize    = 25
	auditMaxPageSize = 100
)

type AuditController struct {
	responder
	events AuditReader
}

func NewAuditController(events AuditReader, flash FlashStore) *AuditController {
	return &AuditController{
		responder: responder{flash: flash},
		events:    events,
	}
}

func (ac *AuditController) RegisterRoutes(router gin.IRouter) {
	router.GET("/audit", ac.AuditLogPage)
	router.GET("/api/audit", ac.GetAuditEvents)
}

// AuditLogPage renders the audit log UI
// GET /audit
func (ac *AuditController) AuditLogPage(c *gin.Context) {
	page, filter := auditQuery(c, auditPageSize)

	events, total, err := ac.events.GetEvents(c.Request.Context(), filter)
	if err != nil {
		ac.internalError(c, err, "audit log")
		return
	}

	ac.page(c, http.StatusOK, "audit", gin.H{
		"Events":      events,
		"CurrentPage": page,
		"TotalPages":  totalPages(total, filter.Limit),
		"TotalEvents": total,
		"EventType":   string(filter.EventType),
		"EntityType":  filter.EntityType,
		"EventTypes":  getEventTypes(),
	})
}

// GetAuditEvents returns paginated audit events as JSON
// GET /api/audit
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	page, filter := auditQuery(c, auditPageSize)

	events, total, err := ac.events.GetEvents(c.Request.Context(), filter)
	if err != nil {
		ac.internalError(c, err, "audit api")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":       events,
		"page":         page,
		"limit":        filter.Limit,
		"total_pages":  totalPages(total, filter.Limit),
		"total_events": total,
	})
}

// auditQuery reads page, limit, type and entity from the query string.
func auditQuery(c *gin.Context, defaultLimit int) (int, auditRepo.Filter) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > auditMaxPageSize {
		limit = defaultLimit
	}

	return page, auditRepo.Filter{
		EntityType: c.Query("entity"),
		EventType:  entities.AuditEventType(c.Query("type")),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}
}

func totalPages(total int64, limit int) int {
	pages := (int(total) + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	return pages
}

func getEventTypes() []EventTypeOption {
	return []EventTypeOption{
		{Value: "", Label: "All Events"},
		{Value: string(entities.AuditEventCreate), Label: "Create"},
		{Value: string(entities.AuditEventUpdate), Label: "Update"},
		{Value: string(entities.AuditEventDelete), Label: "Delete"},
		{Value: string(entities.AuditEventSeed), Label: "Seed"},
	}
}

type EventTypeOption struct {
	Value string
	Label string
}
