package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AFCVentura/Bookstore/internal/demo"
)

const msgDemoInactive = "Every page accepts changes"

// DemoController reports whether the store is in read-only demo mode.
type DemoController struct {
	responder
	middleware *demo.Middleware
}

func NewDemoController(middleware *demo.Middleware, flash FlashStore) *DemoController {
	return &DemoController{responder: responder{flash: flash}, middleware: middleware}
}

// DemoStatusResponse tells clients whether their writes will be kept.
type DemoStatusResponse struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}

func (dc *DemoController) RegisterRoutes(router gin.IRouter) {
	router.GET("/demo", dc.Status)
	router.GET("/api/demo/status", dc.Status)
}

// Status shows the demo mode state, with the message shown for a blocked
// write when it is on.
// GET /demo, GET /api/demo/status
func (dc *DemoController) Status(c *gin.Context) {
	status := DemoStatusResponse{Message: msgDemoInactive}
	if dc.middleware.IsEnabled() {
		status = DemoStatusResponse{Enabled: true, Message: demo.BlockedMessage}
	}
	dc.show(c, http.StatusOK, "demo", status, gin.H{"Status": status})
}
