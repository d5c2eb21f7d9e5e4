package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const msgUnknownError = "An unexpected error occurred"

// HomeController serves the landing, about and error pages.
type HomeController struct {
	responder
	version string
}

func NewHomeController(flash FlashStore, version string) *HomeController {
	return &HomeController{responder: responder{flash: flash}, version: version}
}

// Index renders the landing page.
// GET /
func (hc *HomeController) Index(c *gin.Context) {
	hc.page(c, http.StatusOK, "home", nil)
}

// About renders the about page.
// GET /about
func (hc *HomeController) About(c *gin.Context) {
	hc.page(c, http.StatusOK, "about", gin.H{"Version": hc.version})
}

// Error shows the failure stored by the request that redirected here, with
// the id of that request.
// GET /error
func (hc *HomeController) Error(c *gin.Context) {
	message, requestID := "", ""
	if hc.flash != nil {
		message, requestID = hc.flash.PopError(c.Request.Context())
	}
	if message == "" {
		message = msgUnknownError
	}
	if requestID == "" {
		requestID = GetRequestID(c)
	}

	hc.show(c, http.StatusOK, "error",
		ErrorResponse{Error: message, RequestID: requestID},
		gin.H{"Message": message, "FailedRequestID": requestID})
}
