package http

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AFCVentura/Bookstore/internal/database"
	"github.com/AFCVentura/Bookstore/internal/demo"
	"github.com/AFCVentura/Bookstore/internal/session"
)

// Messages shown when a request names an entity that cannot be used.
const (
	msgInvalidID  = "id not provided"
	msgIDNotFound = "id not found"
	msgIDMismatch = "ids do not match"
	msgNoDatabase = "the store is not available"
)

// Machine-readable error codes used in ErrorResponse.Code.
const (
	CodeNotFound            = "not_found"
	CodeIntegrityViolation  = "integrity_violation"
	CodeConcurrencyConflict = "concurrency_conflict"
	CodeInvalidRequest      = "invalid_request"
	CodeValidationError     = "validation_error"
	CodeInternalError       = "internal_error"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`       // machine-readable error code
	Details   any    `json:"details,omitempty"`    // validation errors, etc.
	RequestID string `json:"request_id,omitempty"` // matches the X-Request-ID header
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// FlashStore keeps messages across the redirect that follows a form post.
type FlashStore interface {
	PutFlash(ctx context.Context, message string)
	PopFlash(ctx context.Context) string
	PutError(ctx context.Context, message, requestID string)
	PopError(ctx context.Context) (message, requestID string)
}

// responder answers in HTML or JSON depending on what the client accepts.
// HTML failures go through the error page; without a FlashStore the page is
// rendered in place instead of after a redirect.
type responder struct {
	flash FlashStore
}

// wantsJSON reports whether the client asked for, or sent, JSON.
func wantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	if strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html") {
		return true
	}
	return c.ContentType() == gin.MIMEJSON
}

// page renders an HTML template with the values every layout needs.
func (r responder) page(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CSRFField"] = session.CSRFTokenField(c)
	data["RequestID"] = GetRequestID(c)
	data["DemoMode"] = c.GetBool(demo.ContextKeyDemoMode)
	if r.flash != nil {
		data["Flash"] = r.flash.PopFlash(c.Request.Context())
	}
	c.HTML(status, name, data)
}

// show answers JSON clients with payload and everyone else with a page.
func (r responder) show(c *gin.Context, status int, name string, payload any, data gin.H) {
	if wantsJSON(c) {
		c.JSON(status, payload)
		return
	}
	r.page(c, status, name, data)
}

// done finishes a successful write: JSON clients get payload, browsers are
// sent to location with a notice.
func (r responder) done(c *gin.Context, status int, payload any, location, notice string) {
	if wantsJSON(c) {
		c.JSON(status, payload)
		return
	}
	if r.flash != nil {
		r.flash.PutFlash(c.Request.Context(), notice)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// fail reports an error to the client and stops the handler chain.
func (r responder) fail(c *gin.Context, status int, code, message string) {
	requestID := GetRequestID(c)
	defer c.Abort()

	if wantsJSON(c) {
		c.JSON(status, ErrorResponse{Error: message, Code: code, RequestID: requestID})
		return
	}
	if r.flash != nil {
		r.flash.PutError(c.Request.Context(), message, requestID)
		c.Redirect(http.StatusSeeOther, "/error")
		return
	}
	r.page(c, status, "error", gin.H{"Message": message, "FailedRequestID": requestID})
}

// repositoryError maps a classified repository error to a response.
// integrityMessage replaces the driver text for rejected deletes.
func (r responder) repositoryError(c *gin.Context, err error, integrityMessage string) {
	switch database.KindOf(err) {
	case database.KindNotFound:
		r.fail(c, http.StatusNotFound, CodeNotFound, msgIDNotFound)
	case database.KindIntegrity:
		message := integrityMessage
		if message == "" {
			message = database.Message(err)
		}
		r.fail(c, http.StatusConflict, CodeIntegrityViolation, message)
	case database.KindConcurrency:
		r.fail(c, http.StatusConflict, CodeConcurrencyConflict, database.Message(err))
	default:
		r.internalError(c, err, c.FullPath())
	}
}

// internalError logs the error and answers 500 without exposing it.
func (r responder) internalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s) [%s]: %v", context, GetRequestID(c), err)
	r.fail(c, http.StatusInternalServerError, CodeInternalError, "internal server error")
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Responds with an error and returns 0, false when the value is not an id.
func (r responder) parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil || id == 0 {
		r.fail(c, http.StatusBadRequest, CodeInvalidRequest, msgInvalidID)
		return 0, false
	}
	return uint(id), true
}
