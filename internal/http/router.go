package http

import (
	"github.com/gin-gonic/gin"

	"github.com/AFCVentura/Bookstore/internal/session"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	// Apply security headers to all responses
	router.Use(session.SecurityHeadersMiddleware())

	// CSRF must run before the session so that the session context survives
	// CSRF's request replacement
	if len(cfg.CSRFSecret) > 0 {
		router.Use(session.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	var flash FlashStore
	if cfg.Sessions != nil {
		router.Use(cfg.Sessions.LoadSave())
		flash = cfg.Sessions
	}

	router.Use(cfg.Demo.InjectContext())
	if cfg.Demo.IsEnabled() {
		router.Use(cfg.Demo.Handler())
	}

	if cfg.Templates != nil {
		router.SetHTMLTemplate(cfg.Templates)
	}
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	var auditLogger AuditLogger
	if cfg.Audit != nil {
		auditLogger = cfg.Audit
	}

	var pinger Pinger
	if cfg.Database != nil {
		pinger = cfg.Database
	}
	health := NewHealthController(pinger, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	NewDemoController(cfg.Demo, flash).RegisterRoutes(router)

	if cfg.Audit != nil {
		NewAuditController(cfg.Audit, flash).RegisterRoutes(router)
	}

	home := NewHomeController(flash, cfg.Version)
	router.GET("/", home.Index)
	router.GET("/about", home.About)
	router.GET("/error", home.Error)

	// Entity routes share one database session per request
	store := router.Group("/")
	if cfg.Database != nil {
		store.Use(UnitOfWorkMiddleware(cfg.Database))
	} else {
		store.Use(storeUnavailable(responder{flash: flash}))
	}
	NewGenresController(cfg.Genres, auditLogger, flash).RegisterRoutes(store)
	NewBooksController(cfg.Books, cfg.Genres, auditLogger, flash).RegisterRoutes(store)
	NewSellersController(cfg.Sellers, auditLogger, flash).RegisterRoutes(store)
	NewSalesController(cfg.Sales, cfg.Sellers, cfg.Books, auditLogger, flash).RegisterRoutes(store)

	return router
}
