package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AFCVentura/Bookstore/internal/audit"
	"github.com/AFCVentura/Bookstore/internal/config"
	"github.com/AFCVentura/Bookstore/internal/database"
	auditRepo "github.com/AFCVentura/Bookstore/internal/database/audit"
	"github.com/AFCVentura/Bookstore/internal/database/books"
	"github.com/AFCVentura/Bookstore/internal/database/genres"
	"github.com/AFCVentura/Bookstore/internal/database/sales"
	"github.com/AFCVentura/Bookstore/internal/database/sellers"
	"github.com/AFCVentura/Bookstore/internal/demo"
	"github.com/AFCVentura/Bookstore/internal/format"
	http_controllers "github.com/AFCVentura/Bookstore/internal/http"
	"github.com/AFCVentura/Bookstore/internal/seeding"
	"github.com/AFCVentura/Bookstore/internal/session"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT or SIGTERM, then give in-flight requests the
	// configured timeout to finish.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookstore v%s", version)

	db, err := database.Open(cfg.Database.Path, database.Options{
		LogLevel: database.ParseLogLevel(cfg.Database.LogLevel),
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	auditService := audit.NewService(auditRepo.NewRepository(db.DB))
	prepare(context.Background(), cfg, db, auditService)

	router, err := NewRouter(cfg, db, auditService, version)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	Serve(router, cfg, nil)
}

// prepare prunes old audit events and seeds demonstration data when asked to.
// Neither failure stops the server.
func prepare(ctx context.Context, cfg *config.Config, db *database.Database, auditService *audit.Service) {
	if cfg.Audit.Retention > 0 {
		deleted, err := auditService.DeleteOldEvents(ctx, cfg.Audit.Retention)
		if err != nil {
			log.Printf("WARNING: Failed to prune audit events: %v", err)
		} else if deleted > 0 {
			log.Printf("Pruned %d audit events older than %v", deleted, cfg.Audit.Retention)
		}
	}

	if cfg.ShouldSeed() {
		if _, err := seeding.NewSeeder(db, auditService).Seed(ctx); err != nil {
			log.Printf("WARNING: %v", err)
		}
	}
}

// NewRouter wires the repositories, sessions, form protection and templates
// into the HTTP router.
func NewRouter(cfg *config.Config, db *database.Database, auditService *audit.Service, version string) (*gin.Engine, error) {
	demoMiddleware := demo.NewMiddleware(cfg.Demo.Enabled)
	if demoMiddleware.IsEnabled() {
		log.Printf("Demo mode enabled - write operations will be blocked")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB for sessions: %w", err)
	}
	sessionManager, err := session.NewManager(sqlDB, cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session manager: %w", err)
	}

	var csrfSecret []byte
	if cfg.Session.CSRFEnabled {
		var generated bool
		csrfSecret, generated, err = session.ResolveSecret(cfg.Session.Secret)
		if err != nil {
			return nil, fmt.Errorf("failed to generate CSRF secret: %w", err)
		}
		if generated {
			log.Printf("Generated session secret (set SESSION_SECRET to persist)")
		}
	} else {
		log.Printf("WARNING: CSRF protection is disabled")
	}

	formatter, err := format.New(cfg.Locale.Tag, cfg.Locale.CurrencySymbol)
	if err != nil {
		return nil, err
	}
	templates, err := http_controllers.LoadTemplates(cfg.UI.TemplatesPath, formatter)
	if err != nil {
		return nil, err
	}

	return http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:      db,
		Genres:        genres.NewRepository(),
		Books:         books.NewRepository(),
		Sellers:       sellers.NewRepository(),
		Sales:         sales.NewRepository(),
		Audit:         auditService,
		Sessions:      sessionManager,
		CSRFSecret:    csrfSecret,
		SecureCookies: cfg.Session.SecureCookies,
		Demo:          demoMiddleware,
		Templates:     templates,
		StaticPath:    cfg.UI.StaticPath,
		Version:       version,
	}), nil
}
