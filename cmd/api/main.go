package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ashramseva/donation-api/internal/application/service"
	"github.com/ashramseva/donation-api/internal/config"
	"github.com/ashramseva/donation-api/internal/infrastructure/database"
	"github.com/ashramseva/donation-api/internal/infrastructure/repository"
	"github.com/ashramseva/donation-api/internal/presentation/http/handler"
	"github.com/ashramseva/donation-api/internal/presentation/http/routes"
	"github.com/ashramseva/donation-api/pkg/email"
	"github.com/ashramseva/donation-api/pkg/oauth"
	"github.com/ashramseva/donation-api/pkg/receiptdoc"
	"github.com/ashramseva/donation-api/pkg/renderer"
	"github.com/ashramseva/donation-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	donorRepo := repository.NewDonorRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     cfg.SMTP.Port,
		SMTPUsername: cfg.SMTP.Username,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.SMTP.FromName,
		FromEmail:    cfg.SMTP.From,
		FrontendURL:  cfg.SMTP.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Receipt resources and render backends
	resources := receiptdoc.NewFSProvider([]string{cfg.Render.FontDir, "./assets"})
	pdfRenderer := renderer.NewMarotoRenderer(resources)
	browserRenderer := renderer.NewBrowserRenderer(resources, cfg.Render.BrowserTimeout)

	renderers := []renderer.Renderer{pdfRenderer, browserRenderer}
	if cfg.Render.Backend == renderer.NameBrowser {
		renderers = []renderer.Renderer{browserRenderer, pdfRenderer}
	}

	org := receiptdoc.OrgProfile{
		NameEN:       cfg.Org.NameEnglish,
		NameNE:       cfg.Org.NameNepali,
		SacredSymbol: "ॐ",
		Address:      cfg.Org.AddressEnglish,
		Phone:        cfg.Org.Phone,
		Email:        cfg.Org.Email,
		LogoCaptionL: cfg.Org.LogoCaptionL,
		LogoCaptionR: cfg.Org.LogoCaptionR,
	}
	if cfg.Org.RegistrationNo != "" {
		org.RegLeft = "दर्ता नं. " + cfg.Org.RegistrationNo
	}
	if cfg.Org.PANNumber != "" {
		org.RegRight = "PAN: " + cfg.Org.PANNumber
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)
	donorService := service.NewDonorService(donorRepo)
	donationService := service.NewDonationService(donationRepo, donorRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)
	exportService := service.NewExportService(donationRepo)
	receiptService := service.NewReceiptService(renderers, resources, org, cfg.Render.IncludeLogos, donationRepo, emailService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Donor:     handler.NewDonorHandler(donorService),
		Donation:  handler.NewDonationHandler(donationService, exportService),
		Receipt:   handler.NewReceiptHandler(receiptService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		User:      handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	browserRenderer.Shutdown()
}
