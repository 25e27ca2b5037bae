package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashramseva/donation-api/internal/config"
	domainRepo "github.com/ashramseva/donation-api/internal/domain/repository"
	"github.com/ashramseva/donation-api/internal/presentation/http/handler"
	"github.com/ashramseva/donation-api/internal/presentation/http/middleware"
	"github.com/ashramseva/donation-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Donor     *handler.DonorHandler
	Donation  *handler.DonationHandler
	Receipt   *handler.ReceiptHandler
	Dashboard *handler.DashboardHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	// Donors
	registerDonorRoutes(protected, h)

	// Donations
	registerDonationRoutes(protected, h, deps)

	// Receipts
	registerReceiptRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles (Admin)
	registerRoleRoutes(protected, h)

	// Permissions (Admin)
	registerPermissionRoutes(protected, h)
}

func registerDonorRoutes(protected *gin.RouterGroup, h *Handlers) {
	donors := protected.Group("/donors")
	donors.Use(middleware.RequirePermission("manage-donors"))
	{
		donors.GET("", h.Donor.List)
		donors.POST("", h.Donor.Create)
		donors.GET("/:id", h.Donor.Get)
		donors.PUT("/:id", h.Donor.Update)
		donors.DELETE("/:id", h.Donor.Delete)
	}
}

func registerDonationRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	donations := protected.Group("/donations")
	donations.Use(middleware.RequirePermission("manage-donations"))
	{
		donations.GET("", h.Donation.List)
		// Donation creation uses idempotency middleware to prevent duplicates
		donations.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Donation.Create)
		donations.GET("/export", middleware.RequirePermission("export-donations"), h.Donation.Export)
		donations.GET("/:id", h.Donation.Get)
		donations.PUT("/:id", h.Donation.Update)
		donations.DELETE("/:id", h.Donation.Delete)

		// Receipt rendering for stored donations
		donations.GET("/:id/receipt", middleware.RequirePermission("generate-receipts"), h.Receipt.GenerateForDonation)
		donations.POST("/:id/receipt/email", middleware.RequirePermission("email-receipts"), h.Receipt.EmailReceipt)
	}
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers) {
	receipts := protected.Group("/receipts")
	receipts.Use(middleware.RequirePermission("generate-receipts"))
	{
		receipts.POST("/generate", h.Receipt.Generate)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}

func registerPermissionRoutes(protected *gin.RouterGroup, h *Handlers) {
	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}
