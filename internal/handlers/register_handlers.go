package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/walletforge/wallet_tracker_backend/internal/core/ports/services"
	"github.com/walletforge/wallet_tracker_backend/internal/middleware"
	"github.com/walletforge/wallet_tracker_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Apply rate limiting and AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1",
		middleware.RateLimit(newLimiter(cfg.RateLimit)),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, service.User)
	registerCurrencyRoutes(v1, service.Currency)
	registerCurrencyRateRoutes(v1, service.Rate)
	registerWalletRoutes(v1, service.Wallet)
	registerTransactionRoutes(v1, service.Transaction)
	registerPortfolioRoutes(v1, service.Portfolio)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// newLimiter builds an in-memory rate limiter from a formatted rate such as
// "100-M". An invalid format falls back to a permissive default.
func newLimiter(formatted string) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		slog.Warn("Invalid rate limit format, falling back to default",
			slog.String("rate", formatted), slog.String("error", err.Error()))
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	return limiter.New(memory.NewStore(), rate)
}
