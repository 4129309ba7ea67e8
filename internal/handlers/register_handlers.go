package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tajuwa/clickbit_backend/cmd/docs"
	portssvc "github.com/tajuwa/clickbit_backend/internal/core/ports/services"
	"github.com/tajuwa/clickbit_backend/internal/middleware"
	"github.com/tajuwa/clickbit_backend/internal/platform/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	registerAuthRoutes(r, cfg, services)
	registerSessionRoutes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// registerAuthRoutes sets up the public (unauthenticated) identity routes.
// Login and register share a per-IP rate limit.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Auth, cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/user/auth")
	{
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/google/exchange-code", limitMiddleware, h.ExchangeCodeGoogle)
	}
}

// registerSessionRoutes sets up the routes that require a resolved session.
func registerSessionRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	authHandler := NewAuthHandler(services.Auth, cfg)
	userHandler := newUserHandler(services.Auth)

	user := r.Group("/user", middleware.SessionAuthMiddleware(cfg, services.Token, services.User))
	{
		user.GET("/me", userHandler.Me)
		user.PUT("/profile", userHandler.UpdateProfile)
		user.POST("/logout", authHandler.Logout)
		user.POST("/change-password", authHandler.ChangePassword)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
