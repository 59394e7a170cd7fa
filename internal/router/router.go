package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pamatshop4/blacklight-backend/config"
	"github.com/pamatshop4/blacklight-backend/internal/app/controller"
	"github.com/pamatshop4/blacklight-backend/internal/middleware"
)

type Router struct {
	intakeController *controller.IntakeController
	rateLimiter      middleware.Limiter
	config           *config.Config
}

func NewRouter(
	intakeController *controller.IntakeController,
	rateLimiter middleware.Limiter,
	cfg *config.Config,
) *Router {
	return &Router{
		intakeController: intakeController,
		rateLimiter:      rateLimiter,
		config:           cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "blacklight API is running",
		})
	})

	api := router.Group("/api")
	{
		api.POST("/join",
			middleware.RateLimitMiddleware(r.rateLimiter),
			r.intakeController.Join,
		)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
