package router

import (
	"github.com/gin-gonic/gin"

	"entrega/internal/config"
	"entrega/internal/domain"
	"entrega/internal/handler"
	"entrega/internal/middleware"
	"entrega/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	businessH *handler.BusinessHandler,
	menuH *handler.MenuHandler,
	offerH *handler.OfferHandler,
	mediaH *handler.MediaHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)
	auth.POST("/social", authH.SocialLogin)

	// Public discovery routes
	v1.GET("/home", businessH.Home)
	v1.GET("/businesses", businessH.List)
	v1.GET("/businesses/categories", businessH.ListCategories)
	v1.GET("/businesses/:id", businessH.Get)
	v1.GET("/products", menuH.ListProducts)
	v1.GET("/products/:id", menuH.GetProduct)
	v1.GET("/offers", offerH.Feed)
	v1.GET("/offers/:id", offerH.Get)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	users := protected.Group("/users")
	users.GET("/me", userH.GetProfile)
	users.PATCH("/me", userH.UpdateProfile)

	// Admin routes - catalogue management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	admin.GET("/users", userH.ListUsers)
	admin.DELETE("/users/:id", userH.DeactivateUser)

	admin.POST("/businesses", businessH.Create)
	admin.PUT("/businesses/:id", businessH.Update)
	admin.DELETE("/businesses/:id", businessH.Delete)
	admin.PUT("/businesses/:id/hours", businessH.ReplaceHours)
	admin.POST("/businesses/:id/sections", menuH.CreateSection)
	admin.POST("/businesses/:id/items", menuH.CreateItem)

	admin.PUT("/items/:id", menuH.UpdateItem)
	admin.DELETE("/items/:id", menuH.DeleteItem)
	admin.PUT("/items/:id/variants", menuH.ReplaceVariants)

	admin.POST("/offers", offerH.Create)
	admin.PUT("/offers/:id", offerH.Update)
	admin.DELETE("/offers/:id", offerH.Delete)

	admin.POST("/media", mediaH.Upload)
	admin.DELETE("/media", mediaH.Delete)

	admin.GET("/export/catalogue", exportH.CatalogueXLSX)

	return r
}
