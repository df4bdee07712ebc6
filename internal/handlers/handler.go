package handlers

import (
	"daily_diet/internal/logger"
	"daily_diet/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Registration is the only unauthenticated operation; it answers with
	// the session cookie every later call must present.
	router.POST("/users", h.registerUser)

	h.registerMealRoutes(router)

	return router
}

func (h *Handler) registerMealRoutes(r *gin.Engine) {
	meals := r.Group("/meals", h.sessionMiddleware)
	{
		meals.POST("", h.createMeal)
		meals.GET("", h.listMeals)
		meals.GET("/summary", h.mealSummary)
		meals.GET("/:id", h.getMeal)
		meals.PUT("/:id", h.updateMeal)
		meals.DELETE("/:id", h.deleteMeal)
	}
}
