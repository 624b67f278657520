// Package router sets up the HTTP routing for the application.
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-control/backend/internal/integration/entrypoint/controller"
	"github.com/budget-control/backend/internal/integration/entrypoint/dto"
	"github.com/budget-control/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	userController         *controller.UserController
	groupController        *controller.GroupController
	transactionControllers []*controller.TransactionController
	loginRateLimiter       *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	groupController *controller.GroupController,
	transactionControllers []*controller.TransactionController,
	loginRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:       healthController,
		userController:         userController,
		groupController:        groupController,
		transactionControllers: transactionControllers,
		loginRateLimiter:       loginRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) (*gin.Engine, error) {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	if err := dto.RegisterValidations(); err != nil {
		return nil, fmt.Errorf("failed to register request validations: %w", err)
	}

	r.engine = gin.New()
	r.engine.Use(middleware.RequestLogger(), middleware.Recovery())
	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, dto.MessageRouteNotFound))
	})

	r.setupHealthRoutes()
	r.setupUserRoutes()
	r.setupGroupRoutes()
	r.setupTransactionRoutes()

	return r.engine, nil
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupUserRoutes configures user and login endpoints.
func (r *Router) setupUserRoutes() {
	users := r.engine.Group("/user")
	{
		users.POST("", r.userController.Create)
		users.GET("", r.userController.List)
		users.GET("/:id", r.userController.GetByID)
		users.PUT("/:id", r.userController.Update)
		users.DELETE("/:id", r.userController.Delete)

		if r.loginRateLimiter != nil {
			users.POST("/auth", r.loginRateLimiter.Middleware(), r.userController.Login)
		} else {
			users.POST("/auth", r.userController.Login)
		}
	}
}

// setupGroupRoutes configures group endpoints.
func (r *Router) setupGroupRoutes() {
	groups := r.engine.Group("/groups")
	{
		groups.POST("", r.groupController.Create)
		groups.GET("", r.groupController.List)
		groups.GET("/:id", r.groupController.GetByID)
		groups.GET("/:id/users", r.groupController.ListMembers)
		groups.PUT("/:id", r.groupController.Update)
		groups.DELETE("/:id", r.groupController.Delete)
	}
}

// setupTransactionRoutes configures one resource per transaction kind.
func (r *Router) setupTransactionRoutes() {
	for _, tc := range r.transactionControllers {
		transactions := r.engine.Group("/" + tc.Kind().Resource())
		{
			transactions.POST("", tc.Create)
			transactions.GET("", tc.List)
			transactions.GET("/:id", tc.GetByID)
			transactions.PUT("/:id", tc.Update)
			transactions.DELETE("/:id", tc.Delete)
		}
	}
}
