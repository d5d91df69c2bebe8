// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"abuadfarms/internal/delivery/http/middleware"
	"abuadfarms/internal/delivery/http/router/handler"
	"abuadfarms/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	OrderHandler    *handler.OrderHandler
	UserHandler     *handler.UserHandler
	UploadHandler   *handler.UploadHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	adminOnly := []echo.MiddlewareFunc{auth.Authenticate, auth.RequireRole(entity.RoleAdmin)}

	// Liveness endpoint
	e.GET("/", handler.Root)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	// Catalog routes: reads are public, mutations are admin only
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.params.ProductHandler.List)
		productGroup.GET("/featured", r.params.ProductHandler.Featured)
		productGroup.POST("/upload", r.params.UploadHandler.Upload, adminOnly...)
		productGroup.GET("/:id", r.params.ProductHandler.Get)
		productGroup.POST("", r.params.ProductHandler.Create, adminOnly...)
		productGroup.PUT("/:id", r.params.ProductHandler.Update, adminOnly...)
		productGroup.DELETE("/:id", r.params.ProductHandler.Delete, adminOnly...)
	}

	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.params.CategoryHandler.List)
		categoryGroup.PUT("", r.params.CategoryHandler.Rename, adminOnly...)
		categoryGroup.DELETE("", r.params.CategoryHandler.Delete, adminOnly...)
	}

	// Order routes: checkout works for guests, with optional attribution
	orderGroup := api.Group("/orders")
	{
		orderGroup.POST("", r.params.OrderHandler.Place, auth.OptionalAuthenticate)
		orderGroup.GET("", r.params.OrderHandler.List, adminOnly...)
		orderGroup.GET("/:order_number", r.params.OrderHandler.Get, auth.Authenticate)
		orderGroup.PUT("/:id", r.params.OrderHandler.UpdateStatus, adminOnly...)
	}

	// Admin user management
	userGroup := api.Group("/users", adminOnly...)
	{
		userGroup.GET("", r.params.UserHandler.List)
		userGroup.PUT("/:id/role", r.params.UserHandler.UpdateRole)
	}
}
