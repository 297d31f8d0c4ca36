package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/hurairaz/sqlite-crud-api/middleware"
)

// RegisterRoutes wires every endpoint onto router, installing the
// request-session middleware first so all handlers see a session bound
// to their request's context.
func RegisterRoutes(router *gin.Engine, h *Handler) {
	router.Use(middleware.DBSession(h.DB))

	// User routes
	router.POST("/users", h.CreateUser)
	router.GET("/users", h.ListUsers)
	router.GET("/users/:id", h.GetUser)
	router.PUT("/users/:id", h.UpdateUser)
	router.DELETE("/users/:id", h.DeleteUser)

	// Item routes
	router.POST("/users/:id/items", h.CreateItemForUser)
	router.GET("/items", h.ListItems)
}
