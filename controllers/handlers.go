package controllers

import (
	"runtime"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hurairaz/sqlite-crud-api/middleware"
	"github.com/hurairaz/sqlite-crud-api/repository"
	"github.com/hurairaz/sqlite-crud-api/services"
)

const bcryptCost = 12

// Handler holds the application's dependencies, making them explicit.
type Handler struct {
	DB     *gorm.DB
	Hasher *services.Hasher
}

// NewHandler creates a new handler with its dependencies.
func NewHandler(db *gorm.DB) *Handler {
	// Create the hasher service with a worker for each available CPU core.
	hasher := services.NewHasher(runtime.NumCPU(), bcryptCost)

	return &Handler{
		DB:     db,
		Hasher: hasher,
	}
}

// ## Helper Methods

func (h *Handler) jsonError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// session returns the request-scoped database session placed on the
// context by middleware.DBSession, falling back to the shared handle.
func (h *Handler) session(c *gin.Context) *gorm.DB {
	if v, exists := c.Get(middleware.SessionKey); exists {
		if db, ok := v.(*gorm.DB); ok {
			return db
		}
	}
	return h.DB.WithContext(c.Request.Context())
}

func (h *Handler) parseID(idStr string) (uint, error) {
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// paging reads the skip and limit query parameters, applying the
// defaults when they are missing or unusable.
func (h *Handler) paging(c *gin.Context) (skip, limit int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(repository.DefaultLimit)))
	if err != nil || limit <= 0 {
		limit = repository.DefaultLimit
	}
	return skip, limit
}
