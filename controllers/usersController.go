package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hurairaz/sqlite-crud-api/repository"
	"github.com/hurairaz/sqlite-crud-api/schemas"
)

// CreateUser registers a new user. The email check here gives the
// friendly conflict message; the unique constraint on users.email is
// what actually guarantees at-most-one row under concurrent requests.
func (h *Handler) CreateUser(c *gin.Context) {
	var body schemas.UserCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	session := h.session(c)

	existing, err := repository.GetUserByEmail(session, body.Email)
	if err != nil {
		h.jsonError(c, http.StatusInternalServerError, "Failed to check email")
		return
	}
	if existing != nil {
		h.jsonError(c, http.StatusBadRequest, "Email already registered")
		return
	}

	// Offload the slow hashing operation.
	hash, err := h.Hasher.GenerateHash(body.Password)
	if err != nil {
		h.jsonError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user, err := repository.CreateUser(session, body.Email, hash)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race between the check above and the insert.
		h.jsonError(c, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		h.jsonError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, schemas.NewUser(user))
}

// ListUsers returns a page of users per skip/limit.
func (h *Handler) ListUsers(c *gin.Context) {
	skip, limit := h.paging(c)

	users, err := repository.ListUsers(h.session(c), skip, limit)
	if err != nil {
		h.jsonError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, schemas.NewUserList(users))
}

// GetUser returns one user by id or 404.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := h.parseID(c.Param("id"))
	if err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := repository.GetUser(h.session(c), id)
	if err != nil {
		h.jsonError(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if user == nil {
		h.jsonError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, schemas.NewUser(user))
}

// UpdateUser applies a partial update to a user record.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := h.parseID(c.Param("id"))
	if err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var body schemas.UserUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Build map of fields to update
	updates := make(map[string]interface{})
	if body.Email != nil {
		updates["email"] = *body.Email
	}
	if body.Password != nil {
		hash, err := h.Hasher.GenerateHash(*body.Password)
		if err != nil {
			h.jsonError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		updates["password"] = hash
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}

	if len(updates) == 0 {
		h.jsonError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	user, err := repository.UpdateUser(h.session(c), id, updates)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		h.jsonError(c, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		h.jsonError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if user == nil {
		h.jsonError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User record successfully updated",
		"data":    schemas.NewUser(user),
	})
}

// DeleteUser removes a user; its items go with it via the cascade.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := h.parseID(c.Param("id"))
	if err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := repository.DeleteUser(h.session(c), id)
	if err != nil {
		h.jsonError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if user == nil {
		h.jsonError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User successfully deleted",
		"data":    schemas.NewUser(user),
	})
}
