package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hurairaz/sqlite-crud-api/repository"
	"github.com/hurairaz/sqlite-crud-api/schemas"
)

// CreateItemForUser creates an item owned by the user in the path. The
// owner must exist; the foreign-key constraint backstops the check.
func (h *Handler) CreateItemForUser(c *gin.Context) {
	ownerID, err := h.parseID(c.Param("id"))
	if err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var body schemas.ItemCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	session := h.session(c)

	owner, err := repository.GetUser(session, ownerID)
	if err != nil {
		h.jsonError(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if owner == nil {
		h.jsonError(c, http.StatusNotFound, "User not found")
		return
	}

	item, err := repository.CreateItemForUser(session, body.Title, body.Description, owner.ID)
	if err != nil {
		h.jsonError(c, http.StatusInternalServerError, "Could not save item")
		return
	}

	c.JSON(http.StatusOK, schemas.NewItem(item))
}

// ListItems returns a page of items per skip/limit.
func (h *Handler) ListItems(c *gin.Context) {
	skip, limit := h.paging(c)

	items, err := repository.ListItems(h.session(c), skip, limit)
	if err != nil {
		h.jsonError(c, http.StatusInternalServerError, "Failed to fetch items")
		return
	}

	c.JSON(http.StatusOK, schemas.NewItemList(items))
}
