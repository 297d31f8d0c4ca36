// Package schemas defines the request and response shapes of the HTTP
// surface. They are deliberately distinct from the storage models so the
// wire contract can't leak storage-only fields (the password above all).
package schemas

import "github.com/hurairaz/sqlite-crud-api/models"

// ## Request shapes

type UserCreate struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserUpdate carries optional fields; nil means "leave unchanged".
type UserUpdate struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
}

type ItemCreate struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

// ## Response shapes

type User struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type Item struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	OwnerID     uint    `json:"owner_id"`
}

func NewUser(u *models.User) User {
	return User{
		ID:       u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}

func NewUserList(users []models.User) []User {
	out := make([]User, 0, len(users))
	for i := range users {
		out = append(out, NewUser(&users[i]))
	}
	return out
}

func NewItem(it *models.Item) Item {
	return Item{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		OwnerID:     it.OwnerID,
	}
}

func NewItemList(items []models.Item) []Item {
	out := make([]Item, 0, len(items))
	for i := range items {
		out = append(out, NewItem(&items[i]))
	}
	return out
}
