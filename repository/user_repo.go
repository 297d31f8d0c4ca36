// Package repository holds the data-access functions. Every function
// takes the request-scoped *gorm.DB session as its first argument; no
// function here performs uniqueness or ownership validation — that
// responsibility sits with the callers in controllers.
package repository

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/hurairaz/sqlite-crud-api/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// DefaultLimit bounds list queries when the caller asks for nothing.
const DefaultLimit = 100

// GetUser fetches a user by id. An absent row is (nil, nil), not an
// error; the caller decides what absence means.
func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.Error().Err(err).Uint("id", id).Msg("Failed to fetch user by id")
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail fetches a user by its unique email, (nil, nil) when absent.
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Failed to fetch user by email")
		return nil, err
	}
	return &user, nil
}

// ListUsers returns users in creation order, bounded by skip/limit.
func ListUsers(db *gorm.DB, skip, limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if skip < 0 {
		skip = 0
	}

	var users []models.User
	err := db.Order("id").Offset(skip).Limit(limit).Find(&users).Error
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list users")
		return nil, err
	}
	return users, nil
}

// CreateUser inserts a new user. The password must already be hashed;
// this function stores whatever it is given.
func CreateUser(db *gorm.DB, email, hashedPassword string) (*models.User, error) {
	user := models.User{Email: email, Password: hashedPassword, IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies the non-nil columns in updates to the user with the
// given id and returns the fresh row. (nil, nil) when no such user exists.
func UpdateUser(db *gorm.DB, id uint, updates map[string]interface{}) (*models.User, error) {
	result := db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.Error().Err(result.Error).Uint("id", id).Msg("Failed to update user")
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return GetUser(db, id)
}

// DeleteUser removes the user with the given id; its items go with it
// via the cascade constraint. The deleted row is returned so callers can
// echo it back, (nil, nil) when no such user exists.
func DeleteUser(db *gorm.DB, id uint) (*models.User, error) {
	user, err := GetUser(db, id)
	if err != nil || user == nil {
		return nil, err
	}

	if err := db.Delete(&models.User{}, id).Error; err != nil {
		logger.Error().Err(err).Uint("id", id).Msg("Failed to delete user")
		return nil, err
	}
	return user, nil
}
