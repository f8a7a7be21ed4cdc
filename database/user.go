package database

import (
	"errors"
	"fmt"

	"lurker/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrUsernameTaken = errors.New("username already exists")

func CreateUser(username string, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		var existing models.User
		if DB.Where(&models.User{Username: username}).First(&existing).Error == nil {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}

func GetUser(userID uint) (*models.User, error) {
	var user models.User
	err := DB.First(&user, userID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := DB.
		Where(&models.User{Username: username}).
		First(&user).
		Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckPassword verifies a candidate password against the stored hash.
func CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	) == nil
}
