package services

import (
	"errors"
	"os"
	"strings"
	"wandermap/internal/db"
	"wandermap/internal/models"
	"wandermap/internal/utils"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var ErrMissingFields = errors.New("display name, username and password are required")

// Signup hashes the plaintext password and stores a new account. A
// taken username surfaces as the unique-index violation from the store.
func Signup(displayName, username, password, caption, area string) (*models.User, error) {
	displayName = strings.TrimSpace(displayName)
	username = strings.TrimSpace(username)
	if displayName == "" || username == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		DisplayName: displayName,
		Username:    username,
		Password:    hash,
		Caption:     caption,
		Area:        area,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	logger.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("account created")
	return &user, nil
}

// Authenticate looks the account up by username and verifies the
// password. Unknown username and wrong password both report plain
// false, nothing distinguishes the two to the caller.
func Authenticate(username, password string) (*models.User, bool) {
	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, false
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, false
	}
	return &user, true
}
