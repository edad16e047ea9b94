package handlers

import (
	"errors"
	"net/http"
	"strings"
	"wandermap/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// isUniqueViolation spots the postgres unique-index error without
// enabling gorm's error translation globally.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	displayName := c.PostForm("display_name")
	username := c.PostForm("username")
	password := c.PostForm("password")
	caption := c.PostForm("caption")
	area := c.PostForm("area")

	user, err := services.Signup(displayName, username, password, caption, area)
	if err != nil {
		message := "Signup failed, please try again"
		if errors.Is(err, services.ErrMissingFields) {
			message = "Display name, username and password are required"
		} else if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			message = "That username is already taken"
		}
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Error":       message,
			"DisplayName": displayName,
			"Username":    username,
			"Caption":     caption,
			"Area":        area,
		})
		return
	}

	// Log the new account in right away
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	// One message for unknown username and wrong password alike
	user, ok := services.Authenticate(username, password)
	if !ok {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Error":    "Invalid username or password",
			"Username": username,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
