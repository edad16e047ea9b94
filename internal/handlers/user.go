package handlers

import (
	"net/http"
	"wandermap/internal/db"
	"wandermap/internal/middleware"
	"wandermap/internal/models"
	"wandermap/internal/services"
	"wandermap/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	db.DB.Order("created_at ASC").Find(&users)

	Render(c, http.StatusOK, "users/list.html", gin.H{
		"Title": "Users",
		"Users": users,
	})
}

// Profile shows a user's page with their posts, looked up by username.
func (h *UserHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	var posts []models.Post
	db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&posts)

	Render(c, http.StatusOK, "users/profile.html", gin.H{
		"Title": user.DisplayName,
		"User":  user,
		"Posts": posts,
	})
}

// requireSelf parses the id in the :username segment of the edit and
// delete routes and checks it against the session identity.
func requireSelf(c *gin.Context) (*models.User, bool) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	targetID := uint(utils.StringToInt(c.Param("username")))

	if targetID == 0 || targetID != user.ID {
		FlashRedirect(c, "/users", "You can only change your own profile")
		return nil, false
	}
	return user, true
}

func (h *UserHandler) ShowEdit(c *gin.Context) {
	user, ok := requireSelf(c)
	if !ok {
		return
	}

	Render(c, http.StatusOK, "users/edit.html", gin.H{
		"Title": "Edit profile",
		"User":  user,
	})
}

func (h *UserHandler) Update(c *gin.Context) {
	user, ok := requireSelf(c)
	if !ok {
		return
	}

	username := c.PostForm("username")
	displayName := c.PostForm("display_name")
	area := c.PostForm("area")
	caption := c.PostForm("caption")

	if err := services.UpdateProfile(user, username, displayName, area, caption); err != nil {
		message := "Could not save profile"
		if isUniqueViolation(err) {
			message = "That username is already taken"
		}
		Render(c, http.StatusBadRequest, "users/edit.html", gin.H{
			"Error": message,
			"User":  user,
		})
		return
	}

	c.Redirect(http.StatusFound, "/users/"+user.Username)
}

// Delete removes the requester's own account and everything it owns,
// then ends the session. Re-registration is required afterwards.
func (h *UserHandler) Delete(c *gin.Context) {
	user, ok := requireSelf(c)
	if !ok {
		return
	}

	if err := services.DeleteAccount(user.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete the account")
		return
	}

	utils.GetCache().Delete(explorePinsCacheKey)

	session := sessions.Default(c)
	session.Clear()
	session.Save()

	FlashRedirect(c, "/", "Your account has been deleted")
}
