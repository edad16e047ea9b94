package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"os"
	"time"
	"wandermap/internal/db"
	"wandermap/internal/middleware"
	"wandermap/internal/models"
	"wandermap/internal/services"
	"wandermap/internal/utils"

	"github.com/gin-gonic/gin"
)

const explorePinsCacheKey = "explore:pins"

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// Home shows the most recent posts. An optional ?limit= caps the list.
func (h *PostHandler) Home(c *gin.Context) {
	limit := 20
	if l := utils.StringToInt(c.Query("limit")); l > 0 && l <= 100 {
		limit = l
	}

	var posts []models.Post
	db.DB.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts)

	Render(c, http.StatusOK, "post/home.html", gin.H{
		"Title": "Wandermap",
		"Posts": posts,
	})
}

// mapPin is the per-post payload the explore map consumes.
type mapPin struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	PlaceName string  `json:"place_name"`
}

// Explore renders the map with every post's coordinates pinned.
func (h *PostHandler) Explore(c *gin.Context) {
	var pinsJSON string
	if cached := utils.GetCache().Get(explorePinsCacheKey); cached != nil {
		if s, ok := cached.(string); ok {
			pinsJSON = s
		}
	}

	if pinsJSON == "" {
		var posts []models.Post
		db.DB.Select("id, title, lat, lng, place_name").
			Order("created_at DESC").
			Find(&posts)

		pins := make([]mapPin, len(posts))
		for i, p := range posts {
			pins[i] = mapPin{ID: p.ID, Title: p.Title, Lat: p.Lat, Lng: p.Lng, PlaceName: p.PlaceName}
		}

		data, err := json.Marshal(pins)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "Could not load map data")
			return
		}
		pinsJSON = string(data)
		utils.GetCache().Set(explorePinsCacheKey, pinsJSON, 1*time.Minute)
	}

	Render(c, http.StatusOK, "post/map.html", gin.H{
		"Title": "Explore",
		"Token": os.Getenv("MAPBOX_TOKEN"),
		"Pins":  template.JS(pinsJSON),
	})
}

// LocationPicker renders the coordinate-picking page for a new post.
func (h *PostHandler) LocationPicker(c *gin.Context) {
	Render(c, http.StatusOK, "post/find_coord.html", gin.H{
		"Title": "Pick a location",
		"Token": os.Getenv("MAPBOX_TOKEN"),
	})
}

func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "post/create.html", gin.H{
		"Title": "New post",
	})
}

func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	title := c.PostForm("title")
	image := c.PostForm("image")
	description := c.PostForm("description")
	placeName := c.PostForm("place_name")
	lat, latOK := utils.StringToFloat(c.PostForm("lat"))
	lng, lngOK := utils.StringToFloat(c.PostForm("lng"))

	if title == "" || !latOK || !lngOK {
		Render(c, http.StatusBadRequest, "post/create.html", gin.H{
			"Error":       "Title, latitude and longitude are required",
			"PostTitle":   title,
			"Image":       image,
			"Description": description,
			"PlaceName":   placeName,
		})
		return
	}

	post := models.Post{
		UserID:      user.ID,
		Title:       title,
		Lat:         lat,
		Lng:         lng,
		Image:       image,
		Description: description,
		PlaceName:   placeName,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		Render(c, http.StatusInternalServerError, "post/create.html", gin.H{
			"Error": "Could not save the post, please try again",
		})
		return
	}

	utils.GetCache().Delete(explorePinsCacheKey)

	c.Redirect(http.StatusFound, "/users/"+user.Username)
}

func (h *PostHandler) Detail(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.Preload("User").First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	favoriteUserIDs := services.FavoriteUserIDs(post.ID)
	post.FavoriteCount = len(favoriteUserIDs)

	isFavorited := false
	if user := middleware.CurrentUser(c); user != nil {
		for _, uid := range favoriteUserIDs {
			if uid == user.ID {
				isFavorited = true
				break
			}
		}
	}

	Render(c, http.StatusOK, "post/detail.html", gin.H{
		"Title":           post.Title,
		"Post":            post,
		"Description":     utils.RenderDescription(post.Description),
		"FavoriteUserIDs": favoriteUserIDs,
		"IsFavorited":     isFavorited,
		"Token":           os.Getenv("MAPBOX_TOKEN"),
	})
}

func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if post.UserID != user.ID {
		RenderError(c, http.StatusForbidden, "You can only edit your own posts")
		return
	}

	Render(c, http.StatusOK, "post/edit.html", gin.H{
		"Title": "Edit post",
		"Post":  post,
	})
}

func (h *PostHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if post.UserID != user.ID {
		RenderError(c, http.StatusForbidden, "You can only edit your own posts")
		return
	}

	title := c.PostForm("title")
	if title == "" {
		Render(c, http.StatusBadRequest, "post/edit.html", gin.H{
			"Error": "Title cannot be empty",
			"Post":  post,
		})
		return
	}

	post.Title = title
	post.Description = c.PostForm("description")

	if err := db.DB.Save(&post).Error; err != nil {
		Render(c, http.StatusInternalServerError, "post/edit.html", gin.H{
			"Error": "Could not save changes",
			"Post":  post,
		})
		return
	}

	utils.GetCache().Delete(explorePinsCacheKey)

	c.Redirect(http.StatusFound, "/post/"+c.Param("id"))
}

func (h *PostHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if post.UserID != user.ID {
		RenderError(c, http.StatusForbidden, "You can only delete your own posts")
		return
	}

	if err := services.DeletePost(post.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete the post")
		return
	}

	utils.GetCache().Delete(explorePinsCacheKey)

	FlashRedirect(c, "/users/"+user.Username, "Post deleted")
}

// ToggleFavorite flips the requester's favorite on a post. Anonymous
// requests get a flash and no write.
func (h *PostHandler) ToggleFavorite(c *gin.Context) {
	idStr := c.Param("id")
	id := utils.StringToInt(idStr)

	user := middleware.CurrentUser(c)
	if user == nil {
		FlashRedirect(c, "/post/"+idStr, "Please log in to favorite posts")
		return
	}

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	added, err := services.ToggleFavorite(post.ID, user.ID)
	if err != nil {
		FlashRedirect(c, "/post/"+idStr, "Could not update favorite")
		return
	}

	if added {
		FlashRedirect(c, "/post/"+idStr, "Added to favorites")
	} else {
		FlashRedirect(c, "/post/"+idStr, "Removed from favorites")
	}
}
