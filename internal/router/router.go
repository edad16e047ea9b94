package router

import (
	"wandermap/internal/handlers"
	"wandermap/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	userHandler := handlers.NewUserHandler()

	// Public Routes
	r.GET("/", postHandler.Home)
	r.GET("/explore", postHandler.Explore)
	r.GET("/post/:id", postHandler.Detail)
	r.GET("/users", userHandler.List)
	// gin needs one param name per path position, so the :username
	// segment also carries the numeric account id on the edit and
	// delete routes below.
	r.GET("/users/:username", userHandler.Profile)

	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)

	// The favorite toggle does its own auth check so anonymous
	// requests get a flash message instead of a bare login redirect.
	r.GET("/post/:id/favorite", postHandler.ToggleFavorite)
	r.POST("/post/:id/favorite", postHandler.ToggleFavorite)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/logout", authHandler.Logout)
		authorized.GET("/location-picker", postHandler.LocationPicker)
		authorized.GET("/new-post", postHandler.ShowCreate)
		authorized.POST("/new-post", postHandler.Create)
		authorized.GET("/post/:id/edit", postHandler.ShowEdit)
		authorized.POST("/post/:id/edit", postHandler.Update)
		authorized.GET("/post/:id/delete", postHandler.Delete)
		authorized.GET("/users/:username/edit", userHandler.ShowEdit)
		authorized.POST("/users/:username/edit", userHandler.Update)
		authorized.POST("/users/:username/delete", userHandler.Delete)
	}
}
