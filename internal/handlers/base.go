package handlers

import (
	"net/http"
	"wandermap/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}

	// One-time flash from the previous request, if any
	if flash := popFlash(c); flash != "" {
		obj["Flash"] = flash
	}

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// Flash queues a one-time message shown on the next rendered page.
func Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	session.Save()
}

func popFlash(c *gin.Context) string {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return ""
	}
	session.Save() // Flashes() consumed them, persist the removal
	if message, ok := flashes[0].(string); ok {
		return message
	}
	return ""
}

// FlashRedirect queues a message and sends the browser to path.
func FlashRedirect(c *gin.Context, path, message string) {
	Flash(c, message)
	c.Redirect(http.StatusFound, path)
}
