package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("test_session", store))

	// Endpoint that simulates a login by writing the session key
	r.GET("/set", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("user_id", uint(1))
		session.Save()
		c.Status(http.StatusOK)
	})

	protected := r.Group("/")
	protected.Use(AuthRequired())
	protected.GET("/private", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestAuthRequiredRedirectsAnonymous(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/private", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Expected redirect to /login, got %s", loc)
	}
}

func TestAuthRequiredAllowsSession(t *testing.T) {
	r := setupRouter()

	// First request establishes the session cookie
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/set", nil)
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Expected a session cookie to be set")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/private", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for a logged-in session, got %d", w.Code)
	}
}
