package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, gate func(*AuthMiddleware) gin.HandlerFunc) (*gin.Engine, *auth.TokenAuthenticator) {
	t.Helper()
	authenticator := auth.NewTokenAuthenticator(auth.TokenConfig{SecretKey: "test-secret", TokenIssuer: "studentms"})
	m := NewAuthMiddleware(authenticator)

	r := gin.New()
	r.GET("/protected", m.Authenticate(), gate(m), func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		role, _ := CurrentRole(c)
		c.JSON(http.StatusOK, gin.H{"id": userID, "role": role})
	})
	return r, authenticator
}

func doRequest(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func issue(t *testing.T, a *auth.TokenAuthenticator, id int64, role models.Role) string {
	t.Helper()
	token, err := a.Issue(&models.User{ID: id, Role: role})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthenticate_MissingToken(t *testing.T) {
	r, _ := newTestRouter(t, (*AuthMiddleware).RequireAdmin)

	for _, header := range []string{"", "Bearer", "Bearer "} {
		w := doRequest(r, header)
		assert.Equal(t, http.StatusForbidden, w.Code, "header %q", header)
		assert.Equal(t, "Access Denied", messageOf(t, w))
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	r, _ := newTestRouter(t, (*AuthMiddleware).RequireAdmin)

	w := doRequest(r, "Bearer not.a.token")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid Token", messageOf(t, w))
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	r, _ := newTestRouter(t, (*AuthMiddleware).RequireMentorOrAdmin)

	old := auth.NewTokenAuthenticator(auth.TokenConfig{SecretKey: "test-secret", TokenIssuer: "studentms"}).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })

	w := doRequest(r, issue(t, old, 1, models.RoleAdmin))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid Token", messageOf(t, w))
}

func TestRequireAdmin(t *testing.T) {
	r, a := newTestRouter(t, (*AuthMiddleware).RequireAdmin)

	w := doRequest(r, issue(t, a, 2, models.RoleMentor))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access Denied: Admin Only", messageOf(t, w))

	w = doRequest(r, issue(t, a, 1, models.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"role":"ADMIN"}`, w.Body.String())
}

func TestRequireMentorOrAdmin(t *testing.T) {
	r, a := newTestRouter(t, (*AuthMiddleware).RequireMentorOrAdmin)

	for _, role := range []models.Role{models.RoleAdmin, models.RoleMentor} {
		w := doRequest(r, issue(t, a, 3, role))
		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
	}

	w := doRequest(r, issue(t, a, 3, models.Role("GUEST")))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access Denied: Admin or Mentor Only", messageOf(t, w))
}

func TestRequireRoles_WithoutAuthenticate(t *testing.T) {
	m := NewAuthMiddleware(auth.NewTokenAuthenticator(auth.TokenConfig{SecretKey: "s"}))
	r := gin.New()
	r.GET("/protected", m.RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doRequest(r, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access Denied", messageOf(t, w))
}
