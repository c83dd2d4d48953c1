package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arogya/config"
	"arogya/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", JWTAuthAdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"token": c.GetString("adminToken")})
	})
	return r
}

func TestAdminAuthMissingHeader(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := adminRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuthBadToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := adminRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuthRejectsNonAdminRole(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := adminRouter()

	claims := jwt.MapClaims{
		"sub":  "someone",
		"role": "patient",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin role, got %d", rec.Code)
	}
}

func TestAdminAuthValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := adminRouter()

	token, err := utils.GenerateAdminToken("clinic-admin", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
