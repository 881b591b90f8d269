package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret",
		JWTIssuer:   "groomy",
		JWTAudience: "groomy-api",
		TokenTTL:    time.Hour,
	}
}

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Issuer:    "groomy",
		Subject:   "42",
		Audience:  jwt.ClaimStrings{"groomy-api"},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
}

func protectedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/protected", EnsureValidToken(cfg), func(c *gin.Context) {
		id, err := GetUserID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Success", "data": id})
	})
	return router
}

func TestEnsureValidToken(t *testing.T) {
	cfg := testConfig()

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))

	wrongAudience := validClaims()
	wrongAudience.Audience = jwt.ClaimStrings{"someone-else"}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + signToken(t, "test-secret", validClaims()), http.StatusCreated},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", validClaims()), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, "test-secret", expired), http.StatusUnauthorized},
		{"wrong audience", "Bearer " + signToken(t, "test-secret", wrongAudience), http.StatusUnauthorized},
		{"malformed", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			protectedRouter(cfg).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, float64(42), body["data"])
			} else {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, MessageUnauthorized, body["message"])
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		setupFunc func(*gin.Context)
		wantID    uint
		wantErr   bool
	}{
		{
			name:      "successfully extracts user ID",
			setupFunc: func(c *gin.Context) { c.Set("user_id", "17") },
			wantID:    17,
		},
		{
			name:      "user ID not found in context",
			setupFunc: func(c *gin.Context) {},
			wantErr:   true,
		},
		{
			name:      "user ID is not a string",
			setupFunc: func(c *gin.Context) { c.Set("user_id", 12345) },
			wantErr:   true,
		},
		{
			name:      "user ID is not numeric",
			setupFunc: func(c *gin.Context) { c.Set("user_id", "auth0|123456") },
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			tt.setupFunc(c)

			gotID, err := GetUserID(c)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, gotID)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, gotID)
			}
		})
	}
}

func TestGetClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := GetClaims(c)
	assert.Error(t, err)

	c.Set("validated_claims", "invalid")
	_, err = GetClaims(c)
	assert.Error(t, err)

	c.Set("validated_claims", &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{Issuer: "groomy", Subject: "1"},
	})
	claims, err := GetClaims(c)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.RegisteredClaims.Subject)
}

func TestAuthError(t *testing.T) {
	err := &AuthError{Code: "TEST_ERROR", Message: "This is a test error"}

	assert.Equal(t, "This is a test error", err.Error())
}

func TestEnsureValidTokenRejectsDevelopmentSecretWhenEnvUnset(t *testing.T) {
	t.Setenv("GO_ENV", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_AUDIENCE", "")
	t.Setenv("TOKEN_TTL", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "groomy-development-secret", validClaims()))
	w := httptest.NewRecorder()
	protectedRouter(cfg).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
