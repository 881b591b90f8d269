package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/config"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/gateway"
	"github.com/gin-gonic/gin"
)

// Context keys set by EnsureValidToken
const (
	userIDKey = "user_id"
	claimsKey = "validated_claims"
)

// MessageUnauthorized is returned with every 401
const MessageUnauthorized = "Unauthorized"

// EnsureValidToken rejects requests without a valid HS256 session token
// signed with cfg.JWTSecret for cfg's issuer and audience.
func EnsureValidToken(cfg *config.Config) gin.HandlerFunc {
	secret := []byte(cfg.JWTSecret)
	keyFunc := func(ctx context.Context) (interface{}, error) {
		return secret, nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		cfg.JWTIssuer,
		[]string{cfg.JWTAudience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		log.Fatalf("Failed to set up the jwt validator: %v", err)
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("Encountered error while validating JWT: %v", err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		if _, writeErr := w.Write([]byte(`{"success":false,"message":"` + MessageUnauthorized + `"}`)); writeErr != nil {
			log.Printf("Failed to write error response: %v", writeErr)
		}
	}

	checker := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
	)

	return func(c *gin.Context) {
		passed := false
		var next http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
			if !ok {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gateway.Fail[gateway.Empty](MessageUnauthorized))
				return
			}

			passed = true
			c.Request = r
			c.Set(userIDKey, claims.RegisteredClaims.Subject)
			c.Set(claimsKey, claims)
			c.Next()
		}

		checker.CheckJWT(next).ServeHTTP(c.Writer, c.Request)
		if !passed {
			c.Abort()
		}
	}
}

// GetUserID returns the authenticated user's identity from the token subject
func GetUserID(c *gin.Context) (uint, error) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, &AuthError{Code: "MISSING_USER_ID", Message: "User ID not found in context"}
	}

	subject, ok := value.(string)
	if !ok {
		return 0, &AuthError{Code: "INVALID_USER_ID", Message: "User ID is not a string"}
	}

	id, err := strconv.ParseUint(subject, 10, 64)
	if err != nil || id == 0 {
		return 0, &AuthError{Code: "INVALID_USER_ID", Message: "User ID is not numeric"}
	}
	return uint(id), nil
}

// GetClaims extracts the validated JWT claims from the Gin context
func GetClaims(c *gin.Context) (*validator.ValidatedClaims, error) {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil, &AuthError{Code: "MISSING_CLAIMS", Message: "Claims not found in context"}
	}

	validatedClaims, ok := claims.(*validator.ValidatedClaims)
	if !ok {
		return nil, &AuthError{Code: "INVALID_CLAIMS", Message: "Claims are not in the expected format"}
	}

	return validatedClaims, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
