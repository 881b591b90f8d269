package controllers

import (
	"context"
	"errors"
	"log"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/gateway"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/services"
	"github.com/gin-gonic/gin"
)

// AuthController serves /auth/signup and /auth/login
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController wraps auth
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Signup handles POST /auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var in services.SignupInput
	if !bindRecord(c, &in) {
		return
	}
	ac.session(c, "Error signing up", func(ctx context.Context) (*services.Session, error) {
		return ac.auth.Signup(ctx, in)
	})
}

// Login handles POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var in services.LoginInput
	if !bindRecord(c, &in) {
		return
	}
	ac.session(c, "Error logging in", func(ctx context.Context) (*services.Session, error) {
		return ac.auth.Login(ctx, in)
	})
}

func (ac *AuthController) session(c *gin.Context, failure string, open func(context.Context) (*services.Session, error)) {
	session, err := open(c.Request.Context())
	if err != nil {
		var authErr *services.AuthError
		if errors.As(err, &authErr) {
			respond(c, gateway.Fail[services.Session](authErr.Message))
			return
		}
		log.Printf("%s: %v", failure, err)
		respond(c, gateway.Fail[services.Session](failure))
		return
	}
	respond(c, gateway.OK(session))
}
