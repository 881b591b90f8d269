package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/config"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/store"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password signup accepts
const MinPasswordLength = 8

// AuthError is a signup or login failure safe to show to the caller
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

var (
	ErrInvalidCredentials = &AuthError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"}
	ErrEmailTaken         = &AuthError{Code: "EMAIL_TAKEN", Message: "Email is already registered"}
	ErrWeakPassword       = &AuthError{Code: "WEAK_PASSWORD", Message: fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)}
	ErrInvalidEmail       = &AuthError{Code: "INVALID_EMAIL", Message: "Email address is not valid"}
	ErrMissingName        = &AuthError{Code: "MISSING_NAME", Message: "Name is required"}
)

// UserStore is the persistence the auth service needs
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// SignupInput is the body of /auth/signup
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the body of /auth/login
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is returned by a successful signup or login
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      models.User `json:"user"`
}

// AuthService registers users and issues HS256 session tokens
type AuthService struct {
	users    UserStore
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	cost     int
	now      func() time.Time
}

// NewAuthService signs tokens with cfg's JWT secret, issuer and audience
func NewAuthService(users UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		users:    users,
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
		ttl:      cfg.TokenTTL,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
}

// SetHashCost lowers the bcrypt cost (primarily for testing)
func (s *AuthService) SetHashCost(cost int) {
	s.cost = cost
}

// Signup creates a user and opens a session for it
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrMissingName
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(in.Password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Name: name, Email: in.Email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return s.session(user)
}

// Login checks the password against the stored hash. Unknown emails and
// wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	user, err := s.users.FindByEmail(ctx, in.Email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.session(*user)
}

func (s *AuthService) session(user models.User) (*Session, error) {
	token, exp, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: exp, User: user}, nil
}

// IssueToken signs a token whose subject is userID
func (s *AuthService) IssueToken(userID uint) (string, time.Time, error) {
	now := s.now().UTC()
	exp := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Audience:  jwt.ClaimStrings{s.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp, nil
}
