package services

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/lib/security"
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/repositories"
	"github.com/ideahub-simple/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenLifetime      = 24 * time.Hour
	maxLoginFailures   = 5
	loginFailureWindow = 15 * time.Minute
)

// AuthService handles registration, login and token lifecycle. The token
// store is optional; without it revocation and lockout checks are skipped.
type AuthService struct {
	userRepo *repositories.UserRepository
	store    *security.TokenStore
}

// NewAuthService creates a new auth service instance
func NewAuthService(store *security.TokenStore) *AuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
		store:    store,
	}
}

// Register creates a new user account
func (s *AuthService) Register(req dto.RegisterRequest) (models.User, error) {
	taken, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, utils.NewConflictError("Email is already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}
	created, err := s.userRepo.Create(user)
	if err != nil {
		return models.User{}, err
	}
	created.Password = ""
	return created, nil
}

// Login authenticates a user and returns a token. Repeated failures for the
// same email lock the account out for the failure window.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	if s.store != nil {
		failures, err := s.store.LoginFailures(ctx, req.Email)
		if err != nil {
			return dto.AuthResponse{}, err
		}
		if failures >= maxLoginFailures {
			return dto.AuthResponse{}, utils.NewForbiddenError("Too many failed login attempts, try again later")
		}
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.noteFailure(ctx, req.Email)
			return dto.AuthResponse{}, utils.NewValidationError("Invalid email or password")
		}
		return dto.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.noteFailure(ctx, req.Email)
		return dto.AuthResponse{}, utils.NewValidationError("Invalid email or password")
	}

	if s.store != nil {
		if err := s.store.ClearLoginFailures(ctx, req.Email); err != nil {
			return dto.AuthResponse{}, err
		}
	}

	token, expiresAt, err := GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return dto.AuthResponse{}, err
	}

	user.Password = ""
	return dto.AuthResponse{Token: token, User: user, ExpiresAt: expiresAt}, nil
}

func (s *AuthService) noteFailure(ctx context.Context, email string) {
	if s.store == nil {
		return
	}
	// Best effort; a Redis hiccup must not turn a 400 into a 500.
	_, _ = s.store.RecordLoginFailure(ctx, email, loginFailureWindow)
}

// Logout revokes the presented token until its natural expiry
func (s *AuthService) Logout(ctx context.Context, claims *dto.TokenClaims) error {
	if s.store == nil || claims.ID == "" {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.store.RevokeToken(ctx, claims.ID, ttl)
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(id string) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, utils.NewNotFoundError("User not found")
		}
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(userID, email, role string) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(tokenLifetime)

	claims := dto.TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
