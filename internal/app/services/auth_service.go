package services

import (
	"context"
	"strings"

	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/pkg/apperrors"
	"github.com/selim/placemate/internal/pkg/auth"
	"github.com/selim/placemate/internal/pkg/logger"
)

// AuthService authenticates the single admin account and issues tokens.
// The admin credentials come from configuration; the password is bcrypt
// hashed once at startup and never kept in plaintext.
type AuthService struct {
	adminEmail   string
	passwordHash string
	jwtService   *auth.JWTService
}

// NewAuthService creates a new auth service instance. The plaintext admin
// password is hashed here and discarded.
func NewAuthService(adminEmail, adminPassword string, jwtService *auth.JWTService) (*AuthService, error) {
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		adminEmail:   strings.ToLower(adminEmail),
		passwordHash: hash,
		jwtService:   jwtService,
	}, nil
}

// Login verifies the admin credentials and returns an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.ToLower(req.Email) != s.adminEmail || !auth.CheckPassword(s.passwordHash, req.Password) {
		logger.Warn().Str("email", req.Email).Msg("Failed admin login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(s.adminEmail)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("email", s.adminEmail).Msg("Admin logged in")
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
