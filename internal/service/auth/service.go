package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/glowpoint/salon-backend-go/internal/domain/auth"
	"github.com/glowpoint/salon-backend-go/internal/domain/user"
	"github.com/glowpoint/salon-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	// Rotate: the presented refresh token is single-use.
	s.jwtService.RevokeToken(req.RefreshToken)

	return s.issueTokens(u)
}

func (s *AuthServiceImpl) Profile(ctx context.Context, userID string) (auth.ProfileResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.ProfileResponse{}, err
	}

	return auth.ProfileResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
		BranchID: u.BranchID,
	}, nil
}

func (s *AuthServiceImpl) issueTokens(u *user.User) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role, u.BranchID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}, nil
}
