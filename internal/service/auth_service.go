package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/chaesu44438/emotion-theater/internal/model/auth"
	"github.com/chaesu44438/emotion-theater/internal/pkg/id"
	"github.com/chaesu44438/emotion-theater/internal/pkg/jwt"
	"github.com/chaesu44438/emotion-theater/internal/pkg/password"
	authRepo "github.com/chaesu44438/emotion-theater/internal/repository/auth"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUserInactive      = errors.New("account pending activation")
	ErrUserBanned        = errors.New("account disabled")
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token expired")
)

// AuthService authentication and session management.
type AuthService struct {
	userRepo         *authRepo.UserRepo
	refreshTokenRepo *authRepo.RefreshTokenRepo
	jwt              *jwt.JWT
	refreshExpiry    time.Duration
}

// NewAuthService creates the auth service.
func NewAuthService(
	userRepo *authRepo.UserRepo,
	refreshTokenRepo *authRepo.RefreshTokenRepo,
	jwtSecret string,
	accessTokenExpiry time.Duration,
	refreshTokenExpiry time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwt:              jwt.NewJWT(jwtSecret, accessTokenExpiry),
		refreshExpiry:    refreshTokenExpiry,
	}
}

// RegisterResult registration outcome.
type RegisterResult struct {
	UserID   string
	Username string
	Status   string
}

// Register creates a new account. New accounts are active members right
// away; operators promote admins manually.
func (s *AuthService) Register(ctx context.Context, username, email, pwd, nickname string) (*RegisterResult, error) {
	existing, _ := s.userRepo.FindByUsername(ctx, username)
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	existing, _ = s.userRepo.FindByEmail(ctx, email)
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := password.Hash(pwd)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		return nil, errors.New("password hashing failed")
	}

	user := &auth.User{
		ID:       id.New(),
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Role:     auth.RoleMember,
		Status:   auth.UserStatusActive,
	}

	if nickname != "" {
		user.Profile = &auth.UserProfile{
			Nickname: nickname,
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")
		return nil, errors.New("user creation failed")
	}

	return &RegisterResult{
		UserID:   user.ID,
		Username: user.Username,
		Status:   string(user.Status),
	}, nil
}

// LoginResult login outcome.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	TokenType    string
	User         *auth.User
}

// Login verifies credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, username, pwd string) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !password.Verify(pwd, user.Password) {
		return nil, ErrInvalidPassword
	}

	if user.Status == auth.UserStatusInactive {
		return nil, ErrUserInactive
	}
	if user.Status == auth.UserStatusBanned {
		return nil, ErrUserBanned
	}

	accessToken, err := s.jwt.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate access token")
		return nil, errors.New("token generation failed")
	}

	refreshTokenValue := jwt.GenerateRefreshToken()
	refreshToken := &auth.RefreshToken{
		ID:        id.New(),
		UserID:    user.ID,
		Token:     refreshTokenValue,
		ExpiresAt: time.Now().Add(s.refreshExpiry),
	}

	if err := s.refreshTokenRepo.Create(ctx, refreshToken); err != nil {
		log.Error().Err(err).Msg("failed to create refresh token")
		return nil, errors.New("refresh token creation failed")
	}

	if err := s.userRepo.UpdateLastLoginAt(ctx, user.ID); err != nil {
		// login still succeeds
		log.Warn().Err(err).Msg("failed to update last login time")
	}

	expiresIn := int(s.jwt.GetExpiration().Seconds())

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenValue,
		ExpiresIn:    expiresIn,
		TokenType:    "Bearer",
		User:         user,
	}, nil
}

// RefreshTokenResult refresh outcome.
type RefreshTokenResult struct {
	AccessToken string
	ExpiresIn   int
	TokenType   string
}

// RefreshToken exchanges a refresh token for a new access token.
func (s *AuthService) RefreshToken(ctx context.Context, refreshTokenValue string) (*RefreshTokenResult, error) {
	refreshToken, err := s.refreshTokenRepo.FindByToken(ctx, refreshTokenValue)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if refreshToken.IsExpired() {
		_ = s.refreshTokenRepo.DeleteByToken(ctx, refreshTokenValue)
		return nil, ErrExpiredToken
	}

	user, err := s.userRepo.FindByID(ctx, refreshToken.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if user.Status == auth.UserStatusBanned {
		return nil, ErrUserBanned
	}

	accessToken, err := s.jwt.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate access token")
		return nil, errors.New("token generation failed")
	}

	expiresIn := int(s.jwt.GetExpiration().Seconds())

	return &RefreshTokenResult{
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
		TokenType:   "Bearer",
	}, nil
}

// Logout revokes a refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshTokenValue string) error {
	return s.refreshTokenRepo.DeleteByToken(ctx, refreshTokenValue)
}

// GetUserByID fetches a user by ID.
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*auth.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// ValidateToken validates an access token and returns the account.
func (s *AuthService) ValidateToken(tokenString string) (*auth.User, error) {
	claims, err := s.jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(context.Background(), claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if user.Status == auth.UserStatusBanned {
		return nil, ErrUserBanned
	}

	return user, nil
}
