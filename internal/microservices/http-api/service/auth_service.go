package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mrp/internal/apperror"
	"mrp/internal/cache"
	"mrp/internal/config"
	"mrp/internal/middleware/auth"
	"mrp/internal/microservices/http-api/models"
	"mrp/internal/microservices/http-api/repository"

	"github.com/google/uuid"
)

const (
	MinPasswordLength = 3
	tokenSeparator    = "-mrpToken-"
)

var (
	// same message for unknown user and wrong password, so logins do not reveal which usernames exist
	ErrInvalidCredentials = apperror.Authentication("Invalid username or password")
	ErrEmptyToken         = apperror.Authentication("Token cannot be empty")
	ErrInvalidToken       = apperror.Authentication("Invalid or expired token")
	ErrUsernameRequired   = apperror.Validation("Username cannot be empty")
	ErrPasswordTooShort   = apperror.Validation(fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength))
	ErrNameInUse          = apperror.Validation("Username already exists")
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	ValidateToken(ctx context.Context, token string) (*models.User, error)
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, email, favoriteGenre *string) (*models.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   cache.SessionCache
	bcryptCost int
	logger     *slog.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessions cache.SessionCache,
	cfg *config.Config,
	logger *slog.Logger,
) AuthService {
	if sessions == nil {
		sessions = cache.NoopSessionCache{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		bcryptCost: cfg.BcryptCost,
		logger:     logger.With("component", "auth"),
	}
}

// Register validates the credentials and stores a new user with a hashed password.
func (s *authService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrUsernameRequired
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	// Check if user exists
	_, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil, ErrNameInUse
	}
	if !repository.IsNotFound(err) {
		return nil, apperror.Internal(err)
	}

	hashedPassword, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("hash password: %w", err))
	}

	user := &models.User{
		Username: username,
		Password: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race against a concurrent registration of the same name
		if repository.IsDuplicateKey(err) {
			return nil, ErrNameInUse
		}
		return nil, apperror.Internal(err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login checks the credentials and issues a fresh token, replacing the previous one.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !repository.IsNotFound(err) {
			return "", apperror.Internal(err)
		}
		auth.BurnCompare(password)
		return "", ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token := NewToken(user.Username)
	if err := s.userRepo.UpdateToken(ctx, user.ID, token); err != nil {
		return "", apperror.Internal(err)
	}

	if err := s.sessions.Activate(ctx, user.ID, token); err != nil {
		s.logger.Warn("failed to activate session", "user_id", user.ID, "error", err)
	}

	// the superseded token must stop working even if it is still cached
	if user.Token != nil && *user.Token != "" {
		if err := s.sessions.Delete(ctx, *user.Token); err != nil {
			s.logger.Warn("failed to evict previous session", "user_id", user.ID, "error", err)
		}
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}

// ValidateToken resolves the user currently holding token.
func (s *authService) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	cached, ok, err := s.sessions.Get(ctx, token)
	if err != nil {
		s.logger.Warn("session cache unavailable, falling back to database", "error", err)
	}
	if ok {
		return fromCachedUser(cached, token), nil
	}

	user, err := s.userRepo.FindByToken(ctx, token)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidToken
		}
		return nil, apperror.Internal(err)
	}

	if err := s.sessions.Set(ctx, token, toCachedUser(user)); err != nil {
		s.logger.Warn("failed to cache session", "user_id", user.ID, "error", err)
	}
	return user, nil
}

func (s *authService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID int64, email, favoriteGenre *string) (*models.User, error) {
	if err := s.userRepo.UpdateProfile(ctx, userID, email, favoriteGenre); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	// keep cached profile fields in step with the table
	if user.Token != nil {
		if err := s.sessions.Delete(ctx, *user.Token); err != nil {
			s.logger.Warn("failed to evict session after profile update", "user_id", userID, "error", err)
		}
	}
	return user, nil
}

// NewToken builds an opaque session token of the form <username>-mrpToken-<uuid>.
func NewToken(username string) string {
	return username + tokenSeparator + uuid.New().String()
}

func toCachedUser(u *models.User) *cache.CachedUser {
	return &cache.CachedUser{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FavoriteGenre: u.FavoriteGenre,
		CreatedAt:     u.CreatedAt,
	}
}

func fromCachedUser(c *cache.CachedUser, token string) *models.User {
	t := token
	return &models.User{
		ID:            c.ID,
		Username:      c.Username,
		Email:         c.Email,
		FavoriteGenre: c.FavoriteGenre,
		CreatedAt:     c.CreatedAt,
		Token:         &t,
	}
}
