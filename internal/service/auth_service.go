package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"hackatweet/internal/clock"
	"hackatweet/internal/config"
	"hackatweet/internal/models"
	"hackatweet/internal/repository"
)

const MinPasswordLength = 6

// bcrypt only reads the first 72 bytes of a password.
const maxPasswordBytes = 72

type RegisterRequest struct {
	Firstname string
	Username  string
	Password  string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.Profile, error)
	Authenticate(ctx context.Context, username, password string) (*models.Profile, error)
	// ResolveToken finds the identity whose stored token equals token.
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

// TokenClaims is embedded in every issued bearer token.
type TokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	clock    clock.Clock
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, clk clock.Clock) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		clock:    clk,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.Profile, error) {
	if strings.TrimSpace(req.Firstname) == "" || strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	_, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("ошибка при проверке username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(passwordBytes(req.Password), s.bcryptCost())
	if err != nil {
		return nil, fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	now := s.clock.Now()

	token, err := s.generateToken(req.Username)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserID:       uuid.New().String(),
		Firstname:    req.Firstname,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Token:        token,
		CreatedAt:    now,
	}

	err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		// lost a race against a concurrent signup with the same handle
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	log.Info().Str("user_id", user.UserID).Str("username", user.Username).Msg("New user created")

	return &models.Profile{
		Firstname: user.Firstname,
		Username:  user.Username,
		Token:     user.Token,
	}, nil
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.Profile, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка аутентификации: %w", err)
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), passwordBytes(password))
	if err != nil {
		log.Warn().Str("username", user.Username).Msg("Failed sign-in attempt")
		return nil, ErrInvalidPassword
	}

	return &models.Profile{
		Firstname: user.Firstname,
		Username:  user.Username,
		Token:     user.Token,
	}, nil
}

func (s *authService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.GetUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("ошибка при проверке токена: %w", err)
	}

	return user, nil
}

func (s *authService) generateToken(username string) (string, error) {
	now := s.clock.Now()

	claims := TokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.TokenKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// passwordBytes cuts longer passwords to the bcrypt limit instead of failing.
func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		return b[:maxPasswordBytes]
	}
	return b
}

func (s *authService) bcryptCost() int {
	if s.cfg.BcryptCost < bcrypt.MinCost || s.cfg.BcryptCost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return s.cfg.BcryptCost
}
