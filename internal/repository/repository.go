package repository

import (
	"context"
	"errors"

	"hackatweet/internal/database"
	"hackatweet/internal/models"
)

var (
	ErrNotFound  = errors.New("запись не найдена")
	ErrDuplicate = errors.New("запись уже существует")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByUsername matches the handle case-insensitively.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByToken(ctx context.Context, token string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, userIDs []string) ([]models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	// GetAll returns every post, newest first.
	GetAll(ctx context.Context) ([]models.Post, error)
	// GetWithHashtags returns posts containing '#', oldest first.
	GetWithHashtags(ctx context.Context) ([]models.Post, error)
	// SearchContent returns posts whose content contains query as a literal
	// substring, newest first.
	SearchContent(ctx context.Context, query string) ([]models.Post, error)
	Delete(ctx context.Context, postID string) error
	// ToggleLike atomically removes userID from the likers if present and
	// appends it otherwise, returning the updated post.
	ToggleLike(ctx context.Context, postID, userID string) (*models.Post, error)
}

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Repository struct {
	User   UserRepository
	Post   PostRepository
	Health HealthChecker
}

// NewRepository builds the PostgreSQL-backed repositories.
func NewRepository(db *database.DB) *Repository {
	return &Repository{
		User:   NewUserRepository(db.DB),
		Post:   NewPostRepository(db.DB),
		Health: db,
	}
}

// NewMongoRepository builds the MongoDB-backed repositories.
func NewMongoRepository(m *database.Mongo) *Repository {
	return &Repository{
		User:   NewMongoUserRepository(m.DB),
		Post:   NewMongoPostRepository(m.DB),
		Health: m,
	}
}
