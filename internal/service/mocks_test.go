package service

import (
	"context"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"

	"hackatweet/internal/models"
	"hackatweet/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUsersByIDs(ctx context.Context, userIDs []string) ([]models.User, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetWithHashtags(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) SearchContent(ctx context.Context, query string) ([]models.Post, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostRepository) ToggleLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

// memPostRepository keeps posts in memory so services can be exercised end
// to end without a store.
type memPostRepository struct {
	mu    sync.Mutex
	posts []models.Post
}

func (r *memPostRepository) Create(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post.LikedBy == nil {
		post.LikedBy = []string{}
	}
	r.posts = append(r.posts, *post)
	return nil
}

func (r *memPostRepository) GetByID(_ context.Context, postID string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].PostID == postID {
			post := r.posts[i]
			return &post, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memPostRepository) GetAll(_ context.Context) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := make([]models.Post, 0, len(r.posts))
	for i := len(r.posts) - 1; i >= 0; i-- {
		posts = append(posts, r.posts[i])
	}
	return posts, nil
}

func (r *memPostRepository) GetWithHashtags(_ context.Context) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := []models.Post{}
	for _, post := range r.posts {
		if strings.Contains(post.Content, "#") {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (r *memPostRepository) SearchContent(_ context.Context, query string) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := []models.Post{}
	for i := len(r.posts) - 1; i >= 0; i-- {
		if strings.Contains(r.posts[i].Content, query) {
			posts = append(posts, r.posts[i])
		}
	}
	return posts, nil
}

func (r *memPostRepository) Delete(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].PostID == postID {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memPostRepository) ToggleLike(_ context.Context, postID, userID string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].PostID != postID {
			continue
		}
		likes := []string{}
		found := false
		for _, id := range r.posts[i].LikedBy {
			if id == userID {
				found = true
				continue
			}
			likes = append(likes, id)
		}
		if !found {
			likes = append(likes, userID)
		}
		r.posts[i].LikedBy = likes
		post := r.posts[i]
		return &post, nil
	}
	return nil, repository.ErrNotFound
}
