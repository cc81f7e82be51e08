package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hackatweet/internal/models"
	"hackatweet/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.Profile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) (*models.Profile, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockAuthService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSummary), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListAll(ctx context.Context, token string) ([]models.TweetView, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TweetView), args.Error(1)
}

func (m *MockPostService) Create(ctx context.Context, token, content string) (*models.TweetView, error) {
	args := m.Called(ctx, token, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TweetView), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, token, tweetID string) (string, error) {
	args := m.Called(ctx, token, tweetID)
	return args.String(0), args.Error(1)
}

func (m *MockPostService) ToggleLike(ctx context.Context, token, tweetID string) (*models.TweetView, error) {
	args := m.Called(ctx, token, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TweetView), args.Error(1)
}

type MockTrendService struct {
	mock.Mock
}

func (m *MockTrendService) Trends(ctx context.Context, token string) ([]models.Trend, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trend), args.Error(1)
}

func (m *MockTrendService) SearchByHashtag(ctx context.Context, token, query string) ([]models.TweetView, error) {
	args := m.Called(ctx, token, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TweetView), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
