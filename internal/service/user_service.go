package service

import (
	"context"

	"hackatweet/internal/models"
	"hackatweet/internal/repository"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListUsers returns every identity without its password hash or token.
func (s *userService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}

	return summaries, nil
}
