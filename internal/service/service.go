package service

import (
	"hackatweet/internal/clock"
	"hackatweet/internal/config"
	"hackatweet/internal/repository"
)

type Service struct {
	User  UserService
	Post  PostService
	Auth  AuthService
	Trend TrendService
}

func NewService(rep *repository.Repository, cfg *config.Config, clk clock.Clock) *Service {
	auth := NewAuthService(rep.User, cfg, clk)

	return &Service{
		User:  NewUserService(rep.User),
		Post:  NewPostService(rep.Post, rep.User, auth, clk),
		Auth:  auth,
		Trend: NewTrendService(rep.Post, rep.User, auth),
	}
}
