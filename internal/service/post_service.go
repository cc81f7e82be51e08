package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hackatweet/internal/clock"
	"hackatweet/internal/models"
	"hackatweet/internal/repository"
)

type PostService interface {
	ListAll(ctx context.Context, token string) ([]models.TweetView, error)
	Create(ctx context.Context, token, content string) (*models.TweetView, error)
	Delete(ctx context.Context, token, tweetID string) (string, error)
	ToggleLike(ctx context.Context, token, tweetID string) (*models.TweetView, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	auth     AuthService
	clock    clock.Clock
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, auth AuthService, clk clock.Clock) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		auth:     auth,
		clock:    clk,
	}
}

func (p *postService) ListAll(ctx context.Context, token string) ([]models.TweetView, error) {
	if _, err := p.auth.ResolveToken(ctx, token); err != nil {
		return nil, err
	}

	posts, err := p.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return expandPosts(ctx, p.userRepo, posts)
}

func (p *postService) Create(ctx context.Context, token, content string) (*models.TweetView, error) {
	if token == "" || strings.TrimSpace(content) == "" {
		return nil, ErrMissingFields
	}

	author, err := p.auth.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		PostID:    uuid.New().String(),
		AuthorID:  author.UserID,
		Content:   content,
		CreatedAt: p.clock.Now(),
		LikedBy:   []string{},
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return &models.TweetView{
		TweetID:   post.PostID,
		Author:    author.Public(),
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		Likes:     []models.PublicUser{},
	}, nil
}

func (p *postService) Delete(ctx context.Context, token, tweetID string) (string, error) {
	if token == "" || tweetID == "" {
		return "", ErrMissingFields
	}

	user, err := p.auth.ResolveToken(ctx, token)
	if err != nil {
		return "", err
	}

	post, err := p.postRepo.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrTweetNotFound
		}
		return "", err
	}

	// only the author can delete
	if post.AuthorID != user.UserID {
		return "", ErrUnauthorized
	}

	if err := p.postRepo.Delete(ctx, tweetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrTweetNotFound
		}
		return "", err
	}

	return tweetID, nil
}

func (p *postService) ToggleLike(ctx context.Context, token, tweetID string) (*models.TweetView, error) {
	if token == "" || tweetID == "" {
		return nil, ErrMissingFields
	}

	user, err := p.auth.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	post, err := p.postRepo.ToggleLike(ctx, tweetID, user.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}

	log.Debug().Str("tweet_id", post.PostID).Str("user_id", user.UserID).
		Bool("liked", post.IsLikedBy(user.UserID)).Msg("Like toggled")

	views, err := expandPosts(ctx, p.userRepo, []models.Post{*post})
	if err != nil {
		return nil, err
	}

	return &views[0], nil
}

// expandPosts replaces author and liker ids with display-safe projections.
func expandPosts(ctx context.Context, userRepo repository.UserRepository, posts []models.Post) ([]models.TweetView, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, post := range posts {
		for _, id := range append([]string{post.AuthorID}, post.LikedBy...) {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	users, err := userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении авторов: %w", err)
	}

	byID := make(map[string]models.PublicUser, len(users))
	for i := range users {
		byID[users[i].UserID] = users[i].Public()
	}

	views := make([]models.TweetView, 0, len(posts))
	for _, post := range posts {
		likes := make([]models.PublicUser, 0, len(post.LikedBy))
		for _, id := range post.LikedBy {
			if liker, ok := byID[id]; ok {
				likes = append(likes, liker)
			}
		}

		views = append(views, models.TweetView{
			TweetID:   post.PostID,
			Author:    byID[post.AuthorID],
			Content:   post.Content,
			CreatedAt: post.CreatedAt,
			Likes:     likes,
		})
	}

	return views, nil
}
