package service

import (
	"context"
	"sort"
	"strings"

	"hackatweet/internal/models"
	"hackatweet/internal/repository"
)

type TrendService interface {
	Trends(ctx context.Context, token string) ([]models.Trend, error)
	SearchByHashtag(ctx context.Context, token, query string) ([]models.TweetView, error)
}

type trendService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	auth     AuthService
}

func NewTrendService(postRepo repository.PostRepository, userRepo repository.UserRepository, auth AuthService) TrendService {
	return &trendService{
		postRepo: postRepo,
		userRepo: userRepo,
		auth:     auth,
	}
}

func (t *trendService) Trends(ctx context.Context, token string) ([]models.Trend, error) {
	if _, err := t.auth.ResolveToken(ctx, token); err != nil {
		return nil, err
	}

	posts, err := t.postRepo.GetWithHashtags(ctx)
	if err != nil {
		return nil, err
	}

	contents := make([]string, 0, len(posts))
	for _, post := range posts {
		contents = append(contents, post.Content)
	}

	return RankTrends(contents), nil
}

// SearchByHashtag matches query as a literal substring of the content.
func (t *trendService) SearchByHashtag(ctx context.Context, token, query string) ([]models.TweetView, error) {
	if token == "" || query == "" {
		return nil, ErrMissingFields
	}

	if _, err := t.auth.ResolveToken(ctx, token); err != nil {
		return nil, err
	}

	posts, err := t.postRepo.SearchContent(ctx, query)
	if err != nil {
		return nil, err
	}

	return expandPosts(ctx, t.userRepo, posts)
}

// ExtractHashtags returns the whitespace-delimited words of content that start
// with '#' and are longer than one character, in order of appearance.
func ExtractHashtags(content string) []string {
	var hashtags []string
	for _, word := range strings.Fields(content) {
		if len(word) > 1 && strings.HasPrefix(word, "#") {
			hashtags = append(hashtags, word)
		}
	}
	return hashtags
}

// RankTrends counts, for each hashtag, the number of contents using it. A
// hashtag repeated inside one content counts once. The result is ordered by
// count descending; equal counts keep the order in which hashtags were first seen.
func RankTrends(contents []string) []models.Trend {
	trends := []models.Trend{}
	index := make(map[string]int)

	for _, content := range contents {
		counted := make(map[string]struct{})
		for _, hashtag := range ExtractHashtags(content) {
			if _, ok := counted[hashtag]; ok {
				continue
			}
			counted[hashtag] = struct{}{}

			if i, ok := index[hashtag]; ok {
				trends[i].Count++
				continue
			}
			index[hashtag] = len(trends)
			trends = append(trends, models.Trend{Hashtag: hashtag, Count: 1})
		}
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].Count > trends[j].Count
	})

	return trends
}
