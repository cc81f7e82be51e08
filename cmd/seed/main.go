// Seed tool: registers fake users and fills the store with hashtagged tweets
// so that the feed, trends and hashtag search have something to show.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog/log"

	"hackatweet/cmd/app"
	"hackatweet/internal/config"
	"hackatweet/internal/logger"
	"hackatweet/internal/service"
)

var hashtags = []string{"#golang", "#hackatweet", "#mongodb", "#postgres", "#lacapsule", "#webdev", "#100DaysOfCode"}

func main() {
	var numUsers int
	var numTweets int
	flag.IntVar(&numUsers, "users", 10, "number of users to register")
	flag.IntVar(&numTweets, "tweets", 50, "number of tweets to create")
	flag.Parse()

	cfg := config.LoadConfig()
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	if cfg.TokenKey == "" {
		log.Fatal().Msg("TOKEN_KEY не установлен в .env файле")
	}
	if err := validateCounts(numUsers, numTweets); err != nil {
		log.Fatal().Err(err).Msg("Неверные параметры")
	}

	closeStore, _, services := app.App(cfg)

	start := time.Now()
	err := seed(context.Background(), services, numUsers, numTweets)

	if closeErr := closeStore(context.Background()); closeErr != nil {
		log.Error().Err(closeErr).Msg("Ошибка при закрытии хранилища")
	}
	if err != nil {
		log.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}

	log.Info().Int("users", numUsers).Int("tweets", numTweets).
		Dur("took", time.Since(start).Truncate(time.Millisecond)).Msg("seed done")
}

func validateCounts(numUsers, numTweets int) error {
	if numUsers < 0 || numTweets < 0 {
		return fmt.Errorf("counts must not be negative: users=%d tweets=%d", numUsers, numTweets)
	}
	if numTweets > 0 && numUsers < 1 {
		return fmt.Errorf("%d tweets need at least one user to author them", numTweets)
	}
	return nil
}

func seed(ctx context.Context, services *service.Service, numUsers, numTweets int) error {
	tokens := make([]string, 0, numUsers)
	for len(tokens) < numUsers {
		profile, err := services.Auth.Register(ctx, service.RegisterRequest{
			Firstname: gofakeit.FirstName(),
			Username:  gofakeit.Username(),
			Password:  gofakeit.Password(true, true, true, false, false, 10),
		})
		if errors.Is(err, service.ErrConflict) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		tokens = append(tokens, profile.Token)
	}

	for i := 0; i < numTweets; i++ {
		token := tokens[gofakeit.Number(0, len(tokens)-1)]
		if _, err := services.Post.Create(ctx, token, fakeContent()); err != nil {
			return fmt.Errorf("seed tweets: %w", err)
		}
	}

	return nil
}

func fakeContent() string {
	words := make([]string, 0, 12)
	for i := gofakeit.Number(4, 10); i > 0; i-- {
		words = append(words, gofakeit.Word())
	}
	for i := gofakeit.Number(0, 3); i > 0; i-- {
		words = append(words, gofakeit.RandomString(hashtags))
	}
	return strings.Join(words, " ")
}
