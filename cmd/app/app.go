package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hackatweet/internal/clock"
	"hackatweet/internal/config"
	"hackatweet/internal/database"
	"hackatweet/internal/repository"
	"hackatweet/internal/service"
)

// App connects the configured store and builds repositories and services.
// The returned func releases the store connection.
func App(cfg *config.Config) (func(ctx context.Context) error, *repository.Repository, *service.Service) {
	var (
		repo       *repository.Repository
		closeStore func(ctx context.Context) error
	)

	switch cfg.StoreDriver {
	case config.StoreMongo:
		m, err := database.ConnectMongo(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Не удалось подключиться к MongoDB")
		}
		repo = repository.NewMongoRepository(m)
		closeStore = m.Close

	case config.StorePostgres:
		db, err := database.ConnectDB(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Не удалось подключиться к БД")
		}
		repo = repository.NewRepository(db)
		closeStore = func(context.Context) error { return db.CloseDB() }

	default:
		log.Fatal().Err(fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)).Msg("Неверная конфигурация хранилища")
	}

	services := service.NewService(repo, cfg, clock.NewRealClock())

	return closeStore, repo, services
}
