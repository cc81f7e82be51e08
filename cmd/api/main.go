package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"hackatweet/cmd/app"
	"hackatweet/internal/config"
	handlers "hackatweet/internal/handler"
	"hackatweet/internal/logger"
	"hackatweet/internal/router"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	if cfg.TokenKey == "" {
		log.Fatal().Msg("TOKEN_KEY не установлен в .env файле")
	}

	closeStore, repo, services := app.App(cfg)
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			log.Error().Err(err).Msg("Ошибка при закрытии хранилища")
		}
	}()

	handler := handlers.NewHandlers(repo, services, cfg)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router.NewRouter(handler, cfg),
	}

	// Starting the server
	go func() {
		log.Info().Str("addr", srv.Addr).Str("store", cfg.StoreDriver).Msg("Сервер запущен")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Ошибка запуска сервера")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Останавливаем сервер...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Сервер остановлен принудительно")
	}

	log.Info().Msg("Сервер остановлен")
}
