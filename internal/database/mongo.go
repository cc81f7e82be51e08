package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"hackatweet/internal/config"
)

const (
	UsersCollection  = "users"
	TweetsCollection = "tweets"
)

type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func ConnectMongo(cfg *config.Config) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	log.Info().Str("database", cfg.Mongo.Database).Msg("Подключаемся к MongoDB")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к MongoDB: %w", err)
	}

	m := &Mongo{Client: client, DB: client.Database(cfg.Mongo.Database)}

	if err := m.HealthCheck(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("проверка MongoDB не пройдена: %w", err)
	}

	if err := m.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("Внимание: ошибка при создании индексов")
	}

	log.Info().Msg("Успешное подключение к MongoDB")
	return m, nil
}

// EnsureIndexes creates the unique handle index, the token lookup index and
// the tweet ordering index. Creating an existing index is a no-op.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.DB.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "usernameKey", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_username_key"),
		},
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetName("users_token"),
		},
	})
	if err != nil {
		return fmt.Errorf("ошибка при создании индексов users: %w", err)
	}

	_, err = m.DB.Collection(TweetsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("tweets_created_at"),
	})
	if err != nil {
		return fmt.Errorf("ошибка при создании индексов tweets: %w", err)
	}

	return nil
}

func (m *Mongo) HealthCheck(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return fmt.Errorf("подключение к MongoDB не инициализировано")
	}
	return m.Client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
