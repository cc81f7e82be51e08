package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hackatweet/internal/database"
	"hackatweet/internal/models"
)

type mongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{users: db.Collection(database.UsersCollection)}
}

// usernameKey is the normalised handle backing the unique index.
func usernameKey(username string) string {
	return strings.ToLower(username)
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	user.UsernameKey = usernameKey(user.Username)

	_, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("пользователь %s: %w", user.Username, ErrDuplicate)
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *mongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"usernameKey": usernameKey(username)}, "пользователь "+username)
}

func (r *mongoUserRepository) GetUserByToken(ctx context.Context, token string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"token": token}, "пользователь по токену")
}

func (r *mongoUserRepository) GetUsersByIDs(ctx context.Context, userIDs []string) ([]models.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	return r.find(ctx, bson.M{"_id": bson.M{"$in": userIDs}}, options.Find())
}

func (r *mongoUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M, subject string) (*models.User, error) {
	var user models.User

	err := r.users.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", subject, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *mongoUserRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.User, error) {
	cursor, err := r.users.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении пользователей: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("ошибка при чтении пользователей: %w", err)
	}

	return users, nil
}
