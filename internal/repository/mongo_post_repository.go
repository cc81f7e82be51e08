package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hackatweet/internal/database"
	"hackatweet/internal/models"
)

// _id breaks ties between posts created in the same millisecond.
var (
	newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
	oldestFirst = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}
)

type mongoPostRepository struct {
	tweets *mongo.Collection
}

func NewMongoPostRepository(db *mongo.Database) PostRepository {
	return &mongoPostRepository{tweets: db.Collection(database.TweetsCollection)}
}

func (r *mongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	if post.LikedBy == nil {
		post.LikedBy = []string{}
	}

	_, err := r.tweets.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании твита: %w", err)
	}

	return nil
}

func (r *mongoPostRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post

	err := r.tweets.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("твит с ID %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении твита: %w", err)
	}

	return &post, nil
}

func (r *mongoPostRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	return r.find(ctx, bson.M{}, newestFirst)
}

func (r *mongoPostRepository) GetWithHashtags(ctx context.Context) ([]models.Post, error) {
	return r.find(ctx, bson.M{"content": primitive.Regex{Pattern: "#"}}, oldestFirst)
}

func (r *mongoPostRepository) SearchContent(ctx context.Context, query string) ([]models.Post, error) {
	filter := bson.M{"content": primitive.Regex{Pattern: regexp.QuoteMeta(query)}}
	return r.find(ctx, filter, newestFirst)
}

func (r *mongoPostRepository) Delete(ctx context.Context, postID string) error {
	result, err := r.tweets.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		return fmt.Errorf("ошибка при удалении твита: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("твит с ID %s: %w", postID, ErrNotFound)
	}

	return nil
}

func (r *mongoPostRepository) ToggleLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	likes := bson.D{{Key: "$ifNull", Value: bson.A{"$likes", bson.A{}}}}

	// single pipeline update: drop userID if present, append it otherwise
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "likes", Value: bson.D{{Key: "$cond", Value: bson.A{
			bson.D{{Key: "$in", Value: bson.A{userID, likes}}},
			bson.D{{Key: "$filter", Value: bson.D{
				{Key: "input", Value: likes},
				{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$this", userID}}}},
			}}},
			bson.D{{Key: "$concatArrays", Value: bson.A{likes, bson.A{userID}}}},
		}}}}}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err := r.tweets.FindOneAndUpdate(ctx, bson.M{"_id": postID}, update, opts).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("твит с ID %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при обновлении лайков: %w", err)
	}

	return &post, nil
}

func (r *mongoPostRepository) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.Post, error) {
	cursor, err := r.tweets.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении твитов: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("ошибка при чтении твитов: %w", err)
	}

	return posts, nil
}
