package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"hackatweet/internal/models"
)

const tweetColumns = `tweet_id, author_id, content, created_at, liked_by`

// tweetRow mirrors the tweets table; liked_by is a TEXT[] column.
type tweetRow struct {
	TweetID   string         `db:"tweet_id"`
	AuthorID  string         `db:"author_id"`
	Content   string         `db:"content"`
	CreatedAt time.Time      `db:"created_at"`
	LikedBy   pq.StringArray `db:"liked_by"`
}

func (row tweetRow) toModel() models.Post {
	likedBy := []string(row.LikedBy)
	if likedBy == nil {
		likedBy = []string{}
	}
	return models.Post{
		PostID:    row.TweetID,
		AuthorID:  row.AuthorID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		LikedBy:   likedBy,
	}
}

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO tweets (tweet_id, author_id, content, created_at, liked_by)
		VALUES ($1, $2, $3, $4, $5)
	`

	if post.LikedBy == nil {
		post.LikedBy = []string{}
	}

	_, err := r.DB.ExecContext(ctx, query, post.PostID, post.AuthorID, post.Content, post.CreatedAt, pq.Array(post.LikedBy))
	if err != nil {
		return fmt.Errorf("ошибка при создании твита: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT ` + tweetColumns + ` FROM tweets WHERE tweet_id::text = $1`

	var row tweetRow
	err := r.DB.GetContext(ctx, &row, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("твит с ID %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении твита: %w", err)
	}

	post := row.toModel()
	return &post, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `SELECT ` + tweetColumns + ` FROM tweets ORDER BY created_at DESC, tweet_id DESC`
	return r.selectPosts(ctx, query)
}

func (r *PostRepositoryImpl) GetWithHashtags(ctx context.Context) ([]models.Post, error) {
	query := `SELECT ` + tweetColumns + ` FROM tweets WHERE strpos(content, '#') > 0 ORDER BY created_at ASC, tweet_id ASC`
	return r.selectPosts(ctx, query)
}

func (r *PostRepositoryImpl) SearchContent(ctx context.Context, query string) ([]models.Post, error) {
	sqlQuery := `SELECT ` + tweetColumns + ` FROM tweets WHERE strpos(content, $1) > 0 ORDER BY created_at DESC, tweet_id DESC`
	return r.selectPosts(ctx, sqlQuery, query)
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM tweets WHERE tweet_id::text = $1`

	result, err := r.DB.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении твита: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("твит с ID %s: %w", postID, ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) ToggleLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	query := `
		UPDATE tweets SET
			liked_by = CASE
				WHEN $2::text = ANY(liked_by) THEN array_remove(liked_by, $2::text)
				ELSE array_append(liked_by, $2::text)
			END
		WHERE tweet_id::text = $1
		RETURNING ` + tweetColumns

	var row tweetRow
	err := r.DB.GetContext(ctx, &row, query, postID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("твит с ID %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при обновлении лайков: %w", err)
	}

	post := row.toModel()
	return &post, nil
}

func (r *PostRepositoryImpl) selectPosts(ctx context.Context, query string, args ...interface{}) ([]models.Post, error) {
	var rows []tweetRow
	err := r.DB.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении твитов: %w", err)
	}

	posts := make([]models.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toModel())
	}

	return posts, nil
}
