package models

import (
	"time"
)

// User is a registered identity. PasswordHash and Token never leave the server.
type User struct {
	UserID       string    `json:"userId" db:"user_id" bson:"_id"`
	Firstname    string    `json:"firstname" db:"firstname" bson:"firstname"`
	Username     string    `json:"username" db:"username" bson:"username"`
	UsernameKey  string    `json:"-" db:"-" bson:"usernameKey"`
	PasswordHash string    `json:"-" db:"password_hash" bson:"password"`
	Token        string    `json:"-" db:"token" bson:"token"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
}

// Profile is returned by signup and signin.
type Profile struct {
	Firstname string `json:"firstname"`
	Username  string `json:"username"`
	Token     string `json:"token"`
}

// PublicUser is the display-safe projection embedded in tweet responses.
type PublicUser struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
}

type UserSummary struct {
	UserID    string    `json:"userId"`
	Firstname string    `json:"firstname"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type Post struct {
	PostID    string    `json:"id" db:"tweet_id" bson:"_id"`
	AuthorID  string    `json:"author" db:"author_id" bson:"author"`
	Content   string    `json:"content" db:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
	LikedBy   []string  `json:"likes" db:"-" bson:"likes"`
}

// TweetView is a Post with author and likers expanded to PublicUser.
type TweetView struct {
	TweetID   string       `json:"id"`
	Author    PublicUser   `json:"author"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
	Likes     []PublicUser `json:"likes"`
}

type Trend struct {
	Hashtag string `json:"hashtag"`
	Count   int    `json:"numberOfHashtag"`
}

func (u *User) Public() PublicUser {
	return PublicUser{Username: u.Username, Firstname: u.Firstname}
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		UserID:    u.UserID,
		Firstname: u.Firstname,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

func (p *Post) IsLikedBy(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
