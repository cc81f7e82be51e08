package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"hackatweet/internal/models"
)

const (
	usersNS  = "hackatweet.users"
	tweetsNS = "hackatweet.tweets"
)

func userDoc(id, username, token string, createdAt time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "firstname", Value: "Ann"},
		{Key: "username", Value: username},
		{Key: "usernameKey", Value: usernameKey(username)},
		{Key: "password", Value: "hash"},
		{Key: "token", Value: token},
		{Key: "createdAt", Value: createdAt},
	}
}

func tweetDoc(id, author, content string, createdAt time.Time, likes ...string) bson.D {
	likers := bson.A{}
	for _, l := range likes {
		likers = append(likers, l)
	}
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "author", Value: author},
		{Key: "content", Value: content},
		{Key: "createdAt", Value: createdAt},
		{Key: "likes", Value: likers},
	}
}

func TestMongoUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	mt.Run("CreateUser normalises the username key", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &models.User{UserID: "user-1", Firstname: "Ann", Username: "AnnL", CreatedAt: now}
		err := repo.CreateUser(ctx, user)

		require.NoError(mt, err)
		assert.Equal(mt, "annl", user.UsernameKey)
	})

	mt.Run("CreateUser maps duplicate key errors", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: hackatweet.users index: users_username_key",
		}))

		err := repo.CreateUser(ctx, &models.User{UserID: "user-2", Username: "ann"})

		assert.True(mt, errors.Is(err, ErrDuplicate))
	})

	mt.Run("GetUserByUsername decodes the document", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch,
			userDoc("user-1", "ann", "token-1", now)))

		user, err := repo.GetUserByUsername(ctx, "ANN")

		require.NoError(mt, err)
		assert.Equal(mt, "user-1", user.UserID)
		assert.Equal(mt, "hash", user.PasswordHash)
		assert.Equal(mt, "token-1", user.Token)
		assert.WithinDuration(mt, now, user.CreatedAt, time.Millisecond)
	})

	mt.Run("GetUserByToken returns ErrNotFound on an empty cursor", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch))

		user, err := repo.GetUserByToken(ctx, "bogus")

		assert.Nil(mt, user)
		assert.True(mt, errors.Is(err, ErrNotFound))
	})

	mt.Run("GetUsersByIDs skips the query for no ids", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)

		users, err := repo.GetUsersByIDs(ctx, []string{})

		assert.NoError(mt, err)
		assert.Empty(mt, users)
	})

	mt.Run("ListUsers reads every document", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch,
			userDoc("user-1", "ann", "t1", now),
			userDoc("user-2", "bob", "t2", now)))

		users, err := repo.ListUsers(ctx)

		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, "bob", users[1].Username)
	})
}

func TestMongoPostRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	mt.Run("Create fills an empty likes set", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		post := &models.Post{PostID: "tweet-1", AuthorID: "user-1", Content: "hi", CreatedAt: now}
		err := repo.Create(ctx, post)

		require.NoError(mt, err)
		assert.NotNil(mt, post.LikedBy)
	})

	mt.Run("GetByID decodes likes", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, tweetsNS, mtest.FirstBatch,
			tweetDoc("tweet-1", "user-1", "hello #go", now, "user-2")))

		post, err := repo.GetByID(ctx, "tweet-1")

		require.NoError(mt, err)
		assert.Equal(mt, "user-1", post.AuthorID)
		assert.Equal(mt, []string{"user-2"}, post.LikedBy)
	})

	mt.Run("GetByID returns ErrNotFound", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, tweetsNS, mtest.FirstBatch))

		_, err := repo.GetByID(ctx, "missing")

		assert.True(mt, errors.Is(err, ErrNotFound))
	})

	mt.Run("GetAll keeps cursor order", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, tweetsNS, mtest.FirstBatch,
			tweetDoc("tweet-2", "user-1", "second", now),
			tweetDoc("tweet-1", "user-1", "first", now.Add(-time.Minute))))

		posts, err := repo.GetAll(ctx)

		require.NoError(mt, err)
		require.Len(mt, posts, 2)
		assert.Equal(mt, "tweet-2", posts[0].PostID)
	})

	mt.Run("GetWithHashtags returns an empty slice when nothing matches", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, tweetsNS, mtest.FirstBatch))

		posts, err := repo.GetWithHashtags(ctx)

		require.NoError(mt, err)
		assert.NotNil(mt, posts)
		assert.Empty(mt, posts)
	})

	mt.Run("SearchContent surfaces command errors", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad query",
		}))

		_, err := repo.SearchContent(ctx, "#go")

		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "ошибка при получении твитов")
	})

	mt.Run("Delete removes one document", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, repo.Delete(ctx, "tweet-1"))
	})

	mt.Run("Delete reports a missing tweet", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(ctx, "missing")

		assert.True(mt, errors.Is(err, ErrNotFound))
	})

	mt.Run("ToggleLike returns the updated document", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key:   "value",
			Value: tweetDoc("tweet-1", "user-1", "hello", now, "user-2"),
		}))

		post, err := repo.ToggleLike(ctx, "tweet-1", "user-2")

		require.NoError(mt, err)
		assert.True(mt, post.IsLikedBy("user-2"))
	})

	mt.Run("ToggleLike sends one conditional pipeline update", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key:   "value",
			Value: tweetDoc("tweet-1", "user-1", "hello", now),
		}))

		_, err := repo.ToggleLike(ctx, "tweet-1", "user-2")
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "findAndModify", started.CommandName)

		cmd := started.Command
		cond := []string{"update", "0", "$set", "likes", "$cond"}
		at := func(keys ...string) []string { return append(append([]string{}, cond...), keys...) }

		assert.Equal(mt, "tweet-1", lookupString(mt, cmd, "query", "_id"))

		// if the liker is already present
		assert.Equal(mt, "user-2", lookupString(mt, cmd, at("0", "$in", "0")...))
		assert.Equal(mt, "$likes", lookupString(mt, cmd, at("0", "$in", "1", "$ifNull", "0")...))

		// then filter it out
		assert.Equal(mt, "$likes", lookupString(mt, cmd, at("1", "$filter", "input", "$ifNull", "0")...))
		assert.Equal(mt, "$$this", lookupString(mt, cmd, at("1", "$filter", "cond", "$ne", "0")...))
		assert.Equal(mt, "user-2", lookupString(mt, cmd, at("1", "$filter", "cond", "$ne", "1")...))

		// else append it
		assert.Equal(mt, "$likes", lookupString(mt, cmd, at("2", "$concatArrays", "0", "$ifNull", "0")...))
		assert.Equal(mt, "user-2", lookupString(mt, cmd, at("2", "$concatArrays", "1", "0")...))
	})

	mt.Run("GetAll breaks createdAt ties by id", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, tweetsNS, mtest.FirstBatch))

		_, err := repo.GetAll(ctx)
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)

		sortDoc, err := started.Command.LookupErr("sort")
		require.NoError(mt, err)

		elems, err := sortDoc.Document().Elements()
		require.NoError(mt, err)
		require.Len(mt, elems, 2)
		assert.Equal(mt, "createdAt", elems[0].Key())
		assert.Equal(mt, "_id", elems[1].Key())
		assert.EqualValues(mt, -1, elems[1].Value().AsInt64())
	})
}

func lookupString(t assert.TestingT, doc bson.Raw, keys ...string) string {
	value, err := doc.LookupErr(keys...)
	if !assert.NoError(t, err, "lookup %v", keys) {
		return ""
	}
	str, ok := value.StringValueOK()
	assert.True(t, ok, "value at %v is %s, not a string", keys, value.Type)
	return str
}
