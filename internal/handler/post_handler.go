package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hackatweet/internal/models"
)

type CreateTweetRequest struct {
	Token   string `json:"token" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type TweetActionRequest struct {
	Token   string `json:"token" validate:"required"`
	TweetID string `json:"tweetId" validate:"required"`
}

type TweetsResponse struct {
	Result bool               `json:"result"`
	Tweets []models.TweetView `json:"tweets"`
}

// CreatedTweetResponse keeps the historical "tweets" key for a single tweet.
type CreatedTweetResponse struct {
	Result bool              `json:"result"`
	Tweets *models.TweetView `json:"tweets"`
}

type TweetResponse struct {
	Result bool              `json:"result"`
	Tweet  *models.TweetView `json:"tweet"`
}

type DeleteTweetResponse struct {
	Result  bool   `json:"result"`
	TweetID string `json:"tweetId"`
}

func (h *Handlers) GetAllTweets(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	tweets, err := h.PostService.ListAll(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, TweetsResponse{Result: true, Tweets: tweets}, http.StatusOK)
}

func (h *Handlers) CreateTweet(w http.ResponseWriter, r *http.Request) {
	var req CreateTweetRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	tweet, err := h.PostService.Create(r.Context(), req.Token, req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, CreatedTweetResponse{Result: true, Tweets: tweet}, http.StatusCreated)
}

func (h *Handlers) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	var req TweetActionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	tweetID, err := h.PostService.Delete(r.Context(), req.Token, req.TweetID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, DeleteTweetResponse{Result: true, TweetID: tweetID}, http.StatusOK)
}

func (h *Handlers) LikeTweet(w http.ResponseWriter, r *http.Request) {
	var req TweetActionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	tweet, err := h.PostService.ToggleLike(r.Context(), req.Token, req.TweetID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, TweetResponse{Result: true, Tweet: tweet}, http.StatusOK)
}
