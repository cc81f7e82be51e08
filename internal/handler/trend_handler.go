package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"hackatweet/internal/models"
)

type TrendsResponse struct {
	Result bool           `json:"result"`
	Trends []models.Trend `json:"trends"`
}

func (h *Handlers) GetTrends(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	trends, err := h.TrendService.Trends(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, TrendsResponse{Result: true, Trends: trends}, http.StatusOK)
}

func (h *Handlers) SearchHashtag(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	// chi routes on RawPath when it is set, so only then is the segment still escaped
	query := chi.URLParam(r, "query")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(query); err == nil {
			query = unescaped
		}
	}

	tweets, err := h.TrendService.SearchByHashtag(r.Context(), token, query)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, TweetsResponse{Result: true, Tweets: tweets}, http.StatusOK)
}
