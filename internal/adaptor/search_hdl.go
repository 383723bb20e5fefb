package adaptor

import (
	"fmt"
	"net/http"

	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// SearchHandler serves a canned OMDb-shaped payload; no real external
// search integration exists.
type SearchHandler struct {
	log *zap.Logger
}

func NewSearchHandler(log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		log: log.With(zap.String("handler", "search")),
	}
}

type externalSearchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type externalSearchResponse struct {
	Search       []externalSearchResult `json:"Search"`
	TotalResults string                 `json:"totalResults"`
	Response     string                 `json:"Response"`
}

// SearchExternal handles GET /api/movies/search/external?title=
func (h *SearchHandler) SearchExternal(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")

	h.log.Debug("External search (mock)", zap.String("title", title))

	utils.ResponseOK(w, externalSearchResponse{
		Search: []externalSearchResult{
			{
				Title:  fmt.Sprintf("%s (2019)", title),
				Year:   "2019",
				ImdbID: "tt7286456",
				Type:   "movie",
				Poster: "https://via.placeholder.com/300",
			},
			{
				Title:  fmt.Sprintf("%s: Sequel (2024)", title),
				Year:   "2024",
				ImdbID: "tt11315808",
				Type:   "movie",
				Poster: "https://via.placeholder.com/300",
			},
		},
		TotalResults: "2",
		Response:     "True",
	})
}
