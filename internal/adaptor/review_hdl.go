package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// ReviewHandler acknowledges review submissions without persisting them.
// The endpoint exists for the client's review form only.
type ReviewHandler struct {
	log *zap.Logger
}

func NewReviewHandler(log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		log: log.With(zap.String("handler", "review")),
	}
}

type reviewResponse struct {
	Message string                `json:"message"`
	Review  request.ReviewRequest `json:"review"`
}

// SubmitReview handles POST /api/reviews
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	h.log.Info("Review received (mock)",
		zap.String("movie_title", req.MovieTitle),
		zap.Float64("rating", req.Rating),
	)

	utils.ResponseOK(w, reviewResponse{
		Message: "Review submitted successfully (mock)",
		Review:  req,
	})
}
