package request

// ReviewRequest is accepted and echoed back, never persisted.
type ReviewRequest struct {
	UserName   string  `json:"userName"`
	Email      string  `json:"email"`
	MovieTitle string  `json:"movieTitle"`
	Rating     float64 `json:"rating"`
}
