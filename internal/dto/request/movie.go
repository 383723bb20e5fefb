package request

type MovieCreateRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Genre       string   `json:"genre" validate:"required,min=1,max=100"`
	Description string   `json:"description" validate:"required"`
	PosterURL   string   `json:"poster_url" validate:"required"`
	Rating      *float64 `json:"rating" validate:"required,gte=0,lte=10"`
	Certificate *string  `json:"certificate,omitempty" validate:"omitempty,max=20"`
	Language    *string  `json:"language,omitempty" validate:"omitempty,max=100"`
	Votes       *int     `json:"votes,omitempty" validate:"omitempty,gte=0"`
	Likes       *int     `json:"likes,omitempty" validate:"omitempty,gte=0"`
}

type MovieUpdateRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Genre       *string  `json:"genre,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty"`
	PosterURL   *string  `json:"poster_url,omitempty"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
	Certificate *string  `json:"certificate,omitempty" validate:"omitempty,max=20"`
	Language    *string  `json:"language,omitempty" validate:"omitempty,max=100"`
	Votes       *int     `json:"votes,omitempty" validate:"omitempty,gte=0"`
	Likes       *int     `json:"likes,omitempty" validate:"omitempty,gte=0"`
}
