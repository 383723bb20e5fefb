package adaptor

import (
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie  *MovieHandler
	Review *ReviewHandler
	Search *SearchHandler
	Health *HealthHandler
	Static *StaticHandler
}

func NewHandler(service *usecase.Service, db database.PgxIface, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Movie:  NewMovieHandler(service.Movie, log),
		Review: NewReviewHandler(log),
		Search: NewSearchHandler(log),
		Health: NewHealthHandler(db, log),
		Static: NewStaticHandler(config.App.StaticDir, log),
	}
}
