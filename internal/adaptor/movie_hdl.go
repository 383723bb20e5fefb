package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// DeleteMovieResponse carries the deleted row's prior snapshot.
type DeleteMovieResponse struct {
	Message string        `json:"message"`
	Movie   *entity.Movie `json:"movie"`
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListMovies(r.Context())
	if err != nil {
		h.log.Error("Failed to fetch movies", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to fetch movies", err)
		return
	}

	utils.ResponseOK(w, movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(r)
	if !ok {
		utils.ResponseNotFound(w, "Movie not found")
		return
	}

	movie, err := h.service.GetMovie(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "fetch movie")
		return
	}

	utils.ResponseOK(w, movie)
}

// CreateMovie handles POST /api/movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieCreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		if utils.HasRequiredError(validationErrors) {
			utils.ResponseBadRequest(w, "All fields are required")
			return
		}
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, movie)
}

// UpdateMovie handles PUT /api/movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(r)
	if !ok {
		utils.ResponseNotFound(w, "Movie not found")
		return
	}

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseOK(w, movie)
}

// DeleteMovie handles DELETE /api/movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(r)
	if !ok {
		utils.ResponseNotFound(w, "Movie not found")
		return
	}

	movie, err := h.service.DeleteMovie(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseOK(w, DeleteMovieResponse{
		Message: "Movie deleted successfully",
		Movie:   movie,
	})
}

// movieID parses the id path param. A non-numeric id can never match a
// row, so callers answer not-found rather than a client error.
func (h *MovieHandler) movieID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// handleServiceError is the per-request failure boundary.
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		h.log.Warn("Movie not found", zap.String("operation", operation))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.Is(err, usecase.ErrNoFieldsToUpdate):
		utils.ResponseBadRequest(w, "No fields to update")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseInternalError(w, "Failed to "+operation, err)
	}
}
