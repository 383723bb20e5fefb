package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// ErrMovieNotFound marks every lookup miss; handlers translate it to 404.
var ErrMovieNotFound = errors.New("movie not found")

// ErrNoFieldsToUpdate rejects a partial update that carries no known field.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

type MovieService interface {
	ListMovies(ctx context.Context) ([]*entity.Movie, error)
	GetMovie(ctx context.Context, id int64) (*entity.Movie, error)
	CreateMovie(ctx context.Context, req *request.MovieCreateRequest) (*entity.Movie, error)
	UpdateMovie(ctx context.Context, id int64, req *request.MovieUpdateRequest) (*entity.Movie, error)
	DeleteMovie(ctx context.Context, id int64) (*entity.Movie, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	s.log.Debug("Movies listed", zap.Int("count", len(movies)))
	return movies, nil
}

func (s *movieService) GetMovie(ctx context.Context, id int64) (*entity.Movie, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	return movie, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieCreateRequest) (*entity.Movie, error) {
	movie := &entity.Movie{
		Title:       utils.Sanitize(req.Title),
		Genre:       utils.Sanitize(req.Genre),
		Description: utils.Sanitize(req.Description),
		PosterURL:   utils.Sanitize(req.PosterURL),
		Rating:      *req.Rating,
		Certificate: "UA",
	}

	// Blank certificate falls back to the default, like an absent one.
	if req.Certificate != nil {
		if cert := utils.Sanitize(*req.Certificate); cert != "" {
			movie.Certificate = cert
		}
	}
	if req.Language != nil {
		movie.Language = utils.Sanitize(*req.Language)
	}
	if req.Votes != nil {
		movie.Votes = *req.Votes
	}
	if req.Likes != nil {
		movie.Likes = *req.Likes
	}

	id, err := s.repo.Movie.Create(ctx, movie)
	if err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	// Re-read so the response carries the assigned id and created_at.
	created, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload created movie: %w", err)
	}
	if created == nil {
		return nil, fmt.Errorf("reload created movie: row %d vanished", id)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", created.ID),
		zap.String("title", created.Title),
	)

	return created, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id int64, req *request.MovieUpdateRequest) (*entity.Movie, error) {
	fields := updateFields(req)
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	found, err := s.repo.Movie.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}
	if !found {
		return nil, ErrMovieNotFound
	}

	updated, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload updated movie: %w", err)
	}
	if updated == nil {
		// Deleted between the update and the reread; treat as gone.
		return nil, ErrMovieNotFound
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", id),
		zap.Int("field_count", len(fields)),
	)

	return updated, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) (*entity.Movie, error) {
	movie, err := s.repo.Movie.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	s.log.Info("Movie deleted",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return movie, nil
}

// updateFields maps the supplied request fields onto their columns,
// sanitizing string values. Absent fields stay absent.
func updateFields(req *request.MovieUpdateRequest) map[string]any {
	fields := make(map[string]any)

	if req.Title != nil {
		fields["title"] = utils.Sanitize(*req.Title)
	}
	if req.Genre != nil {
		fields["genre"] = utils.Sanitize(*req.Genre)
	}
	if req.Description != nil {
		fields["description"] = utils.Sanitize(*req.Description)
	}
	if req.PosterURL != nil {
		fields["poster_url"] = utils.Sanitize(*req.PosterURL)
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.Certificate != nil {
		fields["certificate"] = utils.Sanitize(*req.Certificate)
	}
	if req.Language != nil {
		fields["language"] = utils.Sanitize(*req.Language)
	}
	if req.Votes != nil {
		fields["votes"] = *req.Votes
	}
	if req.Likes != nil {
		fields["likes"] = *req.Likes
	}

	return fields
}
