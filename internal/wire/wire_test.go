package wire

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type stubDB struct{}

func (stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}
func (stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}
func (stubDB) Begin(ctx context.Context) (pgx.Tx, error) { return nil, errors.New("not implemented") }
func (stubDB) Ping(ctx context.Context) error            { return nil }
func (stubDB) Close()                                    {}

type stubMovieRepo struct{}

func (stubMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	return []*entity.Movie{{ID: 1, Title: "X", CreatedAt: time.Now()}}, nil
}

func (stubMovieRepo) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	if id == 1 {
		return &entity.Movie{ID: 1, Title: "X"}, nil
	}
	return nil, nil
}

func (stubMovieRepo) Create(ctx context.Context, movie *entity.Movie) (int64, error) {
	return 1, nil
}

func (stubMovieRepo) Update(ctx context.Context, id int64, fields map[string]any) (bool, error) {
	return id == 1, nil
}

func (stubMovieRepo) Delete(ctx context.Context, id int64) (*entity.Movie, error) {
	if id == 1 {
		return &entity.Movie{ID: 1, Title: "X"}, nil
	}
	return nil, nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("spa entry"), 0644); err != nil {
		t.Fatal(err)
	}

	config := &utils.Config{}
	config.App.StaticDir = dir

	repo := &repository.Repository{Movie: stubMovieRepo{}}
	return Wiring(repo, stubDB{}, config, zap.NewNop())
}

func TestRouter_RouteResolution(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/api/health", "", http.StatusOK},
		{"list movies", http.MethodGet, "/api/movies", "", http.StatusOK},
		{"get movie", http.MethodGet, "/api/movies/1", "", http.StatusOK},
		{"get missing movie", http.MethodGet, "/api/movies/999", "", http.StatusNotFound},
		{"external search not shadowed by id route", http.MethodGet, "/api/movies/search/external?title=X", "", http.StatusOK},
		{"review echo", http.MethodPost, "/api/reviews", `{"userName":"A","email":"a@b.c","movieTitle":"X","rating":4}`, http.StatusOK},
		{"unknown api path", http.MethodGet, "/api/nope", "", http.StatusNotFound},
		{"spa fallback", http.MethodGet, "/movies/1/edit", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			w := httptest.NewRecorder()
			app.Router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s: status = %d, want %d (body %q)", tt.method, tt.path, w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRouter_APINotFoundIsJSON(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("expected JSON 404 under /api, got %q", w.Body.String())
	}
	if body["error"] != "Not found" {
		t.Errorf("error = %q, want 'Not found'", body["error"])
	}
}

func TestRouter_SPAFallbackServesEntry(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "spa entry") {
		t.Errorf("expected SPA entry document, got %q", w.Body.String())
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id header")
	}
}
