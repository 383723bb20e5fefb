package adaptor

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// StaticHandler serves the built client bundle and falls back to the SPA
// entry document for unknown non-API paths, so client-side routing works.
// It is installed as the router's NotFound handler; API routes always win.
type StaticHandler struct {
	dir string
	log *zap.Logger
}

func NewStaticHandler(dir string, log *zap.Logger) *StaticHandler {
	return &StaticHandler{
		dir: dir,
		log: log.With(zap.String("handler", "static")),
	}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Unmatched API paths get a JSON 404, never the HTML fallback.
	if strings.HasPrefix(r.URL.Path, "/api") {
		utils.ResponseNotFound(w, "Not found")
		return
	}

	index := filepath.Join(h.dir, "index.html")

	// Clean rooted at "/" so ".." segments cannot escape the bundle dir.
	cleaned := path.Clean("/" + r.URL.Path)
	file := filepath.Join(h.dir, filepath.FromSlash(cleaned))

	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, index)
		return
	}

	http.ServeFile(w, r, file)
}
