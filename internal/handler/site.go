package handler

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"pizzeria/internal/web"
)

// SuccessHandler echoes the message query parameter. The view escapes it,
// so it is shown as text only.
func SuccessHandler(views Renderer) http.HandlerFunc {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		return render(w, views, web.ViewSuccess, web.SuccessPage{Message: r.URL.Query().Get("message")})
	})
}

func FaviconHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// StaticHandler serves fsys at the site root and falls back to the
// not-found page for anything it does not contain.
func StaticHandler(fsys fs.FS) http.Handler {
	files := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name == "" {
			name = "."
		}

		info, err := fs.Stat(fsys, name)
		if err != nil {
			NotFound(w, r)
			return
		}
		if info.IsDir() {
			if _, err := fs.Stat(fsys, path.Join(name, "index.html")); err != nil {
				NotFound(w, r)
				return
			}
		}

		files.ServeHTTP(w, r)
	})
}
