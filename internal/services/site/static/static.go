// Package static embeds the site's stylesheet, scripts and favicon.
package static

import (
	"embed"
	"net/http"
	"strings"
)

// FS exposes site static assets for HTTP serving.
//
//go:embed *.css *.js favicon.ico
var FS embed.FS

const cacheControl = "public, max-age=3600"

// Handler serves FS under prefix. Directory listings are not exposed.
func Handler(prefix string) http.Handler {
	files := http.StripPrefix(prefix, http.FileServerFS(FS))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", cacheControl)
		files.ServeHTTP(w, r)
	})
}

// FaviconHandler serves the embedded favicon.
func FaviconHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		http.ServeFileFS(w, r, FS, "favicon.ico")
	})
}
