package http

import (
	_ "embed"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed index.html
var indexPage []byte

// ServeIndex serves the single-page UI.
func ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(indexPage); err != nil {
		log.Warn().Err(err).Msg("Failed to write index page")
	}
}
