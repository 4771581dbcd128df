package resource

import (
	httputil "github.com/chaesu44438/emotion-theater/internal/pkg/http"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storage"
)

// ErrorResponse error body shared by all resource endpoints.
type ErrorResponse = httputil.ErrorResponse

// Handler exposes reference-image upload and retrieval. Uploaded images
// condition the illustration prompter on the child's appearance.
type Handler struct {
	store storage.Storage
}

// NewHandler creates the resource handler.
func NewHandler(store storage.Storage) *Handler {
	return &Handler{
		store: store,
	}
}
