package admin

import (
	httputil "github.com/chaesu44438/emotion-theater/internal/pkg/http"
	authRepo "github.com/chaesu44438/emotion-theater/internal/repository/auth"
	storyRepo "github.com/chaesu44438/emotion-theater/internal/repository/story"
)

// ErrorResponse error body shared by all admin endpoints.
type ErrorResponse = httputil.ErrorResponse

// Handler exposes the operator endpoints for prompt templates and user
// management.
type Handler struct {
	settings *storyRepo.SettingRepo
	users    *authRepo.UserRepo
}

// NewHandler creates the admin handler.
func NewHandler(settings *storyRepo.SettingRepo, users *authRepo.UserRepo) *Handler {
	return &Handler{
		settings: settings,
		users:    users,
	}
}
