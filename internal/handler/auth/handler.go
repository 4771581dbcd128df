package auth

import (
	"github.com/chaesu44438/emotion-theater/internal/service"
)

// Handler exposes the authentication endpoints. All auth routes go
// through this struct.
type Handler struct {
	authService *service.AuthService
}

// NewHandler creates the auth handler.
func NewHandler(authService *service.AuthService) *Handler {
	return &Handler{
		authService: authService,
	}
}
