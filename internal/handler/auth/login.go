package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chaesu44438/emotion-theater/internal/service"
)

// LoginRequest login request body.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponseData login response payload.
type LoginResponseData struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int      `json:"expires_in"` // seconds
	TokenType    string   `json:"token_type"` // Bearer
	User         UserInfo `json:"user"`
}

// UserInfo user payload shared by all auth endpoints.
type UserInfo struct {
	ID          string       `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	Role        string       `json:"role"`   // admin/member
	Status      string       `json:"status"` // active/inactive/banned
	Profile     *UserProfile `json:"profile,omitempty"`
	LastLoginAt string       `json:"last_login_at,omitempty"`
	CreatedAt   string       `json:"created_at,omitempty"`
}

// UserProfile optional user profile payload.
type UserProfile struct {
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Login authenticates with username and password
// @Summary      Log in
// @Description  Verifies credentials and returns an access and refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "login request"
// @Success      200     {object}  map[string]interface{}
// @Failure      400     {object}  ErrorResponse
// @Failure      401     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	resp, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		code := http.StatusInternalServerError
		errorCode := 50001

		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidPassword):
			code = http.StatusUnauthorized
			errorCode = 40101
		case errors.Is(err, service.ErrUserInactive):
			code = http.StatusForbidden
			errorCode = 40005
		case errors.Is(err, service.ErrUserBanned):
			code = http.StatusForbidden
			errorCode = 40006
		}

		c.JSON(code, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	userInfo := toUserInfo(resp.User)

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": LoginResponseData{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
			ExpiresIn:    resp.ExpiresIn,
			TokenType:    resp.TokenType,
			User:         userInfo,
		},
	})
}
