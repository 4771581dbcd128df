package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chaesu44438/emotion-theater/internal/service"
)

// RegisterRequest registration request body.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Nickname string `json:"nickname,omitempty"`
}

// RegisterResponseData registration response payload.
type RegisterResponseData struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Status   string `json:"status"`
}

// Register creates a new account
// @Summary      Register
// @Description  Creates a new account, active immediately
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "registration request"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	resp, err := h.authService.Register(ctx, req.Username, req.Email, req.Password, req.Nickname)
	if err != nil {
		code := http.StatusInternalServerError
		errorCode := 50001

		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			code = http.StatusBadRequest
			errorCode = 40001
		case errors.Is(err, service.ErrEmailTaken):
			code = http.StatusBadRequest
			errorCode = 40002
		}

		c.JSON(code, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "registered",
		"data": RegisterResponseData{
			UserID:   resp.UserID,
			Username: resp.Username,
			Status:   resp.Status,
		},
	})
}
