package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetMe returns the authenticated user
// @Summary      Current user
// @Description  Returns the account behind the bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/auth/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    40101,
			Message: "Unauthorized",
		})
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    40101,
			Message: "Invalid authorization header",
		})
		return
	}

	user, err := h.authService.ValidateToken(parts[1])
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    40102,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    toUserInfo(user),
	})
}
