package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/chaesu44438/emotion-theater/internal/model/auth"
	"github.com/chaesu44438/emotion-theater/internal/pkg/ctxutil"
)

// UserSummary is the per-account shape of the admin user list. The
// password hash never leaves the repository layer.
type UserSummary struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	LastLoginAt string `json:"lastLoginAt,omitempty"`
}

func toUserSummary(user *auth.User) UserSummary {
	summary := UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if user.LastLoginAt != nil {
		summary.LastLoginAt = user.LastLoginAt.Format(time.RFC3339)
	}
	return summary
}

// ListUsers returns registered accounts
// @Summary      List users
// @Description  Returns registered accounts with pagination, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int  false  "page number, starting at 1"
// @Param        pageSize  query     int  false  "page size, default 20"
// @Success      200       {object}  map[string]interface{}
// @Failure      500       {object}  ErrorResponse
// @Router       /api/v1/admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.ParseInt(c.DefaultQuery("pageSize", "20"), 10, 64)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := h.users.List(c.Request.Context(), bson.M{}, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Failed to list users",
			Detail:  err.Error(),
		})
		return
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, toUserSummary(user))
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"users": summaries,
			"total": total,
		},
	})
}

// DeleteUser removes an account
// @Summary      Delete a user
// @Description  Removes an account; an administrator cannot delete their own account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "user ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/admin/users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	if callerID, ok := ctxutil.GetUserID(c.Request.Context()); ok && callerID == userID {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40002,
			Message: "Cannot delete your own account",
		})
		return
	}

	if _, err := h.users.FindByID(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    40404,
			Message: "User not found",
		})
		return
	}

	if err := h.users.Delete(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Failed to delete user",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
	})
}
