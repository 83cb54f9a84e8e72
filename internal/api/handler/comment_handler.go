package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/logger"
	"github.com/d60-Lab/microblog/pkg/response"
)

// AddComment 发表评论。无论校验结果如何都 302 回详情页，
// 字段错误不回显（与线上行为一致），只打一行日志。
// @Summary 发表评论
// @Tags 评论
// @Accept x-www-form-urlencoded
// @Param id path int true "帖子 ID"
// @Param text formData string true "评论内容"
// @Success 302 {string} string "重定向到详情页"
// @Failure 404 {object} response.Response
// @Router /posts/{id}/comment [post]
func (h *Handler) AddComment(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		response.NotFound(c, c.Request.URL.Path)
		return
	}
	_, fields, err := h.comments.Add(c.Request.Context(), id, user.UserID, c.PostForm("text"))
	if err != nil {
		if service.IsNotFound(err) {
			response.NotFound(c, c.Request.URL.Path)
			return
		}
		response.InternalError(c, err)
		return
	}
	if fields != nil {
		logger.Warn("comment validation failed, discarded",
			zap.Uint("post_id", id),
			zap.Uint("user_id", user.UserID),
		)
	}
	c.Redirect(http.StatusFound, detailPath(id))
}
