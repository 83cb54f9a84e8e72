package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

// ProfileFollow 关注作者，随后 302 到关注信息流
// @Summary 关注作者
// @Tags 关系链
// @Param username path string true "作者用户名"
// @Success 302 {string} string "重定向到关注信息流"
// @Failure 404 {object} response.Response
// @Router /profile/{username}/follow [post]
func (h *Handler) ProfileFollow(c *gin.Context) {
	user := middleware.CurrentUser(c)
	_, err := h.relations.Follow(c.Request.Context(), user.UserID, c.Param("username"))
	if err != nil {
		if service.IsNotFound(err) {
			response.NotFound(c, c.Request.URL.Path)
			return
		}
		response.InternalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/follow")
}

// ProfileUnfollow 取消关注；原本就没关注时同样 302 回作者主页
// @Summary 取消关注
// @Tags 关系链
// @Param username path string true "作者用户名"
// @Success 302 {string} string "重定向到作者主页"
// @Failure 404 {object} response.Response
// @Router /profile/{username}/unfollow [post]
func (h *Handler) ProfileUnfollow(c *gin.Context) {
	user := middleware.CurrentUser(c)
	author, err := h.relations.Unfollow(c.Request.Context(), user.UserID, c.Param("username"))
	if err != nil {
		if service.IsNotFound(err) {
			response.NotFound(c, c.Request.URL.Path)
			return
		}
		response.InternalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profilePath(author.Username))
}
