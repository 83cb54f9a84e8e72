package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

// Index 全站信息流（整页缓存 20s，见路由处的 CachePage）
// @Summary 全站信息流
// @Tags 信息流
// @Produce json
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response
// @Router / [get]
func (h *Handler) Index(c *gin.Context) {
	feed, err := h.feeds.Index(c.Request.Context(), c.Query("page"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page_obj": feed})
}

// GroupPosts 社区信息流
// @Summary 社区信息流
// @Tags 信息流
// @Produce json
// @Param slug path string true "社区 slug"
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /group/{slug} [get]
func (h *Handler) GroupPosts(c *gin.Context) {
	group, feed, err := h.feeds.GroupPosts(c.Request.Context(), c.Param("slug"), c.Query("page"))
	if err != nil {
		if service.IsNotFound(err) {
			response.NotFound(c, c.Request.URL.Path)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"group": group, "page_obj": feed})
}

// Profile 作者主页：作者的帖子分页 + 当前请求者是否已关注
// @Summary 作者主页
// @Tags 信息流
// @Produce json
// @Param username path string true "用户名"
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile/{username} [get]
func (h *Handler) Profile(c *gin.Context) {
	var viewerID *uint
	if user := middleware.CurrentUser(c); user != nil {
		viewerID = &user.UserID
	}
	author, feed, following, err := h.feeds.Profile(c.Request.Context(), c.Param("username"), c.Query("page"), viewerID)
	if err != nil {
		if service.IsNotFound(err) {
			response.NotFound(c, c.Request.URL.Path)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{
		"author":    gin.H{"id": author.ID, "username": author.Username},
		"page_obj":  feed,
		"following": following,
	})
}

// FollowIndex 关注信息流：我关注的作者们的帖子
// @Summary 关注信息流
// @Tags 信息流
// @Produce json
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response
// @Failure 302 {string} string "未登录重定向到登录页"
// @Router /follow [get]
func (h *Handler) FollowIndex(c *gin.Context) {
	user := middleware.CurrentUser(c)
	feed, err := h.feeds.FollowIndex(c.Request.Context(), user.UserID, c.Query("page"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page_obj": feed})
}
