package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

// ListGroups 社区列表（ID 升序）
// @Summary 社区列表
// @Tags 社区
// @Produce json
// @Success 200 {object} response.Response
// @Router /groups [get]
func (h *Handler) ListGroups(c *gin.Context) {
	groups, err := h.groups.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"groups": groups})
}

// CreateGroup 新建社区（运营入口）
// @Summary 新建社区
// @Tags 社区
// @Accept x-www-form-urlencoded
// @Produce json
// @Param title formData string true "标题"
// @Param slug formData string true "slug"
// @Param description formData string false "描述"
// @Success 200 {object} response.Response
// @Router /groups [post]
func (h *Handler) CreateGroup(c *gin.Context) {
	in := service.GroupInput{
		Title:       c.PostForm("title"),
		Slug:        c.PostForm("slug"),
		Description: c.PostForm("description"),
	}
	group, fields, err := h.groups.Create(c.Request.Context(), in)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if fields != nil {
		response.FormInvalid(c, fields, gin.H{"title": in.Title, "slug": in.Slug})
		return
	}
	response.Success(c, gin.H{"group": group})
}

// DeleteGroup 删除社区；仍有帖子引用时拒绝
// @Summary 删除社区
// @Tags 社区
// @Param slug path string true "社区 slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /groups/{slug} [delete]
func (h *Handler) DeleteGroup(c *gin.Context) {
	err := h.groups.Delete(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if service.IsNotFound(err) {
			response.NotFound(c, c.Request.URL.Path)
			return
		}
		if errors.Is(err, service.ErrGroupInUse) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}
