package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

// PostDetail 帖子详情：帖子 + 按时间正序的评论 + 空评论表单
// @Summary 帖子详情
// @Tags 帖子
// @Produce json
// @Param id path int true "帖子 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id} [get]
func (h *Handler) PostDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.NotFound(c, c.Request.URL.Path)
		return
	}
	post, comments, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if service.IsNotFound(err) {
			response.NotFound(c, c.Request.URL.Path)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{
		"post":     post,
		"comments": comments,
		"form":     gin.H{"text": ""},
	})
}

// postInput 从 multipart 表单取 text / group_id / image
func (h *Handler) postInput(c *gin.Context) (service.PostInput, error) {
	in := service.PostInput{Text: c.PostForm("text")}
	if raw := c.PostForm("group_id"); raw != "" {
		if gid, err := strconv.ParseUint(raw, 10, 64); err == nil {
			id := uint(gid)
			in.GroupID = &id
		}
	}
	if file, err := c.FormFile("image"); err == nil {
		name, err := h.saveImage(c, file)
		if err != nil {
			return in, err
		}
		in.Image = name
	}
	return in, nil
}

// PostCreateForm 发帖表单页
// @Summary 发帖表单
// @Tags 帖子
// @Produce json
// @Success 200 {object} response.Response
// @Router /create [get]
func (h *Handler) PostCreateForm(c *gin.Context) {
	groups, err := h.groups.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{
		"form":   gin.H{"text": "", "group_id": nil},
		"groups": groups,
	})
}

// PostCreate 发帖。成功后 302 到作者主页；校验失败回显字段错误。
// @Summary 发帖
// @Tags 帖子
// @Accept mpfd
// @Produce json
// @Param text formData string true "正文"
// @Param group_id formData int false "社区 ID"
// @Param image formData file false "配图"
// @Success 302 {string} string "重定向到作者主页"
// @Router /create [post]
func (h *Handler) PostCreate(c *gin.Context) {
	user := middleware.CurrentUser(c)
	in, err := h.postInput(c)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	_, fields, err := h.posts.Create(c.Request.Context(), user.UserID, in)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if fields != nil {
		response.FormInvalid(c, fields, gin.H{"text": in.Text, "group_id": in.GroupID})
		return
	}
	c.Redirect(http.StatusFound, profilePath(user.Username))
}

// PostEdit 编辑帖子。非作者不报错，静默 302 回详情页；created 不变。
// @Summary 编辑帖子
// @Tags 帖子
// @Accept mpfd
// @Produce json
// @Param id path int true "帖子 ID"
// @Param text formData string true "正文"
// @Param group_id formData int false "社区 ID"
// @Success 302 {string} string "重定向到详情页"
// @Failure 404 {object} response.Response
// @Router /posts/{id}/edit [post]
func (h *Handler) PostEdit(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		response.NotFound(c, c.Request.URL.Path)
		return
	}
	in, err := h.postInput(c)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	post, fields, err := h.posts.Update(c.Request.Context(), id, user.UserID, in)
	switch {
	case errors.Is(err, service.ErrNotAuthor):
		// 无权限提示，直接回详情页
		c.Redirect(http.StatusFound, detailPath(id))
		return
	case err != nil:
		if service.IsNotFound(err) {
			response.NotFound(c, c.Request.URL.Path)
			return
		}
		response.InternalError(c, err)
		return
	}
	if fields != nil {
		response.FormInvalid(c, fields, gin.H{"text": in.Text, "group_id": in.GroupID, "is_edit": true})
		return
	}
	c.Redirect(http.StatusFound, detailPath(post.ID))
}

// PostEditForm 编辑表单页：非作者同样静默回详情页
// @Summary 编辑表单
// @Tags 帖子
// @Produce json
// @Param id path int true "帖子 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id}/edit [get]
func (h *Handler) PostEditForm(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		response.NotFound(c, c.Request.URL.Path)
		return
	}
	post, _, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if service.IsNotFound(err) {
			response.NotFound(c, c.Request.URL.Path)
			return
		}
		response.InternalError(c, err)
		return
	}
	if post.AuthorID != user.UserID {
		c.Redirect(http.StatusFound, detailPath(id))
		return
	}
	groups, err := h.groups.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{
		"form":    gin.H{"text": post.Text, "group_id": post.GroupID},
		"groups":  groups,
		"is_edit": true,
	})
}
