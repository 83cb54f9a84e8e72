package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

// Signup 注册
// @Summary 注册
// @Tags 账号
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "用户名"
// @Param email formData string false "邮箱"
// @Param password formData string true "密码"
// @Success 200 {object} response.Response
// @Router /auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	user, fields, err := h.users.Register(
		c.Request.Context(),
		c.PostForm("username"),
		c.PostForm("email"),
		c.PostForm("password"),
	)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if fields != nil {
		response.FormInvalid(c, fields, gin.H{"username": c.PostForm("username")})
		return
	}
	response.Success(c, gin.H{"id": user.ID, "username": user.Username})
}

// Login 登录，签发 JWT 并写入 cookie
// @Summary 登录
// @Tags 账号
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "用户名"
// @Param password formData string true "密码"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	token, err := h.users.Authenticate(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	c.SetCookie("auth_token", token, 0, "/", "", false, true)
	response.Success(c, gin.H{"token": token, "next": c.Query("next")})
}
