package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/pkg/response"
)

// NotFoundPage 未匹配路由的 404 页，带上原始请求路径
func NotFoundPage(c *gin.Context) {
	response.NotFound(c, c.Request.URL.Path)
}

// ForbiddenPage 403 页（同源校验失败等）
func ForbiddenPage(c *gin.Context) {
	response.Forbidden(c, c.Request.URL.Path)
}

// ServerErrorPage 500 页
func ServerErrorPage(c *gin.Context, err error) {
	response.InternalError(c, err)
}
