package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一返回包装
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "ok", Data: data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Message: msg})
}

// FormInvalid 表单校验失败：返回 200 + 字段级错误，供前端回显
func FormInvalid(c *gin.Context, fields map[string]string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusBadRequest,
		Message: "validation failed",
		Data:    gin.H{"errors": fields, "form": data},
	})
}

func NotFound(c *gin.Context, path string) {
	c.JSON(http.StatusNotFound, Response{
		Code:    http.StatusNotFound,
		Message: "page not found",
		Data:    gin.H{"path": path},
	})
}

func Forbidden(c *gin.Context, path string) {
	c.JSON(http.StatusForbidden, Response{
		Code:    http.StatusForbidden,
		Message: "permission denied",
		Data:    gin.H{"path": path},
	})
}

func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Response{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
		Data:    gin.H{"path": c.Request.URL.Path},
	})
}
