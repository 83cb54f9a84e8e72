package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/service"
)

const userKey = "current_user"

// Auth 解析请求携带的登录令牌（Authorization: Bearer 或 auth_token cookie），
// 解析失败视为未登录，不在这里拦截。
func Auth(users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		} else if v, err := c.Cookie("auth_token"); err == nil {
			token = v
		}
		if token != "" {
			if claims, err := users.ParseToken(token); err == nil {
				c.Set(userKey, claims)
			}
		}
		c.Next()
	}
}

// CurrentUser 取当前登录用户；未登录返回 nil
func CurrentUser(c *gin.Context) *service.Claims {
	if v, ok := c.Get(userKey); ok {
		if claims, ok := v.(*service.Claims); ok {
			return claims
		}
	}
	return nil
}

// RequireLogin 未登录时 302 到登录页，携带原始路径作回跳参数
func RequireLogin(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, loginPath+"?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}
