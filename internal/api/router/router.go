package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/microblog/config"
	_ "github.com/d60-Lab/microblog/docs"
	"github.com/d60-Lab/microblog/internal/api/handler"
	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/cache"
)

// New 组装路由。首页单独挂整页缓存；写路由统一要求登录。
func New(h *handler.Handler, users service.UserService, pageCache *cache.PageCache, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Trace.Enabled {
		r.Use(otelgin.Middleware("microblog"))
	}
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	r.Use(middleware.CheckOrigin())
	r.Use(middleware.Auth(users))

	requireLogin := middleware.RequireLogin(cfg.Auth.LoginPath)

	// 信息流
	r.GET("/", middleware.CachePage(pageCache), h.Index)
	r.GET("/group/:slug", h.GroupPosts)
	r.GET("/profile/:username", h.Profile)
	r.GET("/follow", requireLogin, h.FollowIndex)

	// 帖子
	r.GET("/posts/:id", h.PostDetail)
	r.GET("/create", requireLogin, h.PostCreateForm)
	r.POST("/create", requireLogin, h.PostCreate)
	r.GET("/posts/:id/edit", requireLogin, h.PostEditForm)
	r.POST("/posts/:id/edit", requireLogin, h.PostEdit)
	r.POST("/posts/:id/comment", requireLogin, h.AddComment)

	// 关系链
	r.POST("/profile/:username/follow", requireLogin, h.ProfileFollow)
	r.POST("/profile/:username/unfollow", requireLogin, h.ProfileUnfollow)

	// 社区（运营入口）
	r.GET("/groups", h.ListGroups)
	r.POST("/groups", requireLogin, h.CreateGroup)
	r.DELETE("/groups/:slug", requireLogin, h.DeleteGroup)

	// 账号
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(handler.NotFoundPage)
	return r
}
