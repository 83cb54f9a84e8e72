package handler

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/d60-Lab/microblog/internal/service"
)

// Handler 聚合全部 HTTP 入口
type Handler struct {
	feeds     service.FeedService
	posts     service.PostService
	comments  service.CommentService
	relations service.RelationshipService
	groups    service.GroupService
	users     service.UserService
	mediaDir  string
	loginPath string
}

func New(
	feeds service.FeedService,
	posts service.PostService,
	comments service.CommentService,
	relations service.RelationshipService,
	groups service.GroupService,
	users service.UserService,
	mediaDir, loginPath string,
) *Handler {
	return &Handler{
		feeds:     feeds,
		posts:     posts,
		comments:  comments,
		relations: relations,
		groups:    groups,
		users:     users,
		mediaDir:  mediaDir,
		loginPath: loginPath,
	}
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// saveImage 把上传的图片落到媒体目录，返回存储文件名
func (h *Handler) saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.mediaDir, name)); err != nil {
		return "", err
	}
	return name, nil
}

func detailPath(postID uint) string      { return fmt.Sprintf("/posts/%d", postID) }
func profilePath(username string) string { return "/profile/" + username }
