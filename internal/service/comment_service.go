package service

import (
	"context"
	"strings"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// CommentService 评论写入。目标帖子必须存在；文本为空视为校验失败，
// 由调用方决定如何处理（发帖页回显，评论页静默丢弃）。
type CommentService interface {
	Add(ctx context.Context, postID, authorID uint, text string) (*model.Comment, FieldErrors, error)
}

type commentService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

func NewCommentService(postRepo repository.PostRepository, commentRepo repository.CommentRepository) CommentService {
	return &commentService{postRepo: postRepo, commentRepo: commentRepo}
}

func (s *commentService) Add(ctx context.Context, postID, authorID uint, text string) (*model.Comment, FieldErrors, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, nil, asNotFound(err, ErrPostNotFound)
	}
	if strings.TrimSpace(text) == "" {
		return nil, FieldErrors{"text": "text is required"}, nil
	}
	comment := &model.Comment{
		PostID:   &post.ID,
		AuthorID: &authorID,
		Text:     text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, nil, err
	}
	return comment, nil, nil
}
