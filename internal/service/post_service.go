package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

var validate = validator.New()

// PostInput 发帖 / 编辑表单。Image 是 handler 落盘后的文件名。
type PostInput struct {
	Text    string `validate:"required"`
	GroupID *uint
	Image   string
}

// PostService 帖子读写。编辑仅限作者本人；created 一经写入不再变化。
type PostService interface {
	Get(ctx context.Context, id uint) (*model.Post, []*model.Comment, error)
	Create(ctx context.Context, authorID uint, in PostInput) (*model.Post, FieldErrors, error)
	Update(ctx context.Context, postID, requesterID uint, in PostInput) (*model.Post, FieldErrors, error)
	Delete(ctx context.Context, id uint) error
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository) PostService {
	return &postService{postRepo: postRepo, commentRepo: commentRepo}
}

func (s *postService) Get(ctx context.Context, id uint) (*model.Post, []*model.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, asNotFound(err, ErrPostNotFound)
	}
	comments, err := s.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

func (s *postService) Create(ctx context.Context, authorID uint, in PostInput) (*model.Post, FieldErrors, error) {
	if fields := validateInput(in); fields != nil {
		return nil, fields, nil
	}
	post := &model.Post{
		Text:     in.Text,
		AuthorID: authorID,
		GroupID:  in.GroupID,
		Image:    in.Image,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, nil, err
	}
	return post, nil, nil
}

// Update 非作者返回 ErrNotAuthor，由 handler 静默重定向到详情页
func (s *postService) Update(ctx context.Context, postID, requesterID uint, in PostInput) (*model.Post, FieldErrors, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, nil, asNotFound(err, ErrPostNotFound)
	}
	if post.AuthorID != requesterID {
		return nil, nil, ErrNotAuthor
	}
	if fields := validateInput(in); fields != nil {
		return nil, fields, nil
	}
	post.Text = in.Text
	post.GroupID = in.GroupID
	if in.Image != "" {
		post.Image = in.Image
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, nil, err
	}
	return post, nil, nil
}

func (s *postService) Delete(ctx context.Context, id uint) error {
	return s.postRepo.Delete(ctx, id)
}

func validateInput(in PostInput) FieldErrors {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	fields := FieldErrors{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Text":
				fields["text"] = "text is required"
			default:
				fields[fe.Field()] = fe.Tag()
			}
		}
		return fields
	}
	fields["_form"] = err.Error()
	return fields
}
