package service

import (
	"context"
	"errors"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

var ErrGroupInUse = errors.New("group is referenced by posts")

// GroupInput 社区编辑表单
type GroupInput struct {
	Title       string
	Slug        string
	Description string
}

// GroupService 社区维护（运营入口）。删除仅允许在没有帖子引用时进行。
type GroupService interface {
	List(ctx context.Context) ([]*model.Group, error)
	Create(ctx context.Context, in GroupInput) (*model.Group, FieldErrors, error)
	Delete(ctx context.Context, slug string) error
}

type groupService struct {
	groupRepo repository.GroupRepository
	postRepo  repository.PostRepository
}

func NewGroupService(groupRepo repository.GroupRepository, postRepo repository.PostRepository) GroupService {
	return &groupService{groupRepo: groupRepo, postRepo: postRepo}
}

func (s *groupService) List(ctx context.Context) ([]*model.Group, error) {
	return s.groupRepo.List(ctx)
}

func (s *groupService) Create(ctx context.Context, in GroupInput) (*model.Group, FieldErrors, error) {
	fields := FieldErrors{}
	if in.Title == "" {
		fields["title"] = "title is required"
	}
	if in.Slug == "" {
		fields["slug"] = "slug is required"
	}
	if len(fields) > 0 {
		return nil, fields, nil
	}
	group := &model.Group{Title: in.Title, Slug: in.Slug, Description: in.Description}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, nil, err
	}
	return group, nil, nil
}

func (s *groupService) Delete(ctx context.Context, slug string) error {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return asNotFound(err, ErrGroupNotFound)
	}
	cnt, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrGroupInUse
	}
	return s.groupRepo.Delete(ctx, group.ID)
}
