package service

import (
	"context"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/pkg/pagination"
)

// FeedPage 一页信息流：帖子按 created 倒序
type FeedPage struct {
	Posts []*model.Post   `json:"posts"`
	Page  pagination.Page `json:"page"`
}

// FeedService 四条只读信息流：全站、社区、作者主页、关注
type FeedService interface {
	Index(ctx context.Context, pageParam string) (*FeedPage, error)
	GroupPosts(ctx context.Context, slug, pageParam string) (*model.Group, *FeedPage, error)
	Profile(ctx context.Context, username, pageParam string, viewerID *uint) (*model.User, *FeedPage, bool, error)
	FollowIndex(ctx context.Context, userID uint, pageParam string) (*FeedPage, error)
}

type feedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	pageSize   int
}

func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	pageSize int,
) FeedService {
	if pageSize < 1 {
		pageSize = 10
	}
	return &feedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		pageSize:   pageSize,
	}
}

func (s *feedService) Index(ctx context.Context, pageParam string) (*FeedPage, error) {
	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	page := pagination.Resolve(pageParam, int(total), s.pageSize)
	posts, err := s.postRepo.ListAll(ctx, page.Offset, page.Size)
	if err != nil {
		return nil, err
	}
	return &FeedPage{Posts: posts, Page: page}, nil
}

func (s *feedService) GroupPosts(ctx context.Context, slug, pageParam string) (*model.Group, *FeedPage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, asNotFound(err, ErrGroupNotFound)
	}
	total, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}
	page := pagination.Resolve(pageParam, int(total), s.pageSize)
	posts, err := s.postRepo.ListByGroup(ctx, group.ID, page.Offset, page.Size)
	if err != nil {
		return nil, nil, err
	}
	return group, &FeedPage{Posts: posts, Page: page}, nil
}

// Profile 返回作者、其帖子分页，以及「当前请求者是否已关注该作者」。
// 未登录的请求者一律 false。
func (s *feedService) Profile(ctx context.Context, username, pageParam string, viewerID *uint) (*model.User, *FeedPage, bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, false, asNotFound(err, ErrUserNotFound)
	}
	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, nil, false, err
	}
	page := pagination.Resolve(pageParam, int(total), s.pageSize)
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, page.Offset, page.Size)
	if err != nil {
		return nil, nil, false, err
	}

	following := false
	if viewerID != nil {
		following, err = s.followRepo.Exists(ctx, *viewerID, author.ID)
		if err != nil {
			return nil, nil, false, err
		}
	}
	return author, &FeedPage{Posts: posts, Page: page}, following, nil
}

func (s *feedService) FollowIndex(ctx context.Context, userID uint, pageParam string) (*FeedPage, error) {
	total, err := s.postRepo.CountFollowed(ctx, userID)
	if err != nil {
		return nil, err
	}
	page := pagination.Resolve(pageParam, int(total), s.pageSize)
	posts, err := s.postRepo.ListFollowed(ctx, userID, page.Offset, page.Size)
	if err != nil {
		return nil, err
	}
	return &FeedPage{Posts: posts, Page: page}, nil
}
