package service

import (
	"context"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// RelationshipService 关注关系
type RelationshipService interface {
	Follow(ctx context.Context, userID uint, authorUsername string) (*model.User, error)
	Unfollow(ctx context.Context, userID uint, authorUsername string) (*model.User, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewRelationshipService(followRepo repository.FollowRepository, userRepo repository.UserRepository) RelationshipService {
	return &relationshipService{followRepo: followRepo, userRepo: userRepo}
}

// Follow 建立关注。沿用线上行为：只有「关注自己且已有记录」这一种情况会跳过写入，
// 首次自我关注仍然会落一行 Follow(user=author)。
// TODO: 产品确认后在这里加上无条件的自我关注拦截。
func (s *relationshipService) Follow(ctx context.Context, userID uint, authorUsername string) (*model.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}
	if author.ID == userID {
		exists, err := s.followRepo.Exists(ctx, userID, author.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return author, nil
		}
	}
	if err := s.followRepo.Create(ctx, userID, author.ID); err != nil {
		return nil, err
	}
	return author, nil
}

// Unfollow 取消关注；不存在关注关系时按无操作处理
func (s *relationshipService) Unfollow(ctx context.Context, userID uint, authorUsername string) (*model.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}
	exists, err := s.followRepo.Exists(ctx, userID, author.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		if err := s.followRepo.Delete(ctx, userID, author.ID); err != nil {
			return nil, err
		}
	}
	return author, nil
}
