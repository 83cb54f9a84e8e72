package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

// PostRepository 帖子存取。四条信息流（全站 / 社区 / 作者 / 关注）都在这里，
// 统一 created DESC 排序，id 作为同时刻的决胜键。
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id uint) (*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uint) error

	ListAll(ctx context.Context, offset, limit int) ([]*model.Post, error)
	CountAll(ctx context.Context) (int64, error)
	ListByGroup(ctx context.Context, groupID uint, offset, limit int) ([]*model.Post, error)
	CountByGroup(ctx context.Context, groupID uint) (int64, error)
	ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]*model.Post, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
	ListFollowed(ctx context.Context, userID uint, offset, limit int) ([]*model.Post, error)
	CountFollowed(ctx context.Context, userID uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).Preload("Author").Preload("Group").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update 只落可编辑字段；created 不在列清单里，永不回写
func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Model(&model.Post{ID: post.ID}).
		Select("text", "group_id", "image").
		Updates(map[string]any{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

func (r *postRepository) feed(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Author").Preload("Group").
		Order("created DESC, id DESC")
}

func (r *postRepository) ListAll(ctx context.Context, offset, limit int) ([]*model.Post, error) {
	var res []*model.Post
	err := r.feed(ctx).Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (r *postRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID uint, offset, limit int) ([]*model.Post, error) {
	var res []*model.Post
	err := r.feed(ctx).Where("group_id = ?", groupID).Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (r *postRepository) CountByGroup(ctx context.Context, groupID uint) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("group_id = ?", groupID).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]*model.Post, error) {
	var res []*model.Post
	err := r.feed(ctx).Where("author_id = ?", authorID).Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("author_id = ?", authorID).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) followedAuthors(userID uint) *gorm.DB {
	return r.db.Model(&model.Follow{}).Select("author_id").Where("user_id = ?", userID)
}

func (r *postRepository) ListFollowed(ctx context.Context, userID uint, offset, limit int) ([]*model.Post, error) {
	var res []*model.Post
	err := r.feed(ctx).
		Where("author_id IN (?)", r.followedAuthors(userID)).
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (r *postRepository) CountFollowed(ctx context.Context, userID uint) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("author_id IN (?)", r.followedAuthors(userID)).
		Count(&cnt).Error
	return cnt, err
}
