package model

import "time"

// Comment 评论。帖子删除时只清空 post_id，评论保留；作者删除时级联删除。
type Comment struct {
	ID       uint      `gorm:"primaryKey"`
	PostID   *uint     `gorm:"index:idx_comment_post"`
	Post     *Post     `gorm:"constraint:OnDelete:SET NULL"`
	AuthorID *uint     `gorm:"index:idx_comment_author"`
	Author   *User     `gorm:"constraint:OnDelete:CASCADE"`
	Text     string    `gorm:"type:text;not null"`
	Created  time.Time `gorm:"autoCreateTime"`
}

func (Comment) TableName() string { return "comments" }
