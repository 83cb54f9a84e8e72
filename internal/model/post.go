package model

import "time"

// Post 帖子。作者删除时级联删除；社区删除时只清空 group_id，帖子保留。
type Post struct {
	ID       uint      `gorm:"primaryKey"`
	Text     string    `gorm:"type:text;not null"`
	AuthorID uint      `gorm:"index:idx_post_author;not null"`
	Author   *User     `gorm:"constraint:OnDelete:CASCADE"`
	GroupID  *uint     `gorm:"index:idx_post_group"`
	Group    *Group    `gorm:"constraint:OnDelete:SET NULL"`
	Image    string    `gorm:"type:varchar(255)"` // 已存储附件的文件名，可为空
	Created  time.Time `gorm:"index:idx_post_created;autoCreateTime"`
}

func (Post) TableName() string { return "posts" }
