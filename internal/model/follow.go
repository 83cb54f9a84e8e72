package model

import "time"

// Follow 关注关系（user 关注 author）
type Follow struct {
	ID       uint  `gorm:"primaryKey"`
	UserID   uint  `gorm:"index:idx_follow_user;index:idx_follow_pair,unique;not null"`
	User     *User `gorm:"constraint:OnDelete:CASCADE"`
	AuthorID uint  `gorm:"not null;index:idx_follow_pair,unique"`
	Author   *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	// 复合唯一键，避免重复关注
	// idx_follow_pair = (user_id, author_id)
	CreatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
