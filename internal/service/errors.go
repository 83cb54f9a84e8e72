package service

import (
	"errors"

	"gorm.io/gorm"
)

// 业务错误。handler 只做一次映射：NotFound 族 → 404 页，其余 → 500。
var (
	ErrPostNotFound  = errors.New("post not found")
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrNotAuthor     = errors.New("not the post author")
)

// FieldErrors 表单字段级校验错误（字段名 → 提示）
type FieldErrors map[string]string

// IsNotFound 判定是否为资源缺失类错误
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrGroupNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

func asNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
