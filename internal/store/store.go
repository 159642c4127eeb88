// Package store 定义活动记录的可插拔存储后端。
// 默认后端是 gorm 仓库（internal/repository），这里提供无数据库时的
// 内存和 JSON 文件两种实现，三者满足同一个接口。
package store

import (
	"errors"

	"dsa_tracker_backend/internal/model"
)

var ErrActivityNotFound = errors.New("activity not found")

// ActivityStore 活动记录的 CRUD 契约
type ActivityStore interface {
	Create(activity *model.Activity) error
	FindByID(id string) (*model.Activity, error)
	FindByUser(userID uint) ([]model.Activity, error)
	Update(activity *model.Activity) error
	Delete(id string) error
}
