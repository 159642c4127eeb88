package model

import (
	"time"
)

// BadgeAward 已通知过的徽章记录，用于检测新解锁的徽章
// swagger:model BadgeAward
type BadgeAward struct {
	BaseModel
	UserID   uint      `gorm:"index:idx_user_badge,unique;type:bigint unsigned;not null" json:"userId"`
	BadgeID  string    `gorm:"index:idx_user_badge,unique;size:50;not null" json:"badgeId"`
	EarnedAt time.Time `gorm:"not null" json:"earnedAt"`
}

func (BadgeAward) TableName() string {
	return "badge_awards"
}
