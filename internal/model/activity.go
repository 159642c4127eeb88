package model

import (
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Activity 一次刷题/学习记录，按天归属
// swagger:model Activity
type Activity struct {
	UUIDBase
	UserID   uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Date     time.Time `gorm:"index;not null" json:"date"`
	Category string    `gorm:"size:100;not null" json:"category"`
	Duration int       `gorm:"not null;default:0" json:"duration"` // 分钟
	Value    int       `gorm:"not null;default:1" json:"value"`    // 理解程度 1-4

	// 可选字段，缺省时不参与统计分组
	DSATopic        *string     `gorm:"size:100" json:"dsaTopic,omitempty"`
	Difficulty      *Difficulty `gorm:"type:enum('Easy','Medium','Hard')" json:"difficulty,omitempty"`
	Platform        *string     `gorm:"size:100" json:"platform,omitempty"`
	ProblemSolved   *bool       `json:"problemSolved,omitempty"`
	TimeComplexity  *string     `gorm:"size:50" json:"timeComplexity,omitempty"`
	SpaceComplexity *string     `gorm:"size:50" json:"spaceComplexity,omitempty"`
	Notes           *string     `gorm:"type:text" json:"notes,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}

// Solved 解析可选的 problemSolved 字段，缺省视为未解出
func (a *Activity) Solved() bool {
	return a.ProblemSolved != nil && *a.ProblemSolved
}

// Day 取日期的日历天部分，丢弃时分秒
func (a *Activity) Day() time.Time {
	return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), 0, 0, 0, 0, time.UTC)
}

// HasValidDate 日期无效的记录不参与连续天数/最近记录计算
func (a *Activity) HasValidDate() bool {
	return !a.Date.IsZero()
}
