package metrics

import (
	"time"

	"dsa_tracker_backend/internal/model"
)

// Summary 一次性算出的全部派生指标，供各展示面共用
// swagger:model Summary
type Summary struct {
	CurrentStreak int         `json:"currentStreak"`
	Stats         Stats       `json:"stats"`
	Badges        BadgeResult `json:"badges"`
	Level         LevelResult `json:"level"`
}

// Compute 对活动快照做一次完整的派生计算。
// 对外展示的连续天数采用宽松口径（昨天有活动即视为未中断）。
func Compute(activities []model.Activity, now time.Time) Summary {
	return Summary{
		CurrentStreak: Streak(activities, now, StreakLenient),
		Stats:         ComputeStats(activities),
		Badges:        EvaluateBadges(activities, now),
		Level:         DetermineLevel(activities, now),
	}
}
