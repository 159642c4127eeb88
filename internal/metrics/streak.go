// Package metrics 根据活动记录计算派生进度指标（连续天数、统计汇总、徽章、等级、热力图）。
// 所有函数都是纯函数：不做 I/O，不修改入参，对同一快照重复调用结果一致。
package metrics

import (
	"sort"
	"time"

	"dsa_tracker_backend/internal/model"
)

// StreakPolicy 连续天数的锚定策略
type StreakPolicy int

const (
	// StreakStrict 仅当今天有活动时才有非零连续天数
	StreakStrict StreakPolicy = iota
	// StreakLenient 今天没有活动时，允许以昨天为锚点（连续尚未中断）
	StreakLenient
)

// Streak 计算截至 now 的连续打卡天数。
// 同一天多条记录只算一天，输入顺序任意，日期无效的记录被忽略。
func Streak(activities []model.Activity, now time.Time, policy StreakPolicy) int {
	days := distinctDaysDesc(activities)
	if len(days) == 0 {
		return 0
	}

	today := truncateDay(now)
	yesterday := today.AddDate(0, 0, -1)

	anchor := -1
	if days[0].Equal(today) {
		anchor = 0
	} else if policy == StreakLenient && days[0].Equal(yesterday) {
		anchor = 0
	}
	if anchor < 0 {
		return 0
	}

	streak := 1
	for i := anchor + 1; i < len(days); i++ {
		gap := days[i-1].Sub(days[i]) / (24 * time.Hour)
		if gap != 1 {
			break
		}
		streak++
	}
	return streak
}

// distinctDaysDesc 活动日期去重后按日历天降序排列
func distinctDaysDesc(activities []model.Activity) []time.Time {
	seen := make(map[time.Time]struct{}, len(activities))
	days := make([]time.Time, 0, len(activities))
	for i := range activities {
		if !activities[i].HasValidDate() {
			continue
		}
		day := activities[i].Day()
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
