package metrics

import (
	"time"

	"dsa_tracker_backend/internal/model"
)

// LevelCriteria 等级门槛，三项指标需同时满足
type LevelCriteria struct {
	Level       string `json:"level"`
	MinProblems int    `json:"minProblems"`
	MinTopics   int    `json:"minTopics"`
	MinStreak   int    `json:"minStreak"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Tiers 从低到高排列，首个等级为默认等级
var Tiers = []LevelCriteria{
	{
		Level: "beginner", MinProblems: 0, MinTopics: 0, MinStreak: 0,
		Title: "Beginner", Icon: "🌱",
		Description: "Just getting started with DSA journey",
	},
	{
		Level: "intermediate", MinProblems: 15, MinTopics: 4, MinStreak: 3,
		Title: "Intermediate", Icon: "🚀",
		Description: "Making solid progress in problem solving",
	},
	{
		Level: "advanced", MinProblems: 50, MinTopics: 8, MinStreak: 7,
		Title: "Advanced", Icon: "👑",
		Description: "Expert problem solver with consistent practice",
	},
}

// LevelResult 当前等级与升级进度
// swagger:model LevelResult
type LevelResult struct {
	Current        LevelCriteria  `json:"current"`
	Next           *LevelCriteria `json:"next,omitempty"`
	Progress       float64        `json:"progress"` // 0-100，已是最高级时为 100
	TotalProblems  int            `json:"totalProblems"`
	DistinctTopics int            `json:"distinctTopics"`
	CurrentStreak  int            `json:"currentStreak"`
}

// DetermineLevel 从高到低扫描，返回三项门槛都满足的最高等级。
// 升级进度为三个比值（各自封顶为 1）的算术平均。
func DetermineLevel(activities []model.Activity, now time.Time) LevelResult {
	solved := countSolved(activities)
	topics := make(map[string]struct{})
	for i := range activities {
		if activities[i].Category != "" {
			topics[activities[i].Category] = struct{}{}
		}
	}
	streak := Streak(activities, now, StreakStrict)

	current := Tiers[0]
	idx := 0
	for i := len(Tiers) - 1; i >= 0; i-- {
		t := Tiers[i]
		if solved >= t.MinProblems && len(topics) >= t.MinTopics && streak >= t.MinStreak {
			current = t
			idx = i
			break
		}
	}

	res := LevelResult{
		Current:        current,
		Progress:       100,
		TotalProblems:  solved,
		DistinctTopics: len(topics),
		CurrentStreak:  streak,
	}

	if idx < len(Tiers)-1 {
		next := Tiers[idx+1]
		res.Next = &next
		res.Progress = (ratioCapped(solved, next.MinProblems) +
			ratioCapped(len(topics), next.MinTopics) +
			ratioCapped(streak, next.MinStreak)) / 3 * 100
	}
	return res
}

func ratioCapped(metric, threshold int) float64 {
	if threshold <= 0 {
		return 1
	}
	r := float64(metric) / float64(threshold)
	if r > 1 {
		return 1
	}
	return r
}
