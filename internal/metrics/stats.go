package metrics

import (
	"fmt"
	"sort"
	"time"

	"dsa_tracker_backend/internal/model"
)

const recentLimit = 5

// Stats 汇总统计
// swagger:model Stats
type Stats struct {
	TotalActivities   int              `json:"totalActivities"`
	ProblemsSolved    int              `json:"problemsSolved"`
	TotalProblems     int              `json:"totalProblems"` // 带 dsaTopic 的记录数
	SuccessRate       float64          `json:"successRate"`   // 百分比，分母为 0 时为 0
	TotalDuration     int              `json:"totalDuration"` // 分钟
	TotalTimeLabel    string           `json:"totalTimeLabel"`
	AverageValue      float64          `json:"averageValue"` // 保留一位小数，空集为 0
	DistinctTopics    int              `json:"distinctTopics"`
	ByDifficulty      map[string]int   `json:"byDifficulty"`
	ByPlatform        map[string]int   `json:"byPlatform"`
	ByCategory        map[string]int   `json:"byCategory"`
	RecentActivities  []model.Activity `json:"recentActivities"`
}

// ComputeStats 单遍累积出汇总统计。空输入返回零值而不是 NaN。
func ComputeStats(activities []model.Activity) Stats {
	s := Stats{
		ByDifficulty: make(map[string]int),
		ByPlatform:   make(map[string]int),
		ByCategory:   make(map[string]int),
	}

	valueSum := 0
	categories := make(map[string]struct{})

	for i := range activities {
		a := &activities[i]
		s.TotalActivities++
		s.TotalDuration += a.Duration
		valueSum += a.Value

		if a.Solved() {
			s.ProblemsSolved++
		}
		if a.DSATopic != nil && *a.DSATopic != "" {
			s.TotalProblems++
		}
		if a.Difficulty != nil && *a.Difficulty != "" {
			s.ByDifficulty[string(*a.Difficulty)]++
		}
		if a.Platform != nil && *a.Platform != "" {
			s.ByPlatform[*a.Platform]++
		}
		if a.Category != "" {
			s.ByCategory[a.Category]++
			categories[a.Category] = struct{}{}
		}
	}

	s.DistinctTopics = len(categories)
	if s.TotalProblems > 0 {
		s.SuccessRate = float64(s.ProblemsSolved) / float64(s.TotalProblems) * 100
	}
	if s.TotalActivities > 0 {
		avg := float64(valueSum) / float64(s.TotalActivities)
		// 与前端展示一致，保留一位小数
		s.AverageValue = float64(int(avg*10+0.5)) / 10
	}
	s.TotalTimeLabel = FormatDuration(s.TotalDuration)
	s.RecentActivities = Recent(activities, recentLimit)
	return s
}

// FormatDuration 将分钟格式化为 "Xh Ym"，不足一小时只显示分钟
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// Recent 按日期降序取前 n 条，稳定排序保证并列日期的顺序确定。
// 日期无效的记录不参与。
func Recent(activities []model.Activity, n int) []model.Activity {
	valid := make([]model.Activity, 0, len(activities))
	for i := range activities {
		if activities[i].HasValidDate() {
			valid = append(valid, activities[i])
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Date.After(valid[j].Date)
	})
	if len(valid) > n {
		valid = valid[:n]
	}
	return valid
}

// maxSolvedInOneDay 单日最多解题数，用于徽章判定
func maxSolvedInOneDay(activities []model.Activity) int {
	perDay := make(map[time.Time]int)
	for i := range activities {
		a := &activities[i]
		if a.Solved() && a.HasValidDate() {
			perDay[a.Day()]++
		}
	}
	max := 0
	for _, c := range perDay {
		if c > max {
			max = c
		}
	}
	return max
}
