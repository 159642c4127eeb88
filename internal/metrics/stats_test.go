package metrics

import (
	"testing"

	"dsa_tracker_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)

	assert.Equal(t, 0, s.TotalActivities)
	assert.Equal(t, float64(0), s.AverageValue)
	assert.Equal(t, float64(0), s.SuccessRate)
	assert.Empty(t, s.ByDifficulty)
	assert.Empty(t, s.RecentActivities)
	assert.Equal(t, "0m", s.TotalTimeLabel)
}

func TestComputeStatsDifficultyBreakdown(t *testing.T) {
	activities := []model.Activity{
		act(0, withDifficulty(model.DifficultyEasy)),
		act(1, withDifficulty(model.DifficultyEasy)),
		act(2, withDifficulty(model.DifficultyHard)),
		act(3), // difficulty 缺省，不计入分组
	}

	s := ComputeStats(activities)
	assert.Equal(t, map[string]int{"Easy": 2, "Hard": 1}, s.ByDifficulty)
}

func TestComputeStatsPlatformAndCategory(t *testing.T) {
	activities := []model.Activity{
		act(0, withPlatform("LeetCode"), withCategory("Trees")),
		act(1, withPlatform("LeetCode")),
		act(2, withPlatform("HackerRank")),
	}

	s := ComputeStats(activities)
	assert.Equal(t, map[string]int{"LeetCode": 2, "HackerRank": 1}, s.ByPlatform)
	assert.Equal(t, 2, s.DistinctTopics)
	assert.Equal(t, 2, s.ByCategory["Arrays & Strings"])
	assert.Equal(t, 1, s.ByCategory["Trees"])
}

func TestComputeStatsSuccessRate(t *testing.T) {
	// 10 条带 dsaTopic，其中 4 条解出 → 40%
	var activities []model.Activity
	for i := 0; i < 10; i++ {
		opts := []func(*model.Activity){withTopic("Two Pointers")}
		if i < 4 {
			opts = append(opts, solved())
		}
		activities = append(activities, act(i, opts...))
	}

	s := ComputeStats(activities)
	assert.Equal(t, 4, s.ProblemsSolved)
	assert.Equal(t, 10, s.TotalProblems)
	assert.InDelta(t, 40.0, s.SuccessRate, 0.001)
}

func TestComputeStatsAverageValue(t *testing.T) {
	a := act(0)
	a.Value = 3
	b := act(1)
	b.Value = 4

	s := ComputeStats([]model.Activity{a, b})
	assert.InDelta(t, 3.5, s.AverageValue, 0.001)
}

func TestComputeStatsDuration(t *testing.T) {
	a := act(0)
	a.Duration = 90
	b := act(1)
	b.Duration = 45

	s := ComputeStats([]model.Activity{a, b})
	assert.Equal(t, 135, s.TotalDuration)
	assert.Equal(t, "2h 15m", s.TotalTimeLabel)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", FormatDuration(0))
	assert.Equal(t, "45m", FormatDuration(45))
	assert.Equal(t, "1h 0m", FormatDuration(60))
	assert.Equal(t, "1h 59m", FormatDuration(119))
}

func TestRecentReturnsTopFiveDescending(t *testing.T) {
	var activities []model.Activity
	for i := 6; i >= 0; i-- {
		activities = append(activities, act(i))
	}

	recent := Recent(activities, 5)
	assert.Len(t, recent, 5)
	for i := 1; i < len(recent); i++ {
		assert.True(t, !recent[i-1].Date.Before(recent[i].Date))
	}
	assert.Equal(t, act(0).Date, recent[0].Date)
	assert.Equal(t, act(4).Date, recent[4].Date)
}

func TestRecentExcludesInvalidDates(t *testing.T) {
	invalid := model.Activity{Category: "DP"}
	recent := Recent([]model.Activity{invalid, act(0)}, 5)
	assert.Len(t, recent, 1)
}
