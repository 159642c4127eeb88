package metrics

import (
	"fmt"
	"testing"

	"dsa_tracker_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

// tierActivities 构造恰好满足指定解题数/主题数/连续天数的活动集合
func tierActivities(problems, topics, streak int) []model.Activity {
	var out []model.Activity
	for i := 0; i < streak; i++ {
		out = append(out, act(i, withCategory("Streak Filler")))
	}
	for i := 0; i < problems; i++ {
		cat := "Streak Filler"
		if i < topics-1 {
			cat = fmt.Sprintf("Topic %d", i)
		}
		out = append(out, act(0, solved(), withCategory(cat)))
	}
	return out
}

func TestLevelEmptyIsBeginner(t *testing.T) {
	res := DetermineLevel(nil, testNow)
	assert.Equal(t, "beginner", res.Current.Level)
	assert.NotNil(t, res.Next)
	assert.Equal(t, "intermediate", res.Next.Level)
	assert.Equal(t, float64(0), res.Progress)
}

func TestLevelExactBoundary(t *testing.T) {
	// 恰好 15 题 / 4 主题 / 3 天 → Intermediate，不能是 Advanced
	activities := tierActivities(15, 4, 3)
	res := DetermineLevel(activities, testNow)

	assert.Equal(t, 15, res.TotalProblems)
	assert.Equal(t, 4, res.DistinctTopics)
	assert.Equal(t, 3, res.CurrentStreak)
	assert.Equal(t, "intermediate", res.Current.Level)
}

func TestLevelOneShortOfBoundary(t *testing.T) {
	activities := tierActivities(14, 4, 3)
	res := DetermineLevel(activities, testNow)
	assert.Equal(t, "beginner", res.Current.Level)
}

func TestLevelAdvanced(t *testing.T) {
	activities := tierActivities(50, 8, 7)
	res := DetermineLevel(activities, testNow)
	assert.Equal(t, "advanced", res.Current.Level)
	assert.Nil(t, res.Next)
	assert.Equal(t, float64(100), res.Progress)
}

func TestLevelProgressToNext(t *testing.T) {
	// Intermediate 起点，向 Advanced (50/8/7) 看齐
	activities := tierActivities(25, 4, 7)
	res := DetermineLevel(activities, testNow)

	assert.Equal(t, "intermediate", res.Current.Level)
	// (25/50 + 4/8 + 7/7) / 3 * 100
	assert.InDelta(t, (0.5+0.5+1.0)/3*100, res.Progress, 0.001)
}

func TestLevelProgressRatiosCapped(t *testing.T) {
	// 解题数远超下一级门槛，单项比值封顶为 1
	activities := tierActivities(500, 4, 3)
	res := DetermineLevel(activities, testNow)

	assert.Equal(t, "intermediate", res.Current.Level)
	assert.LessOrEqual(t, res.Progress, float64(100))
}
