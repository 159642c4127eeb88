package metrics

import (
	"testing"

	"dsa_tracker_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestHeatmapWindowAndOrder(t *testing.T) {
	days := Heatmap(nil, testNow, 90)
	assert.Len(t, days, 90)
	assert.Equal(t, "2026-08-31", days[89].Date)
	assert.Equal(t, "2026-06-03", days[0].Date)
	for _, d := range days {
		assert.Equal(t, 0, d.Count)
		assert.Equal(t, 0, d.Value)
	}
}

func TestHeatmapBucketsPerDay(t *testing.T) {
	a := act(0)
	a.Value = 3
	b := act(0)
	b.Value = 3
	c := act(1)
	c.Value = 1

	days := Heatmap([]model.Activity{a, b, c}, testNow, 7)
	today := days[6]
	yesterday := days[5]

	assert.Equal(t, 2, today.Count)
	assert.Equal(t, 4, today.Value) // 3+3 封顶为 4
	assert.Equal(t, 1, yesterday.Count)
	assert.Equal(t, 1, yesterday.Value)
}

func TestHeatmapZeroValueCountsAsOne(t *testing.T) {
	a := act(0)
	a.Value = 0
	days := Heatmap([]model.Activity{a}, testNow, 1)
	assert.Equal(t, 1, days[0].Value)
}

func TestComputeSummary(t *testing.T) {
	activities := []model.Activity{
		act(1, solved(), withTopic("Binary Search")),
		act(2),
	}
	sum := Compute(activities, testNow)

	// 对外口径宽松：昨天有活动，连续未中断
	assert.Equal(t, 2, sum.CurrentStreak)
	assert.Equal(t, 2, sum.Stats.TotalActivities)
	assert.Contains(t, badgeIDs(sum.Badges), "first_problem")
	assert.Equal(t, "beginner", sum.Level.Current.Level)
}
