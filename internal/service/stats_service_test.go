package service

import (
	"testing"
	"time"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StatsService 内部用 time.Now()，种子数据用相对日期
func seedStore(t *testing.T, userID uint, daysAgo ...int) store.ActivityStore {
	t.Helper()
	s := store.NewMemoryStore()
	for _, d := range daysAgo {
		err := s.Create(&model.Activity{
			UserID:   userID,
			Date:     time.Now().AddDate(0, 0, -d),
			Category: "Arrays & Strings",
			Duration: 30,
			Value:    2,
		})
		require.NoError(t, err)
	}
	return s
}

func TestStatsStreakFromStore(t *testing.T) {
	svc := NewStatsService(seedStore(t, 1, 0, 1, 2))
	assert.Equal(t, 3, svc.GetStreak(1))
}

func TestStatsStreakEmptyStore(t *testing.T) {
	svc := NewStatsService(store.NewMemoryStore())
	assert.Equal(t, 0, svc.GetStreak(1))
}

func TestStatsSummaryEmpty(t *testing.T) {
	svc := NewStatsService(store.NewMemoryStore())
	summary := svc.GetSummary(1)
	assert.Equal(t, 0, summary.CurrentStreak)
	assert.Equal(t, 0, summary.Stats.TotalActivities)
	assert.Empty(t, summary.Badges.Earned)
	assert.Equal(t, "beginner", summary.Level.Current.Level)
}

func TestStatsSummaryIsolatedByUser(t *testing.T) {
	svc := NewStatsService(seedStore(t, 1, 0, 1))
	assert.Equal(t, 2, svc.GetSummary(1).Stats.TotalActivities)
	assert.Equal(t, 0, svc.GetSummary(2).Stats.TotalActivities)
}

func TestStatsBreakdownOnly(t *testing.T) {
	svc := NewStatsService(seedStore(t, 1, 0, 0, 1))
	stats := svc.GetStats(1)
	assert.Equal(t, 3, stats.TotalActivities)
	assert.Equal(t, 90, stats.TotalDuration)
}

func TestStatsHeatmapPeriods(t *testing.T) {
	svc := NewStatsService(seedStore(t, 1, 0))
	assert.Len(t, svc.GetHeatmap(1, "3months"), 90)
	assert.Len(t, svc.GetHeatmap(1, "6months"), 180)
	assert.Len(t, svc.GetHeatmap(1, "1year"), 365)
	assert.Len(t, svc.GetHeatmap(1, ""), 365)
}
