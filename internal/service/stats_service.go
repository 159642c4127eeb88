package service

import (
	"time"

	"dsa_tracker_backend/internal/metrics"
	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/store"
)

// StatsService 在活动快照上调用纯指标引擎。
// 引擎本身不做 I/O；这里负责取快照并选定 "now"。
type StatsService struct {
	Store store.ActivityStore
}

func NewStatsService(s store.ActivityStore) *StatsService {
	return &StatsService{Store: s}
}

func (s *StatsService) snapshot(userID uint) []model.Activity {
	activities, err := s.Store.FindByUser(userID)
	if err != nil {
		// 读失败按空集合处理，展示层拿到全零指标而不是错误
		return nil
	}
	return activities
}

func (s *StatsService) GetSummary(userID uint) metrics.Summary {
	return metrics.Compute(s.snapshot(userID), time.Now())
}

func (s *StatsService) GetStreak(userID uint) int {
	return metrics.Streak(s.snapshot(userID), time.Now(), metrics.StreakLenient)
}

func (s *StatsService) GetStats(userID uint) metrics.Stats {
	return metrics.ComputeStats(s.snapshot(userID))
}

func (s *StatsService) GetLevel(userID uint) metrics.LevelResult {
	return metrics.DetermineLevel(s.snapshot(userID), time.Now())
}

// GetHeatmap period 支持 3months/6months/1year，缺省一年
func (s *StatsService) GetHeatmap(userID uint, period string) []metrics.HeatmapDay {
	days := 365
	switch period {
	case "3months":
		days = 90
	case "6months":
		days = 180
	}
	return metrics.Heatmap(s.snapshot(userID), time.Now(), days)
}
