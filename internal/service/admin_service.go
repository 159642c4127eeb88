package service

import (
	"time"

	"dsa_tracker_backend/internal/metrics"
	"dsa_tracker_backend/internal/repository"
)

// AdminOverview 管理端的全站聚合
// swagger:model AdminOverview
type AdminOverview struct {
	TotalUsers      int64            `json:"totalUsers"`
	ActiveUsers24h  int64            `json:"activeUsers24h"`
	TotalActivities int64            `json:"totalActivities"`
	TotalDuration   int64            `json:"totalDuration"` // 分钟
	TotalTimeLabel  string           `json:"totalTimeLabel"`
	ByPlatform      map[string]int64 `json:"byPlatform"`
	ByDifficulty    map[string]int64 `json:"byDifficulty"`
}

type AdminService struct {
	UserRepo     *repository.UserRepository
	ActivityRepo *repository.ActivityRepository
}

func NewAdminService(userRepo *repository.UserRepository, activityRepo *repository.ActivityRepository) *AdminService {
	return &AdminService{UserRepo: userRepo, ActivityRepo: activityRepo}
}

func (s *AdminService) GetOverview() (*AdminOverview, error) {
	users, err := s.UserRepo.Count()
	if err != nil {
		return nil, err
	}
	active, err := s.UserRepo.CountActiveSince(time.Now().Add(-24 * time.Hour))
	if err != nil {
		return nil, err
	}
	activities, err := s.ActivityRepo.Count()
	if err != nil {
		return nil, err
	}
	duration, err := s.ActivityRepo.SumDuration()
	if err != nil {
		return nil, err
	}
	byPlatform, err := s.ActivityRepo.CountByColumn("platform")
	if err != nil {
		return nil, err
	}
	byDifficulty, err := s.ActivityRepo.CountByColumn("difficulty")
	if err != nil {
		return nil, err
	}

	return &AdminOverview{
		TotalUsers:      users,
		ActiveUsers24h:  active,
		TotalActivities: activities,
		TotalDuration:   duration,
		TotalTimeLabel:  metrics.FormatDuration(int(duration)),
		ByPlatform:      byPlatform,
		ByDifficulty:    byDifficulty,
	}, nil
}
