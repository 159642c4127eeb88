package service

import (
	"time"

	"dsa_tracker_backend/internal/metrics"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/store"
	"dsa_tracker_backend/pkg/logger"

	"go.uber.org/zap"
)

// BadgeStatus 全量目录 + 已获得集合 + 本次新解锁
// swagger:model BadgeStatus
type BadgeStatus struct {
	Catalog     []metrics.Badge `json:"catalog"`
	Earned      []metrics.Badge `json:"earned"`
	NewlyEarned []metrics.Badge `json:"newlyEarned"`
	TotalPoints int             `json:"totalPoints"`
}

// BadgeService 评估徽章并做"新解锁"检测。
// 评估器是纯函数；与历史已通知集合的 diff 在这里做。
type BadgeService struct {
	Store     store.ActivityStore
	AwardRepo *repository.BadgeAwardRepository
}

func NewBadgeService(s store.ActivityStore, awardRepo *repository.BadgeAwardRepository) *BadgeService {
	return &BadgeService{Store: s, AwardRepo: awardRepo}
}

func (s *BadgeService) GetBadges(userID uint) (*BadgeStatus, error) {
	activities, err := s.Store.FindByUser(userID)
	if err != nil {
		// 拉取失败降级为空集合，与前端的空状态兜底一致
		logger.Log.Warn("badge evaluation falling back to empty activity set",
			zap.Uint("userID", userID), zap.Error(err))
		activities = nil
	}

	res := metrics.EvaluateBadges(activities, time.Now())

	status := &BadgeStatus{
		Catalog:     metrics.Catalog,
		Earned:      res.Earned,
		NewlyEarned: []metrics.Badge{},
		TotalPoints: res.TotalPoints,
	}

	seen, err := s.AwardRepo.GetEarnedSet(userID)
	if err != nil {
		// 历史集合不可用时不做新徽章提示，但正常返回当前已获得的
		return status, nil
	}

	var newIDs []string
	for _, b := range res.Earned {
		if _, ok := seen[b.ID]; !ok {
			status.NewlyEarned = append(status.NewlyEarned, b)
			newIDs = append(newIDs, b.ID)
		}
	}

	if len(newIDs) > 0 {
		if err := s.AwardRepo.RecordEarned(userID, newIDs); err != nil {
			logger.Log.Error("failed to record earned badges", zap.Error(err))
		}
	}
	return status, nil
}
