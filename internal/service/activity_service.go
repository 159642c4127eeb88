package service

import (
	"time"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/store"
	"dsa_tracker_backend/internal/util"
	"dsa_tracker_backend/pkg/monitoring"
)

// ActivityRequest 活动记录的创建/更新请求体
// swagger:model ActivityRequest
type ActivityRequest struct {
	Date            time.Time         `json:"date" binding:"required"`
	Category        string            `json:"category" binding:"required"`
	Duration        int               `json:"duration"`
	Value           int               `json:"value" binding:"required"`
	DSATopic        *string           `json:"dsaTopic"`
	Difficulty      *model.Difficulty `json:"difficulty"`
	Platform        *string           `json:"platform"`
	ProblemSolved   *bool             `json:"problemSolved"`
	TimeComplexity  *string           `json:"timeComplexity"`
	SpaceComplexity *string           `json:"spaceComplexity"`
	Notes           *string           `json:"notes"`
}

// ActivityService 活动记录的 CRUD，后端可插拔（gorm/file/memory）
type ActivityService struct {
	Store store.ActivityStore
}

func NewActivityService(s store.ActivityStore) *ActivityService {
	return &ActivityService{Store: s}
}

func validate(req *ActivityRequest) error {
	if req.Date.IsZero() {
		return util.ErrInvalidDate
	}
	if req.Duration < 0 {
		return util.ErrInvalidDuration
	}
	if req.Value < 1 || req.Value > 4 {
		return util.ErrInvalidValue
	}
	return nil
}

func (s *ActivityService) Create(userID uint, req *ActivityRequest) (*model.Activity, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	activity := &model.Activity{
		UserID:          userID,
		Date:            req.Date,
		Category:        req.Category,
		Duration:        req.Duration,
		Value:           req.Value,
		DSATopic:        req.DSATopic,
		Difficulty:      req.Difficulty,
		Platform:        req.Platform,
		ProblemSolved:   req.ProblemSolved,
		TimeComplexity:  req.TimeComplexity,
		SpaceComplexity: req.SpaceComplexity,
		Notes:           req.Notes,
	}

	if err := s.Store.Create(activity); err != nil {
		return nil, err
	}

	monitoring.ActivityCounter.WithLabelValues(activity.Category).Inc()
	return activity, nil
}

func (s *ActivityService) GetByID(userID uint, id string) (*model.Activity, error) {
	activity, err := s.Store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if activity.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return activity, nil
}

// ListByUser 拉取失败时调用方应以空集合兜底展示
func (s *ActivityService) ListByUser(userID uint) ([]model.Activity, error) {
	return s.Store.FindByUser(userID)
}

func (s *ActivityService) Update(userID uint, id string, req *ActivityRequest) (*model.Activity, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	activity, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	activity.Date = req.Date
	activity.Category = req.Category
	activity.Duration = req.Duration
	activity.Value = req.Value
	activity.DSATopic = req.DSATopic
	activity.Difficulty = req.Difficulty
	activity.Platform = req.Platform
	activity.ProblemSolved = req.ProblemSolved
	activity.TimeComplexity = req.TimeComplexity
	activity.SpaceComplexity = req.SpaceComplexity
	activity.Notes = req.Notes

	if err := s.Store.Update(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) Delete(userID uint, id string) error {
	if _, err := s.GetByID(userID, id); err != nil {
		return err
	}
	return s.Store.Delete(id)
}
