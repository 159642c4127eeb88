package service

import (
	"context"
	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"errors"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"
)

const motivationCacheKey = "motivation:current"

type MotivationService struct {
	MotivationRepo *repository.MotivationRepository
	RDB            *redis.Client
}

func NewMotivationService(motivationRepo *repository.MotivationRepository, rdb *redis.Client) *MotivationService {
	return &MotivationService{MotivationRepo: motivationRepo, RDB: rdb}
}

func (s *MotivationService) GetAllMotivations() ([]*model.Motivation, error) {
	return s.MotivationRepo.GetAll()
}

// GetCurrentMotivation 获取当前展示的激励短句，每 12 小时轮换一次
func (s *MotivationService) GetCurrentMotivation() (string, error) {
	ctx := context.Background()
	if s.RDB != nil {
		if cached, err := s.RDB.Get(ctx, motivationCacheKey).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	content, err := s.pickCurrent()
	if err != nil {
		return "", err
	}

	if s.RDB != nil && content != "" {
		s.RDB.Set(ctx, motivationCacheKey, content, time.Hour)
	}
	return content, nil
}

func (s *MotivationService) pickCurrent() (string, error) {
	current, err := s.MotivationRepo.GetCurrent()
	if err != nil {
		enabled, err := s.MotivationRepo.GetEnabled()
		if err != nil || len(enabled) == 0 {
			return "", err
		}
		s.MotivationRepo.SetCurrent(enabled[0].ID)
		return enabled[0].Content, nil
	}

	elapsed := time.Since(current.LastUsedAt)
	enabled, err := s.MotivationRepo.GetEnabled()

	if err == nil && len(enabled) > 1 && elapsed.Hours() >= 12 {
		var candidates []*model.Motivation
		for _, m := range enabled {
			if m.ID != current.ID {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) > 0 {
			newCurrent := candidates[rand.Intn(len(candidates))]
			s.MotivationRepo.SetCurrent(newCurrent.ID)
			return newCurrent.Content, nil
		}
	}

	return current.Content, nil
}

func (s *MotivationService) CreateMotivation(content string) error {
	motivation := &model.Motivation{
		Content:         content,
		IsEnabled:       true,
		IsCurrentlyUsed: false,
	}
	return s.MotivationRepo.Create(motivation)
}

func (s *MotivationService) UpdateMotivation(id uint, content string, isEnabled bool) error {
	var motivation model.Motivation
	err := s.MotivationRepo.DB.First(&motivation, id).Error
	if err != nil {
		return err
	}

	current, err := s.MotivationRepo.GetCurrent()
	if err == nil && current.ID == id && !isEnabled {
		enabled, err := s.MotivationRepo.GetEnabled()
		if err != nil {
			return err
		}
		if len(enabled) <= 1 {
			return errors.New("at least one enabled motivation is required")
		}
	}

	motivation.Content = content
	motivation.IsEnabled = isEnabled
	s.invalidateCache()
	return s.MotivationRepo.Update(&motivation)
}

func (s *MotivationService) DeleteMotivation(id uint) error {
	current, err := s.MotivationRepo.GetCurrent()
	if err == nil && current.ID == id {
		enabled, err := s.MotivationRepo.GetEnabled()
		if err != nil {
			return err
		}
		if len(enabled) <= 1 {
			return errors.New("at least one enabled motivation is required")
		}
	}

	s.invalidateCache()
	return s.MotivationRepo.Delete(id)
}

func (s *MotivationService) invalidateCache() {
	if s.RDB != nil {
		s.RDB.Del(context.Background(), motivationCacheKey)
	}
}
