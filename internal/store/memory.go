package store

import (
	"sort"
	"sync"
	"time"

	"dsa_tracker_backend/internal/model"
)

// MemoryStore 进程内存储，测试和演示模式使用
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]model.Activity
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{activities: make(map[string]model.Activity)}
}

func (s *MemoryStore) Create(activity *model.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if activity.ID == "" {
		activity.ID = model.GenerateUUID()
	}
	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	s.activities[activity.ID] = *activity
	return nil
}

func (s *MemoryStore) FindByID(id string) (*model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[id]
	if !ok {
		return nil, ErrActivityNotFound
	}
	return &a, nil
}

func (s *MemoryStore) FindByUser(userID uint) ([]model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Activity, 0)
	for _, a := range s.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *MemoryStore) Update(activity *model.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.activities[activity.ID]; !ok {
		return ErrActivityNotFound
	}
	activity.UpdatedAt = time.Now()
	s.activities[activity.ID] = *activity
	return nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.activities[id]; !ok {
		return ErrActivityNotFound
	}
	delete(s.activities, id)
	return nil
}
