package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"dsa_tracker_backend/internal/model"
)

// FileStore JSON 文件存储，作为无数据库环境的兜底后端。
// 全量读写，数据量按单用户刷题记录的规模考虑。
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	s := &FileStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.save(nil); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *FileStore) load() ([]model.Activity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var activities []model.Activity
	if err := json.Unmarshal(data, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *FileStore) save(activities []model.Activity) error {
	if activities == nil {
		activities = []model.Activity{}
	}
	data, err := json.MarshalIndent(activities, "", "  ")
	if err != nil {
		return err
	}
	// 先写临时文件再改名，避免写一半留下损坏的文件
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Create(activity *model.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := s.load()
	if err != nil {
		return err
	}
	if activity.ID == "" {
		activity.ID = model.GenerateUUID()
	}
	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	activities = append(activities, *activity)
	return s.save(activities)
}

func (s *FileStore) FindByID(id string) (*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range activities {
		if activities[i].ID == id {
			return &activities[i], nil
		}
	}
	return nil, ErrActivityNotFound
}

func (s *FileStore) FindByUser(userID uint) ([]model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]model.Activity, 0)
	for _, a := range activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *FileStore) Update(activity *model.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := s.load()
	if err != nil {
		return err
	}
	for i := range activities {
		if activities[i].ID == activity.ID {
			activity.UpdatedAt = time.Now()
			activities[i] = *activity
			return s.save(activities)
		}
	}
	return ErrActivityNotFound
}

func (s *FileStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := s.load()
	if err != nil {
		return err
	}
	for i := range activities {
		if activities[i].ID == id {
			activities = append(activities[:i], activities[i+1:]...)
			return s.save(activities)
		}
	}
	return ErrActivityNotFound
}
