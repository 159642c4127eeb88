package repository

import (
	"errors"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/store"

	"gorm.io/gorm"
)

// ActivityRepository gorm 实现的活动存储，同时满足 store.ActivityStore 接口
type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(activity *model.Activity) error {
	return r.DB.Create(activity).Error
}

func (r *ActivityRepository) FindByID(id string) (*model.Activity, error) {
	var activity model.Activity
	err := r.DB.Where("id = ?", id).First(&activity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) FindByUser(userID uint) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.DB.Where("user_id = ?", userID).Order("date DESC").Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) Update(activity *model.Activity) error {
	res := r.DB.Save(activity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrActivityNotFound
	}
	return nil
}

func (r *ActivityRepository) Delete(id string) error {
	res := r.DB.Where("id = ?", id).Delete(&model.Activity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrActivityNotFound
	}
	return nil
}

func (r *ActivityRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Activity{}).Count(&count).Error
	return count, err
}

// CountByColumn 按某个可选列聚合计数，NULL 值不计入（管理端总览用）
func (r *ActivityRepository) CountByColumn(column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}
	var rows []row
	err := r.DB.Model(&model.Activity{}).
		Select(column+" AS `key`, COUNT(*) AS count").
		Where(column + " IS NOT NULL").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Count
	}
	return out, nil
}

func (r *ActivityRepository) SumDuration() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Activity{}).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error
	return total, err
}
