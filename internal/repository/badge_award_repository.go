package repository

import (
	"context"
	"fmt"
	"time"

	"dsa_tracker_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// BadgeAwardRepository 已通知徽章集合。redis 存热数据（集合查询），
// mysql 存落库记录，redis 不可用时退回 mysql。
type BadgeAwardRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewBadgeAwardRepository(db *gorm.DB, rdb *redis.Client) *BadgeAwardRepository {
	return &BadgeAwardRepository{DB: db, RDB: rdb}
}

func badgeSetKey(userID uint) string {
	return fmt.Sprintf("badges:earned:%d", userID)
}

// GetEarnedSet 返回用户已经通知过的徽章 ID 集合
func (r *BadgeAwardRepository) GetEarnedSet(userID uint) (map[string]struct{}, error) {
	ctx := context.Background()

	if r.RDB != nil {
		ids, err := r.RDB.SMembers(ctx, badgeSetKey(userID)).Result()
		if err == nil && len(ids) > 0 {
			set := make(map[string]struct{}, len(ids))
			for _, id := range ids {
				set[id] = struct{}{}
			}
			return set, nil
		}
	}

	var awards []model.BadgeAward
	if err := r.DB.Where("user_id = ?", userID).Find(&awards).Error; err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(awards))
	for _, a := range awards {
		set[a.BadgeID] = struct{}{}
	}
	return set, nil
}

// RecordEarned 落库并回填 redis 集合
func (r *BadgeAwardRepository) RecordEarned(userID uint, badgeIDs []string) error {
	if len(badgeIDs) == 0 {
		return nil
	}

	now := time.Now()
	for _, id := range badgeIDs {
		award := model.BadgeAward{UserID: userID, BadgeID: id, EarnedAt: now}
		// 唯一索引冲突说明已记录过，忽略
		if err := r.DB.Create(&award).Error; err != nil {
			continue
		}
	}

	if r.RDB != nil {
		ctx := context.Background()
		members := make([]interface{}, len(badgeIDs))
		for i, id := range badgeIDs {
			members[i] = id
		}
		r.RDB.SAdd(ctx, badgeSetKey(userID), members...)
	}
	return nil
}
