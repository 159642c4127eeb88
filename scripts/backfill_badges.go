// 手动回填徽章脚本
//
// 徽章在用户请求 /api/badges 时才会评估并落库。批量导入历史活动
// 之后可以用此脚本为所有用户一次性补发已达成的徽章。
//
// 用法: go run scripts/backfill_badges.go

package main

import (
	"log"
	"os"

	"dsa_tracker_backend/internal/config"
	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/pkg/database"
	"dsa_tracker_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Redis 连接失败: %v", err)
	}

	activityRepo := repository.NewActivityRepository(db)
	awardRepo := repository.NewBadgeAwardRepository(db, rdb)
	badgeService := service.NewBadgeService(activityRepo, awardRepo)

	var users []model.User
	if err := db.Find(&users).Error; err != nil {
		log.Fatalf("查询用户失败: %v", err)
	}

	log.Printf("开始为 %d 个用户回填徽章...", len(users))
	for _, u := range users {
		status, err := badgeService.GetBadges(u.ID)
		if err != nil {
			log.Printf("用户 %d 回填失败: %v", u.ID, err)
			continue
		}
		if len(status.NewlyEarned) > 0 {
			log.Printf("用户 %d 补发 %d 枚徽章", u.ID, len(status.NewlyEarned))
		}
	}
	log.Println("完成！")
}
