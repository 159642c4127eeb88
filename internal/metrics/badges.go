package metrics

import (
	"time"

	"dsa_tracker_backend/internal/model"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Badge 徽章定义。Condition 是对全量活动记录的纯谓词。
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Rarity      Rarity `json:"rarity"`
	Reward      string `json:"reward"`
	Points      int    `json:"points"`

	Condition func(activities []model.Activity, now time.Time) bool `json:"-"`
}

// Catalog 固定徽章目录，按展示顺序排列。
// 徽章判定沿用严格的"今天"锚点口径，与等级判定保持一致。
var Catalog = []Badge{
	{
		ID: "first_problem", Name: "First Steps", Icon: "🎯",
		Description: "Solve your first DSA problem",
		Rarity:      RarityCommon, Reward: "Beginner Badge", Points: 10,
		Condition: func(activities []model.Activity, now time.Time) bool {
			return countSolved(activities) >= 1
		},
	},
	{
		ID: "week_warrior", Name: "Week Warrior", Icon: "🔥",
		Description: "Maintain a 7-day streak",
		Rarity:      RarityRare, Reward: "Streak Master Badge", Points: 50,
		Condition: func(activities []model.Activity, now time.Time) bool {
			return Streak(activities, now, StreakStrict) >= 7
		},
	},
	{
		ID: "century_club", Name: "Century Club", Icon: "💯",
		Description: "Solve 100 problems",
		Rarity:      RarityEpic, Reward: "Elite Solver Badge", Points: 200,
		Condition: func(activities []model.Activity, now time.Time) bool {
			return countSolved(activities) >= 100
		},
	},
	{
		ID: "hard_crusher", Name: "Hard Crusher", Icon: "💪",
		Description: "Solve 10 Hard problems",
		Rarity:      RarityEpic, Reward: "Expert Level Badge", Points: 100,
		Condition: func(activities []model.Activity, now time.Time) bool {
			n := 0
			for i := range activities {
				a := &activities[i]
				if a.Solved() && a.Difficulty != nil && *a.Difficulty == model.DifficultyHard {
					n++
				}
			}
			return n >= 10
		},
	},
	{
		ID: "all_rounder", Name: "All Rounder", Icon: "🌈",
		Description: "Solve problems in 10+ categories",
		Rarity:      RarityRare, Reward: "Versatility Badge", Points: 75,
		Condition: func(activities []model.Activity, now time.Time) bool {
			cats := make(map[string]struct{})
			for i := range activities {
				if activities[i].Solved() {
					cats[activities[i].Category] = struct{}{}
				}
			}
			return len(cats) >= 10
		},
	},
	{
		ID: "speed_demon", Name: "Speed Demon", Icon: "⚡",
		Description: "Solve 5 problems in one day",
		Rarity:      RarityRare, Reward: "Lightning Badge", Points: 60,
		Condition: func(activities []model.Activity, now time.Time) bool {
			return maxSolvedInOneDay(activities) >= 5
		},
	},
	{
		ID: "legendary_coder", Name: "Legendary Coder", Icon: "👑",
		Description: "Achieve 30-day streak with 500+ problems",
		Rarity:      RarityLegendary, Reward: "Hall of Fame Entry", Points: 1000,
		Condition: func(activities []model.Activity, now time.Time) bool {
			return Streak(activities, now, StreakStrict) >= 30 && countSolved(activities) >= 500
		},
	},
	{
		ID: "marathon_runner", Name: "Marathon Runner", Icon: "🏃",
		Description: "Spend 100+ hours coding",
		Rarity:      RarityEpic, Reward: "Endurance Badge", Points: 150,
		Condition: func(activities []model.Activity, now time.Time) bool {
			total := 0
			for i := range activities {
				total += activities[i].Duration
			}
			return total >= 6000
		},
	},
}

// BadgeResult 徽章评估结果
// swagger:model BadgeResult
type BadgeResult struct {
	Earned      []Badge `json:"earned"`
	TotalPoints int     `json:"totalPoints"`
}

// EvaluateBadges 按目录顺序独立评估每个谓词，无短路，无增量状态。
func EvaluateBadges(activities []model.Activity, now time.Time) BadgeResult {
	res := BadgeResult{Earned: []Badge{}}
	for _, b := range Catalog {
		if b.Condition(activities, now) {
			res.Earned = append(res.Earned, b)
			res.TotalPoints += b.Points
		}
	}
	return res
}

func countSolved(activities []model.Activity) int {
	n := 0
	for i := range activities {
		if activities[i].Solved() {
			n++
		}
	}
	return n
}
