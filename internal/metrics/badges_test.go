package metrics

import (
	"fmt"
	"testing"

	"dsa_tracker_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func badgeIDs(res BadgeResult) []string {
	ids := make([]string, 0, len(res.Earned))
	for _, b := range res.Earned {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestEvaluateBadgesEmpty(t *testing.T) {
	res := EvaluateBadges(nil, testNow)
	assert.Empty(t, res.Earned)
	assert.Equal(t, 0, res.TotalPoints)
}

func TestFirstProblemBadge(t *testing.T) {
	res := EvaluateBadges([]model.Activity{act(0, solved())}, testNow)
	assert.Contains(t, badgeIDs(res), "first_problem")
	assert.Equal(t, 10, res.TotalPoints)
}

func TestWeekWarriorBadge(t *testing.T) {
	var activities []model.Activity
	for i := 0; i < 7; i++ {
		activities = append(activities, act(i))
	}
	res := EvaluateBadges(activities, testNow)
	assert.Contains(t, badgeIDs(res), "week_warrior")

	// 6 天不够
	res = EvaluateBadges(activities[:6], testNow)
	assert.NotContains(t, badgeIDs(res), "week_warrior")
}

func TestHardCrusherBadge(t *testing.T) {
	var activities []model.Activity
	for i := 0; i < 10; i++ {
		activities = append(activities, act(i, solved(), withDifficulty(model.DifficultyHard)))
	}
	res := EvaluateBadges(activities, testNow)
	assert.Contains(t, badgeIDs(res), "hard_crusher")

	// 解出但非 Hard 不计数
	var easy []model.Activity
	for i := 0; i < 10; i++ {
		easy = append(easy, act(i, solved(), withDifficulty(model.DifficultyEasy)))
	}
	res = EvaluateBadges(easy, testNow)
	assert.NotContains(t, badgeIDs(res), "hard_crusher")
}

func TestAllRounderBadge(t *testing.T) {
	var activities []model.Activity
	for i := 0; i < 10; i++ {
		activities = append(activities, act(i, solved(), withCategory(fmt.Sprintf("Topic %d", i))))
	}
	res := EvaluateBadges(activities, testNow)
	assert.Contains(t, badgeIDs(res), "all_rounder")
}

func TestSpeedDemonBadge(t *testing.T) {
	var activities []model.Activity
	for i := 0; i < 5; i++ {
		activities = append(activities, act(0, solved()))
	}
	res := EvaluateBadges(activities, testNow)
	assert.Contains(t, badgeIDs(res), "speed_demon")

	// 分散在 5 天则不满足
	var spread []model.Activity
	for i := 0; i < 5; i++ {
		spread = append(spread, act(i, solved()))
	}
	res = EvaluateBadges(spread, testNow)
	assert.NotContains(t, badgeIDs(res), "speed_demon")
}

func TestMarathonRunnerBadge(t *testing.T) {
	a := act(0)
	a.Duration = 6000
	res := EvaluateBadges([]model.Activity{a}, testNow)
	assert.Contains(t, badgeIDs(res), "marathon_runner")
}

func TestBadgeMonotonicity(t *testing.T) {
	base := []model.Activity{act(0, solved())}
	before := badgeIDs(EvaluateBadges(base, testNow))

	superset := append([]model.Activity{}, base...)
	for i := 0; i < 20; i++ {
		superset = append(superset, act(i, solved()))
	}
	after := badgeIDs(EvaluateBadges(superset, testNow))

	// 计数/连续类谓词单调：超集不会丢失已获得的徽章
	for _, id := range before {
		assert.Contains(t, after, id)
	}
}

func TestBadgePointsSum(t *testing.T) {
	// 今天一口气解出 5 题：first_problem(10) + speed_demon(60)
	var activities []model.Activity
	for i := 0; i < 5; i++ {
		activities = append(activities, act(0, solved()))
	}
	res := EvaluateBadges(activities, testNow)
	assert.ElementsMatch(t, []string{"first_problem", "speed_demon"}, badgeIDs(res))
	assert.Equal(t, 70, res.TotalPoints)
}

func TestCatalogOrderPreserved(t *testing.T) {
	var activities []model.Activity
	for i := 0; i < 7; i++ {
		activities = append(activities, act(i, solved()))
	}
	res := EvaluateBadges(activities, testNow)
	// first_problem 在目录中先于 week_warrior
	ids := badgeIDs(res)
	assert.Equal(t, "first_problem", ids[0])
	assert.Contains(t, ids, "week_warrior")
}
