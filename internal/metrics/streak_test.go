package metrics

import (
	"testing"
	"time"

	"dsa_tracker_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)

func act(daysAgo int, opts ...func(*model.Activity)) model.Activity {
	a := model.Activity{
		Date:     testNow.AddDate(0, 0, -daysAgo),
		Category: "Arrays & Strings",
		Duration: 30,
		Value:    2,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func solved() func(*model.Activity) {
	t := true
	return func(a *model.Activity) { a.ProblemSolved = &t }
}

func withCategory(c string) func(*model.Activity) {
	return func(a *model.Activity) { a.Category = c }
}

func withDifficulty(d model.Difficulty) func(*model.Activity) {
	return func(a *model.Activity) { a.Difficulty = &d }
}

func withPlatform(p string) func(*model.Activity) {
	return func(a *model.Activity) { a.Platform = &p }
}

func withTopic(t string) func(*model.Activity) {
	return func(a *model.Activity) { a.DSATopic = &t }
}

func TestStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, Streak(nil, testNow, StreakStrict))
	assert.Equal(t, 0, Streak([]model.Activity{}, testNow, StreakLenient))
}

func TestStreakSingleToday(t *testing.T) {
	activities := []model.Activity{act(0)}
	assert.Equal(t, 1, Streak(activities, testNow, StreakStrict))
	assert.Equal(t, 1, Streak(activities, testNow, StreakLenient))
}

func TestStreakConsecutiveDays(t *testing.T) {
	activities := []model.Activity{act(0), act(1), act(2)}
	assert.Equal(t, 3, Streak(activities, testNow, StreakStrict))
}

func TestStreakGapBreaks(t *testing.T) {
	activities := []model.Activity{act(0), act(2)}
	assert.Equal(t, 1, Streak(activities, testNow, StreakStrict))
}

func TestStreakSameDayCountsOnce(t *testing.T) {
	activities := []model.Activity{act(0), act(0)}
	assert.Equal(t, 1, Streak(activities, testNow, StreakStrict))
}

func TestStreakUnorderedInput(t *testing.T) {
	activities := []model.Activity{act(2), act(0), act(1)}
	assert.Equal(t, 3, Streak(activities, testNow, StreakStrict))
}

func TestStreakAnchorPolicy(t *testing.T) {
	// 昨天开始的 3 天连续，今天还没打卡
	activities := []model.Activity{act(1), act(2), act(3)}

	assert.Equal(t, 0, Streak(activities, testNow, StreakStrict))
	assert.Equal(t, 3, Streak(activities, testNow, StreakLenient))

	// 前天中断，两种口径都为 0
	broken := []model.Activity{act(2), act(3)}
	assert.Equal(t, 0, Streak(broken, testNow, StreakStrict))
	assert.Equal(t, 0, Streak(broken, testNow, StreakLenient))
}

func TestStreakIgnoresInvalidDates(t *testing.T) {
	invalid := model.Activity{Category: "Graphs", Duration: 10, Value: 1}
	activities := []model.Activity{act(0), act(1), invalid}
	assert.Equal(t, 2, Streak(activities, testNow, StreakStrict))
}

func TestStreakTimeOfDayIrrelevant(t *testing.T) {
	early := act(0)
	early.Date = time.Date(2026, 8, 31, 0, 5, 0, 0, time.UTC)
	late := act(1)
	late.Date = time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 2, Streak([]model.Activity{early, late}, testNow, StreakStrict))
}
