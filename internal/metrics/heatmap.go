package metrics

import (
	"time"

	"dsa_tracker_backend/internal/model"
)

// HeatmapDay 热力图单元格：当天活动数和强度（value 求和后封顶为 4）
// swagger:model HeatmapDay
type HeatmapDay struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
	Value int    `json:"value"` // 0-4
}

// Heatmap 生成截至 now 的最近 days 天（含今天）的逐日分桶，无活动的天也会出现。
func Heatmap(activities []model.Activity, now time.Time, days int) []HeatmapDay {
	type bucket struct {
		count int
		value int
	}
	perDay := make(map[time.Time]bucket)
	for i := range activities {
		a := &activities[i]
		if !a.HasValidDate() {
			continue
		}
		day := a.Day()
		b := perDay[day]
		b.count++
		v := a.Value
		if v < 1 {
			v = 1
		}
		b.value += v
		perDay[day] = b
	}

	today := truncateDay(now)
	out := make([]HeatmapDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		b := perDay[day]
		value := b.value
		if value > 4 {
			value = 4
		}
		out = append(out, HeatmapDay{
			Date:  day.Format("2006-01-02"),
			Count: b.count,
			Value: value,
		})
	}
	return out
}
