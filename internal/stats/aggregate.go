package stats

import (
	"math"
	"time"

	"tasktrack/internal/category"
	"tasktrack/internal/task"
	"tasktrack/pkg/dateutil"
)

// DailySeriesDays is the window of the effort chart: the current local day
// and the 29 days before it.
const DailySeriesDays = 30

func percentOf(part, whole float64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}

// ComputeOverview counts done tasks across the whole collection. Empty input
// yields an all-zero Overview.
func ComputeOverview(tasks []task.Task) Overview {
	o := Overview{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == task.StatusDone {
			o.Done++
		}
	}
	o.Percent = percentOf(float64(o.Done), float64(o.Total))
	return o
}

// ComputeCategoryProgress builds per-category done/total bars in the
// categories' own order. Categories with no tasks are omitted.
func ComputeCategoryProgress(tasks []task.Task, categories []category.Category) []CategoryProgress {
	progress := make([]CategoryProgress, 0, len(categories))
	for _, cat := range categories {
		p := CategoryProgress{CategoryID: cat.ID, Name: cat.Name}
		for _, t := range tasks {
			if t.CategoryID != cat.ID {
				continue
			}
			p.Total++
			if t.Status == task.StatusDone {
				p.Done++
			}
		}
		if p.Total == 0 {
			continue
		}
		p.Percent = percentOf(float64(p.Done), float64(p.Total))
		progress = append(progress, p)
	}
	return progress
}

// ComputeEffortSummary sums estimates and recorded effort over the incomplete
// tasks given to it. Working tasks contribute their live elapsed time on top
// of the stored hours, so the figure moves while a timer runs. Percent is
// capped at 100.
func ComputeEffortSummary(tasks []task.Task, now time.Time) EffortSummary {
	var s EffortSummary
	for _, t := range tasks {
		if t.Status == task.StatusDone {
			continue
		}
		s.TaskCount++
		if t.EstimatedHours != nil {
			s.EstimatedHours += *t.EstimatedHours
		}
		s.ActualSeconds += t.ActualHours * 3600
		s.ActualSeconds += t.ElapsedSeconds(now)
	}
	s.Percent = percentOf(s.ActualSeconds, s.EstimatedHours*3600)
	if s.Percent > 100 {
		s.Percent = 100
	}
	return s
}

// ComputeDailySeries buckets each task's recorded hours under the local
// calendar date the task was created, then lays the buckets out over the
// last DailySeriesDays days ending today. Every day appears in the result,
// effort or not.
func ComputeDailySeries(tasks []task.Task, now time.Time, cal *dateutil.Calendar) []DailyEntry {
	buckets := make(map[string]map[string]float64)
	for _, t := range tasks {
		if t.ActualHours <= 0 {
			continue
		}
		key := cal.DayKey(t.CreatedAt)
		if buckets[key] == nil {
			buckets[key] = make(map[string]float64)
		}
		buckets[key][t.CategoryName] += t.ActualHours
	}

	today := cal.StartOfDay(now)
	series := make([]DailyEntry, 0, DailySeriesDays)
	for i := DailySeriesDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		hours := buckets[cal.DayKey(day)]
		if hours == nil {
			hours = map[string]float64{}
		}
		series = append(series, DailyEntry{
			Date:  day,
			Label: cal.DayLabel(day),
			Hours: hours,
		})
	}
	return series
}
