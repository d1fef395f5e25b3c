package Analytics

import (
	"math"
	"sort"
	"time"
)

// EffectiveStatus derives a task-level status from its assignments.
// A task is Completed only when every assignment is Completed; otherwise
// the most advanced in-flight status wins. No assignments means To Do.
func EffectiveStatus(assignments []AssignmentRecord) string {
	if len(assignments) == 0 {
		return StatusToDo
	}

	allCompleted := true
	best := StatusToDo
	for _, a := range assignments {
		if a.Status != StatusCompleted {
			allCompleted = false
			if statusRank(a.Status) > statusRank(best) {
				best = a.Status
			}
		}
	}
	if allCompleted {
		return StatusCompleted
	}
	return best
}

func statusRank(status string) int {
	switch status {
	case StatusUnderReview:
		return 2
	case StatusInProgress:
		return 1
	default:
		return 0
	}
}

// completionTime returns the moment the task finished: the latest
// completion timestamp across its assignments, nil if any is missing.
func completionTime(assignments []AssignmentRecord) *time.Time {
	var latest *time.Time
	for _, a := range assignments {
		if a.CompletedAt == nil {
			return nil
		}
		if latest == nil || a.CompletedAt.After(*latest) {
			latest = a.CompletedAt
		}
	}
	return latest
}

// ceilDays is the day difference from from to to, rounded up. Never
// negative.
func ceilDays(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

// ComputeTaskStats reduces a task list into dashboard aggregates in a
// single pass. now is the caller's clock snapshot; the function itself
// never reads the wall clock.
func ComputeTaskStats(tasks []TaskRecord, now time.Time) TaskStats {
	stats := TaskStats{
		ByPriority: map[string]int{
			PriorityCritical: 0,
			PriorityHigh:     0,
			PriorityMedium:   0,
			PriorityLow:      0,
		},
		ByStatus: map[string]int{
			StatusToDo:        0,
			StatusInProgress:  0,
			StatusUnderReview: 0,
			StatusCompleted:   0,
		},
	}

	overdueDays := map[string]*OverduePriorityEntry{}
	trendCounts := map[string]int{}
	totalCompletionDays := 0
	completedWithTime := 0

	for _, task := range tasks {
		stats.Total++
		stats.ByPriority[task.Priority]++

		status := EffectiveStatus(task.Assignments)
		stats.ByStatus[status]++

		switch status {
		case StatusCompleted:
			stats.Completed++
		case StatusInProgress:
			stats.InProgress++
		}

		if status != StatusCompleted && task.DueDate.Before(now) {
			stats.Overdue++
			entry, ok := overdueDays[task.Priority]
			if !ok {
				entry = &OverduePriorityEntry{Name: task.Priority}
				overdueDays[task.Priority] = entry
			}
			entry.Value++
			entry.Days += ceilDays(task.DueDate, now)
		}

		if status == StatusCompleted {
			completedAt := completionTime(task.Assignments)
			if completedAt == nil {
				continue
			}
			started := task.CreatedAt
			if task.StartDate != nil {
				started = *task.StartDate
			}
			totalCompletionDays += ceilDays(started, *completedAt)
			completedWithTime++

			trendCounts[completedAt.Format("2006-01")]++

			if completedAt.After(task.DueDate) {
				stats.LateDays = append(stats.LateDays, LateEntry{
					TaskID:   task.ID,
					Title:    task.Title,
					DaysLate: ceilDays(task.DueDate, *completedAt),
				})
			}
		}
	}

	if completedWithTime > 0 {
		stats.AverageCompletionTime = float64(totalCompletionDays) / float64(completedWithTime)
	}

	// Fixed priority order so charts render consistently.
	for _, priority := range []string{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow} {
		if entry, ok := overdueDays[priority]; ok {
			stats.OverdueByPriority = append(stats.OverdueByPriority, *entry)
		}
	}

	// Month buckets in chronological order.
	keys := make([]string, 0, len(trendCounts))
	for key := range trendCounts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		t, err := time.Parse("2006-01", key)
		if err != nil {
			continue
		}
		stats.CompletionTrend = append(stats.CompletionTrend, TrendPoint{
			Month: t.Format("Jan 2006"),
			Count: trendCounts[key],
		})
	}

	return stats
}
