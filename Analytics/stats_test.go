package Analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statsNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func ptrTime(t time.Time) *time.Time { return &t }

func completedAssignment(completedAt time.Time) AssignmentRecord {
	started := completedAt.Add(-72 * time.Hour)
	return AssignmentRecord{
		Status:      StatusCompleted,
		Progress:    100,
		StartedAt:   &started,
		CompletedAt: &completedAt,
	}
}

func TestEffectiveStatus(t *testing.T) {
	tests := []struct {
		name        string
		assignments []AssignmentRecord
		want        string
	}{
		{"no assignments", nil, StatusToDo},
		{"single to do", []AssignmentRecord{{Status: StatusToDo}}, StatusToDo},
		{"single completed", []AssignmentRecord{{Status: StatusCompleted}}, StatusCompleted},
		{
			"all completed",
			[]AssignmentRecord{{Status: StatusCompleted}, {Status: StatusCompleted}},
			StatusCompleted,
		},
		{
			"one assignee still working",
			[]AssignmentRecord{{Status: StatusCompleted}, {Status: StatusInProgress}},
			StatusInProgress,
		},
		{
			"review outranks in progress",
			[]AssignmentRecord{{Status: StatusInProgress}, {Status: StatusUnderReview}},
			StatusUnderReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveStatus(tt.assignments))
		})
	}
}

func TestComputeTaskStatsPartition(t *testing.T) {
	tasks := []TaskRecord{
		{ID: 1, Priority: PriorityCritical, DueDate: statsNow.Add(48 * time.Hour), CreatedAt: statsNow.Add(-96 * time.Hour)},
		{ID: 2, Priority: PriorityHigh, DueDate: statsNow.Add(48 * time.Hour), CreatedAt: statsNow.Add(-96 * time.Hour),
			Assignments: []AssignmentRecord{{Status: StatusInProgress, Progress: 40}}},
		{ID: 3, Priority: PriorityMedium, DueDate: statsNow.Add(48 * time.Hour), CreatedAt: statsNow.Add(-96 * time.Hour),
			Assignments: []AssignmentRecord{{Status: StatusUnderReview, Progress: 90}}},
		{ID: 4, Priority: PriorityLow, DueDate: statsNow.Add(48 * time.Hour), CreatedAt: statsNow.Add(-96 * time.Hour),
			Assignments: []AssignmentRecord{completedAssignment(statsNow.Add(-24 * time.Hour))}},
	}

	stats := ComputeTaskStats(tasks, statsNow)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.InProgress)

	statusSum := 0
	for _, count := range stats.ByStatus {
		statusSum += count
	}
	assert.Equal(t, stats.Total, statusSum, "every task lands in exactly one status bucket")

	prioritySum := 0
	for _, count := range stats.ByPriority {
		prioritySum += count
	}
	assert.Equal(t, stats.Total, prioritySum, "every task lands in exactly one priority bucket")
}

func TestComputeTaskStatsOverdueCritical(t *testing.T) {
	yesterday := statsNow.Add(-24 * time.Hour)
	tasks := []TaskRecord{
		{ID: 1, Priority: PriorityCritical, DueDate: yesterday, CreatedAt: statsNow.Add(-96 * time.Hour),
			Assignments: []AssignmentRecord{{Status: StatusInProgress, Progress: 50}}},
	}

	stats := ComputeTaskStats(tasks, statsNow)

	assert.Equal(t, 1, stats.Overdue)
	require.Len(t, stats.OverdueByPriority, 1)
	assert.Equal(t, OverduePriorityEntry{Name: PriorityCritical, Value: 1, Days: 1}, stats.OverdueByPriority[0])
}

func TestComputeTaskStatsCompletedTaskNotOverdue(t *testing.T) {
	tasks := []TaskRecord{
		{ID: 1, Priority: PriorityHigh, DueDate: statsNow.Add(-48 * time.Hour), CreatedAt: statsNow.Add(-96 * time.Hour),
			Assignments: []AssignmentRecord{completedAssignment(statsNow.Add(-24 * time.Hour))}},
	}

	stats := ComputeTaskStats(tasks, statsNow)

	assert.Equal(t, 0, stats.Overdue)
	assert.Empty(t, stats.OverdueByPriority)
	// Finished a day past a two-day-old deadline.
	require.Len(t, stats.LateDays, 1)
	assert.Equal(t, 1, stats.LateDays[0].DaysLate)
}

func TestComputeTaskStatsAverageCompletionTime(t *testing.T) {
	t.Run("no completions", func(t *testing.T) {
		tasks := []TaskRecord{
			{ID: 1, Priority: PriorityLow, DueDate: statsNow.Add(24 * time.Hour), CreatedAt: statsNow.Add(-24 * time.Hour)},
		}
		stats := ComputeTaskStats(tasks, statsNow)
		assert.Zero(t, stats.AverageCompletionTime)
	})

	t.Run("start date preferred over created at", func(t *testing.T) {
		completedAt := statsNow
		tasks := []TaskRecord{
			{
				ID:        1,
				Priority:  PriorityMedium,
				DueDate:   statsNow.Add(24 * time.Hour),
				CreatedAt: statsNow.Add(-240 * time.Hour),
				StartDate: ptrTime(statsNow.Add(-48 * time.Hour)),
				Assignments: []AssignmentRecord{
					{Status: StatusCompleted, Progress: 100, CompletedAt: &completedAt},
				},
			},
		}
		stats := ComputeTaskStats(tasks, statsNow)
		// 48h from start date, not the 240h since creation.
		assert.InDelta(t, 2, stats.AverageCompletionTime, 0.001)
	})

	t.Run("completed without timestamp is skipped", func(t *testing.T) {
		tasks := []TaskRecord{
			{ID: 1, Priority: PriorityMedium, DueDate: statsNow.Add(24 * time.Hour), CreatedAt: statsNow.Add(-24 * time.Hour),
				Assignments: []AssignmentRecord{{Status: StatusCompleted, Progress: 100}}},
		}
		stats := ComputeTaskStats(tasks, statsNow)
		assert.Equal(t, 1, stats.Completed)
		assert.Zero(t, stats.AverageCompletionTime)
		assert.Empty(t, stats.CompletionTrend)
	})
}

func TestComputeTaskStatsCompletionTrend(t *testing.T) {
	tasks := []TaskRecord{
		{ID: 1, Priority: PriorityLow, DueDate: statsNow, CreatedAt: statsNow.Add(-96 * time.Hour),
			Assignments: []AssignmentRecord{completedAssignment(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))}},
		{ID: 2, Priority: PriorityLow, DueDate: statsNow, CreatedAt: statsNow.Add(-96 * time.Hour),
			Assignments: []AssignmentRecord{completedAssignment(time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC))}},
		{ID: 3, Priority: PriorityLow, DueDate: statsNow, CreatedAt: statsNow.Add(-96 * time.Hour),
			Assignments: []AssignmentRecord{completedAssignment(time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC))}},
	}

	stats := ComputeTaskStats(tasks, statsNow)

	require.Len(t, stats.CompletionTrend, 2)
	assert.Equal(t, TrendPoint{Month: "Jan 2026", Count: 1}, stats.CompletionTrend[0])
	assert.Equal(t, TrendPoint{Month: "Feb 2026", Count: 2}, stats.CompletionTrend[1])
}

func TestComputeTaskStatsEmpty(t *testing.T) {
	stats := ComputeTaskStats(nil, statsNow)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Overdue)
	assert.Zero(t, stats.AverageCompletionTime)
}
