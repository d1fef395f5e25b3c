package Controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"TaskFlow/Analytics"
	"TaskFlow/Models"
)

var distNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func userWithID(id uint, name string) Models.User {
	return Models.User{Model: gorm.Model{ID: id}, Name: name}
}

func TestBuildWorkloadDistributionRollup(t *testing.T) {
	users := []Models.User{
		userWithID(1, "Amira"),
		userWithID(2, "Omar"),
	}

	records := []Analytics.TaskRecord{
		{
			ID: 10, Priority: Models.PriorityCritical,
			DueDate: distNow.AddDate(0, 0, -1), // overdue
			Assignments: []Analytics.AssignmentRecord{
				{AssignedTo: 1, Status: Models.StatusInProgress, Progress: 30},
			},
		},
		{
			ID: 11, Priority: Models.PriorityLow,
			DueDate: distNow.AddDate(0, 0, 3), // inside the 7-day window
			Assignments: []Analytics.AssignmentRecord{
				{AssignedTo: 1, Status: Models.StatusToDo, Progress: 0},
			},
		},
		{
			ID: 12, Priority: Models.PriorityMedium,
			DueDate: distNow.AddDate(0, 0, 30),
			Assignments: []Analytics.AssignmentRecord{
				{AssignedTo: 2, Status: Models.StatusCompleted, Progress: 100,
					CompletedAt: timePtr(distNow.AddDate(0, 0, -2))},
			},
		},
	}

	distribution := BuildWorkloadDistribution(records, users, distNow)
	assert.Len(t, distribution, 2)

	byUser := make(map[uint]Analytics.WorkloadData, len(distribution))
	for _, d := range distribution {
		byUser[d.UserID] = d
	}

	amira := byUser[1]
	assert.Equal(t, 2, amira.TaskCount)
	assert.Equal(t, 1, amira.CriticalTasks)
	assert.Equal(t, 1, amira.LowPriorityTasks)
	assert.Equal(t, 1, amira.OverdueTasks)
	assert.Equal(t, 1, amira.UpcomingDeadlines)
	assert.Equal(t, 0, amira.CompletedTasks)
	assert.InDelta(t, 15.0, amira.AverageProgress, 0.001)
	// Critical + overdue force the risk floor
	assert.GreaterOrEqual(t, amira.RiskScore, 50.0)

	omar := byUser[2]
	assert.Equal(t, 1, omar.TaskCount)
	assert.Equal(t, 1, omar.CompletedTasks)
	assert.Zero(t, omar.OverdueTasks)
	assert.InDelta(t, 100.0, omar.AverageProgress, 0.001)
}

func TestBuildWorkloadDistributionIgnoresUnknownAssignees(t *testing.T) {
	users := []Models.User{userWithID(1, "Amira")}
	records := []Analytics.TaskRecord{
		{
			ID: 20, Priority: Models.PriorityHigh,
			DueDate: distNow.AddDate(0, 0, 5),
			Assignments: []Analytics.AssignmentRecord{
				{AssignedTo: 99, Status: Models.StatusToDo}, // not in users
			},
		},
	}

	distribution := BuildWorkloadDistribution(records, users, distNow)
	assert.Len(t, distribution, 1)
	assert.Zero(t, distribution[0].TaskCount)
	assert.Zero(t, distribution[0].WorkloadScore)
}

func TestBuildWorkloadDistributionNoTasks(t *testing.T) {
	users := []Models.User{userWithID(1, "Amira")}

	distribution := BuildWorkloadDistribution(nil, users, distNow)
	assert.Len(t, distribution, 1)
	assert.Zero(t, distribution[0].RiskScore)
	assert.Equal(t, Models.PriorityLow, distribution[0].RiskLevel)
	assert.Zero(t, distribution[0].EfficiencyRate)
}

func TestTaskCompletedAt(t *testing.T) {
	earlier := distNow.AddDate(0, 0, -5)
	later := distNow.AddDate(0, 0, -1)

	tests := []struct {
		name string
		task Models.Task
		want *time.Time
	}{
		{"no assignments", Models.Task{}, nil},
		{"partially completed", Models.Task{Assignments: []Models.TaskAssignment{
			{Status: Models.StatusCompleted, CompletedAt: &earlier},
			{Status: Models.StatusInProgress},
		}}, nil},
		{"all completed uses latest timestamp", Models.Task{Assignments: []Models.TaskAssignment{
			{Status: Models.StatusCompleted, CompletedAt: &later},
			{Status: Models.StatusCompleted, CompletedAt: &earlier},
		}}, &later},
		{"completed but timestamp missing", Models.Task{Assignments: []Models.TaskAssignment{
			{Status: Models.StatusCompleted, CompletedAt: &earlier},
			{Status: Models.StatusCompleted},
		}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taskCompletedAt(tt.task)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
			assert.True(t, got.Equal(*tt.want))
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
