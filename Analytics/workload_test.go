package Analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeWorkloadScoreBounds(t *testing.T) {
	tests := []struct {
		name    string
		summary WorkloadSummary
	}{
		{"empty", WorkloadSummary{}},
		{"all critical overdue no progress", WorkloadSummary{
			TaskCount: 10, CriticalTasks: 10, OverdueTasks: 10, AverageProgress: 0,
		}},
		{"all low full progress", WorkloadSummary{
			TaskCount: 10, LowPriorityTasks: 10, AverageProgress: 100,
		}},
		{"mixed", WorkloadSummary{
			TaskCount: 7, CriticalTasks: 2, HighPriorityTasks: 2, MediumPriorityTasks: 2,
			LowPriorityTasks: 1, OverdueTasks: 3, AverageProgress: 55,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ComputeWorkloadScore(tt.summary)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		})
	}
}

func TestComputeWorkloadScoreComposition(t *testing.T) {
	// 5 tasks: 2 critical, 1 high, 1 medium, 1 low, 1 overdue, 40% avg progress.
	s := WorkloadSummary{
		TaskCount: 5, CriticalTasks: 2, HighPriorityTasks: 1,
		MediumPriorityTasks: 1, LowPriorityTasks: 1,
		OverdueTasks: 1, AverageProgress: 40,
	}
	// (2*4+1*3+1*2+1*1)/5*20 + 1/5*25 - 40/100*15 = 56 + 5 - 6
	assert.InDelta(t, 55.0, ComputeWorkloadScore(s), 0.001)
}

func TestComputeRiskScoreZeroTasks(t *testing.T) {
	s := WorkloadSummary{}
	assert.Zero(t, ComputeRiskScore(s, ComputeWorkloadScore(s)))
}

func TestComputeRiskScoreBounds(t *testing.T) {
	summaries := []WorkloadSummary{
		{},
		{TaskCount: 1, LowPriorityTasks: 1, AverageProgress: 100},
		{TaskCount: 20, CriticalTasks: 20, OverdueTasks: 20, AverageProgress: 0},
		{TaskCount: 4, HighPriorityTasks: 4, OverdueTasks: 1, AverageProgress: 10},
	}
	for _, s := range summaries {
		score := ComputeRiskScore(s, ComputeWorkloadScore(s))
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestComputeRiskScoreFloors(t *testing.T) {
	t.Run("critical floor", func(t *testing.T) {
		// One low-pressure critical task, everything else calm.
		s := WorkloadSummary{
			TaskCount: 10, CriticalTasks: 1, LowPriorityTasks: 9, AverageProgress: 95,
		}
		score := ComputeRiskScore(s, ComputeWorkloadScore(s))
		assert.GreaterOrEqual(t, score, riskFloorCritical)
	})

	t.Run("overdue floor", func(t *testing.T) {
		s := WorkloadSummary{
			TaskCount: 10, LowPriorityTasks: 10, OverdueTasks: 1, AverageProgress: 95,
		}
		score := ComputeRiskScore(s, ComputeWorkloadScore(s))
		assert.GreaterOrEqual(t, score, riskFloorOverdue)
	})
}

func TestComputeRiskScoreWorkedScenario(t *testing.T) {
	s := WorkloadSummary{
		TaskCount: 5, CriticalTasks: 2, HighPriorityTasks: 1,
		MediumPriorityTasks: 1, LowPriorityTasks: 1,
		OverdueTasks: 1, AverageProgress: 40,
	}
	workloadScore := ComputeWorkloadScore(s)
	score := ComputeRiskScore(s, workloadScore)

	// base 36, x1.6 (overdue+critical), x1.35 (60% critical+high).
	assert.InDelta(t, 77.76, score, 0.001)
	assert.GreaterOrEqual(t, score, 50.0)
	assert.Equal(t, PriorityCritical, RiskLevel(score))
}

func TestRiskLevelBands(t *testing.T) {
	assert.Equal(t, PriorityLow, RiskLevel(0))
	assert.Equal(t, PriorityLow, RiskLevel(24.999))
	assert.Equal(t, PriorityMedium, RiskLevel(25))
	assert.Equal(t, PriorityMedium, RiskLevel(49.999))
	assert.Equal(t, PriorityHigh, RiskLevel(50))
	assert.Equal(t, PriorityHigh, RiskLevel(74.999))
	assert.Equal(t, PriorityCritical, RiskLevel(75))
	assert.Equal(t, PriorityCritical, RiskLevel(100))
}

func TestRiskLevelMonotonic(t *testing.T) {
	rank := map[string]int{
		PriorityLow: 0, PriorityMedium: 1, PriorityHigh: 2, PriorityCritical: 3,
	}
	previous := 0
	for score := 0.0; score <= 100; score += 0.5 {
		current := rank[RiskLevel(score)]
		assert.GreaterOrEqual(t, current, previous, "risk level must never drop as score rises")
		previous = current
	}
}

func TestEfficiencyRate(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	due := now.Add(48 * time.Hour)

	t.Run("no start date stays at base", func(t *testing.T) {
		a := AssignmentRecord{Status: StatusInProgress, Progress: 50}
		assert.InDelta(t, 70.0, EfficiencyRate(a, due, now), 0.001)
	})

	t.Run("completed bonus", func(t *testing.T) {
		a := AssignmentRecord{Status: StatusCompleted, Progress: 100}
		assert.InDelta(t, 85.0, EfficiencyRate(a, due, now), 0.001)
	})

	t.Run("overdue penalty", func(t *testing.T) {
		a := AssignmentRecord{Status: StatusInProgress, Progress: 50}
		assert.InDelta(t, 50.0, EfficiencyRate(a, now.Add(-time.Hour), now), 0.001)
	})

	t.Run("ahead of schedule", func(t *testing.T) {
		started := now.Add(-24 * time.Hour)
		// Halfway through a four-day window, 80% done: 30 points ahead.
		a := AssignmentRecord{Status: StatusInProgress, Progress: 80, StartedAt: &started}
		assert.InDelta(t, 85.0, EfficiencyRate(a, now.Add(24*time.Hour), now), 0.001)
	})

	t.Run("zero duration window fails closed", func(t *testing.T) {
		started := now
		a := AssignmentRecord{Status: StatusInProgress, Progress: 100, StartedAt: &started}
		// due == start, now past due: expected progress 100, overdue penalty applies.
		rate := EfficiencyRate(a, now.Add(-time.Minute), now)
		assert.GreaterOrEqual(t, rate, 0.0)
		assert.LessOrEqual(t, rate, 100.0)
	})

	t.Run("clamped to bounds", func(t *testing.T) {
		started := now.Add(-96 * time.Hour)
		behind := AssignmentRecord{Status: StatusInProgress, Progress: 0, StartedAt: &started}
		assert.Equal(t, 0.0, EfficiencyRate(behind, now.Add(-time.Hour), now))
	})
}

func TestComputeWorkloadAssemblesRecord(t *testing.T) {
	s := WorkloadSummary{
		UserID: 7, UserName: "dina",
		TaskCount: 5, CriticalTasks: 2, HighPriorityTasks: 1,
		MediumPriorityTasks: 1, LowPriorityTasks: 1,
		OverdueTasks: 1, AverageProgress: 40,
	}
	data := ComputeWorkload(s, 62.5)

	assert.Equal(t, s.UserID, data.UserID)
	assert.InDelta(t, 55.0, data.WorkloadScore, 0.001)
	assert.InDelta(t, 77.76, data.RiskScore, 0.001)
	assert.Equal(t, PriorityCritical, data.RiskLevel)
	assert.InDelta(t, 62.5, data.EfficiencyRate, 0.001)
}
