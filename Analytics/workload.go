package Analytics

import "time"

// ComputeWorkloadScore converts one user's task rollup into a [0,100]
// load score: weighted priority load scaled onto 100, plus an overdue
// penalty, minus a progress bonus.
func ComputeWorkloadScore(s WorkloadSummary) float64 {
	if s.TaskCount == 0 {
		return 0
	}

	weighted := float64(s.CriticalTasks)*PriorityWeight(PriorityCritical) +
		float64(s.HighPriorityTasks)*PriorityWeight(PriorityHigh) +
		float64(s.MediumPriorityTasks)*PriorityWeight(PriorityMedium) +
		float64(s.LowPriorityTasks)*PriorityWeight(PriorityLow)

	score := weighted / float64(s.TaskCount) * workloadPriorityScale
	score += float64(s.OverdueTasks) / float64(s.TaskCount) * workloadOverduePenalty
	score -= s.AverageProgress / 100 * workloadProgressBonus

	return clamp(score, 0, 100)
}

// ComputeRiskScore estimates how likely this workload leads to missed
// deadlines. A base blend of overdue fraction, critical fraction,
// workload score and progress deficit is pushed through multiplicative
// amplifiers for compounding conditions, then held above floors for the
// conditions that should never read as calm.
func ComputeRiskScore(s WorkloadSummary, workloadScore float64) float64 {
	if s.TaskCount == 0 {
		return 0
	}

	total := float64(s.TaskCount)
	overdueRatio := float64(s.OverdueTasks) / total
	criticalRatio := float64(s.CriticalTasks) / total
	progressDeficit := (100 - s.AverageProgress) / 100

	risk := overdueRatio*riskOverdueWeight +
		criticalRatio*riskCriticalWeight +
		workloadScore/100*riskWorkloadWeight +
		progressDeficit*riskProgressWeight

	if s.OverdueTasks > 0 && s.CriticalTasks > 0 {
		risk *= riskAmpOverdueAndCritical
	}
	if workloadScore > WorkloadCriticalThreshold {
		risk *= riskAmpCriticalWorkload
	}
	if s.AverageProgress < 25 && s.TaskCount > 3 {
		risk *= riskAmpStalledProgress
	}
	if (float64(s.CriticalTasks)+float64(s.HighPriorityTasks))/total > 0.4 {
		risk *= riskAmpPriorityHeavy
	}

	if s.CriticalTasks > 0 && risk < riskFloorCritical {
		risk = riskFloorCritical
	}
	if s.OverdueTasks > 0 && risk < riskFloorOverdue {
		risk = riskFloorOverdue
	}
	if workloadScore > WorkloadHighThreshold && risk < riskFloorHighWorkload {
		risk = riskFloorHighWorkload
	}

	return clamp(risk, 0, 100)
}

// RiskLevel maps a risk score onto the four dashboard bands.
func RiskLevel(riskScore float64) string {
	switch {
	case riskScore >= RiskLevelCriticalThreshold:
		return PriorityCritical
	case riskScore >= RiskLevelHighThreshold:
		return PriorityHigh
	case riskScore >= RiskLevelMediumThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// EfficiencyRate scores one assignment against the schedule implied by
// its task's start and due dates. Starts from a neutral 70, rewards
// being ahead of the expected linear progress, penalizes running
// overdue, rewards completion.
func EfficiencyRate(a AssignmentRecord, dueDate time.Time, now time.Time) float64 {
	rate := efficiencyBase

	if a.StartedAt != nil {
		expected := expectedProgress(*a.StartedAt, dueDate, now)
		rate += (a.Progress - expected) * efficiencyProgressFactor
	}

	if now.After(dueDate) && a.Status != StatusCompleted {
		rate -= efficiencyOverduePenalty
	}
	if a.Status == StatusCompleted {
		rate += efficiencyCompletedBonus
	}

	return clamp(rate, 0, 100)
}

// expectedProgress is the linear schedule position in [0,100]. A zero or
// negative window counts as fully elapsed once now reaches the due date
// and not started before it, so the division is never taken.
func expectedProgress(start, due, now time.Time) float64 {
	totalDuration := due.Sub(start)
	if totalDuration <= 0 {
		if !now.Before(due) {
			return 100
		}
		return 0
	}
	elapsed := now.Sub(start)
	return clamp(float64(elapsed)/float64(totalDuration)*100, 0, 100)
}

// ComputeWorkload assembles the full scored record for one user.
// efficiencyRate is the caller-averaged per-assignment rate; pass 0 when
// the user has no assignments to score.
func ComputeWorkload(s WorkloadSummary, efficiencyRate float64) WorkloadData {
	workloadScore := ComputeWorkloadScore(s)
	riskScore := ComputeRiskScore(s, workloadScore)
	return WorkloadData{
		WorkloadSummary: s,
		WorkloadScore:   workloadScore,
		RiskScore:       riskScore,
		RiskLevel:       RiskLevel(riskScore),
		EfficiencyRate:  clamp(efficiencyRate, 0, 100),
	}
}
