package Analytics

// Priority and status labels, matching the values stored on tasks and
// assignments.
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"

	StatusToDo        = "To Do"
	StatusInProgress  = "In Progress"
	StatusUnderReview = "Under Review"
	StatusCompleted   = "Completed"
)

// PriorityWeight maps a priority label to its load weight. Unknown
// priorities weigh the same as Low.
func PriorityWeight(priority string) float64 {
	switch priority {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// Workload score composition.
const (
	workloadPriorityScale  = 20.0
	workloadOverduePenalty = 25.0
	workloadProgressBonus  = 15.0
)

// Workload thresholds that feed the risk amplifiers.
const (
	WorkloadHighThreshold     = 85.0
	WorkloadCriticalThreshold = 95.0
)

// Base risk blend weights. The four terms are fractions in [0,1] scaled
// onto a 100-point base before amplification.
const (
	riskOverdueWeight  = 45.0
	riskCriticalWeight = 25.0
	riskWorkloadWeight = 20.0
	riskProgressWeight = 10.0
)

// Risk amplifiers and floors.
const (
	riskAmpOverdueAndCritical = 1.6
	riskAmpCriticalWorkload   = 1.5
	riskAmpStalledProgress    = 1.4
	riskAmpPriorityHeavy      = 1.35

	riskFloorCritical     = 50.0
	riskFloorOverdue      = 45.0
	riskFloorHighWorkload = 40.0
)

// Risk level band boundaries.
const (
	RiskLevelCriticalThreshold = 75.0
	RiskLevelHighThreshold     = 50.0
	RiskLevelMediumThreshold   = 25.0
)

// Efficiency rate composition.
const (
	efficiencyBase            = 70.0
	efficiencyProgressFactor  = 0.5
	efficiencyOverduePenalty  = 20.0
	efficiencyCompletedBonus  = 15.0
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
