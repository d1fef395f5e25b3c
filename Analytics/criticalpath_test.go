package Analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainTask(id uint, priority string) TaskRecord {
	return TaskRecord{
		ID:       id,
		Priority: priority,
		DueDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCriticalPathLinearChain(t *testing.T) {
	tasks := []TaskRecord{
		chainTask(1, PriorityHigh),
		chainTask(2, PriorityHigh),
		chainTask(3, PriorityHigh),
	}
	edges := []DependencyEdge{
		{TaskID: 2, DependsOn: 1, Type: DependencyBlocks},
		{TaskID: 3, DependsOn: 2, Type: DependencyBlocks},
	}

	path, err := CriticalPath(tasks, edges)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, path)
}

func TestCriticalPathPrefersHeavierBranch(t *testing.T) {
	// 1 fans out to a Low branch (2) and a Critical branch (3).
	tasks := []TaskRecord{
		chainTask(1, PriorityMedium),
		chainTask(2, PriorityLow),
		chainTask(3, PriorityCritical),
	}
	edges := []DependencyEdge{
		{TaskID: 2, DependsOn: 1, Type: DependencyBlocks},
		{TaskID: 3, DependsOn: 1, Type: DependencyRequires},
	}

	path, err := CriticalPath(tasks, edges)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 3}, path)
}

func TestCriticalPathIgnoresRelatedEdges(t *testing.T) {
	tasks := []TaskRecord{
		chainTask(1, PriorityHigh),
		chainTask(2, PriorityHigh),
	}
	edges := []DependencyEdge{
		{TaskID: 2, DependsOn: 1, Type: DependencyRelated},
	}

	path, err := CriticalPath(tasks, edges)
	require.NoError(t, err)
	// The related edge carries no weight, so no chain forms.
	assert.Len(t, path, 1)
}

func TestCriticalPathCompletedTargetCarriesNoWeight(t *testing.T) {
	completedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	completed := chainTask(2, PriorityCritical)
	completed.Assignments = []AssignmentRecord{
		{Status: StatusCompleted, Progress: 100, CompletedAt: &completedAt},
	}

	tasks := []TaskRecord{
		chainTask(1, PriorityHigh),
		completed,
		chainTask(3, PriorityLow),
	}
	edges := []DependencyEdge{
		{TaskID: 2, DependsOn: 1, Type: DependencyBlocks},
		{TaskID: 3, DependsOn: 1, Type: DependencyBlocks},
	}

	path, err := CriticalPath(tasks, edges)
	require.NoError(t, err)
	// The finished Critical task weighs zero; the live Low task wins.
	assert.Equal(t, []uint{1, 3}, path)
}

func TestCriticalPathCycleDetected(t *testing.T) {
	tasks := []TaskRecord{
		chainTask(1, PriorityHigh),
		chainTask(2, PriorityHigh),
		chainTask(3, PriorityHigh),
	}
	edges := []DependencyEdge{
		{TaskID: 2, DependsOn: 1, Type: DependencyBlocks},
		{TaskID: 1, DependsOn: 2, Type: DependencyBlocks},
	}

	path, err := CriticalPath(tasks, edges)
	assert.ErrorIs(t, err, ErrCycleDetected)
	assert.Nil(t, path)
}

func TestCriticalPathEmptyInput(t *testing.T) {
	path, err := CriticalPath(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestCriticalPathIgnoresUnknownEndpoints(t *testing.T) {
	tasks := []TaskRecord{chainTask(1, PriorityHigh)}
	edges := []DependencyEdge{
		{TaskID: 1, DependsOn: 99, Type: DependencyBlocks},
		{TaskID: 98, DependsOn: 1, Type: DependencyBlocks},
	}

	path, err := CriticalPath(tasks, edges)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, path)
}

func TestCriticalPathDeterministicOnTies(t *testing.T) {
	tasks := []TaskRecord{
		chainTask(4, PriorityMedium),
		chainTask(2, PriorityMedium),
		chainTask(3, PriorityMedium),
	}
	edges := []DependencyEdge{
		{TaskID: 3, DependsOn: 4, Type: DependencyBlocks},
		{TaskID: 3, DependsOn: 2, Type: DependencyBlocks},
	}

	first, err := CriticalPath(tasks, edges)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := CriticalPath(tasks, edges)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
