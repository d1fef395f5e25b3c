package Analytics

import (
	"errors"
	"sort"
)

// ErrCycleDetected is returned when the blocks/requires subgraph is not
// acyclic. Callers must surface it instead of rendering a partial path.
var ErrCycleDetected = errors.New("cyclic dependency detected")

// CriticalPath finds the highest-cumulative-weight chain through the
// blocks/requires dependency subgraph and returns it root-first.
//
// The weight of stepping onto a task is its priority weight, zeroed once
// the task is effectively Completed, so finished downstream work stops
// pulling the path toward itself. Longest path over a DAG via Kahn's
// topological order; queues are kept sorted so equal-weight graphs
// always yield the same path.
func CriticalPath(tasks []TaskRecord, edges []DependencyEdge) ([]uint, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	taskByID := make(map[uint]TaskRecord, len(tasks))
	for _, t := range tasks {
		taskByID[t.ID] = t
	}

	adjacency := make(map[uint][]uint)
	inDegree := make(map[uint]int, len(tasks))
	for id := range taskByID {
		inDegree[id] = 0
	}

	for _, edge := range edges {
		if edge.Type != DependencyBlocks && edge.Type != DependencyRequires {
			continue
		}
		// Edges referencing unknown tasks are ignored.
		if _, ok := taskByID[edge.DependsOn]; !ok {
			continue
		}
		if _, ok := taskByID[edge.TaskID]; !ok {
			continue
		}
		adjacency[edge.DependsOn] = append(adjacency[edge.DependsOn], edge.TaskID)
		inDegree[edge.TaskID]++
	}

	var queue []uint
	for id, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, id)
		}
	}
	sortIDs(queue)

	distance := make(map[uint]float64, len(tasks))
	predecessor := make(map[uint]uint)
	processed := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		processed++

		var ready []uint
		for _, next := range adjacency[current] {
			weight := stepWeight(taskByID[next])
			if distance[current]+weight > distance[next] {
				distance[next] = distance[current] + weight
				predecessor[next] = current
			}
			inDegree[next]--
			if inDegree[next] == 0 {
				ready = append(ready, next)
			}
		}
		sortIDs(ready)
		queue = append(queue, ready...)
	}

	if processed != len(taskByID) {
		return nil, ErrCycleDetected
	}

	// Path end: the node with the greatest accumulated weight, smallest
	// ID on ties.
	var end uint
	best := -1.0
	endIDs := make([]uint, 0, len(distance))
	for id := range taskByID {
		endIDs = append(endIDs, id)
	}
	sortIDs(endIDs)
	for _, id := range endIDs {
		if distance[id] > best {
			best = distance[id]
			end = id
		}
	}

	var path []uint
	for current := end; ; {
		path = append(path, current)
		prev, ok := predecessor[current]
		if !ok {
			break
		}
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// stepWeight is the traversal weight of entering a task.
func stepWeight(task TaskRecord) float64 {
	if EffectiveStatus(task.Assignments) == StatusCompleted {
		return 0
	}
	return PriorityWeight(task.Priority)
}

func sortIDs(ids []uint) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// Dependency type labels shared with the storage layer.
const (
	DependencyBlocks   = "blocks"
	DependencyRequires = "requires"
	DependencyRelated  = "related"
)
