package nav

import (
	"container/heap"
	"math"
)

// Cell is a grid coordinate on the navigation grid.
type Cell struct {
	X int
	Z int
}

type openItem struct {
	idx   int
	score float64
}

type openQueue []openItem

func (q openQueue) Len() int            { return len(q) }
func (q openQueue) Less(i, j int) bool  { return q[i].score < q[j].score }
func (q openQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *openQueue) Push(x interface{}) { *q = append(*q, x.(openItem)) }
func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

var neighborSteps = [8]struct {
	dx, dz int
	cost   float64
}{
	{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1},
	{1, 1, math.Sqrt2}, {1, -1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {-1, -1, math.Sqrt2},
}

// findPath runs A* on an 8-way grid. Diagonal moves may not cut blocked
// corners. maxNodes limits the number of expanded nodes.
func findPath(start, goal Cell, width, depth int, isBlocked func(x, z int) bool, maxNodes int) []Cell {
	if width <= 0 || depth <= 0 {
		return nil
	}
	inside := func(x, z int) bool { return x >= 0 && z >= 0 && x < width && z < depth }
	if !inside(start.X, start.Z) || !inside(goal.X, goal.Z) {
		return nil
	}
	if isBlocked(goal.X, goal.Z) {
		return nil
	}
	if start == goal {
		return []Cell{start}
	}

	startIdx := start.Z*width + start.X
	goalIdx := goal.Z*width + goal.X

	cameFrom := make(map[int]int, 128)
	gScore := map[int]float64{startIdx: 0}
	closed := make(map[int]bool, 128)
	open := &openQueue{{idx: startIdx, score: octile(start, goal)}}

	expanded := 0
	for open.Len() > 0 && expanded < maxNodes {
		current := heap.Pop(open).(openItem)
		if closed[current.idx] {
			continue
		}
		closed[current.idx] = true
		expanded++

		if current.idx == goalIdx {
			return reconstructPath(cameFrom, goalIdx, startIdx, width)
		}

		cx, cz := current.idx%width, current.idx/width
		for _, step := range neighborSteps {
			nx, nz := cx+step.dx, cz+step.dz
			if !inside(nx, nz) || isBlocked(nx, nz) {
				continue
			}
			if step.dx != 0 && step.dz != 0 && (isBlocked(cx+step.dx, cz) || isBlocked(cx, cz+step.dz)) {
				continue
			}
			nIdx := nz*width + nx
			if closed[nIdx] {
				continue
			}
			tentative := gScore[current.idx] + step.cost
			if prev, seen := gScore[nIdx]; seen && tentative >= prev {
				continue
			}
			cameFrom[nIdx] = current.idx
			gScore[nIdx] = tentative
			heap.Push(open, openItem{idx: nIdx, score: tentative + octile(Cell{nx, nz}, goal)})
		}
	}

	return nil
}

func reconstructPath(cameFrom map[int]int, currentIdx, startIdx, width int) []Cell {
	path := make([]Cell, 0, 32)
	for {
		path = append(path, Cell{X: currentIdx % width, Z: currentIdx / width})
		if currentIdx == startIdx {
			break
		}
		prev, ok := cameFrom[currentIdx]
		if !ok {
			return nil
		}
		currentIdx = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func octile(a, b Cell) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dz := math.Abs(float64(a.Z - b.Z))
	return math.Max(dx, dz) + (math.Sqrt2-1)*math.Min(dx, dz)
}
