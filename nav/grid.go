package nav

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
)

const (
	defaultMaxNodes = 4096
	cellEdgeInset   = 1e-6
)

var logger = common.NewLogger("nav")

// Agent is a navigation agent moving over the grid.
type Agent struct {
	Entity   combat.EntityID
	Position mgl64.Vec3
	Speed    float64

	onSurface   bool
	path        []mgl64.Vec3
	destination mgl64.Vec3
	hasDest     bool
}

// Grid is a flat navigation surface divided into square cells. Blocked
// cells are not walkable. It implements combat.Navigator.
type Grid struct {
	Origin   mgl64.Vec3
	CellSize float64
	Width    int
	Depth    int
	MaxNodes int

	blocked []bool
	agents  map[combat.EntityID]*Agent
}

// NewGrid creates a fully walkable grid whose minimum corner is origin.
// origin.Y is the floor height.
func NewGrid(origin mgl64.Vec3, cellSize float64, width, depth int) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	if width < 0 {
		width = 0
	}
	if depth < 0 {
		depth = 0
	}
	return &Grid{
		Origin:   origin,
		CellSize: cellSize,
		Width:    width,
		Depth:    depth,
		MaxNodes: defaultMaxNodes,
		blocked:  make([]bool, width*depth),
		agents:   make(map[combat.EntityID]*Agent),
	}
}

// SetBlocked marks a single cell.
func (g *Grid) SetBlocked(x, z int, blocked bool) {
	if !g.inside(x, z) {
		return
	}
	g.blocked[z*g.Width+x] = blocked
}

// Blocked reports whether a cell is blocked. Cells outside the grid count
// as blocked.
func (g *Grid) Blocked(x, z int) bool {
	if !g.inside(x, z) {
		return true
	}
	return g.blocked[z*g.Width+x]
}

// BlockBox marks every cell overlapped by the XZ footprint of min..max.
func (g *Grid) BlockBox(min, max mgl64.Vec3) {
	lo := g.CellAt(min)
	hi := g.CellAt(max)
	// a box ending exactly on a cell edge does not claim the next cell
	if fx := (max.X() - g.Origin.X()) / g.CellSize; fx == math.Floor(fx) {
		hi.X--
	}
	if fz := (max.Z() - g.Origin.Z()) / g.CellSize; fz == math.Floor(fz) {
		hi.Z--
	}
	for z := lo.Z; z <= hi.Z; z++ {
		for x := lo.X; x <= hi.X; x++ {
			g.SetBlocked(x, z, true)
		}
	}
}

// CellAt returns the cell containing pos. It may lie outside the grid.
func (g *Grid) CellAt(pos mgl64.Vec3) Cell {
	return Cell{
		X: int(math.Floor((pos.X() - g.Origin.X()) / g.CellSize)),
		Z: int(math.Floor((pos.Z() - g.Origin.Z()) / g.CellSize)),
	}
}

// CellCenter returns the floor point at the center of c.
func (g *Grid) CellCenter(c Cell) mgl64.Vec3 {
	return mgl64.Vec3{
		g.Origin.X() + (float64(c.X)+0.5)*g.CellSize,
		g.Origin.Y(),
		g.Origin.Z() + (float64(c.Z)+0.5)*g.CellSize,
	}
}

// SampleNearestSurfacePoint returns the closest walkable floor point within
// radius of pos.
func (g *Grid) SampleNearestSurfacePoint(pos mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
	if g == nil || radius < 0 {
		return mgl64.Vec3{}, false
	}
	lo := g.CellAt(pos.Sub(mgl64.Vec3{radius, 0, radius}))
	hi := g.CellAt(pos.Add(mgl64.Vec3{radius, 0, radius}))

	best := mgl64.Vec3{}
	bestDist := math.Inf(1)
	for z := lo.Z; z <= hi.Z; z++ {
		for x := lo.X; x <= hi.X; x++ {
			if g.Blocked(x, z) {
				continue
			}
			p := g.closestInCell(Cell{x, z}, pos)
			if d := p.Sub(pos).Len(); d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	if bestDist > radius {
		return mgl64.Vec3{}, false
	}
	return best, true
}

// closestInCell clamps pos into c, kept cellEdgeInset inside the cell so
// CellAt maps the result back to c and not to a neighbour.
func (g *Grid) closestInCell(c Cell, pos mgl64.Vec3) mgl64.Vec3 {
	inset := cellEdgeInset * g.CellSize
	minX := g.Origin.X() + float64(c.X)*g.CellSize
	minZ := g.Origin.Z() + float64(c.Z)*g.CellSize
	return mgl64.Vec3{
		math.Min(math.Max(pos.X(), minX+inset), minX+g.CellSize-inset),
		g.Origin.Y(),
		math.Min(math.Max(pos.Z(), minZ+inset), minZ+g.CellSize-inset),
	}
}

// IsWalkable reports whether point lies on the walkable surface.
func (g *Grid) IsWalkable(point mgl64.Vec3) bool {
	if math.Abs(point.Y()-g.Origin.Y()) > 1e-3 {
		return false
	}
	c := g.CellAt(point)
	return !g.Blocked(c.X, c.Z)
}

// AddAgent registers an agent that is not yet on the surface.
func (g *Grid) AddAgent(entity combat.EntityID, pos mgl64.Vec3, speed float64) *Agent {
	a := &Agent{Entity: entity, Position: pos, Speed: speed}
	g.agents[entity] = a
	return a
}

// RemoveAgent forgets an agent.
func (g *Grid) RemoveAgent(entity combat.EntityID) {
	delete(g.agents, entity)
}

// Agent returns the registered agent.
func (g *Grid) Agent(entity combat.EntityID) (*Agent, bool) {
	a, ok := g.agents[entity]
	return a, ok
}

// AgentPosition returns where the agent currently stands.
func (g *Grid) AgentPosition(entity combat.EntityID) (mgl64.Vec3, bool) {
	a, ok := g.agents[entity]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return a.Position, true
}

// Warp places the agent on the surface at point, dropping any path.
func (g *Grid) Warp(entity combat.EntityID, point mgl64.Vec3) bool {
	a, ok := g.agents[entity]
	if !ok || !g.IsWalkable(point) {
		return false
	}
	a.Position = point
	a.onSurface = true
	a.path = nil
	a.hasDest = false
	return true
}

// IsOnSurface reports whether the agent is placed on the surface.
func (g *Grid) IsOnSurface(entity combat.EntityID) bool {
	a, ok := g.agents[entity]
	return ok && a.onSurface
}

// SetDestination plans a path for the agent toward point. It fails when
// the agent is off the surface or point is unreachable.
func (g *Grid) SetDestination(entity combat.EntityID, point mgl64.Vec3) bool {
	a, ok := g.agents[entity]
	if !ok || !a.onSurface {
		return false
	}
	start := g.CellAt(a.Position)
	goal := g.CellAt(point)
	cells := findPath(start, goal, g.Width, g.Depth, g.Blocked, g.MaxNodes)
	if cells == nil {
		logger.Debug("no path", "agent", entity, "from", start, "to", goal)
		return false
	}

	target := mgl64.Vec3{point.X(), g.Origin.Y(), point.Z()}
	path := make([]mgl64.Vec3, 0, len(cells))
	for _, c := range cells[1:] {
		path = append(path, g.CellCenter(c))
	}
	if len(path) > 0 {
		path = path[:len(path)-1]
	}
	a.path = append(path, target)
	a.destination = target
	a.hasDest = true
	return true
}

// Destination returns the agent's current destination.
func (g *Grid) Destination(entity combat.EntityID) (mgl64.Vec3, bool) {
	a, ok := g.agents[entity]
	if !ok || !a.hasDest {
		return mgl64.Vec3{}, false
	}
	return a.destination, true
}

// Path returns a copy of the agent's remaining waypoints.
func (g *Grid) Path(entity combat.EntityID) []mgl64.Vec3 {
	a, ok := g.agents[entity]
	if !ok {
		return nil
	}
	out := make([]mgl64.Vec3, len(a.path))
	copy(out, a.path)
	return out
}

// Advance moves every placed agent along its path by speed*dt.
func (g *Grid) Advance(dt float64) {
	if g == nil || dt <= 0 {
		return
	}
	for _, a := range g.agents {
		if !a.onSurface || len(a.path) == 0 {
			continue
		}
		budget := a.Speed * dt
		for budget > 0 && len(a.path) > 0 {
			next := a.path[0]
			delta := next.Sub(a.Position)
			dist := delta.Len()
			if dist <= budget {
				a.Position = next
				a.path = a.path[1:]
				budget -= dist
				continue
			}
			a.Position = a.Position.Add(delta.Mul(budget / dist))
			budget = 0
		}
	}
}

func (g *Grid) inside(x, z int) bool {
	return x >= 0 && z >= 0 && x < g.Width && z < g.Depth
}
