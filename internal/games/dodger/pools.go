package dodger

import (
	"math/rand"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
)

// Pools owns the three entity collections and the RNG that spawns and
// jitters them.
type Pools struct {
	cfg       *config.DodgerConfig
	rng       *rand.Rand
	obstacles []Obstacle
	trackers  []Tracker
	powerUps  []PowerUp
}

// NewPools creates empty pools with the given RNG seed.
func NewPools(cfg *config.DodgerConfig, seed int64) *Pools {
	return &Pools{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		obstacles: make([]Obstacle, 0, 32),
		trackers:  make([]Tracker, 0, max(cfg.Trackers.Cap, 0)),
		powerUps:  make([]PowerUp, 0, 4),
	}
}

// Clear empties every pool. The RNG keeps its stream.
func (p *Pools) Clear() {
	p.obstacles = p.obstacles[:0]
	p.trackers = p.trackers[:0]
	p.powerUps = p.powerUps[:0]
}

// uniform returns a float in [lo, hi).
func (p *Pools) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}

// edgePoint picks one of the four edges uniformly and returns a point along
// it, pushed SpawnOffset units outside the playfield.
func (p *Pools) edgePoint() core.Vec {
	w, h := p.cfg.World.Width, p.cfg.World.Height
	off := p.cfg.World.SpawnOffset

	switch p.rng.Intn(4) {
	case 0: // top
		return core.V(p.uniform(0, w), -off)
	case 1: // right
		return core.V(w+off, p.uniform(0, h))
	case 2: // bottom
		return core.V(p.uniform(0, w), h+off)
	default: // left
		return core.V(-off, p.uniform(0, h))
	}
}

// SpawnObstacle adds an obstacle on a random edge and returns it.
func (p *Pools) SpawnObstacle() Obstacle {
	oc := p.cfg.Obstacles
	radius := oc.MinRadius
	if oc.MaxRadius > oc.MinRadius {
		radius += p.rng.Intn(oc.MaxRadius - oc.MinRadius + 1)
	}

	o := Obstacle{
		Pos:    p.edgePoint(),
		Radius: float64(radius),
		Speed:  p.uniform(oc.MinSpeed, oc.MaxSpeed),
		Color:  obstacleColors[p.rng.Intn(len(obstacleColors))],
	}
	p.obstacles = append(p.obstacles, o)
	return o
}

// SpawnTracker adds a tracker on a random edge unless the population cap is
// reached. Reports whether a tracker was added.
func (p *Pools) SpawnTracker() (Tracker, bool) {
	tc := p.cfg.Trackers
	if len(p.trackers) >= tc.Cap {
		return Tracker{}, false
	}

	t := Tracker{
		Pos:      p.edgePoint(),
		Radius:   tc.Radius,
		Speed:    p.uniform(tc.MinSpeed, tc.MaxSpeed),
		Strength: p.uniform(tc.MinStrength, tc.MaxStrength),
	}
	p.trackers = append(p.trackers, t)
	return t, true
}

// SpawnPowerUp adds a power-up of a uniformly chosen kind at a random point
// inset from the edges.
func (p *Pools) SpawnPowerUp() PowerUp {
	pc := p.cfg.PowerUps
	w, h := p.cfg.World.Width, p.cfg.World.Height

	pu := PowerUp{
		Pos:      core.V(p.uniform(pc.Inset, w-pc.Inset), p.uniform(pc.Inset, h-pc.Inset)),
		Radius:   pc.Radius,
		Kind:     PowerUpKind(p.rng.Intn(int(powerUpKindCount))),
		Lifetime: pc.Lifetime,
	}
	p.powerUps = append(p.powerUps, pu)
	return pu
}

// obstacleStep returns how far an obstacle at dist from the player moves
// this frame.
func (p *Pools) obstacleStep(o Obstacle, dist float64, slowed bool) float64 {
	mod := 1.0
	if dist < p.cfg.Obstacles.NearDistance {
		mod = p.cfg.Obstacles.NearModifier
	}
	if slowed {
		mod *= p.cfg.PowerUps.SlowModifier
	}
	return o.Speed * mod
}

// MoveObstacles steers every obstacle toward target and drops those that
// escaped past the margin. Returns the number of escaped obstacles.
func (p *Pools) MoveObstacles(target core.Vec, slowed bool) int {
	minDist := p.cfg.World.MinDistance
	escaped := 0

	kept := p.obstacles[:0]
	for _, o := range p.obstacles {
		dist := max(o.Pos.Dist(target), minDist)
		o.Pos = o.Pos.Add(o.Pos.Toward(target, p.obstacleStep(o, dist, slowed), minDist))

		if p.escaped(o.Pos) {
			escaped++
			continue
		}
		kept = append(kept, o)
	}
	p.obstacles = kept

	return escaped
}

// escaped reports whether pos lies more than EscapeMargin outside any edge.
func (p *Pools) escaped(pos core.Vec) bool {
	m := p.cfg.World.EscapeMargin
	return pos.X < -m || pos.X > p.cfg.World.Width+m ||
		pos.Y < -m || pos.Y > p.cfg.World.Height+m
}

// MoveTrackers steers every tracker toward target at speed*strength and
// layers independent per-axis jitter on top.
func (p *Pools) MoveTrackers(target core.Vec) {
	minDist := p.cfg.World.MinDistance
	jitter := p.cfg.Trackers.Jitter

	for i := range p.trackers {
		t := &p.trackers[i]
		t.Pos = t.Pos.Add(t.Pos.Toward(target, t.Speed*t.Strength, minDist))
		t.Pos = t.Pos.Add(core.V(p.uniform(-jitter, jitter), p.uniform(-jitter, jitter)))
	}
}

// AgePowerUps counts down every power-up and drops the expired ones.
// Returns the number that expired.
func (p *Pools) AgePowerUps() int {
	expired := 0

	kept := p.powerUps[:0]
	for _, pu := range p.powerUps {
		pu.Lifetime--
		if pu.Lifetime <= 0 {
			expired++
			continue
		}
		kept = append(kept, pu)
	}
	p.powerUps = kept

	return expired
}

// ClearObstacles removes every obstacle and returns how many there were.
// Trackers are left alone.
func (p *Pools) ClearObstacles() int {
	n := len(p.obstacles)
	p.obstacles = p.obstacles[:0]
	return n
}

// Obstacles returns the live obstacles. The slice is owned by the pools.
func (p *Pools) Obstacles() []Obstacle {
	return p.obstacles
}

// Trackers returns the live trackers. The slice is owned by the pools.
func (p *Pools) Trackers() []Tracker {
	return p.trackers
}

// PowerUps returns the live power-ups. The slice is owned by the pools.
func (p *Pools) PowerUps() []PowerUp {
	return p.powerUps
}
