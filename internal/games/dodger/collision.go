package dodger

import "github.com/vovakirdan/tui-dodger/internal/core"

// collisions is what one sweep found. Hit entities are already removed from
// the pools when it is returned.
type collisions struct {
	obstacleHits int
	trackerHits  int
	pickups      []PowerUpKind
}

// collide tests the player box against every obstacle, then every tracker,
// then every power-up, and removes whatever it touched. Boxes are sized to
// each entity's diameter.
func collide(player core.Rect, p *Pools) collisions {
	var c collisions

	obstacles := p.obstacles[:0]
	for _, o := range p.obstacles {
		if player.Intersects(o.Bounds()) {
			c.obstacleHits++
			continue
		}
		obstacles = append(obstacles, o)
	}
	p.obstacles = obstacles

	trackers := p.trackers[:0]
	for _, t := range p.trackers {
		if player.Intersects(t.Bounds()) {
			c.trackerHits++
			continue
		}
		trackers = append(trackers, t)
	}
	p.trackers = trackers

	powerUps := p.powerUps[:0]
	for _, pu := range p.powerUps {
		if player.Intersects(pu.Bounds()) {
			c.pickups = append(c.pickups, pu.Kind)
			continue
		}
		powerUps = append(powerUps, pu)
	}
	p.powerUps = powerUps

	return c
}
