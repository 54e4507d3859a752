package dodger

// Timer is a frame counter compared against a threshold. The owner ticks it
// and resets it once Due reports true.
type Timer struct {
	frames int
}

// Tick advances the timer by one frame.
func (t *Timer) Tick() {
	t.frames++
}

// Due reports whether the timer reached threshold.
func (t *Timer) Due(threshold int) bool {
	return t.frames >= threshold
}

// Reset restarts the count from zero.
func (t *Timer) Reset() {
	t.frames = 0
}

// Frames returns the frames counted since the last reset.
func (t Timer) Frames() int {
	return t.frames
}

// Cycle is a wrapping animation counter used by blinking overlays.
type Cycle struct {
	frame  int
	period int
}

// NewCycle creates a cycle with the given period in frames.
func NewCycle(period int) Cycle {
	return Cycle{period: max(period, 1)}
}

// Tick advances the cycle, wrapping at the period.
func (c *Cycle) Tick() {
	c.frame = (c.frame + 1) % c.period
}

// On reports whether the cycle is in its first half.
func (c Cycle) On() bool {
	return c.frame < c.period/2
}

// Frame returns the position within the cycle.
func (c Cycle) Frame() int {
	return c.frame
}

// Reset rewinds the cycle to its start.
func (c *Cycle) Reset() {
	c.frame = 0
}

// animationPeriod is the length of every blink cycle, one second at 60 fps.
const animationPeriod = 60

// Clock holds every frame counter of a session. Gameplay counters only
// advance while the session is active; presentation counters advance while
// their overlay is shown.
type Clock struct {
	Frame         int   // Active frames since the run started
	ObstacleSpawn Timer // Against the score-derived spawn rate
	PowerUpSpawn  Timer // Against the fixed power-up interval

	PauseBlink   Cycle
	MenuPulse    Timer // Unbounded, drives the color preview pulse
	RankingFrame Cycle
}

// NewClock returns a clock at frame zero.
func NewClock() Clock {
	return Clock{
		PauseBlink:   NewCycle(animationPeriod),
		RankingFrame: NewCycle(animationPeriod),
	}
}

// Tick advances the gameplay counters by one frame.
func (c *Clock) Tick() {
	c.Frame++
	c.ObstacleSpawn.Tick()
	c.PowerUpSpawn.Tick()
}
