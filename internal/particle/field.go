package particle

import "math/rand/v2"

// Field is one simulator instance: a particle set, the bounds it moves in
// and its lifecycle.
type Field struct {
	cfg       Config
	rng       *rand.Rand
	bounds    Bounds
	particles []Particle
	state     State
	ticks     uint64
}

// NewField returns an uninitialized field. rng supplies every random draw
// the field makes; pass a seeded source for reproducible runs.
func NewField(cfg Config, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{cfg: cfg, rng: rng}
}

// Mount starts the field inside b.
func (f *Field) Mount(b Bounds) {
	if f.state == Disposed {
		return
	}
	f.state = Running
	f.Resize(b)
}

// Resize changes the bounds used by later ticks. Particles are only
// created when the set is empty; existing ones keep their positions and
// are measured against the new bounds from the next tick on.
func (f *Field) Resize(b Bounds) {
	if f.state == Disposed {
		return
	}
	f.bounds = b
	if len(f.particles) == 0 {
		f.particles = Initialize(f.cfg, b, f.rng)
	}
}

// Frame runs one tick followed by a render onto s. It does nothing unless
// the field is running and s is non-nil.
func (f *Field) Frame(s Surface) {
	if f.state != Running || s == nil {
		return
	}
	Tick(f.particles, f.bounds)
	f.ticks++
	Render(f.particles, s)
}

// Dispose discards the particle set. A disposed field cannot be mounted
// again.
func (f *Field) Dispose() {
	f.particles = nil
	f.state = Disposed
}

// Particles returns a copy of the current particle set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

func (f *Field) Bounds() Bounds { return f.bounds }
func (f *Field) State() State   { return f.state }
func (f *Field) Ticks() uint64  { return f.ticks }
func (f *Field) Config() Config { return f.cfg }
