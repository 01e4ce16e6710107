package particle

import "math/rand/v2"

// Initialize creates cfg.Count particles spread uniformly over b.
// The first cfg.BounceCount particles bounce, the rest wrap. Colours are
// taken from the palette in order, cycling when it runs out.
func Initialize(cfg Config, b Bounds, rng *rand.Rand) []Particle {
	if cfg.Count <= 0 {
		return nil
	}

	minSize, maxSize := cfg.MinSize, cfg.MaxSize
	if maxSize < minSize {
		minSize, maxSize = maxSize, minSize
	}

	ps := make([]Particle, cfg.Count)
	for i := range ps {
		p := Particle{
			X:      rng.Float64() * b.Width,
			Y:      rng.Float64() * b.Height,
			VX:     (rng.Float64()*2 - 1) * cfg.MaxSpeed,
			VY:     (rng.Float64()*2 - 1) * cfg.MaxSpeed,
			Size:   minSize + rng.Float64()*(maxSize-minSize),
			Bounce: i < cfg.BounceCount,
		}
		if len(cfg.Palette) > 0 {
			p.Color = cfg.Palette[i%len(cfg.Palette)]
		}
		ps[i] = p
	}
	return ps
}

// Tick advances every particle by one step inside b.
func Tick(ps []Particle, b Bounds) {
	for i := range ps {
		ps[i].Step(b)
	}
}

// Step moves p by its velocity and applies its edge policy.
func (p *Particle) Step(b Bounds) {
	p.X += p.VX
	p.Y += p.VY

	if p.Bounce {
		p.X, p.VX = reflect(p.X, p.VX, b.Width)
		p.Y, p.VY = reflect(p.Y, p.VY, b.Height)
		return
	}
	p.X = wrap(p.X, p.Size, b.Width)
	p.Y = wrap(p.Y, p.Size, b.Height)
}

func reflect(pos, vel, extent float64) (float64, float64) {
	if pos >= 0 && pos <= extent {
		return pos, vel
	}
	return clamp(pos, 0, extent), -vel * Damping
}

func wrap(pos, margin, extent float64) float64 {
	switch {
	case pos < -margin:
		return extent + margin
	case pos > extent+margin:
		return -margin
	}
	return pos
}

// clamp pins v into [lo, hi]. A degenerate range collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Render clears s and draws every particle onto it.
func Render(ps []Particle, s Surface) {
	s.Clear()
	for _, p := range ps {
		s.FillCircle(p.X, p.Y, p.Size, p.Color)
	}
}
