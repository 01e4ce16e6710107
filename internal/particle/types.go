package particle

import "image/color"

// Damping scales a bounce particle's velocity component on every reflection.
const Damping = 0.95

// Particle is a translucent point mass. Size is the radius.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.NRGBA
	Bounce bool
}

// Bounds is the viewport a field is confined to, with the origin top-left.
type Bounds struct {
	Width, Height float64
}

// Contains reports whether (x, y) lies inside b, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y >= 0 && y <= b.Height
}

// Config describes how a field seeds its particles.
type Config struct {
	Count       int
	BounceCount int
	Palette     []color.NRGBA
	// MaxSpeed bounds each velocity component to [-MaxSpeed, MaxSpeed).
	MaxSpeed float64
	// MinSize and MaxSize bound the radius to [MinSize, MaxSize).
	MinSize, MaxSize float64
}

// Surface is a 2D drawing target.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.NRGBA)
}

// State is the lifecycle stage of a Field.
type State int

const (
	Uninitialized State = iota
	Running
	Disposed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Disposed:
		return "disposed"
	}
	return "unknown"
}
