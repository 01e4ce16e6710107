package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/particlefield/internal/config"
	"github.com/san-kum/particlefield/internal/particle"
)

type ParticleData struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Size   float64 `json:"size"`
	Color  string  `json:"color"`
	Bounce bool    `json:"bounce"`
}

// Snapshot is the JSON form of a field at one tick.
type Snapshot struct {
	Tick      uint64         `json:"tick"`
	Width     float64        `json:"width"`
	Height    float64        `json:"height"`
	Particles []ParticleData `json:"particles"`
}

// NewSnapshot captures the current state of f.
func NewSnapshot(f *particle.Field) Snapshot {
	b := f.Bounds()
	ps := f.Particles()
	snap := Snapshot{
		Tick:      f.Ticks(),
		Width:     b.Width,
		Height:    b.Height,
		Particles: make([]ParticleData, len(ps)),
	}
	for i, p := range ps {
		snap.Particles[i] = ParticleData{
			X: p.X, Y: p.Y, VX: p.VX, VY: p.VY,
			Size:   p.Size,
			Color:  config.FormatRGBA(p.Color),
			Bounce: p.Bounce,
		}
	}
	return snap
}

func WriteJSON(w io.Writer, snap Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snap)
}
