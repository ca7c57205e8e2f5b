package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// The landing-page backdrop. The field exclusively owns its particle list:
// the stepping goroutine is the only writer, and readers get copies. Nothing
// here participates in correctness-critical state.

var palette = []string{"#3B82F6", "#60A5FA", "#93C5FD", "#DBEAFE"}

type Particle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Size   float64 `json:"size"`
	SpeedX float64 `json:"speed_x"`
	SpeedY float64 `json:"speed_y"`
	Color  string  `json:"color"`
}

type Field struct {
	mu        sync.RWMutex
	particles []Particle
	width     float64
	height    float64
}

func NewField(width, height float64, count int) *Field {
	f := &Field{width: width, height: height}
	f.particles = make([]Particle, count)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:      rand.Float64() * width,
			Y:      rand.Float64() * height,
			Size:   rand.Float64()*5 + 1,
			SpeedX: rand.Float64()*3 - 1.5,
			SpeedY: rand.Float64()*3 - 1.5,
			Color:  palette[rand.Intn(len(palette))],
		}
	}
	return f
}

// Start steps the simulation until the context is cancelled.
func (f *Field) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.Step()
		}
	}
}

// Step advances every particle once, bouncing off the field edges.
func (f *Field) Step() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.SpeedX
		p.Y += p.SpeedY

		if p.X > f.width || p.X < 0 {
			p.SpeedX *= -1
		}
		if p.Y > f.height || p.Y < 0 {
			p.SpeedY *= -1
		}
	}
}

// Snapshot returns a copy of the current particle state.
func (f *Field) Snapshot() []Particle {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Resize adjusts the bounds, clamping particles back inside.
func (f *Field) Resize(width, height float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.width = width
	f.height = height
	for i := range f.particles {
		if f.particles[i].X > width {
			f.particles[i].X = width
		}
		if f.particles[i].Y > height {
			f.particles[i].Y = height
		}
	}
}
