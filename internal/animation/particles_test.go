package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewField(t *testing.T) {
	f := NewField(800, 600, 50)

	particles := f.Snapshot()
	require.Len(t, particles, 50)
	for _, p := range particles {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 800.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 600.0)
		assert.NotEmpty(t, p.Color)
	}
}

func TestStepBouncesAtEdges(t *testing.T) {
	f := &Field{width: 100, height: 100}
	f.particles = []Particle{
		{X: 99, Y: 50, SpeedX: 2, SpeedY: 0},
		{X: 50, Y: 1, SpeedX: 0, SpeedY: -2},
	}

	f.Step()

	assert.Equal(t, -2.0, f.particles[0].SpeedX)
	assert.Equal(t, 2.0, f.particles[1].SpeedY)
}

func TestSnapshotIsACopy(t *testing.T) {
	f := NewField(100, 100, 3)

	snap := f.Snapshot()
	snap[0].X = -999

	assert.NotEqual(t, -999.0, f.Snapshot()[0].X)
}

func TestResizeClampsParticles(t *testing.T) {
	f := &Field{width: 200, height: 200}
	f.particles = []Particle{{X: 150, Y: 180}}

	f.Resize(100, 100)

	assert.Equal(t, 100.0, f.particles[0].X)
	assert.Equal(t, 100.0, f.particles[0].Y)
}
