package renderer

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

type Particle struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Life     float32
	MaxLife  float32
}

// ParticleEmitter simulates a set of particles on the CPU and keeps a flat
// position buffer ready for upload. Rendered as GL points by the renderer.
type ParticleEmitter struct {
	Origin     mgl32.Vec3
	Spread     float32 // Spawn radius around the origin
	Color      mgl32.Vec3
	Size       float32 // Point size at reference distance
	Drift      float32 // Base upward drift, units per second
	Turbulence float64 // Perlin sample scale; 0 disables turbulence
	Lifetime   float32 // Seconds a particle lives before respawning

	particles []Particle
	positions []float32 // Flat xyz buffer, refilled every Update
	noise     *perlin.Perlin
	rng       *rand.Rand
	time      float64

	// GPU handles owned by the renderer
	VAO uint32
	VBO uint32
}

func NewParticleEmitter(count int, origin mgl32.Vec3, spread float32, seed int64) *ParticleEmitter {
	if count <= 0 {
		count = 1
	}
	e := &ParticleEmitter{
		Origin:     origin,
		Spread:     spread,
		Color:      mgl32.Vec3{1, 1, 1},
		Size:       4.0,
		Drift:      0.5,
		Turbulence: 0.15,
		Lifetime:   6.0,
		particles:  make([]Particle, count),
		positions:  make([]float32, count*3),
		noise:      perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		rng:        rand.New(rand.NewSource(seed)),
	}
	for i := range e.particles {
		e.respawn(&e.particles[i])
		// Stagger initial ages so the emitter doesn't pulse
		e.particles[i].Life = e.Lifetime * e.rng.Float32()
	}
	e.fillPositions()
	return e
}

func (e *ParticleEmitter) Count() int {
	return len(e.particles)
}

// Positions returns the flat xyz buffer for the current frame.
func (e *ParticleEmitter) Positions() []float32 {
	return e.positions
}

// Update advances the simulation by dt seconds.
func (e *ParticleEmitter) Update(dt float32) {
	e.time += float64(dt)
	for i := range e.particles {
		p := &e.particles[i]
		p.Life -= dt
		if p.Life <= 0 {
			e.respawn(p)
			continue
		}

		velocity := p.Velocity
		if e.Turbulence > 0 {
			// Sample a scrolling noise field for sideways wander
			nx := e.noise.Noise3D(float64(p.Position.X())*e.Turbulence, float64(p.Position.Y())*e.Turbulence, e.time*0.25)
			nz := e.noise.Noise3D(float64(p.Position.Z())*e.Turbulence, float64(p.Position.X())*e.Turbulence, e.time*0.25+31.7)
			velocity = velocity.Add(mgl32.Vec3{float32(nx), 0, float32(nz)}.Mul(e.Drift))
		}
		p.Position = p.Position.Add(velocity.Mul(dt))
	}
	e.fillPositions()
}

func (e *ParticleEmitter) respawn(p *Particle) {
	offset := mgl32.Vec3{
		(e.rng.Float32()*2 - 1) * e.Spread,
		(e.rng.Float32()*2 - 1) * e.Spread * 0.25,
		(e.rng.Float32()*2 - 1) * e.Spread,
	}
	p.Position = e.Origin.Add(offset)
	p.Velocity = mgl32.Vec3{0, e.Drift * (0.5 + e.rng.Float32()), 0}
	p.MaxLife = e.Lifetime * (0.5 + e.rng.Float32()*0.5)
	p.Life = p.MaxLife
}

func (e *ParticleEmitter) fillPositions() {
	for i := range e.particles {
		e.positions[i*3] = e.particles[i].Position.X()
		e.positions[i*3+1] = e.particles[i].Position.Y()
		e.positions[i*3+2] = e.particles[i].Position.Z()
	}
}
