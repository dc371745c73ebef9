package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewParticleEmitter(t *testing.T) {
	emitter := NewParticleEmitter(200, mgl32.Vec3{0, 1, 0}, 2.0, 42)

	if emitter.Count() != 200 {
		t.Errorf("Expected 200 particles, got %d", emitter.Count())
	}
	if len(emitter.Positions()) != 600 {
		t.Errorf("Expected position buffer of 600 floats, got %d", len(emitter.Positions()))
	}
}

func TestNewParticleEmitterClampsCount(t *testing.T) {
	emitter := NewParticleEmitter(0, mgl32.Vec3{}, 1.0, 42)
	if emitter.Count() != 1 {
		t.Errorf("Expected count floored at 1, got %d", emitter.Count())
	}
}

func TestParticleEmitterSpawnsWithinSpread(t *testing.T) {
	origin := mgl32.Vec3{5, 0, -3}
	spread := float32(2.0)
	emitter := NewParticleEmitter(100, origin, spread, 7)

	positions := emitter.Positions()
	for i := 0; i < emitter.Count(); i++ {
		p := mgl32.Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]}
		offset := p.Sub(origin)
		if offset.X() < -spread || offset.X() > spread ||
			offset.Z() < -spread || offset.Z() > spread {
			t.Fatalf("Particle %d spawned outside the spread: %v", i, p)
		}
	}
}

func TestParticleEmitterUpdateMovesParticles(t *testing.T) {
	emitter := NewParticleEmitter(50, mgl32.Vec3{}, 1.0, 42)

	before := make([]float32, len(emitter.Positions()))
	copy(before, emitter.Positions())

	emitter.Update(0.5)

	moved := false
	after := emitter.Positions()
	for i := range after {
		if after[i] != before[i] {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("Update did not move any particles")
	}
}

func TestParticleEmitterDeterministicBySeed(t *testing.T) {
	a := NewParticleEmitter(30, mgl32.Vec3{}, 1.0, 99)
	b := NewParticleEmitter(30, mgl32.Vec3{}, 1.0, 99)

	for i := 0; i < 10; i++ {
		a.Update(0.016)
		b.Update(0.016)
	}

	pa, pb := a.Positions(), b.Positions()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("Same seed diverged at float %d: %f vs %f", i, pa[i], pb[i])
		}
	}
}

func TestParticleEmitterRespawnsExpiredParticles(t *testing.T) {
	emitter := NewParticleEmitter(20, mgl32.Vec3{}, 1.0, 42)

	// Step far past every particle's lifetime
	for i := 0; i < 100; i++ {
		emitter.Update(1.0)
	}

	for i := range emitter.particles {
		if emitter.particles[i].Life <= 0 {
			t.Fatalf("Particle %d was not respawned, life=%f", i, emitter.particles[i].Life)
		}
	}
}
