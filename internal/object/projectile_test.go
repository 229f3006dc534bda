package object

import (
	"testing"

	"github.com/tomz197/xevious/internal/audio"
	"github.com/tomz197/xevious/internal/audio/audiotest"
	"github.com/tomz197/xevious/internal/draw/drawtest"
)

func TestShotRemovedAboveTop(t *testing.T) {
	s := NewShot(10, 2)
	ctx := updateCtx(Input{}, nil)
	if s.Update(ctx) {
		t.Fatal("y=-4 should still be live")
	}
	if !s.Update(ctx) {
		t.Errorf("y=%v should be removed", s.Y)
	}
}

func TestBombFallsOffField(t *testing.T) {
	b := NewBomb(50, 206)
	ctx := updateCtx(Input{}, nil)
	if !b.Update(ctx) {
		t.Errorf("bomb at y=%v below the field should be removed", b.Y)
	}
}

func TestBombExplosion(t *testing.T) {
	sound := &audiotest.Recorder{}
	ctx := updateCtx(Input{}, nil)
	b := NewBomb(50, 60)
	b.Update(ctx)
	if b.Y != 64 {
		t.Fatalf("y=%v, want 64", b.Y)
	}

	if !b.Explode(sound) || b.Explode(sound) {
		t.Fatal("Explode should only succeed once")
	}
	if sound.Count(audio.Explosion) != 1 {
		t.Errorf("explosion cues = %d, want 1", sound.Count(audio.Explosion))
	}

	prevRadius, prevWave := b.Radius, b.Shockwave
	for i := 1; i <= BombLifetime; i++ {
		if b.Update(ctx) {
			t.Fatalf("removed at age %d", b.Age)
		}
		if b.X != 50 || b.Y != 64 {
			t.Fatalf("exploded bomb moved to (%v, %v)", b.X, b.Y)
		}
		if b.Radius <= prevRadius || b.Shockwave <= prevWave {
			t.Fatal("blast and shockwave must grow every frame")
		}
		prevRadius, prevWave = b.Radius, b.Shockwave
	}
	if !b.Update(ctx) {
		t.Errorf("age %d past lifetime should be removed", b.Age)
	}
}

func TestBombDraw(t *testing.T) {
	rec := &drawtest.Recorder{}
	ctx := DrawContext{Surface: rec, Screen: testScreen}

	b := NewBomb(20, 20)
	b.Draw(ctx)
	if rec.Count("circ") != 1 || rec.Count("pset") != 3 {
		t.Errorf("falling bomb: %d circles, %d pixels", rec.Count("circ"), rec.Count("pset"))
	}

	rec.Reset()
	b.Explode(nil)
	b.Age, b.Radius, b.Shockwave = 10, 7, 10
	b.Draw(ctx)
	// Ages 0, 3, 6, 9 are all passed at age 10
	if rec.Count("circ") != 4 || rec.Count("circb") != 2 {
		t.Errorf("explosion: %d circles, %d rings", rec.Count("circ"), rec.Count("circb"))
	}
}
