package object

import (
	"math"
	"testing"

	"github.com/tomz197/xevious/internal/draw/drawtest"
)

func TestNewAirEnemy(t *testing.T) {
	tests := []struct {
		typ      AirType
		points   int
		lo, hi   float64
		patterns []Pattern
	}{
		{typ: Toroid, points: 100, lo: 1.5, hi: 2.5, patterns: []Pattern{Straight, Wave}},
		{typ: Garu, points: 200, lo: 2, hi: 3, patterns: []Pattern{Dive}},
		{typ: Zakato, points: 150, lo: 1, hi: 2, patterns: []Pattern{Formation}},
	}

	r := newRand()
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			for i := 0; i < 100; i++ {
				e := NewAirEnemy(tt.typ, r, testScreen)
				if e.Points != tt.points || e.Health != 1 {
					t.Fatalf("points=%d health=%d", e.Points, e.Health)
				}
				if e.Speed < tt.lo || e.Speed > tt.hi {
					t.Fatalf("speed %v outside [%v, %v]", e.Speed, tt.lo, tt.hi)
				}
				if e.X < 16 || e.X > 256-32 || e.X != math.Trunc(e.X) || e.Y != -16 {
					t.Fatalf("spawn at (%v, %v)", e.X, e.Y)
				}
				if e.Phase < 0 || e.Phase >= 2*math.Pi {
					t.Fatalf("phase %v outside [0, 2π)", e.Phase)
				}
				found := false
				for _, p := range tt.patterns {
					found = found || e.Pattern == p
				}
				if !found {
					t.Fatalf("pattern %v not allowed for %v", e.Pattern, tt.typ)
				}
			}
		})
	}
}

func TestAirEnemyStraight(t *testing.T) {
	e := &AirEnemy{X: 50, Y: -16, Type: Toroid, Pattern: Straight, Speed: 2}
	ctx := updateCtx(Input{}, nil)
	for i := 0; i < 40; i++ {
		if e.Update(ctx) {
			t.Fatalf("removed at tick %d", i)
		}
	}
	if e.Y != 64 || e.X != 50 {
		t.Errorf("after 40 ticks at (%v, %v), want (50, 64)", e.X, e.Y)
	}
}

func TestAirEnemyStaysInField(t *testing.T) {
	ctx := updateCtx(Input{}, nil)
	for _, pattern := range []Pattern{Wave, Dive, Formation} {
		e := &AirEnemy{X: 0, Y: -16, Pattern: pattern, Speed: 1, Phase: math.Pi}
		for i := 0; i < 300; i++ {
			e.Update(ctx)
			if e.X < 0 || e.X > 256-16 {
				t.Fatalf("%v: x=%v outside field at tick %d", pattern, e.X, i)
			}
		}
	}
}

func TestAirEnemyDive(t *testing.T) {
	e := &AirEnemy{X: 100, Y: 0, Pattern: Dive, Speed: 2}
	ctx := updateCtx(Input{}, nil)

	e.Update(ctx)
	if want := 2 + math.Sin(0.15)*0.5; e.Y != want || e.X != 100 {
		t.Errorf("first tick at (%v, %v), want (100, %v)", e.X, e.Y, want)
	}

	// Past the threshold the dive also drifts sideways
	e.Y = 61
	e.Update(ctx)
	if e.X == 100 {
		t.Error("no horizontal drift below the dive threshold")
	}
}

func TestAirEnemyExit(t *testing.T) {
	e := &AirEnemy{X: 10, Y: 190, Pattern: Straight, Speed: 2}
	ctx := updateCtx(Input{}, nil)
	if e.Update(ctx) {
		t.Fatal("y=192 is still inside the exit margin")
	}
	for i := 0; i < 9; i++ {
		if e.Update(ctx) {
			return
		}
	}
	t.Errorf("not removed at y=%v", e.Y)
}

func TestNewGroundEnemy(t *testing.T) {
	tests := []struct {
		typ    GroundType
		points int
		health int
		size   float64
	}{
		{Domogram, 200, 1, 16},
		{Barra, 500, 2, 24},
		{Logram, 300, 1, 20},
	}
	for _, tt := range tests {
		e := NewGroundEnemy(tt.typ, newRand(), testScreen)
		if e.Points != tt.points || e.Health != tt.health || e.Size != tt.size {
			t.Errorf("%v: points=%d health=%d size=%v", tt.typ, e.Points, e.Health, e.Size)
		}
		if e.Y != 176 {
			t.Errorf("%v: y=%v, want 176", tt.typ, e.Y)
		}
	}
}

func TestDomogramBounce(t *testing.T) {
	ctx := updateCtx(Input{}, nil)

	e := &GroundEnemy{X: 0.5, Type: Domogram, Size: 16, Speed: -1}
	e.Update(ctx)
	if e.X > 0 || e.Speed != 1 {
		t.Errorf("left edge: x=%v speed=%v, want reflection on the same tick", e.X, e.Speed)
	}

	e = &GroundEnemy{X: 239, Type: Domogram, Size: 16, Speed: 1}
	e.Update(ctx)
	if e.Speed != -1 {
		t.Errorf("right edge: speed=%v, want -1", e.Speed)
	}
}

func TestBarraStationary(t *testing.T) {
	e := NewGroundEnemy(Barra, newRand(), testScreen)
	x := e.X
	ctx := updateCtx(Input{}, nil)

	lit := 0
	for i := 0; i < 120; i++ {
		e.Update(ctx)
		if e.RadarOn() {
			lit++
		}
	}
	if e.X != x {
		t.Errorf("barra moved from %v to %v", x, e.X)
	}
	if lit != 60 {
		t.Errorf("radar lit %d of 120 frames, want 60", lit)
	}
}

func TestLogramOscillates(t *testing.T) {
	e := &GroundEnemy{X: 100, Type: Logram, Size: 20, Speed: 1}
	ctx := updateCtx(Input{}, nil)

	e.Update(ctx)
	if want := 100 + math.Sin(1.0/30); math.Abs(e.X-want) > 1e-12 {
		t.Errorf("x=%v, want %v", e.X, want)
	}

	// A full period brings it back near the start
	period := 2 * math.Pi * 30
	for i := 1; i < int(period); i++ {
		e.Update(ctx)
	}
	if math.Abs(e.X-100) > 1.5 {
		t.Errorf("after one period x=%v, want near 100", e.X)
	}
}

func TestEnemyDraw(t *testing.T) {
	rec := &drawtest.Recorder{}
	ctx := DrawContext{Surface: rec, Screen: testScreen}

	(&AirEnemy{Type: Toroid}).Draw(ctx)
	(&AirEnemy{Type: Zakato}).Draw(ctx)
	if rec.Count("circ") != 2 || rec.Count("tri") != 2 {
		t.Errorf("air draws: %d circles, %d triangles", rec.Count("circ"), rec.Count("tri"))
	}

	rec.Reset()
	barra := &GroundEnemy{Type: Barra, Size: 24}
	barra.Draw(ctx)
	if rec.Count("rect") != 3 {
		t.Errorf("barra with radar lit: %d rects, want 3", rec.Count("rect"))
	}
}
