package object

import (
	"testing"

	"github.com/tomz197/xevious/internal/audio"
	"github.com/tomz197/xevious/internal/audio/audiotest"
	"github.com/tomz197/xevious/internal/draw/drawtest"
	"github.com/tomz197/xevious/internal/input"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(testScreen)
	if p.X != 128 || p.Y != 152 {
		t.Errorf("spawn = (%v, %v), want (128, 152)", p.X, p.Y)
	}
	if p.TargetX != 136 || p.TargetY != 120 {
		t.Errorf("reticle = (%v, %v), want (136, 120)", p.TargetX, p.TargetY)
	}
	if p.Lives != 3 || p.Score != 0 {
		t.Errorf("lives=%d score=%d", p.Lives, p.Score)
	}
}

func TestPlayerFire(t *testing.T) {
	sound := &audiotest.Recorder{}
	p := NewPlayer(testScreen)
	p.X, p.Y = 100, 150

	p.fire(updateCtx(input.Input{}, sound))

	if len(p.Shots) != 2 {
		t.Fatalf("shots = %d, want 2", len(p.Shots))
	}
	if p.Shots[0].X != 106 || p.Shots[1].X != 110 {
		t.Errorf("shot x = %v, %v, want 106, 110", p.Shots[0].X, p.Shots[1].X)
	}
	for _, s := range p.Shots {
		if s.Y != 148 {
			t.Errorf("shot y = %v, want 148", s.Y)
		}
	}
	if p.ShotCooldown != ShotCooldown {
		t.Errorf("cooldown = %d, want %d", p.ShotCooldown, ShotCooldown)
	}
	if sound.Count(audio.Fire) != 1 {
		t.Errorf("fire cue played %d times", sound.Count(audio.Fire))
	}
}

func TestPlayerFireCadence(t *testing.T) {
	sound := &audiotest.Recorder{}
	p := NewPlayer(testScreen)
	ctx := updateCtx(input.Hold(input.Fire), sound)

	// A volley every ShotCooldown frames while fire is held
	for i := 0; i < 3*ShotCooldown; i++ {
		p.Update(ctx)
	}
	if got := sound.Count(audio.Fire); got != 3 {
		t.Errorf("volleys = %d, want 3", got)
	}

	// Shots leave the field after reaching the top bound
	noInput := updateCtx(input.Input{}, nil)
	for i := 0; i < 40; i++ {
		p.Update(noInput)
	}
	if len(p.Shots) != 0 {
		t.Errorf("%d shots left on the field", len(p.Shots))
	}
}

func TestPlayerBombIsEdgeTriggered(t *testing.T) {
	sound := &audiotest.Recorder{}
	p := NewPlayer(testScreen)

	p.Update(updateCtx(input.Press(input.Bomb), sound))
	if len(p.Bombs) != 1 {
		t.Fatalf("bombs = %d, want 1", len(p.Bombs))
	}
	if b := p.Bombs[0]; b.X != p.TargetX || b.Y != p.TargetY {
		t.Errorf("bomb at (%v, %v), want reticle (%v, %v)", b.X, b.Y, p.TargetX, p.TargetY)
	}
	if p.BombCooldown != BombCooldown {
		t.Errorf("cooldown = %d", p.BombCooldown)
	}

	// Held without a new press never launches
	held := updateCtx(input.Hold(input.Bomb), sound)
	for i := 0; i < 2*BombCooldown; i++ {
		p.Update(held)
	}
	if len(p.Bombs) != 1 || sound.Count(audio.BombLaunch) != 1 {
		t.Errorf("bombs = %d, cues = %d, want 1 each", len(p.Bombs), sound.Count(audio.BombLaunch))
	}

	// Bombs are not advanced by the player
	if p.Bombs[0].Y != p.TargetY {
		t.Errorf("bomb moved to y=%v during player update", p.Bombs[0].Y)
	}
}

func TestPlayerBombCooldown(t *testing.T) {
	p := NewPlayer(testScreen)
	p.Update(updateCtx(input.Press(input.Bomb), nil))
	p.Update(updateCtx(input.Press(input.Bomb), nil))
	if len(p.Bombs) != 1 {
		t.Errorf("bombs = %d, second press during cooldown should be ignored", len(p.Bombs))
	}
}

func TestPlayerClamping(t *testing.T) {
	moves := []input.Button{input.Left, input.Right, input.Up, input.Down}
	r := newRand()
	p := NewPlayer(testScreen)

	for i := 0; i < 2000; i++ {
		var held []input.Button
		for _, b := range moves {
			if r.Intn(2) == 0 {
				held = append(held, b)
			}
		}
		p.Update(updateCtx(input.Hold(held...), nil))

		if p.X < 8 || p.X > 256-24 || p.Y < 16 || p.Y > 192-24 {
			t.Fatalf("frame %d: player at (%v, %v) outside margins", i, p.X, p.Y)
		}
		if p.TargetX != p.X+8 || p.TargetY != p.Y-32 {
			t.Fatalf("frame %d: reticle (%v, %v) not offset from (%v, %v)", i, p.TargetX, p.TargetY, p.X, p.Y)
		}
	}
}

func TestPlayerStopsAtEdges(t *testing.T) {
	tests := []struct {
		name   string
		button input.Button
		x, y   float64
		wantX  float64
		wantY  float64
	}{
		{name: "left", button: input.Left, x: 9, y: 100, wantX: 8, wantY: 100},
		{name: "right", button: input.Right, x: 231, y: 100, wantX: 232, wantY: 100},
		{name: "up", button: input.Up, x: 100, y: 17, wantX: 100, wantY: 16},
		{name: "down", button: input.Down, x: 100, y: 167, wantX: 100, wantY: 168},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(testScreen)
			p.X, p.Y = tt.x, tt.y
			p.Update(updateCtx(input.Hold(tt.button), nil))
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("moved to (%v, %v), want (%v, %v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPlayerMoveAxisIndependent(t *testing.T) {
	p := NewPlayer(testScreen)
	x, y := p.X, p.Y
	p.Update(updateCtx(input.Hold(input.Left, input.Up), nil))
	if p.X != x-PlayerSpeed || p.Y != y-PlayerSpeed {
		t.Errorf("diagonal move = (%v, %v), want full speed on both axes", p.X-x, p.Y-y)
	}
}

func TestTakeDamage(t *testing.T) {
	sound := &audiotest.Recorder{}
	p := NewPlayer(testScreen)

	if !p.TakeDamage(sound) {
		t.Fatal("first hit should land")
	}
	if p.Lives != 2 || p.Invincible != InvincibleTime {
		t.Errorf("lives=%d invincible=%d", p.Lives, p.Invincible)
	}
	if p.TakeDamage(sound) {
		t.Error("hit while invincible should be ignored")
	}
	if p.Lives != 2 || sound.Count(audio.Damage) != 1 {
		t.Errorf("lives=%d damage cues=%d", p.Lives, sound.Count(audio.Damage))
	}

	for i := 0; i < InvincibleTime; i++ {
		p.Update(updateCtx(input.Input{}, nil))
	}
	if !p.TakeDamage(nil) || p.Lives != 1 {
		t.Errorf("hit after invincibility expired: lives=%d", p.Lives)
	}
}

func TestRemoveShot(t *testing.T) {
	p := NewPlayer(testScreen)
	a, b := NewShot(1, 1), NewShot(2, 2)
	p.Shots = append(p.Shots, a, b)
	if !p.RemoveShot(a) || p.RemoveShot(a) {
		t.Error("RemoveShot should succeed once")
	}
	if len(p.Shots) != 1 || p.Shots[0] != b {
		t.Errorf("remaining shots = %v", p.Shots)
	}
}

func TestPlayerDrawBlinks(t *testing.T) {
	p := NewPlayer(testScreen)
	rec := &drawtest.Recorder{}
	ctx := DrawContext{Surface: rec, Screen: testScreen, Rand: newRand()}

	p.Draw(ctx)
	visible := rec.Count("rect")
	if visible != 3 {
		t.Fatalf("rects = %d, want body and two wings", visible)
	}

	// 5 % 8 >= 4: hidden frame
	p.Invincible = 5
	rec.Reset()
	p.Draw(ctx)
	if rec.Count("rect") != 0 {
		t.Error("craft should be hidden on a blink-off frame")
	}
	if rec.Count("rectb") != 1 {
		t.Error("reticle should always be drawn")
	}
}
