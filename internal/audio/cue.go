// Package audio plays the game's sound cues. Cue definitions come from an
// optional TOML bundle or from the built-in bank, and are synthesized with beep.
package audio

// Cue names one of the fixed game sounds.
type Cue int

const (
	Fire Cue = iota
	BombLaunch
	Kill
	Explosion
	Damage
	cueCount
)

var cueNames = [cueCount]string{"fire", "bomb", "kill", "explosion", "damage"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// ParseCue returns the cue with the given bundle name.
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}

// Cues returns every cue in declaration order.
func Cues() []Cue {
	cues := make([]Cue, cueCount)
	for i := range cues {
		cues[i] = Cue(i)
	}
	return cues
}

// Player triggers cues. Play must not block.
type Player interface {
	Play(c Cue)
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play implements Player.
func (Nop) Play(Cue) {}
