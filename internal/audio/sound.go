package audio

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Sound is a cue definition in the tracker style of small retro engines:
// a note sequence with per-note tone, volume and effect letters. When a
// letter string is shorter than the note list its last letter repeats.
//
//	tones:   t triangle, s square, p pulse, n noise
//	volumes: 0-7
//	effects: n none, s slide, v vibrato, f fade out
//	speed:   note length in 1/120 s
type Sound struct {
	Notes   string `toml:"notes"`
	Tones   string `toml:"tones"`
	Volumes string `toml:"volumes"`
	Effects string `toml:"effects"`
	Speed   int    `toml:"speed"`
}

// Validate checks that every letter string parses.
func (s Sound) Validate() error {
	if _, err := ParseNotes(s.Notes); err != nil {
		return err
	}
	if s.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %d", s.Speed)
	}
	for _, t := range s.Tones {
		switch t {
		case 't', 's', 'p', 'n':
		default:
			return fmt.Errorf("invalid tone %q", t)
		}
	}
	for _, v := range s.Volumes {
		if v < '0' || v > '7' {
			return fmt.Errorf("invalid volume %q", v)
		}
	}
	for _, e := range s.Effects {
		switch e {
		case 'n', 's', 'v', 'f':
		default:
			return fmt.Errorf("invalid effect %q", e)
		}
	}
	return nil
}

// Bank holds one Sound per cue.
type Bank [cueCount]Sound

// Sound returns the definition for c.
func (b Bank) Sound(c Cue) Sound {
	return b[c]
}

// DefaultBank returns the built-in cue definitions used when no bundle is
// available.
func DefaultBank() Bank {
	var b Bank
	b[Fire] = Sound{Notes: "c3e3g3c4", Tones: "t", Volumes: "7", Effects: "f", Speed: 10}
	b[BombLaunch] = Sound{Notes: "f2c3f3c4", Tones: "n", Volumes: "6", Effects: "f", Speed: 20}
	b[Kill] = Sound{Notes: "a3e4a4", Tones: "n", Volumes: "5", Effects: "f", Speed: 15}
	b[Explosion] = Sound{Notes: "c2g2c3g3", Tones: "n", Volumes: "4", Effects: "f", Speed: 30}
	b[Damage] = Sound{Notes: "f1c2f2", Tones: "n", Volumes: "3", Effects: "f", Speed: 40}
	return b
}

// bundle is the TOML layout of a sound bundle:
//
//	[sounds.fire]
//	notes = "c3e3g3c4"
//	tones = "t"
//	volumes = "7"
//	effects = "f"
//	speed = 10
type bundle struct {
	Sounds map[string]Sound `toml:"sounds"`
}

// ErrNoBundle is returned by LoadBank when no bundle path is configured.
var ErrNoBundle = errors.New("no sound bundle configured")

// LoadBank reads a sound bundle. Cues missing from the file keep their
// built-in definition; unknown cue names and invalid definitions are errors.
func LoadBank(path string) (Bank, error) {
	bank := DefaultBank()
	if path == "" {
		return bank, ErrNoBundle
	}

	var b bundle
	if _, err := toml.DecodeFile(path, &b); err != nil {
		return bank, fmt.Errorf("decode sound bundle %s: %w", path, err)
	}

	for name, sound := range b.Sounds {
		cue, ok := ParseCue(name)
		if !ok {
			return DefaultBank(), fmt.Errorf("sound bundle %s: unknown cue %q", path, name)
		}
		if err := sound.Validate(); err != nil {
			return DefaultBank(), fmt.Errorf("sound bundle %s: cue %s: %w", path, name, err)
		}
		bank[cue] = sound
	}
	return bank, nil
}

// LoadBankOrDefault loads the bundle at path and falls back to the built-in
// bank on any failure.
func LoadBankOrDefault(path string, logger *log.Logger) Bank {
	bank, err := LoadBank(path)
	switch {
	case err == nil:
		logger.Info("loaded sound bundle", "path", path)
	case errors.Is(err, ErrNoBundle):
		logger.Debug("using built-in sounds")
	default:
		logger.Warn("sound bundle unavailable, using built-in sounds", "err", err)
	}
	return bank
}
