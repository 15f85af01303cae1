// Package audio plays the game's sound effects.
//
// Effects are synthesized, so no asset files are needed. Audio is optional:
// a SoundManager that failed to initialize silently ignores every call.
package audio

// Effect identifies a sound.
type Effect int

const (
	FireBullet Effect = iota
	AsteroidBreak
	ShipCrash
	GameStart
	LevelUp
	Background // Loops until stopped
)

var effectNames = [...]string{
	FireBullet:    "fire_bullet",
	AsteroidBreak: "asteroid_break",
	ShipCrash:     "ship_crash",
	GameStart:     "game_start",
	LevelUp:       "level_up",
	Background:    "background",
}

func (e Effect) String() string {
	if e < 0 || int(e) >= len(effectNames) {
		return "unknown"
	}
	return effectNames[e]
}

// Loops reports whether the effect repeats until stopped.
func (e Effect) Loops() bool {
	return e == Background
}

// Silent discards every effect. Used where there is no local speaker,
// e.g. SSH sessions.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Effect) {}

// Stop does nothing.
func (Silent) Stop(Effect) {}
