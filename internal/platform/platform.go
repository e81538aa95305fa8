// Package platform defines the capabilities the game core calls into:
// drawing, sound, frame timing and input. Frontends implement them; tests
// substitute fakes.
package platform

import "riktris/internal/piece"

// Renderer places sprites and text. Coordinates are in playfield cells; the
// implementation decides how a cell maps to pixels or characters.
type Renderer interface {
	DrawSprite(id SpriteID, x, y, alpha float64)
	DrawText(x, y float64, text string)
}

// Audio plays a sound and forgets about it.
type Audio interface {
	PlaySound(id SoundID)
}

// Clock is the only time source: seconds since the previous frame.
type Clock interface {
	ElapsedSinceLastFrame() float64
}

// Input answers per-frame key queries. IsKeyPressed is true only on the frame
// the key went down.
type Input interface {
	IsKeyDown(a Action) bool
	IsKeyPressed(a Action) bool
}

// Action is a logical key.
type Action int

const (
	ActionRotate Action = iota
	ActionRotateCCW
	ActionHardDrop
	ActionLeft
	ActionRight
	ActionSoftDrop
	ActionPause
	ActionConfirm
	ActionRestart
	ActionQuit

	NumActions
)

var actionNames = [NumActions]string{
	"rotate", "rotate-ccw", "hard-drop", "left", "right", "soft-drop",
	"pause", "confirm", "restart", "quit",
}

func (a Action) String() string {
	if a < 0 || a >= NumActions {
		return "unknown"
	}
	return actionNames[a]
}

// SpriteID identifies a drawable. Minos and ghosts are indexed by shape.
type SpriteID int

const (
	spriteMinoBase  SpriteID = 0
	spriteGhostBase SpriteID = piece.NumShapes
	SpriteWall      SpriteID = 2 * piece.NumShapes

	NumSprites = SpriteWall + 1
)

// MinoSprite is the block sprite for a locked or active cell of shape s.
func MinoSprite(s piece.Shape) SpriteID {
	return spriteMinoBase + SpriteID(s)
}

// GhostSprite is the translucent landing-preview sprite for shape s.
func GhostSprite(s piece.Shape) SpriteID {
	return spriteGhostBase + SpriteID(s)
}

// Shape returns the shape a mino or ghost sprite belongs to.
func (id SpriteID) Shape() (piece.Shape, bool) {
	switch {
	case id >= spriteMinoBase && id < spriteGhostBase:
		return piece.Shape(id - spriteMinoBase), true
	case id >= spriteGhostBase && id < SpriteWall:
		return piece.Shape(id - spriteGhostBase), true
	}
	return 0, false
}

// IsGhost reports whether id is a ghost sprite.
func (id SpriteID) IsGhost() bool {
	return id >= spriteGhostBase && id < SpriteWall
}

// SoundID identifies a sound effect.
type SoundID int

const (
	SoundMove SoundID = iota
	SoundRotate
	SoundLock
	SoundHardDrop
	SoundLineClear
	SoundTetris
	SoundLevelUp
	SoundGameOver

	NumSounds
)

var soundNames = [NumSounds]string{
	"move", "rotate", "lock", "hard-drop", "line-clear", "tetris", "level-up", "game-over",
}

func (s SoundID) String() string {
	if s < 0 || s >= NumSounds {
		return "unknown"
	}
	return soundNames[s]
}

// NopAudio discards every sound. Used when audio is muted or unavailable.
type NopAudio struct{}

func (NopAudio) PlaySound(SoundID) {}

// NopInput never reports a key.
type NopInput struct{}

func (NopInput) IsKeyDown(Action) bool    { return false }
func (NopInput) IsKeyPressed(Action) bool { return false }
