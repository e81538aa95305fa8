package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riktris/internal/game"
	"riktris/internal/platform"
	"riktris/internal/state"
)

type recordingScene struct {
	name    string
	updates int
	log     *[]string
}

func (s *recordingScene) Name() string           { return s.name }
func (s *recordingScene) Update(float64)         { s.updates++ }
func (s *recordingScene) Draw(platform.Renderer) { *s.log = append(*s.log, s.name) }

type keys map[platform.Action]bool

func (k keys) IsKeyDown(a platform.Action) bool    { return k[a] }
func (k keys) IsKeyPressed(a platform.Action) bool { return k[a] }

type nopRenderer struct{ texts []string }

func (nopRenderer) DrawSprite(platform.SpriteID, float64, float64, float64) {}
func (r *nopRenderer) DrawText(_, _ float64, text string)                   { r.texts = append(r.texts, text) }

func TestStack_PushPop(t *testing.T) {
	var drawn []string
	a := &recordingScene{name: "a", log: &drawn}
	b := &recordingScene{name: "b", log: &drawn}
	s := NewStack(a)

	s.Push(b)
	assert.Equal(t, 2, s.Len())
	assert.Same(t, b, s.Top())

	s.Pop()
	assert.Same(t, a, s.Top())

	s.Pop()
	assert.Equal(t, 1, s.Len(), "the last scene stays")
	assert.Same(t, a, s.Top())
}

func TestStack_ZeroValue(t *testing.T) {
	var drawn []string
	var s Stack
	assert.Nil(t, s.Top())
	assert.NotPanics(t, func() {
		s.Update(0.1)
		s.Draw(&nopRenderer{})
	})

	a := &recordingScene{name: "a", log: &drawn}
	s.Push(a)
	s.Pop()
	assert.Same(t, a, s.Top(), "the first pushed scene stays")
	s.Update(0.1)
	assert.Equal(t, 1, a.updates)
}

func TestStack_UpdatesTopOnly(t *testing.T) {
	var drawn []string
	a := &recordingScene{name: "a", log: &drawn}
	b := &recordingScene{name: "b", log: &drawn}
	s := NewStack(a)
	s.Push(b)

	s.Update(0.1)
	s.Update(0.1)
	assert.Equal(t, 0, a.updates)
	assert.Equal(t, 2, b.updates)
}

func TestStack_DrawsBottomUp(t *testing.T) {
	var drawn []string
	s := NewStack(&recordingScene{name: "a", log: &drawn})
	s.Push(&recordingScene{name: "b", log: &drawn})
	s.Push(&recordingScene{name: "c", log: &drawn})

	s.Draw(&nopRenderer{})
	assert.Equal(t, []string{"a", "b", "c"}, drawn)
}

func TestStack_SwitchTo(t *testing.T) {
	var drawn []string
	s := NewStack(&recordingScene{name: "a", log: &drawn})
	s.Push(&recordingScene{name: "b", log: &drawn})

	c := &recordingScene{name: "c", log: &drawn}
	s.SwitchTo(c)
	assert.Equal(t, 1, s.Len())
	assert.Same(t, c, s.Top())
}

func newGameplay(t *testing.T, in keys) (*Gameplay, *Stack) {
	t.Helper()
	opts := state.DefaultOptions()
	opts.Seed = 3
	sess, err := game.NewSession(opts, in, nil)
	require.NoError(t, err)

	stack := &Stack{}
	gp := NewGameplay(stack, in, sess)
	stack.Push(gp)
	return gp, stack
}

func TestTitle_ConfirmStartsGame(t *testing.T) {
	in := keys{}
	stack := &Stack{}
	started := 0
	stack.Push(NewTitle(stack, in, func() Scene {
		started++
		return &recordingScene{name: GameplayName, log: new([]string)}
	}))

	stack.Update(0.1)
	assert.Equal(t, TitleName, stack.Top().Name())

	in[platform.ActionConfirm] = true
	stack.Update(0.1)
	assert.Equal(t, 1, started)
	assert.Equal(t, GameplayName, stack.Top().Name())
	assert.Equal(t, 1, stack.Len())
}

func TestGameplay_PauseAndResume(t *testing.T) {
	in := keys{}
	gp, stack := newGameplay(t, in)
	p := gp.Session.CurrentGame.State.Active
	row := p.Row

	in[platform.ActionPause] = true
	stack.Update(0.01)
	require.Equal(t, PauseName, stack.Top().Name())
	delete(in, platform.ActionPause)

	// Time passes only for the pause screen.
	stack.Update(5)
	assert.Equal(t, row, p.Row)

	var r nopRenderer
	stack.Draw(&r)
	assert.Contains(t, r.texts, "PAUSED")
	assert.Contains(t, r.texts, "NEXT", "the game is drawn under the overlay")

	in[platform.ActionConfirm] = true
	stack.Update(0.01)
	assert.Equal(t, GameplayName, stack.Top().Name())
}

func TestGameplay_UpdatesSession(t *testing.T) {
	in := keys{}
	gp, stack := newGameplay(t, in)
	p := gp.Session.CurrentGame.State.Active

	stack.Update(0.85)
	assert.Equal(t, 1, p.Row)
}

func TestGameplay_Restart(t *testing.T) {
	in := keys{}
	gp, stack := newGameplay(t, in)
	first := gp.Session.CurrentGame

	in[platform.ActionRestart] = true
	stack.Update(0.01)
	assert.NotSame(t, first, gp.Session.CurrentGame)
	assert.Equal(t, 2, gp.Session.Games())
}
