// Package scene keeps a stack of screens. Only the top screen updates; all of
// them draw, bottom first, so an overlay like the pause screen shows the game
// underneath.
package scene

import (
	"log"

	"riktris/internal/platform"
)

type Scene interface {
	Name() string
	Update(dt float64)
	Draw(r platform.Renderer)
}

// Stack is a scene stack that never becomes empty once a scene is pushed.
// The zero value is an empty stack ready for Push.
type Stack struct {
	scenes []Scene
}

func NewStack(first Scene) *Stack {
	return &Stack{scenes: []Scene{first}}
}

func (s *Stack) Push(sc Scene) {
	log.Printf("scene: push %s", sc.Name())
	s.scenes = append(s.scenes, sc)
}

// Pop removes the top scene. The last scene is never removed.
func (s *Stack) Pop() {
	if len(s.scenes) <= 1 {
		return
	}
	top := s.scenes[len(s.scenes)-1]
	s.scenes[len(s.scenes)-1] = nil
	s.scenes = s.scenes[:len(s.scenes)-1]
	log.Printf("scene: pop %s", top.Name())
}

// SwitchTo replaces the whole stack with sc.
func (s *Stack) SwitchTo(sc Scene) {
	log.Printf("scene: switch to %s", sc.Name())
	clear(s.scenes)
	s.scenes = append(s.scenes[:0], sc)
}

// Top returns the active scene, or nil for an empty stack.
func (s *Stack) Top() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[len(s.scenes)-1]
}

func (s *Stack) Len() int { return len(s.scenes) }

// Update advances the top scene only.
func (s *Stack) Update(dt float64) {
	if top := s.Top(); top != nil {
		top.Update(dt)
	}
}

// Draw draws every scene from the bottom up.
func (s *Stack) Draw(r platform.Renderer) {
	for _, sc := range s.scenes {
		sc.Draw(r)
	}
}
