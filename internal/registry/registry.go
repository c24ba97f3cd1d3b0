// Package registry maps mode IDs to game factories. Modes register
// themselves from init so the CLI and the SSH server can start them by ID.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/vovakirdan/cookie-crunch/internal/core"
)

// ErrUnknownMode is returned by Create for an ID nobody registered.
var ErrUnknownMode = errors.New("registry: unknown mode")

// Game is a playable mode. It holds pure logic; input mapping, timing and
// terminal output belong to the platform.
type Game interface {
	// ID is the mode identifier used on the command line and in storage.
	ID() string
	Title() string

	// Reset starts a new session with the given seed and screen size.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game.
type Factory func() Game

type entry struct {
	title string
	make  Factory
}

var (
	mu    sync.RWMutex
	modes = map[string]entry{}
)

// Register adds a mode. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := modes[id]; dup {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	modes[id] = entry{title: f().Title(), make: f}
}

// List returns the registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	ids := lo.Keys(modes)
	slices.Sort(ids)
	return lo.Map(ids, func(id string, _ int) GameInfo {
		return GameInfo{ID: id, Title: modes[id].title}
	})
}

// Create starts a new game of the given mode.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	return e.make(), nil
}
