package levels

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed builtin/*.json builtin/*.yaml
var builtinFS embed.FS

var (
	builtinOnce   sync.Once
	builtinLevels []Level
	builtinErr    error
)

// Builtin returns the levels shipped with the binary, sorted by ID.
func Builtin() ([]Level, error) {
	builtinOnce.Do(func() {
		builtinLevels, builtinErr = loadFS(builtinFS, "builtin")
		if builtinErr != nil {
			builtinErr = fmt.Errorf("loading builtin levels: %w", builtinErr)
		}
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	out := make([]Level, len(builtinLevels))
	copy(out, builtinLevels)
	return out, nil
}

// BuiltinByID returns a shipped level by ID.
func BuiltinByID(id string) (Level, error) {
	levels, err := Builtin()
	if err != nil {
		return Level{}, err
	}
	return find(levels, id)
}

// Resolve looks a level up in the directory when one is given, otherwise
// among the builtin levels.
func Resolve(dir, id string) (Level, error) {
	if dir != "" {
		return NewLoader(dir).LoadByID(id)
	}
	return BuiltinByID(id)
}

// All lists the levels of dir, or the builtin ones when dir is empty.
func All(dir string) ([]Level, error) {
	if dir != "" {
		return NewLoader(dir).LoadAll()
	}
	return Builtin()
}
