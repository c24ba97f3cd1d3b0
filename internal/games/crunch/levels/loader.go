// Package levels loads level definitions for Cookie Crunch.
// It depends on the board package for tile masks; the board does not know
// about level files.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/cookie-crunch/internal/games/crunch/board"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no level has the requested ID.
var ErrNotFound = errors.New("level not found")

// Level is a playable layout plus its goals.
type Level struct {
	ID          string
	Name        string
	Tiles       [][]int // Top row first, 1 = playable
	TargetScore int
	Moves       int // 0 means use the configured default
	FilePath    string
}

// Mask builds the board tile mask for the level.
func (l *Level) Mask() (board.TileMask, error) {
	return board.NewTileMask(l.Tiles)
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// fileLevel is the on-disk shape. JSON files use camelCase keys and YAML
// files may use snake_case.
type fileLevel struct {
	ID               string  `yaml:"id"`
	Name             string  `yaml:"name"`
	Tiles            [][]int `yaml:"tiles"`
	TargetScore      int     `yaml:"targetScore"`
	TargetScoreSnake int     `yaml:"target_score"`
	Moves            int     `yaml:"moves"`
}

// Parse decodes a level file. JSON is read by the YAML decoder since it is a
// subset of YAML. The fallback ID is used when the file declares none.
func Parse(data []byte, fallbackID string) (Level, error) {
	var fl fileLevel
	if err := yaml.Unmarshal(data, &fl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	lvl := Level{
		ID:          fl.ID,
		Name:        fl.Name,
		Tiles:       fl.Tiles,
		TargetScore: fl.TargetScore,
		Moves:       fl.Moves,
	}
	if lvl.ID == "" {
		lvl.ID = fallbackID
	}
	if lvl.TargetScore == 0 {
		lvl.TargetScore = fl.TargetScoreSnake
	}

	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// Validate checks that the level can be turned into a board.
func (l *Level) Validate() error {
	var errs []error
	if l.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if l.TargetScore < 0 {
		errs = append(errs, fmt.Errorf("negative target score %d", l.TargetScore))
	}
	if l.Moves < 0 {
		errs = append(errs, fmt.Errorf("negative moves %d", l.Moves))
	}
	if _, err := l.Mask(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("level %q: %w", l.ID, errors.Join(errs...))
	}
	return nil
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files, sorted by ID.
// A malformed file fails the whole load.
func (l *Loader) LoadAll() ([]Level, error) {
	levels, err := loadFS(os.DirFS(l.Root), ".")
	if err != nil {
		return nil, fmt.Errorf("loading levels from %s: %w", l.Root, err)
	}
	for i := range levels {
		levels[i].FilePath = path.Join(l.Root, levels[i].FilePath)
	}
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(file string) (Level, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", file, err)
	}
	if !isSupportedExtension(ext(file)) {
		return Level{}, fmt.Errorf("parsing file %s: unsupported extension %q", file, ext(file))
	}

	lvl, err := Parse(data, stem(file))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", file, err)
	}
	lvl.FilePath = file
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return find(levels, id)
}

func loadFS(fsys fs.FS, root string) ([]Level, error) {
	var levels []Level
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(ext(p)) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading file %s: %w", p, err)
		}
		lvl, err := Parse(data, stem(p))
		if err != nil {
			return fmt.Errorf("parsing file %s: %w", p, err)
		}
		if prev, dup := seen[lvl.ID]; dup {
			return fmt.Errorf("duplicate level id %q in %s and %s", lvl.ID, prev, p)
		}
		seen[lvl.ID] = p
		lvl.FilePath = p

		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

func find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func ids(levels []Level) []string {
	out := make([]string, len(levels))
	for i, lvl := range levels {
		out[i] = lvl.ID
	}
	return out
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

func isSupportedExtension(e string) bool {
	for _, supported := range FormatExtensions() {
		if e == supported {
			return true
		}
	}
	return false
}

func ext(p string) string {
	return strings.ToLower(path.Ext(p))
}

func stem(p string) string {
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}
