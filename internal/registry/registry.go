// Package registry provides a global registry of color themes.
// Themes register themselves in init() functions, so the frontend and CLI
// can list and select them by ID without hardcoded tables.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// Theme maps engine piece colors and board chrome to terminal colors.
type Theme struct {
	ID     string
	Title  string
	Pieces [blockfall.NumColors + 1]core.Color // Index 0 colors the empty-cell dots
	Border core.Color
	Text   core.Color
	Accent core.Color // Score and banners
}

// Color returns the terminal color for an engine color ID.
// Out-of-range IDs fall back to the default color.
func (t Theme) Color(id blockfall.ColorID) core.Color {
	if int(id) >= len(t.Pieces) {
		return core.ColorDefault
	}
	return t.Pieces[id]
}

// WithPalette returns a copy of t whose seven piece colors are replaced by
// the named colors, in order.
func (t Theme) WithPalette(names []string) (Theme, error) {
	if len(names) != blockfall.NumColors {
		return t, fmt.Errorf("registry: palette needs %d colors, got %d", blockfall.NumColors, len(names))
	}
	for i, name := range names {
		c, ok := core.ParseColor(name)
		if !ok {
			return t, fmt.Errorf("registry: unknown color %q", name)
		}
		t.Pieces[i+1] = c
	}
	t.ID += "+custom"
	return t, nil
}

// ThemeInfo contains metadata about a registered theme.
type ThemeInfo struct {
	ID    string
	Title string
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Panics if a theme with the same ID is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("registry: theme %q already registered", t.ID))
	}
	themes[t.ID] = t
}

// List returns information about all registered themes, sorted by ID.
func List() []ThemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ThemeInfo, 0, len(themes))
	for id, t := range themes {
		result = append(result, ThemeInfo{ID: id, Title: t.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a theme by its ID.
func Get(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("registry: unknown theme %q", id)
	}
	return t, nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}
