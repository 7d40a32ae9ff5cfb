// Package theme holds the colour themes a panel can be generated with.
// A theme names the panel fill, the border stroke and the label stroke.
// Builtin themes are registered at init; more can be loaded from TOML.
package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Theme is a named panel colour scheme. All colours are "#RRGGBB".
type Theme struct {
	Name   string
	Panel  string // background fill
	Border string // border stroke
	Label  string // label stroke
}

// DefaultName is the theme used when none is configured.
const DefaultName = "toolbox"

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns the named theme. Lookup is case-insensitive.
func Get(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Default returns the toolbox theme.
func Default() Theme {
	t, _ := Get(DefaultName)
	return t
}

// Names returns all registered theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register validates t and adds it to the registry, replacing any theme
// with the same (case-insensitive) name.
func Register(t Theme) error {
	if err := Validate(t); err != nil {
		return err
	}
	thRegister(t)
	return nil
}

// Validate checks that t has a name and that every colour is "#RRGGBB".
func Validate(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	for _, f := range []struct{ field, value string }{
		{"panel", t.Panel},
		{"border", t.Border},
		{"label", t.Label},
	} {
		if f.value == "" {
			return fmt.Errorf("theme: missing required field %q", f.field)
		}
		if !IsHexColor(f.value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", f.value, f.field)
		}
	}
	return nil
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
