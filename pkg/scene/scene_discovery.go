package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`        // Lookup key
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
	Spheres     int    `json:"spheres"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

type builtinScene struct {
	description string
	create      func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {"Two spheres with a directional light from the upper left", NewDefaultScene},
	"single":  {"One unit sphere on the view axis", NewSingleSphereScene},
	"empty":   {"No geometry, background only", NewEmptyScene},
}

// Create returns a fresh copy of the named built-in scene
func Create(name string) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return builtin.create(), nil
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for every built-in scene, sorted by name
func ListScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		builtin := builtinScenes[name]
		s := builtin.create()
		scenes = append(scenes, SceneInfo{
			Name:        name,
			DisplayName: titleCase(name),
			Description: builtin.description,
			Spheres:     len(s.Spheres),
			Width:       s.Width,
			Height:      s.Height,
		})
	}
	return scenes
}

// titleCase converts a scene name like "single-sphere" to "Single Sphere"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
