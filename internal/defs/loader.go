// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Default returns the library built from the embedded definitions. It is
// parsed once per process and shared.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		defaultLib, defaultErr = Parse(defaultGameYAML)
	})
	return defaultLib, defaultErr
}

// Parse decodes, indexes and validates a YAML definitions document.
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}
	if err := lib.index(); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}
	return &lib, nil
}

// Load загружает определения.
// Порядок поиска: customPath -> ~/.pathdefense/game.yaml -> ./configs/game.yaml -> встроенные.
func Load(customPath string) (*Library, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read definitions file %s: %w", customPath, err)
		}
		lib, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", customPath, err)
		}
		return lib, nil
	}

	if userPath := userConfigPath("game.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if lib, err := Parse(data); err == nil {
				return lib, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "game.yaml")); err == nil {
		if lib, err := Parse(data); err == nil {
			return lib, nil
		}
	}

	return Default()
}

// DefaultYAML returns the embedded definitions, e.g. to seed a user file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultGameYAML...)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pathdefense", filename)
}
