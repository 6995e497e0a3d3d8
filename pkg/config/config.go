package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📄 Target identifies one resource list page to patch
type Target struct {
	// Path is the page file location, relative to Root
	Path string `json:"path" yaml:"path"`
	// Name is the PascalCase component name (e.g. "Jobs"), used in derived
	// identifiers like currentJobs
	Name string `json:"name" yaml:"name"`
	// Var is the camelCase binding of the item array (e.g. "jobs")
	Var string `json:"var" yaml:"var"`
	// ImportDepth is the number of parent-directory segments in the
	// Pagination component import. Zero means "use the lookup table".
	ImportDepth int `json:"import_depth,omitempty" yaml:"import_depth,omitempty"`
}

// 📚 Config represents the complete configuration
type Config struct {
	// Root is the directory all target paths are resolved against
	Root    string   `json:"root" yaml:"root"`
	Targets []Target `json:"targets" yaml:"targets"`
}

// 🗺️ importDepths maps component names to their Pagination import depth.
// Nodes.tsx sits one directory level higher than every other list page,
// so its relative import is one segment shorter.
var importDepths = map[string]int{
	"Nodes": 2,
}

// defaultImportDepth applies to every page nested under a resource group
// directory (pages/<group>/<resource>/<Name>.tsx).
const defaultImportDepth = 3

// 🔍 DepthFor returns the Pagination import depth for a component name
func DepthFor(name string) int {
	if d, ok := importDepths[name]; ok {
		return d
	}
	return defaultImportDepth
}

// 🔒 AbsPath resolves a target path against the config root
func (c *Config) AbsPath(t Target) string {
	return filepath.Join(c.Root, t.Path)
}

// ✅ Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Root == "" {
		return errors.New("root is required")
	}
	if len(c.Targets) == 0 {
		return errors.New("at least one target is required")
	}
	seen := make(map[string]bool, len(c.Targets))
	for i, t := range c.Targets {
		if t.Path == "" {
			return errors.Errorf("target %d: path is required", i)
		}
		if t.Name == "" {
			return errors.Errorf("target %d (%s): name is required", i, t.Path)
		}
		if t.Var == "" {
			return errors.Errorf("target %d (%s): var is required", i, t.Path)
		}
		if t.ImportDepth < 0 {
			return errors.Errorf("target %d (%s): import_depth must not be negative", i, t.Path)
		}
		if seen[t.Path] {
			return errors.Errorf("target %d: duplicate path %s", i, t.Path)
		}
		seen[t.Path] = true
	}
	return nil
}

// 🔧 normalize fills in defaults for fields the file may omit
func (c *Config) normalize() {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	for i := range c.Targets {
		if c.Targets[i].ImportDepth == 0 {
			c.Targets[i].ImportDepth = DepthFor(c.Targets[i].Name)
		}
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
