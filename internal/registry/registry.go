// Package registry holds the tracked-project keyword registry. It is
// loaded once at startup and treated as read-only by the attribution and
// merge layers.
package registry

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project is one tracked entity.
type Project struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Slug derives the natural key used for persistence: lowercase with
// spaces replaced by underscores.
func (p Project) Slug() string {
	return strings.ReplaceAll(strings.ToLower(p.Name), " ", "_")
}

// Registry is the full immutable project set.
type Registry struct {
	Projects []Project `yaml:"projects"`
}

// Load reads a registry from a YAML file, falling back to the built-in
// default when path is empty. The result is validated; a structurally
// invalid registry is the one fatal startup condition.
func Load(path string) (*Registry, error) {
	if path == "" {
		r := Default()
		if err := r.Validate(); err != nil {
			return nil, err
		}
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}
	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("registry %s: %w", path, err)
	}
	return &r, nil
}

// Validate checks structural integrity once at startup.
func (r *Registry) Validate() error {
	seen := make(map[string]string, len(r.Projects))
	for _, p := range r.Projects {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("project with empty name")
		}
		if len(p.Keywords) == 0 {
			return fmt.Errorf("project %q has no keywords", p.Name)
		}
		slug := p.Slug()
		if other, dup := seen[slug]; dup {
			return fmt.Errorf("projects %q and %q share slug %q", other, p.Name, slug)
		}
		seen[slug] = p.Name
	}
	return nil
}

// KeywordsByProject returns the project-name to keyword-list mapping
// consumed by the attribution engine.
func (r *Registry) KeywordsByProject() map[string][]string {
	out := make(map[string][]string, len(r.Projects))
	for _, p := range r.Projects {
		out[p.Name] = p.Keywords
	}
	return out
}
