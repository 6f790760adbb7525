// Package icons maps country and currency codes to flag image resources.
package icons

import (
	"fmt"
	"os"
	"strings"

	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
	"github.com/skogge/CountryCurrencyPicker/internal/core/ports/platform"
	"gopkg.in/yaml.v3"
)

// Resolver builds resource keys as prefix + lower-cased code ("flag_us",
// "flag_usd"). When a manifest of available keys is loaded, keys missing from
// it resolve to the fallback.
type Resolver struct {
	prefix    string
	fallback  domain.Icon
	available map[string]struct{}
}

var _ platform.IconResolver = (*Resolver)(nil)

// Manifest lists the icon resources an application ships.
type Manifest struct {
	Icons []string `yaml:"icons"`
}

// NewResolver creates a resolver. A nil manifest accepts every key.
func NewResolver(prefix, fallback string, manifest *Manifest) *Resolver {
	r := &Resolver{prefix: prefix, fallback: domain.Icon(fallback)}
	if manifest != nil {
		r.available = make(map[string]struct{}, len(manifest.Icons))
		for _, key := range manifest.Icons {
			r.available[strings.ToLower(strings.TrimSpace(key))] = struct{}{}
		}
	}
	return r
}

// Resolve returns the icon for code.
func (r *Resolver) Resolve(code string) domain.Icon {
	key := r.prefix + strings.ToLower(strings.TrimSpace(code))
	if r.available == nil {
		return domain.Icon(key)
	}
	if _, ok := r.available[key]; !ok {
		return r.fallback
	}
	return domain.Icon(key)
}

// LoadManifest reads a YAML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read icon manifest %s: %w", path, err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse icon manifest %s: %w", path, err)
	}
	return &manifest, nil
}
