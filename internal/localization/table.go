// Package localization holds the read-only phrase tables used when rendering
// display strings.
package localization

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LessThan is the phrase key used for values below the smallest displayable amount.
const LessThan = "Less than"

// ErrMissingPhrase is returned when a table lacks a required key.
var ErrMissingPhrase = errors.New("missing localized phrase")

//go:embed en.yaml
var defaultPhrases []byte

// Table resolves a phrase key to its localized display string.
type Table interface {
	Lookup(key string) string
}

// Requirer is implemented by tables that can report missing keys up front.
type Requirer interface {
	Require(keys ...string) error
}

// Phrases is a Table backed by a map. It must not be mutated once shared.
type Phrases map[string]string

// Lookup returns the phrase for key, or the key itself when it is absent.
func (p Phrases) Lookup(key string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return key
}

// Require checks every key is present and reports all that are not.
func (p Phrases) Require(keys ...string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := p[k]; !ok {
			missing = append(missing, fmt.Sprintf("%q", k))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingPhrase, strings.Join(missing, ", "))
	}
	return nil
}

// Keys returns the phrase keys in sorted order.
func (p Phrases) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Default returns a fresh copy of the embedded English table.
func Default() Phrases {
	p, err := Parse(defaultPhrases)
	if err != nil {
		// The embedded table is fixed at build time.
		panic(fmt.Sprintf("localization: invalid embedded phrases: %v", err))
	}
	return p
}

// Merge returns a new table with overrides applied on top of base.
func Merge(base Phrases, overrides ...Phrases) Phrases {
	out := make(Phrases, len(base))
	for k, v := range base {
		out[k] = v
	}
	for _, o := range overrides {
		for k, v := range o {
			out[k] = v
		}
	}
	return out
}

// Parse decodes a YAML mapping of phrase key to localized string.
func Parse(data []byte) (Phrases, error) {
	var p Phrases
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse phrases: %w", err)
	}
	if p == nil {
		p = Phrases{}
	}
	for k, v := range p {
		if strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("phrase key cannot be empty")
		}
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("phrase %q has an empty value", k)
		}
	}
	return p, nil
}

// Loader reads phrase tables from disk.
type Loader struct{}

// NewLoader creates a new phrase loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFromFile reads a YAML phrase file.
func (l *Loader) LoadFromFile(filename string) (Phrases, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}
