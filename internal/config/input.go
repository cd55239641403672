package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpgo/usdfmt/internal/currency"
	"github.com/rpgo/usdfmt/internal/localization"
	"gopkg.in/yaml.v3"
)

// Configuration controls how values are decorated and which phrases are used.
type Configuration struct {
	Symbol      string `yaml:"symbol"`
	Suffix      string `yaml:"suffix"`
	Placeholder string `yaml:"placeholder"`
	// PhrasesFile is resolved relative to the configuration file.
	PhrasesFile string               `yaml:"phrases_file"`
	Phrases     localization.Phrases `yaml:"phrases"`
}

// Default returns the configuration used when no file is given.
func Default() *Configuration {
	return &Configuration{
		Symbol:      currency.DefaultSymbol,
		Suffix:      currency.DefaultSuffix,
		Placeholder: currency.DefaultPlaceholder,
	}
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.applyDefaults()
	if config.PhrasesFile != "" && !filepath.IsAbs(config.PhrasesFile) {
		config.PhrasesFile = filepath.Join(filepath.Dir(filename), config.PhrasesFile)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// applyDefaults fills empty fields. An empty value in the file counts as absent.
func (c *Configuration) applyDefaults() {
	d := Default()
	if c.Symbol == "" {
		c.Symbol = d.Symbol
	}
	if c.Suffix == "" {
		c.Suffix = d.Suffix
	}
	if c.Placeholder == "" {
		c.Placeholder = d.Placeholder
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if strings.TrimSpace(config.Symbol) == "" {
		return fmt.Errorf("symbol cannot be blank")
	}
	if strings.ContainsAny(config.Symbol+config.Suffix, "\r\n") {
		return fmt.Errorf("symbol and suffix must be single line")
	}
	for k, v := range config.Phrases {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("phrase %q has an empty value", k)
		}
	}
	if config.PhrasesFile != "" {
		if _, err := os.Stat(config.PhrasesFile); err != nil {
			return fmt.Errorf("phrases file: %w", err)
		}
	}
	return nil
}

// LoadPhrases resolves the effective table: the embedded default, then the
// phrases file, then inline phrases.
func (c *Configuration) LoadPhrases() (localization.Phrases, error) {
	layers := []localization.Phrases{}
	if c.PhrasesFile != "" {
		p, err := localization.NewLoader().LoadFromFile(c.PhrasesFile)
		if err != nil {
			return nil, err
		}
		layers = append(layers, p)
	}
	if len(c.Phrases) > 0 {
		layers = append(layers, c.Phrases)
	}
	return localization.Merge(localization.Default(), layers...), nil
}

// Options converts the configuration to formatter options.
func (c *Configuration) Options() []currency.Option {
	return []currency.Option{
		currency.WithSymbol(c.Symbol),
		currency.WithSuffix(c.Suffix),
		currency.WithPlaceholder(c.Placeholder),
	}
}
