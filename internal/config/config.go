package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nestoca/envlinks/internal/actions"
	"github.com/nestoca/envlinks/internal/envlinks"
)

const rcFile = ".envlinksrc"

type Config struct {
	// Environments maps environment names to their host, in the order links are rendered for them.
	// The first one is the default environment. Hosts may be templates (see links.TemplateData).
	Environments envlinks.Environments `yaml:"environments,omitempty"`

	// Repository is the GitHub repository of pull requests, in owner/repo form.
	// Optional, defaults to the repository of the working directory.
	Repository string `yaml:"repository,omitempty"`

	// MinVersion is the minimum version of envlinks required by the project.
	MinVersion string `yaml:"minVersion,omitempty"`

	// FilePath is the path to the config file that was loaded, if any.
	FilePath string `yaml:"-"`
}

// Load loads config from the .envlinksrc file of given configDir. If no configDir is specified, the file is looked
// up in the working directory and then in the user home. A missing file results in an empty config.
func Load(configDir string) (*Config, error) {
	var candidates []string
	if configDir != "" {
		candidates = append(candidates, filepath.Join(configDir, rcFile))
	} else {
		workDir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		candidates = append(candidates, filepath.Join(workDir, rcFile))

		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		candidates = append(candidates, filepath.Join(homeDir, rcFile))
	}

	for _, path := range candidates {
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("checking for %s: %w", path, err)
		}
		return LoadFile(path)
	}

	// It's ok if config file does not exist, environments can still come from flags or variables
	return &Config{}, nil
}

func LoadFile(file string) (*Config, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", file, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling %s: %w", file, err)
	}
	cfg.FilePath = file
	return &cfg, nil
}

// ResolveEnvironments returns the environments to generate links for, from the first source defining them:
// given flag value, the ENVIRONMENTS action input, the ENVIRONMENTS variable and finally the config file.
// Flag and variables hold a JSON object of environment names to hosts.
func (c *Config) ResolveEnvironments(flagValue string) (envlinks.Environments, error) {
	sources := []struct {
		name  string
		value string
	}{
		{name: "--environments flag", value: flagValue},
		{name: "INPUT_ENVIRONMENTS variable", value: actions.Input("ENVIRONMENTS")},
		{name: "ENVIRONMENTS variable", value: os.Getenv("ENVIRONMENTS")},
	}

	for _, source := range sources {
		if source.value == "" {
			continue
		}
		environments, err := envlinks.ParseEnvironments(source.value)
		if err != nil {
			return nil, fmt.Errorf("reading environments from %s: %w", source.name, err)
		}
		return environments, nil
	}

	return c.Environments, nil
}
