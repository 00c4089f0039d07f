package envlinks

import (
	"fmt"

	"github.com/davidmdm/x/xerr"
	"gopkg.in/yaml.v3"
)

// DevelopmentEnvironment is the name of the synthetic environment pointing back at the matched localhost URL.
// It is always rendered last among alternate environments.
const DevelopmentEnvironment = "Development"

type Environment struct {
	Name string
	Host string
}

// Environments is an ordered name to host mapping. Order is significant: the first
// environment is the default one, the others are alternates.
type Environments []Environment

// ParseEnvironments parses a JSON (or YAML flow) object of environment names to hosts,
// preserving key order.
func ParseEnvironments(value string) (Environments, error) {
	var envs Environments
	if err := yaml.Unmarshal([]byte(value), &envs); err != nil {
		return nil, fmt.Errorf("parsing environments: %w", err)
	}
	return envs, nil
}

func (envs *Environments) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*envs = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: environments must be an object of names to hosts", node.Line)
	}

	var errs []error
	result := make(Environments, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			errs = append(errs, fmt.Errorf("line %d: environment name must be a string", key.Line))
			continue
		}
		if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
			errs = append(errs, fmt.Errorf("line %d: host of environment %q must be a string", value.Line, key.Value))
			continue
		}
		result = append(result, Environment{Name: key.Value, Host: value.Value})
	}

	if err := xerr.MultiErrOrderedFrom("decoding environments", errs...); err != nil {
		return err
	}
	if err := result.Validate(); err != nil {
		return err
	}

	*envs = result
	return nil
}

// Validate ensures environment names are non-empty and unique.
func (envs Environments) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(envs))
	for i, env := range envs {
		if env.Name == "" {
			errs = append(errs, fmt.Errorf("environment #%d has an empty name", i+1))
			continue
		}
		if seen[env.Name] {
			errs = append(errs, fmt.Errorf("environment %q is defined more than once", env.Name))
		}
		seen[env.Name] = true
	}
	return xerr.MultiErrOrderedFrom("validating environments", errs...)
}

func (envs Environments) Names() []string {
	names := make([]string, len(envs))
	for i, env := range envs {
		names[i] = env.Name
	}
	return names
}
