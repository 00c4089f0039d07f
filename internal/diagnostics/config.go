package diagnostics

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nestoca/envlinks/internal/config"
	"github.com/nestoca/envlinks/internal/envlinks"
	"github.com/nestoca/envlinks/internal/style"
)

type ConfigOpts struct {
	Stat func(string) (fs.FileInfo, error)
}

func diagnoseConfig(cfg *config.Config, opts ConfigOpts) Section {
	if opts.Stat == nil {
		opts.Stat = os.Stat
	}

	section := Section{
		Title: "Config",
		Subsections: []Subsection{
			diagnoseConfigFile(cfg, opts.Stat),
			diagnoseEnvironments(cfg),
		},
	}
	if cfg.Repository != "" {
		section.add(info, label("Repository", cfg.Repository))
	}
	return section
}

func diagnoseConfigFile(cfg *config.Config, stat func(string) (fs.FileInfo, error)) (sub Subsection) {
	sub.Title = "File"

	if cfg.FilePath == "" {
		sub.add(
			info,
			"No .envlinksrc file found, environments must be passed using flags or variables",
			note(hint, fmt.Sprintf("Share environments with your team by committing a %s file to your repository", style.Code(".envlinksrc"))),
		)
		return
	}

	_, err := stat(cfg.FilePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		sub.add(failed, label("File does not exist", cfg.FilePath))
	case err != nil:
		sub.add(failed, "Failed to get config file: "+err.Error())
	default:
		sub.add(success, label("File exists", cfg.FilePath))
	}
	return
}

func diagnoseEnvironments(cfg *config.Config) (sub Subsection) {
	sub.Title = "Environments"

	environments, err := cfg.ResolveEnvironments("")
	if err != nil {
		sub.add(failed, err.Error())
		return
	}

	if len(environments) == 0 {
		sub.add(
			warning,
			fmt.Sprintf("No environments configured, only %s links will be generated", style.Resource(envlinks.DevelopmentEnvironment)),
			note(hint, fmt.Sprintf("Add environments to %s or set the %s variable", style.Code(".envlinksrc"), style.Code("ENVIRONMENTS"))),
		)
		return
	}

	hosts := make([]Message, len(environments))
	for i, env := range environments {
		hosts[i] = note(info, label(style.Resource(env.Name), env.Host))
	}
	sub.add(success, fmt.Sprintf("%d environment(s) configured", len(environments)), hosts...)
	sub.add(info, label("Default environment", style.Resource(environments[0].Name)))
	return
}
