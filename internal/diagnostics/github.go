package diagnostics

import (
	"context"
	"fmt"

	"github.com/nestoca/envlinks/internal/actions"
	"github.com/nestoca/envlinks/internal/github"
	"github.com/nestoca/envlinks/internal/style"
)

type GitHubOpts struct {
	LookupCLI        func() (string, error)
	IsActionsRunning func() bool
}

// diagnoseGitHub checks what the pr command relies on: the gh executable, then access to pull requests, and
// finally reports whether it runs as a GitHub action.
func diagnoseGitHub(ctx context.Context, authenticate func(context.Context) error, opts GitHubOpts) (section Section) {
	if opts.LookupCLI == nil {
		opts.LookupCLI = github.LookupCLI
	}
	if opts.IsActionsRunning == nil {
		opts.IsActionsRunning = actions.IsRunning
	}

	section.Title = "GitHub"

	if checkCLI(&section, opts.LookupCLI) && authenticate != nil {
		if err := authenticate(ctx); err != nil {
			section.add(
				failed,
				"Cannot access pull requests: "+err.Error(),
				note(hint, fmt.Sprintf("Log in using %s or set the %s variable", style.Code("gh auth login"), style.Code("GITHUB_TOKEN"))),
			)
		} else {
			section.add(success, "Pull requests can be accessed")
		}
	}

	if opts.IsActionsRunning() {
		section.add(info, "Running within a GitHub Actions workflow")
	}
	return
}

func checkCLI(section *Section, lookup func() (string, error)) bool {
	path, err := lookup()
	if err != nil {
		section.add(
			failed,
			fmt.Sprintf("%s not found, it is required by %s", style.Code(github.CLICommand), style.Code("envlinks pr")),
			note(hint, fmt.Sprintf("Install it from %s", style.Link(github.CLIURL))),
		)
		return false
	}
	section.add(success, label(style.Code(github.CLICommand)+" installed", path))
	return true
}
