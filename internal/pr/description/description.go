package description

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/browser"

	"github.com/nestoca/envlinks/internal/envlinks"
	"github.com/nestoca/envlinks/internal/git/pr"
	"github.com/nestoca/envlinks/internal/github"
	"github.com/nestoca/envlinks/internal/links"
	"github.com/nestoca/envlinks/internal/observability"
	"github.com/nestoca/envlinks/internal/text"
)

type Params struct {
	// Environments to generate links for, in order. Hosts may be templates (see links.TemplateData).
	Environments envlinks.Environments

	// PullRequest is the number, URL or head branch of the pull request to update.
	// Optional, defaults to the pull request of the current branch.
	PullRequest string

	// Repository is the owner/repo of the pull request, made available to host templates.
	// Optional, defaults to the one found in the pull request URL.
	Repository string

	// DryRun only previews changes, without updating the pull request.
	DryRun bool

	// NoPrompt updates the pull request without previewing changes or asking for confirmation.
	NoPrompt bool

	// OpenInBrowser opens the pull request in the browser once updated.
	OpenInBrowser bool
}

type Updater struct {
	// branchProvider is the provider for the current git branch
	branchProvider BranchProvider

	// pullRequestProvider is the provider of pull requests
	pullRequestProvider pr.PullRequestProvider

	// promptProvider is the prompt to use for user interaction
	promptProvider PromptProvider

	// openURL opens given URL in the browser
	openURL func(url string) error
}

func NewUpdater(branchProvider BranchProvider, pullRequestProvider pr.PullRequestProvider, promptProvider PromptProvider) *Updater {
	return &Updater{
		branchProvider:      branchProvider,
		pullRequestProvider: pullRequestProvider,
		promptProvider:      promptProvider,
		openURL:             browser.OpenURL,
	}
}

func NewDefaultUpdater(dir string, out io.Writer, opts ...github.Option) *Updater {
	return NewUpdater(
		NewGitBranchProvider(dir),
		github.NewPullRequestProvider(dir, opts...),
		NewInteractivePromptProvider(out),
	)
}

// Update rewrites the localhost links found in the pull request description into links to given environments.
func (u *Updater) Update(ctx context.Context, params Params) (err error) {
	ctx, span := observability.StartTrace(ctx, "update-pull-request-description")
	defer func() { observability.EndTrace(span, err) }()

	if err := u.pullRequestProvider.EnsureInstalledAndAuthenticated(ctx); err != nil {
		return err
	}

	pullRequest, err := u.getPullRequest(ctx, params.PullRequest)
	if err != nil {
		return err
	}
	if pullRequest == nil {
		u.promptProvider.PrintNoPullRequest()
		return nil
	}
	if strings.TrimSpace(pullRequest.Body) == "" {
		u.promptProvider.PrintNoDescription(pullRequest)
		return nil
	}

	if len(params.Environments) == 0 {
		u.promptProvider.PrintNoEnvironments()
	}

	environments, err := links.RenderHosts(params.Environments, getTemplateData(pullRequest, params.Repository))
	if err != nil {
		return fmt.Errorf("rendering environment hosts for pull request #%d: %w", pullRequest.Number, err)
	}

	body := envlinks.Transform(environments, pullRequest.Body)
	if body == pullRequest.Body {
		u.promptProvider.PrintUpToDate(pullRequest)
		return nil
	}

	if params.DryRun || !params.NoPrompt {
		u.promptProvider.PrintPreview(text.DiffColorized(
			text.File{Name: "current description", Content: pullRequest.Body},
			text.File{Name: "rewritten description", Content: body},
			1,
		))
	}

	if params.DryRun {
		u.promptProvider.PrintDryRun(pullRequest)
		return nil
	}

	if !params.NoPrompt {
		confirmed, err := u.promptProvider.ConfirmUpdate(pullRequest)
		if err != nil {
			return fmt.Errorf("prompting user to confirm update: %w", err)
		}
		if !confirmed {
			u.promptProvider.PrintNotUpdating(pullRequest)
			return nil
		}
	}

	if err := u.pullRequestProvider.UpdateBody(ctx, pullRequest.Number, body); err != nil {
		return fmt.Errorf("updating pull request #%d description: %w", pullRequest.Number, err)
	}
	u.promptProvider.PrintUpdated(pullRequest, envlinks.Count(pullRequest.Body))

	if params.OpenInBrowser && pullRequest.URL != "" {
		if err := u.openURL(pullRequest.URL); err != nil {
			return fmt.Errorf("opening pull request #%d in browser: %w", pullRequest.Number, err)
		}
	}
	return nil
}

var pullRequestNumberRegex = regexp.MustCompile(`^#?(\d+)$`)

func (u *Updater) getPullRequest(ctx context.Context, selector string) (*pr.PullRequest, error) {
	if match := pullRequestNumberRegex.FindStringSubmatch(selector); match != nil {
		pullRequest, err := u.pullRequestProvider.Get(ctx, match[1])
		if err != nil {
			return nil, fmt.Errorf("getting pull request #%s: %w", match[1], err)
		}
		return pullRequest, nil
	}

	if strings.HasPrefix(selector, "https://") {
		pullRequest, err := u.pullRequestProvider.Get(ctx, selector)
		if err != nil {
			return nil, fmt.Errorf("getting pull request %s: %w", selector, err)
		}
		return pullRequest, nil
	}

	branch := selector
	if branch == "" {
		var err error
		branch, err = u.branchProvider.GetCurrentBranch()
		if err != nil {
			return nil, fmt.Errorf("getting current branch: %w", err)
		}
	}

	pullRequest, err := u.pullRequestProvider.GetForBranch(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("getting pull request for branch %s: %w", branch, err)
	}
	return pullRequest, nil
}

func getTemplateData(pullRequest *pr.PullRequest, repository string) links.TemplateData {
	if repository == "" {
		repository = repositoryFromURL(pullRequest.URL)
	}
	return links.TemplateData{
		PullRequest: links.PullRequest{
			Number: pullRequest.Number,
			Branch: pullRequest.HeadRefName,
			URL:    pullRequest.URL,
		},
		Repository: repository,
	}
}

// repositoryFromURL extracts owner/repo from a pull request URL such as https://github.com/owner/repo/pull/123.
func repositoryFromURL(value string) string {
	u, err := url.Parse(value)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[0] + "/" + parts[1]
}
