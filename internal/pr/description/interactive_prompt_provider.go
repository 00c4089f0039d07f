package description

import (
	"fmt"
	"io"

	"github.com/nestoca/survey/v2"

	"github.com/nestoca/envlinks/internal/envlinks"
	"github.com/nestoca/envlinks/internal/git/pr"
	"github.com/nestoca/envlinks/internal/style"
)

type InteractivePromptProvider struct {
	out io.Writer
}

func NewInteractivePromptProvider(out io.Writer) *InteractivePromptProvider {
	return &InteractivePromptProvider{out: out}
}

func (i *InteractivePromptProvider) PrintNoPullRequest() {
	fmt.Fprintln(i.out, "No pull request found.")
}

func (i *InteractivePromptProvider) PrintNoDescription(pullRequest *pr.PullRequest) {
	fmt.Fprintf(i.out, "No pull request description found for %s.\n", formatPullRequest(pullRequest))
}

func (i *InteractivePromptProvider) PrintNoEnvironments() {
	fmt.Fprintf(i.out, "⚠️  %s only %s links will be generated.\n",
		style.Warning("No environments configured,"),
		style.Resource(envlinks.DevelopmentEnvironment))
}

func (i *InteractivePromptProvider) PrintUpToDate(pullRequest *pr.PullRequest) {
	fmt.Fprintf(i.out, "👍 Description of %s has no localhost links to rewrite.\n", formatPullRequest(pullRequest))
}

func (i *InteractivePromptProvider) PrintPreview(diff string) {
	fmt.Fprintln(i.out, diff)
}

func (i *InteractivePromptProvider) PrintDryRun(pullRequest *pr.PullRequest) {
	fmt.Fprintf(i.out, "🌵 Dry run: description of %s left untouched.\n", formatPullRequest(pullRequest))
}

func (i *InteractivePromptProvider) ConfirmUpdate(pullRequest *pr.PullRequest) (bool, error) {
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Update description of pull request #%d?", pullRequest.Number),
		Default: true,
	}
	var confirmed bool
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("prompting for confirmation: %w", err)
	}
	return confirmed, nil
}

func (i *InteractivePromptProvider) PrintNotUpdating(pullRequest *pr.PullRequest) {
	fmt.Fprintf(i.out, "👋 Alright, description of %s left untouched.\n", formatPullRequest(pullRequest))
}

func (i *InteractivePromptProvider) PrintUpdated(pullRequest *pr.PullRequest, linkCount int) {
	fmt.Fprintf(i.out, "✅ Pull request description updated (%s rewritten in %s).\n",
		pluralize(linkCount, "link"),
		formatPullRequest(pullRequest))
}

func formatPullRequest(pullRequest *pr.PullRequest) string {
	label := style.Resource(fmt.Sprintf("#%d", pullRequest.Number))
	if pullRequest.URL == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, style.SecondaryInfo(pullRequest.URL))
}

func pluralize(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
