package description

import "github.com/nestoca/envlinks/internal/git/pr"

//go:generate moq -stub -out ./prompt_provider_mock.go . PromptProvider
type PromptProvider interface {
	// PrintNoPullRequest prints message that no pull request could be found.
	PrintNoPullRequest()

	// PrintNoDescription prints message that the pull request has no description to rewrite.
	PrintNoDescription(pullRequest *pr.PullRequest)

	// PrintNoEnvironments warns that no environments are configured, so only Development links will be generated.
	PrintNoEnvironments()

	// PrintUpToDate prints message that the description has no localhost links left to rewrite.
	PrintUpToDate(pullRequest *pr.PullRequest)

	// PrintPreview prints the diff between current and rewritten descriptions.
	PrintPreview(diff string)

	// PrintDryRun prints message that the description was not updated because of dry-run mode.
	PrintDryRun(pullRequest *pr.PullRequest)

	// ConfirmUpdate prompts user to confirm updating the pull request description.
	ConfirmUpdate(pullRequest *pr.PullRequest) (bool, error)

	// PrintNotUpdating prints message that user opted not to update the description.
	PrintNotUpdating(pullRequest *pr.PullRequest)

	// PrintUpdated prints message that the description was updated with given number of rewritten links.
	PrintUpdated(pullRequest *pr.PullRequest, linkCount int)
}
