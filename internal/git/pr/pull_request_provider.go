//go:generate moq -stub -out ./pull_request_provider_mock.go . PullRequestProvider
package pr

import "context"

type PullRequest struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	URL         string `json:"url"`
	HeadRefName string `json:"headRefName"`
}

type PullRequestProvider interface {
	// EnsureInstalledAndAuthenticated ensures the service provider is installed and authorized.
	EnsureInstalledAndAuthenticated(ctx context.Context) error

	// Get returns the pull request with given number or URL, or nil if there is none.
	Get(ctx context.Context, numberOrURL string) (*PullRequest, error)

	// GetForBranch returns the open pull request of given branch, or nil if there is none.
	GetForBranch(ctx context.Context, branch string) (*PullRequest, error)

	// UpdateBody replaces the description of the pull request with given number.
	UpdateBody(ctx context.Context, number int, body string) error
}
