package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nestoca/envlinks/internal/git/pr"
	"github.com/nestoca/envlinks/internal/retry"
)

const pullRequestFields = "number,title,body,url,headRefName"

type PullRequestProvider struct {
	dir   string
	repo  string
	token string
	run   runFunc

	retryPolicy retry.Policy
}

type Option func(*PullRequestProvider)

// WithRepository targets pull requests of given owner/repo instead of the one of the working directory.
func WithRepository(repo string) Option {
	return func(p *PullRequestProvider) { p.repo = repo }
}

// WithRetryPolicy overrides how failing gh commands are retried.
func WithRetryPolicy(policy retry.Policy) Option {
	return func(p *PullRequestProvider) { p.retryPolicy = policy }
}

// WithToken authenticates gh commands with given token instead of the gh cli login.
func WithToken(token string) Option {
	return func(p *PullRequestProvider) { p.token = token }
}

func NewPullRequestProvider(dir string, opts ...Option) *PullRequestProvider {
	provider := &PullRequestProvider{
		dir:         dir,
		run:         runGH,
		retryPolicy: retry.Default,
	}
	provider.retryPolicy.Retriable = isTransient
	for _, opt := range opts {
		opt(provider)
	}
	return provider
}

func (p *PullRequestProvider) Get(ctx context.Context, numberOrURL string) (*pr.PullRequest, error) {
	output, err := p.executeAndGetOutput(ctx, "", p.withRepo("pr", "view", numberOrURL, "--json", pullRequestFields)...)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("viewing pull request %s: %w", numberOrURL, err)
	}

	var pullRequest pr.PullRequest
	if err := json.Unmarshal([]byte(output), &pullRequest); err != nil {
		return nil, fmt.Errorf("unmarshaling pull request: %w", err)
	}
	return &pullRequest, nil
}

func (p *PullRequestProvider) GetForBranch(ctx context.Context, branch string) (*pr.PullRequest, error) {
	output, err := p.executeAndGetOutput(ctx, "", p.withRepo("pr", "list", "--head", branch, "--state", "open", "--json", pullRequestFields)...)
	if err != nil {
		return nil, fmt.Errorf("listing pull requests for branch %s: %w", branch, err)
	}

	var prs []pr.PullRequest
	if err := json.Unmarshal([]byte(output), &prs); err != nil {
		return nil, fmt.Errorf("unmarshaling pull request list: %w", err)
	}

	// There can only be one open pull request for a given head branch
	if len(prs) == 0 {
		return nil, nil
	}
	return &prs[0], nil
}

func (p *PullRequestProvider) UpdateBody(ctx context.Context, number int, body string) error {
	_, err := p.executeAndGetOutput(ctx, body, p.withRepo("pr", "edit", strconv.Itoa(number), "--body-file", "-")...)
	if err != nil {
		return fmt.Errorf("updating body of pull request #%d: %w", number, err)
	}
	return nil
}

func (p *PullRequestProvider) withRepo(args ...string) []string {
	if p.repo == "" {
		return args
	}
	return append(args, "--repo", p.repo)
}

func isNotFound(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "no pull requests found") || strings.Contains(msg, "Could not resolve to a PullRequest")
}
