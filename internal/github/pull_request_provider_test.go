package github

import (
	"context"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/require"

	"github.com/nestoca/envlinks/internal/git/pr"
	"github.com/nestoca/envlinks/internal/retry"
)

type ghCall struct {
	dir   string
	env   []string
	stdin string
	args  []string
}

type fakeGH struct {
	calls  []ghCall
	stdout string
	stderr string
	err    error

	// transientFailures is the number of calls failing with a bad gateway before returning stdout, stderr and err.
	transientFailures int
}

func (f *fakeGH) run(_ context.Context, dir string, env []string, stdin io.Reader, args ...string) ([]byte, []byte, error) {
	call := ghCall{dir: dir, env: env, args: args}
	if stdin != nil {
		content, _ := io.ReadAll(stdin)
		call.stdin = string(content)
	}
	f.calls = append(f.calls, call)
	if len(f.calls) <= f.transientFailures {
		return nil, []byte("HTTP 502: Bad Gateway"), errors.New("exit status 1")
	}
	return []byte(f.stdout), []byte(f.stderr), f.err
}

func newTestProvider(gh *fakeGH, opts ...Option) *PullRequestProvider {
	opts = append(opts, WithRetryPolicy(retry.Policy{Attempts: 3, Retriable: isTransient}))
	provider := NewPullRequestProvider("/work", opts...)
	provider.run = gh.run
	return provider
}

func TestGet(t *testing.T) {
	gh := &fakeGH{stdout: `{"number": 42, "title": "Add login", "body": "See http://localhost:3000", "url": "https://github.com/acme/web/pull/42", "headRefName": "login"}` + "\n"}
	provider := newTestProvider(gh, WithRepository("acme/web"))

	pullRequest, err := provider.Get(context.Background(), "42")
	require.NoError(t, err)
	require.Equal(t, &pr.PullRequest{
		Number:      42,
		Title:       "Add login",
		Body:        "See http://localhost:3000",
		URL:         "https://github.com/acme/web/pull/42",
		HeadRefName: "login",
	}, pullRequest)

	require.Len(t, gh.calls, 1)
	require.Equal(t, "/work", gh.calls[0].dir)
	require.Equal(t, []string{"pr", "view", "42", "--json", "number,title,body,url,headRefName", "--repo", "acme/web"}, gh.calls[0].args)
}

func TestGetNotFound(t *testing.T) {
	gh := &fakeGH{
		stderr: "GraphQL: Could not resolve to a PullRequest with the number of 999. (repository.pullRequest)",
		err:    errors.New("exit status 1"),
	}

	pullRequest, err := newTestProvider(gh).Get(context.Background(), "999")
	require.NoError(t, err)
	require.Nil(t, pullRequest)
}

func TestGetFailure(t *testing.T) {
	gh := &fakeGH{stderr: "HTTP 502: Bad Gateway", err: errors.New("exit status 1")}

	_, err := newTestProvider(gh).Get(context.Background(), "42")
	require.ErrorContains(t, err, "viewing pull request 42")
	require.ErrorContains(t, err, "Bad Gateway")
	require.Len(t, gh.calls, 3)
}

func TestGetIgnoresStderrWarnings(t *testing.T) {
	gh := &fakeGH{
		stdout: `{"number": 42, "body": "hello"}`,
		stderr: "A new release of gh is available: 2.40.0 → 2.62.0\n",
	}

	pullRequest, err := newTestProvider(gh).Get(context.Background(), "42")
	require.NoError(t, err)
	require.Equal(t, "hello", pullRequest.Body)
}

func TestGetFailureReportsStderr(t *testing.T) {
	gh := &fakeGH{
		stdout: "partial",
		stderr: "HTTP 401: Bad credentials\n",
		err:    errors.New("exit status 1"),
	}

	_, err := newTestProvider(gh).Get(context.Background(), "42")
	require.ErrorContains(t, err, `exit status 1: "HTTP 401: Bad credentials"`)
	require.NotContains(t, err.Error(), "partial")
}

func TestGetRetriesTransientFailures(t *testing.T) {
	gh := &fakeGH{stdout: `{"number": 42, "body": "hello"}`, transientFailures: 2}

	pullRequest, err := newTestProvider(gh).Get(context.Background(), "42")
	require.NoError(t, err)
	require.Equal(t, "hello", pullRequest.Body)
	require.Len(t, gh.calls, 3)
}

func TestGetForBranch(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gh := &fakeGH{stdout: `[{"number": 7, "body": "hello", "headRefName": "feature"}]`}

		pullRequest, err := newTestProvider(gh).GetForBranch(context.Background(), "feature")
		require.NoError(t, err)
		require.Equal(t, 7, pullRequest.Number)
		require.Equal(t, "hello", pullRequest.Body)
		require.Equal(t, []string{"pr", "list", "--head", "feature", "--state", "open", "--json", "number,title,body,url,headRefName"}, gh.calls[0].args)
	})

	t.Run("none", func(t *testing.T) {
		gh := &fakeGH{stdout: `[]`}

		pullRequest, err := newTestProvider(gh).GetForBranch(context.Background(), "feature")
		require.NoError(t, err)
		require.Nil(t, pullRequest)
	})
}

func TestUpdateBody(t *testing.T) {
	gh := &fakeGH{stdout: "https://github.com/acme/web/pull/42\n"}
	provider := newTestProvider(gh, WithToken("secret"))

	require.NoError(t, provider.UpdateBody(context.Background(), 42, "new body"))

	require.Len(t, gh.calls, 1)
	require.Equal(t, []string{"pr", "edit", "42", "--body-file", "-"}, gh.calls[0].args)
	require.Equal(t, "new body", gh.calls[0].stdin)
	require.True(t, slices.Contains(gh.calls[0].env, "GH_TOKEN=secret"))
}

func TestUpdateBodyFailure(t *testing.T) {
	gh := &fakeGH{stderr: "permission denied", err: errors.New("exit status 1")}

	err := newTestProvider(gh).UpdateBody(context.Background(), 42, "new body")
	require.ErrorContains(t, err, "updating body of pull request #42")
	require.ErrorContains(t, err, "permission denied")
	require.Len(t, gh.calls, 1)
}

func TestUpdateBodyRetrySendsBodyAgain(t *testing.T) {
	gh := &fakeGH{transientFailures: 1}

	require.NoError(t, newTestProvider(gh).UpdateBody(context.Background(), 42, "new body"))
	require.Len(t, gh.calls, 2)
	require.Equal(t, "new body", gh.calls[0].stdin)
	require.Equal(t, "new body", gh.calls[1].stdin)
}

func TestEnsureInstalledAndAuthenticated(t *testing.T) {
	defer func(original func(string) (string, error)) { lookPath = original }(lookPath)
	installed := func(file string) (string, error) { return "/usr/bin/" + file, nil }

	t.Run("authenticated", func(t *testing.T) {
		lookPath = installed
		gh := &fakeGH{stderr: "Logged in to github.com"}

		require.NoError(t, newTestProvider(gh).EnsureInstalledAndAuthenticated(context.Background()))
		require.Equal(t, []string{"auth", "status"}, gh.calls[0].args)
	})

	t.Run("not installed", func(t *testing.T) {
		lookPath = func(string) (string, error) { return "", errors.New("not found") }
		gh := &fakeGH{}

		err := newTestProvider(gh).EnsureInstalledAndAuthenticated(context.Background())
		require.Error(t, err)
		require.Equal(t, "😅 Oops! This command requires gh (see: https://cli.github.com)", stripansi.Strip(err.Error()))
		require.Empty(t, gh.calls)
	})

	t.Run("not authenticated", func(t *testing.T) {
		lookPath = installed
		gh := &fakeGH{stderr: "You are not logged into any GitHub hosts.", err: errors.New("exit status 1")}

		err := newTestProvider(gh).EnsureInstalledAndAuthenticated(context.Background())
		require.ErrorContains(t, err, "gh cli not authenticated")
		require.ErrorContains(t, err, "You are not logged into any GitHub hosts.")
	})
}
