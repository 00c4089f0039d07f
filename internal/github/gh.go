package github

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/nestoca/envlinks/internal/observability"
	"github.com/nestoca/envlinks/internal/retry"
	"github.com/nestoca/envlinks/internal/style"
)

const (
	CLICommand = "gh"
	CLIURL     = "https://cli.github.com"
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// LookupCLI returns the path of the gh executable found in PATH.
func LookupCLI() (string, error) {
	return lookPath(CLICommand)
}

// runFunc runs gh with given args and returns its stdout and stderr separately.
type runFunc func(ctx context.Context, dir string, env []string, stdin io.Reader, args ...string) (stdout, stderr []byte, err error)

func runGH(ctx context.Context, dir string, env []string, stdin io.Reader, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, CLICommand, args...)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// executeAndGetOutput runs gh command with given args and returns its trimmed stdout. Stderr only ends up in the
// returned error. Calls failing because of GitHub or network hiccups are retried according to the provider's
// retry policy.
func (p *PullRequestProvider) executeAndGetOutput(ctx context.Context, stdin string, args ...string) (string, error) {
	ctx, span := observability.StartTrace(ctx, "gh "+strings.Join(args[:min(2, len(args))], " "))

	output, err := retry.Do(ctx, p.retryPolicy, func() ([]byte, error) {
		var in io.Reader
		if stdin != "" {
			in = strings.NewReader(stdin)
		}
		stdout, stderr, err := p.run(ctx, p.dir, p.env(), in, args...)
		if err != nil {
			return nil, fmt.Errorf("running gh command with args %q: %w: %q", strings.Join(args, " "), err, failureOutput(stdout, stderr))
		}
		return stdout, nil
	})
	observability.EndTrace(span, err)

	return strings.TrimSpace(string(output)), err
}

// failureOutput is what gh reported about a failed call, stderr when it wrote any.
func failureOutput(stdout, stderr []byte) string {
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return msg
	}
	return strings.TrimSpace(string(stdout))
}

var transientErrors = []string{
	"HTTP 502",
	"HTTP 503",
	"HTTP 504",
	"connection reset by peer",
	"i/o timeout",
	"TLS handshake timeout",
}

func isTransient(err error) bool {
	msg := err.Error()
	for _, transient := range transientErrors {
		if strings.Contains(msg, transient) {
			return true
		}
	}
	return false
}

// env returns the environment of gh commands, forwarding the token the provider was configured with, if any.
func (p *PullRequestProvider) env() []string {
	env := os.Environ()
	if p.token != "" {
		env = append(env, "GH_TOKEN="+p.token)
	}
	return env
}

func (p *PullRequestProvider) EnsureInstalledAndAuthenticated(ctx context.Context) error {
	if _, err := LookupCLI(); err != nil {
		return fmt.Errorf("😅 Oops! This command requires %s (see: %s)", style.Code(CLICommand), style.Link(CLIURL))
	}

	if _, err := p.executeAndGetOutput(ctx, "", "auth", "status"); err != nil {
		return fmt.Errorf("🔐 gh cli not authenticated, please run %s or set %s: %w", style.Code("gh auth login"), style.Code("GITHUB_TOKEN"), err)
	}
	return nil
}
