package description

import "github.com/nestoca/envlinks/internal/git"

//go:generate moq -stub -out ./branch_provider_mock.go . BranchProvider
type BranchProvider interface {
	// GetCurrentBranch returns name of branch currently checked out in working directory.
	GetCurrentBranch() (string, error)
}

type GitBranchProvider struct {
	dir string
}

func NewGitBranchProvider(dir string) *GitBranchProvider {
	return &GitBranchProvider{dir: dir}
}

func (g *GitBranchProvider) GetCurrentBranch() (string, error) {
	return git.CurrentBranch(g.dir)
}
