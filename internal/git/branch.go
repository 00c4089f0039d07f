package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

var ErrDetachedHead = errors.New("HEAD is not on a branch")

// CurrentBranch returns the name of the branch checked out in the git repository containing dir.
func CurrentBranch(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repository at %s: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", ErrDetachedHead
	}
	return head.Name().Short(), nil
}
