package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func TestCurrentBranch(t *testing.T) {
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# web\n"), 0o644))
	_, err = worktree.Add("README.md")
	require.NoError(t, err)

	hash, err := worktree.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	require.NoError(t, worktree.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("feature/login"),
		Create: true,
	}))

	subDir := filepath.Join(dir, "docs")
	require.NoError(t, os.Mkdir(subDir, 0o755))

	branch, err := CurrentBranch(subDir)
	require.NoError(t, err)
	require.Equal(t, "feature/login", branch)

	require.NoError(t, worktree.Checkout(&gogit.CheckoutOptions{Hash: hash}))

	_, err = CurrentBranch(dir)
	require.ErrorIs(t, err, ErrDetachedHead)
}

func TestCurrentBranchOutsideRepository(t *testing.T) {
	_, err := CurrentBranch(t.TempDir())
	require.ErrorContains(t, err, "opening git repository")
}
