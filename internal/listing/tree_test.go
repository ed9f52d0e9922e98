package listing

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func treeOptions(depth int) Options {
	opts := DefaultOptions()
	opts.Mode = Tree
	opts.TreeDepth = depth
	return opts
}

func TestTreeDepthBound(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "dir", "subdir", "file.txt"), 1)

	h := newHarness(t, treeOptions(1), Deps{})
	counts, err := h.core.ListDir(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"└──   D  dir/",
		"    └──   D  subdir/",
	}, h.lines())
	assert.Equal(t, 2, counts.Folders)
	assert.NotContains(t, h.out.String(), "file.txt")
}

func TestTreeDefaultDepthReachesThirdLevel(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "dir", "subdir", "file.txt"), 1)

	h := newHarness(t, treeOptions(DefaultTreeDepth), Deps{})
	counts, err := h.core.ListDir(context.Background(), root)
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "file.txt")
	assert.Equal(t, Counts{Folders: 2, RecognizedFiles: 1}, counts)
}

func TestTreeUnlimitedDepth(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b", "c", "d", "e", "f")
	touch(t, filepath.Join(deep, "leaf.txt"), 1)

	h := newHarness(t, treeOptions(3), Deps{})
	_, err := h.core.ListDir(context.Background(), root)
	require.NoError(t, err)
	assert.NotContains(t, h.out.String(), "leaf.txt")

	h = newHarness(t, treeOptions(0), Deps{})
	_, err = h.core.ListDir(context.Background(), root)
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "leaf.txt")
}

func TestTreeBranchGlyphs(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "dir", "inner.txt"), 1)
	touch(t, filepath.Join(root, "dir", "more.txt"), 1)
	touch(t, filepath.Join(root, "a.txt"), 1)
	touch(t, filepath.Join(root, "z.txt"), 1)

	h := newHarness(t, treeOptions(DefaultTreeDepth), Deps{})
	_, err := h.core.ListDir(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"├──   T  a.txt ",
		"└──   D  dir/",
		"│   ├──   T  inner.txt ",
		"│   └──   T  more.txt ",
		"└──   T  z.txt ",
	}, h.lines())
}

func TestTreeDoesNotFollowSymlinks(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "dir", "file.txt"), 1)
	require.NoError(t, os.Symlink(root, filepath.Join(root, "dir", "loop")))

	h := newHarness(t, treeOptions(0), Deps{})
	_, err := h.core.ListDir(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(h.out.String(), "file.txt"))
	assert.Contains(t, h.out.String(), "loop")
}

func TestTreeReportsUnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	root := t.TempDir()
	touch(t, filepath.Join(root, "locked", "secret.txt"), 1)
	touch(t, filepath.Join(root, "open", "visible.txt"), 1)
	require.NoError(t, os.Chmod(filepath.Join(root, "locked"), 0))
	t.Cleanup(func() { os.Chmod(filepath.Join(root, "locked"), 0o755) })

	h := newHarness(t, treeOptions(DefaultTreeDepth), Deps{})
	_, err := h.core.ListDir(context.Background(), root)
	require.NoError(t, err)

	assert.Contains(t, h.err.String(), "locked")
	assert.NotContains(t, h.out.String(), "secret.txt")
	assert.Contains(t, h.out.String(), "visible.txt")
}
