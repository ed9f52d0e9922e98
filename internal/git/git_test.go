package git

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func porcelain(records ...string) []byte {
	return []byte(strings.Join(records, "\x00") + "\x00")
}

func TestParseRootFiles(t *testing.T) {
	s := Parse(porcelain(" M foo.txt", "?? new.txt"), "")
	assert.Equal(t, []string{"M"}, s.Codes("foo.txt"))
	assert.Equal(t, []string{"??"}, s.Codes("new.txt"))
	assert.False(t, s.Has("other.txt"))
	assert.Empty(t, s.Codes("other.txt"))
}

func TestParseAggregatesSubdirectories(t *testing.T) {
	s := Parse(porcelain(" M subdir/foo.txt", " D subdir/other.c", "!! build/"), "")
	assert.Equal(t, []string{"D", "M"}, s.Codes("subdir"))
	assert.Equal(t, []string{"!!"}, s.Codes("build"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"!!", "D", "M"}, s.All())
}

func TestParseSkipsRenameOrigin(t *testing.T) {
	s := Parse(porcelain("R  new.go", "old.go", "A  added.go"), "")
	assert.Equal(t, []string{"R"}, s.Codes("new.go"))
	assert.False(t, s.Has("old.go"))
	assert.Equal(t, []string{"A"}, s.Codes("added.go"))
}

func TestParseStripsPrefix(t *testing.T) {
	s := Parse(porcelain(" M pkg/a.go", "MM pkg/inner/b.go"), "pkg/")
	assert.Equal(t, []string{"M"}, s.Codes("a.go"))
	assert.Equal(t, []string{"MM"}, s.Codes("inner"))
}

func TestParseEmpty(t *testing.T) {
	s := Parse(nil, "")
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
}

func TestSymbols(t *testing.T) {
	cases := []struct {
		codes []string
		want  string
	}{
		{nil, "    "},
		{[]string{"M"}, "  M "},
		{[]string{"??"}, "  ? "},
		{[]string{"D", "M"}, " DM "},
		{[]string{"M", "MM"}, "  M "},
		{[]string{"!!"}, "  ! "},
		{[]string{"??", "A", "D", "M"}, "?ADM"},
		{[]string{"??", "A", "D", "M", "R"}, "?ADMR"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Symbols(tc.codes), "%v", tc.codes)
	}
}

type fakeGit struct {
	calls  int
	dirs   map[string]int
	prefix string
	status []byte
	fail   bool
}

func (f *fakeGit) run(_ context.Context, dir string, args ...string) ([]byte, error) {
	f.calls++
	if f.dirs != nil && args[0] == "status" {
		f.dirs[dir]++
	}
	if f.fail {
		return nil, errors.New("fatal: not a git repository")
	}
	if args[0] == "rev-parse" {
		return []byte(f.prefix + "\n"), nil
	}
	return f.status, nil
}

func TestProviderMemoizes(t *testing.T) {
	fake := &fakeGit{status: porcelain(" M foo.txt")}
	p := NewProvider(fake.run, nil)

	s, ok := p.Status(context.Background(), "/repo")
	require.True(t, ok)
	assert.Equal(t, []string{"M"}, s.Codes("foo.txt"))
	assert.Equal(t, 2, fake.calls)

	_, ok = p.Status(context.Background(), "/repo")
	require.True(t, ok)
	assert.Equal(t, 2, fake.calls)
}

func TestProviderKeepsEveryDirectory(t *testing.T) {
	fake := &fakeGit{dirs: map[string]int{}, status: porcelain(" M foo.txt")}
	p := NewProvider(fake.run, nil)
	ctx := context.Background()

	_, ok := p.Status(ctx, "/repo")
	require.True(t, ok)
	for i := 0; i < 300; i++ {
		_, ok = p.Status(ctx, fmt.Sprintf("/repo/dir%d", i))
		require.True(t, ok)
	}
	_, ok = p.Status(ctx, "/repo")
	require.True(t, ok)

	assert.Equal(t, 1, fake.dirs["/repo"])
	assert.Equal(t, 301, len(fake.dirs))
}

func TestProviderUnavailable(t *testing.T) {
	fake := &fakeGit{fail: true}
	p := NewProvider(fake.run, nil)

	s, ok := p.Status(context.Background(), "/not-a-repo")
	assert.False(t, ok)
	assert.Nil(t, s)

	_, ok = p.Status(context.Background(), "/not-a-repo")
	assert.False(t, ok)
	assert.Equal(t, 1, fake.calls)
}

func TestProviderStripsPrefix(t *testing.T) {
	fake := &fakeGit{prefix: "sub/", status: porcelain("?? sub/x.txt")}
	p := NewProvider(fake.run, nil)

	s, ok := p.Status(context.Background(), "/repo/sub")
	require.True(t, ok)
	assert.Equal(t, []string{"??"}, s.Codes("x.txt"))
}
