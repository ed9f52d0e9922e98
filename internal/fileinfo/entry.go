// Package fileinfo builds the Entry model that every later stage of a
// listing works from. Entries are populated once from lstat and never
// re-query the filesystem.
package fileinfo

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Entry represents one filesystem object to display.
type Entry struct {
	Name       string
	Path       string
	IsDir      bool
	IsSymlink  bool
	Mode       fs.FileMode
	Size       int64
	ModTime    time.Time
	Owner      string
	Group      string
	Nlink      uint64
	Inode      uint64
	LinkTarget string
	Dead       bool

	displayName string
	width       int
}

// Options control how entries are built.
type Options struct {
	// LinkInfo reads symlink targets and liveness.
	LinkInfo bool
	// FollowLinks takes metadata from the target of a live symlink.
	FollowLinks bool
	// ShowPath displays the path as given rather than its base name.
	ShowPath bool
}

// New stats path and builds its Entry. Identity lookups go through ids,
// which may be nil to skip owner and group resolution.
func New(path string, ids *IdentityCache, opts Options) (*Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		Name: filepath.Base(path),
		Path: path,
	}
	if opts.ShowPath {
		e.Name = path
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		e.IsSymlink = true
		if opts.LinkInfo {
			e.readLink()
		}
		if opts.FollowLinks && !e.Dead {
			if target, err := os.Stat(path); err == nil {
				info = target
			}
		}
	}

	e.fill(info, ids)
	return e, nil
}

// Dot builds the entries for "." and ".." relative to dir, which are named
// as such rather than by their base names. Path is left uncleaned so that
// its parent is still dir.
func Dot(dir, name string, ids *IdentityCache) (*Entry, error) {
	path := dir + string(filepath.Separator) + name
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	e := &Entry{Name: name, Path: path}
	e.fill(info, ids)
	return e, nil
}

func (e *Entry) fill(info fs.FileInfo, ids *IdentityCache) {
	e.Mode = info.Mode()
	e.IsDir = info.IsDir()
	e.Size = info.Size()
	e.ModTime = info.ModTime()

	st := statDetails(info)
	e.Nlink = st.nlink
	e.Inode = st.inode
	if ids != nil {
		e.Owner = ids.User(st.uid)
		e.Group = ids.Group(st.gid)
	}
}

func (e *Entry) readLink() {
	target, err := os.Readlink(e.Path)
	if err != nil {
		return
	}
	e.LinkTarget = target
	if _, err := os.Stat(e.Path); err != nil {
		e.Dead = true
	}
}

// DisplayName is the name made safe for terminal output: invalid UTF-8 and
// control characters are replaced by '?'.
func (e *Entry) DisplayName() string {
	if e.displayName == "" {
		e.displayName = sanitize(e.Name)
	}
	return e.displayName
}

// Width is the number of terminal columns DisplayName occupies.
func (e *Entry) Width() int {
	if e.width == 0 {
		e.width = runewidth.StringWidth(e.DisplayName())
	}
	return e.width
}

// Extension is the lowercased text after the last '.', or "" without one.
func (e *Entry) Extension() string {
	base := filepath.Base(e.Name)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}

// Hidden reports whether the name starts with a dot.
func (e *Entry) Hidden() bool {
	base := filepath.Base(e.Name)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}

// Executable reports whether any execute bit is set on a regular file.
func (e *Entry) Executable() bool {
	return !e.IsDir && e.Mode.IsRegular() && e.Mode.Perm()&0o111 != 0
}

func (e *Entry) CharDevice() bool { return e.Mode&fs.ModeCharDevice != 0 }

func (e *Entry) BlockDevice() bool {
	return e.Mode&fs.ModeDevice != 0 && e.Mode&fs.ModeCharDevice == 0
}

func (e *Entry) Socket() bool { return e.Mode&fs.ModeSocket != 0 }

func (e *Entry) String() string { return e.Name }

func sanitize(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for len(name) > 0 {
		r, size := utf8.DecodeRuneInString(name)
		switch {
		case r == utf8.RuneError && size == 1:
			sb.WriteByte('?')
		case r < 0x20 || r == 0x7f:
			sb.WriteByte('?')
		default:
			sb.WriteRune(r)
		}
		name = name[size:]
	}
	return sb.String()
}
