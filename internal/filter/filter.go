// Package filter decides which directory entries take part in a listing.
package filter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sirupsen/logrus"

	"github.com/agusx1211/colorls/internal/fileinfo"
)

// Show restricts a listing to one kind of entry.
type Show int

const (
	ShowAll Show = iota
	ShowDirs
	ShowFiles
)

// Options select the entries to keep.
type Options struct {
	// All keeps hidden entries along with "." and "..".
	All bool
	// AlmostAll keeps hidden entries but not "." and "..".
	AlmostAll bool
	Show      Show
	// Ignore holds doublestar globs matched against the entry name and its
	// slash-separated path relative to the listed directory.
	Ignore []string
	// GitIgnore hides entries matched by the listed directory's .gitignore.
	GitIgnore bool
}

// Filter handles entry filtering for one listed directory and everything
// below it.
type Filter struct {
	opts      Options
	baseDir   string
	gitIgnore *ignore.GitIgnore
	log       logrus.FieldLogger
}

// New creates a filter rooted at dir.
func New(dir string, opts Options, log logrus.FieldLogger) (*Filter, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	f := &Filter{opts: opts, baseDir: dir, log: log}

	if opts.GitIgnore {
		gitIgnorePath := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			gi, err := ignore.CompileIgnoreFile(gitIgnorePath)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", gitIgnorePath, err)
			}
			f.gitIgnore = gi
		}
	}
	return f, nil
}

// Include reports whether e is listed.
func (f *Filter) Include(e *fileinfo.Entry) bool {
	if isDot(e.Name) {
		return f.opts.All && f.opts.Show != ShowFiles
	}

	if e.Hidden() && !f.opts.All && !f.opts.AlmostAll {
		return false
	}

	switch f.opts.Show {
	case ShowDirs:
		if !e.IsDir {
			return false
		}
	case ShowFiles:
		if e.IsDir {
			return false
		}
	}

	rel := f.relPath(e)
	if f.gitIgnore != nil && rel != "" {
		if f.gitIgnore.MatchesPath(rel) || (e.IsDir && f.gitIgnore.MatchesPath(rel+"/")) {
			return false
		}
	}

	return !f.ignored(e, rel)
}

// Apply returns the entries Include keeps, in their original order.
func (f *Filter) Apply(entries []*fileinfo.Entry) []*fileinfo.Entry {
	kept := make([]*fileinfo.Entry, 0, len(entries))
	for _, e := range entries {
		if f.Include(e) {
			kept = append(kept, e)
		}
	}
	return kept
}

func (f *Filter) ignored(e *fileinfo.Entry, rel string) bool {
	base := filepath.Base(e.Name)
	for _, pattern := range f.opts.Ignore {
		if f.match(pattern, base) || (rel != "" && rel != base && f.match(pattern, rel)) {
			return true
		}
	}
	return false
}

func (f *Filter) match(pattern, name string) bool {
	matched, err := doublestar.Match(pattern, name)
	if err != nil {
		f.log.WithError(err).WithField("pattern", pattern).Debug("bad ignore pattern")
		return false
	}
	return matched
}

func (f *Filter) relPath(e *fileinfo.Entry) string {
	if e.Path == "" {
		return ""
	}
	rel, err := filepath.Rel(f.baseDir, e.Path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	return filepath.ToSlash(rel)
}

func isDot(name string) bool {
	return name == "." || name == ".."
}
