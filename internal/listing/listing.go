// Package listing turns directories and files into colorized, icon
// annotated listings: it scans, filters, sorts, classifies, lays out and
// renders entries, one line at a time.
package listing

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agusx1211/colorls/internal/fileinfo"
	"github.com/agusx1211/colorls/internal/filter"
	"github.com/agusx1211/colorls/internal/git"
	"github.com/agusx1211/colorls/internal/icons"
	"github.com/agusx1211/colorls/internal/layout"
	"github.com/agusx1211/colorls/internal/theme"
)

// charsPerItem is what an entry occupies in a grid besides its name.
// iconWidth of it is the glyph and its trailing spaces.
const (
	charsPerItem = 12
	iconWidth    = 3
)

// Deps are the collaborators of a Core. Classifier is required; the rest
// default to plain output, no identity lookups and byte-order sorting.
type Deps struct {
	Out        io.Writer
	Err        io.Writer
	Classifier *icons.Classifier
	Theme      *theme.Theme
	Identities *fileinfo.IdentityCache
	Git        *git.Provider
	Collator   *Collator
	Log        logrus.FieldLogger
}

// Core renders listings for one invocation.
type Core struct {
	opts       Options
	out        io.Writer
	errOut     io.Writer
	classifier *icons.Classifier
	theme      *theme.Theme
	ids        *fileinfo.IdentityCache
	git        *git.Provider
	collator   *Collator
	log        logrus.FieldLogger

	now     func() time.Time
	getenv  func(string) string
	readDir func(string) ([]fs.DirEntry, error)
}

// New returns a Core writing to deps.Out.
func New(opts Options, deps Deps) *Core {
	c := &Core{
		opts:       opts,
		out:        deps.Out,
		errOut:     deps.Err,
		classifier: deps.Classifier,
		theme:      deps.Theme,
		ids:        deps.Identities,
		git:        deps.Git,
		collator:   deps.Collator,
		log:        deps.Log,
		now:        time.Now,
		getenv:     os.Getenv,
		readDir:    readDir,
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.errOut == nil {
		c.errOut = os.Stderr
	}
	if c.theme == nil {
		c.theme = theme.Plain()
	}
	if c.log == nil {
		c.log = logrus.StandardLogger()
	}
	if c.collator == nil {
		c.collator = &Collator{}
	}
	if c.git == nil && opts.GitStatus {
		c.git = git.NewProvider(nil, c.log)
	}
	return c
}

// Options returns the options the Core was built with.
func (c *Core) Options() Options { return c.opts }

// EntryOptions are the fileinfo options matching the listing mode.
func (c *Core) EntryOptions() fileinfo.Options {
	long := c.opts.Mode == Long
	return fileinfo.Options{
		LinkInfo:    long,
		FollowLinks: long && c.opts.Long.FollowLinks,
	}
}

type item struct {
	entry *fileinfo.Entry
	class icons.Result
}

// batch is a group of entries rendered together and aligned as one.
type batch struct {
	items  []item
	widths columnWidths
	counts *Counts
}

// ListDir lists the contents of dir. Counts cover this directory alone,
// and the whole subtree in tree mode.
func (c *Core) ListDir(ctx context.Context, dir string) (Counts, error) {
	var counts Counts
	f, err := filter.New(dir, c.opts.Filter, c.log)
	if err != nil {
		return counts, err
	}

	entries, err := c.scan(dir)
	if err != nil {
		return counts, err
	}
	entries = c.prepare(f.Apply(entries))

	if len(entries) == 0 {
		return counts, c.writePainted(c.out, "empty", emptyMessage)
	}

	if c.opts.Mode == Tree {
		b := c.newBatch(entries, &counts)
		if err := c.tree(ctx, f, b, "", 0); err != nil {
			return counts, err
		}
	} else if err := c.grid(ctx, c.newBatch(entries, &counts)); err != nil {
		return counts, err
	}
	return counts, c.writeReport(c.out, counts)
}

// ListFiles lists entries that were named directly rather than found in a
// directory. They are sorted and grouped but never filtered.
func (c *Core) ListFiles(ctx context.Context, entries []*fileinfo.Entry) (Counts, error) {
	var counts Counts
	if len(entries) == 0 {
		return counts, nil
	}
	entries = c.prepare(append([]*fileinfo.Entry(nil), entries...))
	if err := c.grid(ctx, c.newBatch(entries, &counts)); err != nil {
		return counts, err
	}
	return counts, c.writeReport(c.out, counts)
}

// scan reads dir in directory order. Entries that vanish between the read
// and the stat are skipped. A read that fails part way lists what was read.
func (c *Core) scan(dir string) ([]*fileinfo.Entry, error) {
	dirents, err := c.readDir(dir)
	if err != nil {
		if len(dirents) == 0 {
			return nil, err
		}
		c.log.WithError(err).WithField("dir", dir).Warn("directory partially read")
	}

	entries := make([]*fileinfo.Entry, 0, len(dirents)+2)
	if c.opts.Filter.All {
		for _, name := range []string{".", ".."} {
			e, err := fileinfo.Dot(dir, name, c.ids)
			if err != nil {
				c.log.WithError(err).WithField("dir", dir).Debug("cannot stat dot entry")
				continue
			}
			entries = append(entries, e)
		}
	}

	opts := c.EntryOptions()
	for _, de := range dirents {
		e, err := fileinfo.New(filepath.Join(dir, de.Name()), c.ids, opts)
		if err != nil {
			c.log.WithError(err).WithField("name", de.Name()).Warn("skipping entry")
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func readDir(dir string) ([]fs.DirEntry, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", dir, err)
	}
	defer d.Close()

	dirents, err := d.ReadDir(-1)
	if err != nil {
		return dirents, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	return dirents, nil
}

func (c *Core) prepare(entries []*fileinfo.Entry) []*fileinfo.Entry {
	sortEntries(entries, c.opts.Sort, c.opts.Reverse, c.collator)
	return groupEntries(entries, c.opts.Group)
}

func (c *Core) newBatch(entries []*fileinfo.Entry, counts *Counts) *batch {
	b := &batch{
		items:  make([]item, len(entries)),
		widths: measure(entries),
		counts: counts,
	}
	for i, e := range entries {
		b.items[i] = item{entry: e, class: c.classifier.Classify(e)}
	}
	return b
}

// itemWidth is the grid width of one entry including its fixed overhead.
func (c *Core) itemWidth(b *batch, it item) int {
	w := it.entry.Width() + charsPerItem
	if !c.opts.Icons {
		w -= iconWidth
	}
	if c.opts.Inode {
		w += b.widths.inode + 1
	}
	if c.opts.GitStatus {
		w += 4
	}
	return w
}

func (c *Core) grid(ctx context.Context, b *batch) error {
	widths := make([]int, len(b.items))
	for i, it := range b.items {
		widths[i] = c.itemWidth(b, it)
	}
	l := layout.New(c.opts.Mode.layoutMode(), b.items, widths, c.opts.Width)

	var err error
	l.EachLine(func(line []item, colWidths []int) {
		if err != nil {
			return
		}
		err = c.writeLine(ctx, b, line, colWidths)
	})
	return err
}

// writeLine assembles one grid line and writes it in a single call.
func (c *Core) writeLine(ctx context.Context, b *batch, line []item, widths []int) error {
	var sb strings.Builder
	padding := 0
	for i, it := range line {
		sb.WriteString(strings.Repeat(" ", padding))
		sb.WriteString("  ")
		sb.WriteString(c.render(ctx, b, it))
		padding = widths[i] - c.itemWidth(b, it)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(c.out, sb.String())
	return err
}
