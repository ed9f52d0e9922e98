package listing

import (
	"context"
	"fmt"
	"io"

	"github.com/agusx1211/colorls/internal/filter"
)

const (
	branchGlyph = "├── "
	lastGlyph   = "└── "
	barIndent   = "│   "
	blankIndent = "    "
)

// tree renders b and descends into its directories. depth is the number
// of levels above b below the listed root. Symlinks are never followed,
// so a link to an ancestor cannot loop.
func (c *Core) tree(ctx context.Context, f *filter.Filter, b *batch, prefix string, depth int) error {
	for i, it := range b.items {
		last := i == len(b.items)-1
		glyph := branchGlyph
		if last || it.entry.IsDir {
			glyph = lastGlyph
		}
		line := c.theme.Paint("tree", prefix+glyph) + c.render(ctx, b, it) + "\n"
		if _, err := io.WriteString(c.out, line); err != nil {
			return err
		}

		if !it.entry.IsDir || isDot(it.entry.Name) {
			continue
		}
		if c.opts.TreeDepth > 0 && depth >= c.opts.TreeDepth {
			continue
		}

		entries, err := c.scan(it.entry.Path)
		if err != nil {
			fmt.Fprintf(c.errOut, "colorls: %v\n", err)
			continue
		}
		childPrefix := prefix + barIndent
		if last {
			childPrefix = prefix + blankIndent
		}
		sub := c.newBatch(c.prepare(f.Apply(entries)), b.counts)
		if err := c.tree(ctx, f, sub, childPrefix, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func isDot(name string) bool {
	return name == "." || name == ".."
}
