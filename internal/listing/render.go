package listing

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/agusx1211/colorls/internal/fileinfo"
	"github.com/agusx1211/colorls/internal/git"
)

const (
	unchangedMarker = "  ✓ "
	blankMarker     = "    "
)

// render builds the text of one entry and counts it.
func (c *Core) render(ctx context.Context, b *batch, it item) string {
	b.counts.Add(it.class.Bucket)
	e := it.entry

	var sb strings.Builder
	if c.opts.Inode {
		sb.WriteString(c.inodeInfo(e, b.widths))
		sb.WriteByte(' ')
	}
	if c.opts.Mode == Long {
		sb.WriteString(c.longInfo(e, b.widths))
	}
	sb.WriteByte(' ')
	if c.opts.GitStatus {
		sb.WriteString(c.gitInfo(ctx, e))
	}
	sb.WriteByte(' ')
	sb.WriteString(c.name(it))
	if c.opts.Mode == Long {
		sb.WriteString(c.symlinkInfo(e))
	}
	return sb.String()
}

func (c *Core) name(it item) string {
	e := it.entry
	category := string(it.class.Category)
	paint := c.theme.Paint
	if e.Executable() {
		paint = c.theme.PaintBright
	}

	indicator := " "
	if e.IsDir && c.opts.Indicator {
		indicator = "/"
	}
	lead := ""
	if c.opts.Icons {
		lead = c.classifier.Icon(it.class) + "  "
	}

	if !c.opts.Hyperlink {
		return paint(category, lead+e.DisplayName()+indicator)
	}
	link := osc8(fileURL(e.Path), paint(category, e.DisplayName()), c.getenv)
	return paint(category, lead) + link + paint(category, indicator)
}

func (c *Core) symlinkInfo(e *fileinfo.Entry) string {
	if !e.IsSymlink {
		return ""
	}
	target := e.LinkTarget
	if target == "" {
		target = "…"
	}
	info := " ⇒ " + target
	if e.Dead {
		return c.theme.Paint("dead_link", info+" [Dead link]")
	}
	return c.theme.Paint("link", info)
}

// gitInfo is the four-column change marker. It is blank when the entry
// is outside a work tree.
func (c *Core) gitInfo(ctx context.Context, e *fileinfo.Entry) string {
	status, ok := c.git.Status(ctx, filepath.Dir(e.Path))
	if !ok {
		return blankMarker
	}

	switch {
	case e.Name == ".":
		return c.gitSymbols(status.All())
	case e.Name == "..":
		return blankMarker
	case e.IsDir:
		return c.gitSymbols(status.Codes(filepath.Base(e.Path)))
	case !status.Has(filepath.Base(e.Path)):
		return c.theme.Paint("unchanged", unchangedMarker)
	default:
		return c.gitSymbols(status.Codes(filepath.Base(e.Path)))
	}
}

var gitCodeCategories = map[byte]string{
	'?': "untracked",
	'A': "addition",
	'M': "modification",
	'D': "deletion",
}

// gitSymbols colors a marker; ignored entries render blank.
func (c *Core) gitSymbols(codes []string) string {
	marker := git.Symbols(codes)
	var sb strings.Builder
	for i := 0; i < len(marker); i++ {
		ch := marker[i]
		switch category, ok := gitCodeCategories[ch]; {
		case ok:
			sb.WriteString(c.theme.Paint(category, string(ch)))
		case ch == '!':
			sb.WriteByte(' ')
		default:
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}
