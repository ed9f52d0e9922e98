package listing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/agusx1211/colorls/internal/fileinfo"
)

const (
	largeFile  = 512 << 20
	mediumFile = 128 << 20

	// minimum width of the numeric part of the size column
	minSizeWidth = 4
)

// columnWidths align the long-format and inode columns of one batch.
type columnWidths struct {
	inode int
	links int
	user  int
	group int
	size  int
}

func measure(entries []*fileinfo.Entry) columnWidths {
	w := columnWidths{size: minSizeWidth}
	for _, e := range entries {
		w.inode = max(w.inode, len(strconv.FormatUint(e.Inode, 10)))
		w.links = max(w.links, len(strconv.FormatUint(e.Nlink, 10)))
		w.user = max(w.user, runewidth.StringWidth(e.Owner))
		w.group = max(w.group, runewidth.StringWidth(e.Group))
		w.size = max(w.size, len(strconv.FormatInt(e.Size, 10)))
	}
	return w
}

func (c *Core) longInfo(e *fileinfo.Entry, w columnWidths) string {
	style := c.opts.Long
	parts := []string{c.theme.Permissions(fileinfo.Permissions(e.Mode))}
	if style.HardLinks {
		parts = append(parts, padLeft(strconv.FormatUint(e.Nlink, 10), w.links))
	}
	if style.ShowUser {
		parts = append(parts, c.theme.Paint("user", padRight(e.Owner, w.user)))
	}
	if style.ShowGroup {
		parts = append(parts, c.theme.Paint("normal", padRight(e.Group, w.group)))
	}
	parts = append(parts, c.sizeInfo(e.Size, w), c.mtimeInfo(e.ModTime))
	return strings.Join(parts, "  ")
}

func (c *Core) sizeInfo(size int64, w columnWidths) string {
	var text string
	if c.opts.Long.HumanSize {
		num, unit := humanSize(size)
		text = fmt.Sprintf("%*s %-3s", minSizeWidth, num, unit)
	} else {
		text = fmt.Sprintf("%*d B  ", w.size, size)
	}

	switch {
	case size >= largeFile:
		return c.theme.Paint("file_large", text)
	case size >= mediumFile:
		return c.theme.Paint("file_medium", text)
	default:
		return c.theme.Paint("file_small", text)
	}
}

// humanSize splits a binary-unit size into its integer part and unit.
func humanSize(size int64) (string, string) {
	if size < 0 {
		size = 0
	}
	num, unit, _ := strings.Cut(humanize.IBytes(uint64(size)), " ")
	if i := strings.IndexByte(num, '.'); i >= 0 {
		num = num[:i]
	}
	return num, unit
}

func (c *Core) mtimeInfo(mtime time.Time) string {
	text := formatTime(mtime, c.opts.Long.TimeStyle)
	age := c.now().Sub(mtime)
	switch {
	case age < time.Hour:
		return c.theme.Paint("hour_old", text)
	case age < 24*time.Hour:
		return c.theme.Paint("day_old", text)
	default:
		return c.theme.Paint("no_modifier", text)
	}
}

func (c *Core) inodeInfo(e *fileinfo.Entry, w columnWidths) string {
	return c.theme.Paint("inode", padLeft(strconv.FormatUint(e.Inode, 10), w.inode))
}

func padLeft(s string, width int) string {
	if n := runewidth.StringWidth(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := runewidth.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
