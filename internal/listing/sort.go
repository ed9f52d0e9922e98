package listing

import (
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/agusx1211/colorls/internal/fileinfo"
)

// Collator compares names in locale order. A nil Collator compares bytes.
type Collator struct {
	c *collate.Collator
}

// NewCollator builds a collator for a locale name such as "en_US.UTF-8".
// "C", "POSIX" and unparsable names fall back to byte order.
func NewCollator(locale string) *Collator {
	name := locale
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return &Collator{}
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return &Collator{}
	}
	return &Collator{c: collate.New(tag)}
}

// LocaleFromEnv picks the collation locale the way the C library does.
func LocaleFromEnv(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if v := getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Compare returns -1, 0 or 1.
func (c *Collator) Compare(a, b string) int {
	if c != nil && c.c != nil {
		if r := c.c.CompareString(a, b); r != 0 {
			return r
		}
	}
	return strings.Compare(a, b)
}

func sortEntries(entries []*fileinfo.Entry, key SortKey, reverse bool, coll *Collator) {
	switch key {
	case SortNone:
	case SortTime:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].ModTime.After(entries[j].ModTime)
		})
	case SortSize:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Size > entries[j].Size
		})
	case SortExtension:
		sort.SliceStable(entries, func(i, j int) bool {
			si, ei := splitExt(entries[i].Name)
			sj, ej := splitExt(entries[j].Name)
			if r := coll.Compare(ei, ej); r != 0 {
				return r < 0
			}
			return coll.Compare(si, sj) < 0
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return coll.Compare(entries[i].Name, entries[j].Name) < 0
		})
	}

	if reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
}

// splitExt splits name into stem and extension; a leading dot alone does
// not start an extension.
func splitExt(name string) (string, string) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == base {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// groupEntries moves directories first or last, keeping relative order.
func groupEntries(entries []*fileinfo.Entry, g Group) []*fileinfo.Entry {
	if g == GroupNone {
		return entries
	}
	dirs := make([]*fileinfo.Entry, 0, len(entries))
	files := make([]*fileinfo.Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	if g == GroupDirs {
		return append(dirs, files...)
	}
	return append(files, dirs...)
}
