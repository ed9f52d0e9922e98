// Package icons decides, per entry, which glyph, color category and count
// bucket applies.
package icons

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/agusx1211/colorls/internal/assets"
	"github.com/agusx1211/colorls/internal/fileinfo"
)

// Generic fallback keys.
const (
	FileKey   = "file"
	FolderKey = "folder"
)

// Category names a color from the active scheme.
type Category string

const (
	Dir              Category = "dir"
	HiddenDir        Category = "hidden_dir"
	RecognizedFile   Category = "recognized_file"
	UnrecognizedFile Category = "unrecognized_file"
	ExecutableFile   Category = "executable_file"
	Hidden           Category = "hidden"
	CharDevice       Category = "chardev"
	BlockDevice      Category = "blockdev"
	Socket           Category = "socket"
)

// Bucket is the counter a rendered entry increments.
type Bucket int

const (
	Folders Bucket = iota
	RecognizedFiles
	UnrecognizedFiles
)

func (b Bucket) String() string {
	switch b {
	case Folders:
		return "folders"
	case RecognizedFiles:
		return "recognized_files"
	default:
		return "unrecognized_files"
	}
}

// Tables are the base and alias tables for files and folders. Base tables
// map a key to a glyph specifier, alias tables map a synonym to a base key.
type Tables struct {
	Files         map[string]string
	FileAliases   map[string]string
	Folders       map[string]string
	FolderAliases map[string]string
}

// LoadTables reads the four icon tables through l.
func LoadTables(l assets.Loader) (Tables, error) {
	all, err := l.LoadAll(assets.Files, assets.FileAliases, assets.Folders, assets.FolderAliases)
	if err != nil {
		return Tables{}, err
	}
	return Tables{
		Files:         all[assets.Files],
		FileAliases:   all[assets.FileAliases],
		Folders:       all[assets.Folders],
		FolderAliases: all[assets.FolderAliases],
	}, nil
}

// Result is the classification of one entry.
type Result struct {
	Key      string
	Category Category
	Bucket   Bucket
}

// Classifier resolves entries against immutable tables. It is safe to
// share between goroutines once constructed.
type Classifier struct {
	tables       Tables
	fileGlyphs   map[string]string
	folderGlyphs map[string]string
}

// NewClassifier validates the tables and pre-resolves every glyph.
func NewClassifier(t Tables) (*Classifier, error) {
	if _, ok := t.Files[FileKey]; !ok {
		return nil, fmt.Errorf("file table has no %q entry", FileKey)
	}
	if _, ok := t.Folders[FolderKey]; !ok {
		return nil, fmt.Errorf("folder table has no %q entry", FolderKey)
	}
	c := &Classifier{
		tables:       t,
		fileGlyphs:   make(map[string]string, len(t.Files)),
		folderGlyphs: make(map[string]string, len(t.Folders)),
	}
	for k, v := range t.Files {
		c.fileGlyphs[k] = Glyph(v)
	}
	for k, v := range t.Folders {
		c.folderGlyphs[k] = Glyph(v)
	}
	return c, nil
}

// Classify returns the display key, color category and bucket for e.
func (c *Classifier) Classify(e *fileinfo.Entry) Result {
	name := strings.ToLower(filepath.Base(e.Name))

	if e.IsDir {
		key := FolderKey
		if _, ok := c.tables.Folders[name]; ok {
			key = name
		} else if alias, ok := c.tables.FolderAliases[name]; ok {
			if _, ok := c.tables.Folders[alias]; ok {
				key = alias
			}
		}
		cat := Dir
		if e.Hidden() {
			cat = HiddenDir
		}
		return Result{Key: key, Category: cat, Bucket: Folders}
	}

	key, recognized := c.fileKey(name, e.Extension())
	res := Result{Key: key, Bucket: UnrecognizedFiles}

	switch {
	case e.CharDevice():
		res.Category = CharDevice
		return res
	case e.BlockDevice():
		res.Category = BlockDevice
		return res
	case e.Socket():
		res.Category = Socket
		return res
	}

	if recognized {
		res.Bucket = RecognizedFiles
	}
	switch {
	case e.Executable():
		res.Category = ExecutableFile
	case e.Hidden():
		res.Category = Hidden
	case recognized:
		res.Category = RecognizedFile
	default:
		res.Category = UnrecognizedFile
	}
	return res
}

// fileKey tries the whole name before the extension, first in the base
// table and then in the alias table.
func (c *Classifier) fileKey(name, ext string) (string, bool) {
	if _, ok := c.tables.Files[name]; ok {
		return name, true
	}
	if ext != "" {
		if _, ok := c.tables.Files[ext]; ok {
			return ext, true
		}
	}
	for _, candidate := range []string{name, ext} {
		if candidate == "" {
			continue
		}
		if alias, ok := c.tables.FileAliases[candidate]; ok {
			if _, ok := c.tables.Files[alias]; ok {
				return alias, true
			}
		}
	}
	return FileKey, false
}

// Icon returns the printable glyph for a classification.
func (c *Classifier) Icon(r Result) string {
	if r.Bucket == Folders {
		if g, ok := c.folderGlyphs[r.Key]; ok {
			return g
		}
		return c.folderGlyphs[FolderKey]
	}
	if g, ok := c.fileGlyphs[r.Key]; ok {
		return g
	}
	return c.fileGlyphs[FileKey]
}

var escapeRe = regexp.MustCompile(`\\u\{([0-9a-fA-F]{1,6})\}|\\u([0-9a-fA-F]{4})`)

// Glyph turns a table value into printable text. Values may hold the glyph
// itself, \uXXXX escapes or \u{XXXXX} escapes.
func Glyph(spec string) string {
	return escapeRe.ReplaceAllStringFunc(spec, func(m string) string {
		sub := escapeRe.FindStringSubmatch(m)
		hex := sub[1]
		if hex == "" {
			hex = sub[2]
		}
		cp, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return m
		}
		return string(rune(cp))
	})
}
