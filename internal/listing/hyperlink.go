package listing

import (
	"net/url"
	"path/filepath"
	"strings"
)

// fileURL is the file:// URL of path, made absolute.
func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// osc8 wraps text in an OSC 8 hyperlink to href. Inside tmux or screen the
// escape sequences are passed through to the outer terminal.
func osc8(href, text string, getenv func(string) string) string {
	open := "\x1b]8;;" + href + "\x07"
	closing := "\x1b]8;;\x07"
	return passthrough(open, getenv) + text + passthrough(closing, getenv)
}

func passthrough(seq string, getenv func(string) string) string {
	if getenv("TMUX") != "" {
		return "\x1bPtmux;" + strings.ReplaceAll(seq, "\x1b", "\x1b\x1b") + "\x1b\\"
	}
	if strings.HasPrefix(getenv("TERM"), "screen") {
		return "\x1bP" + seq + "\x1b\\"
	}
	return seq
}
