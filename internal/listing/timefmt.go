package listing

import (
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"
)

var timeStyles = map[string]string{
	"full-iso": "2006-01-02 15:04:05.000000000 -0700",
	"long-iso": "2006-01-02 15:04",
	"iso":      "01-02 15:04",
	"locale":   time.ANSIC,
}

// formatTime renders t in a --time-style: a keyword, "+" followed by a
// strftime format, or a Go reference layout. Empty means asctime.
func formatTime(t time.Time, style string) string {
	switch {
	case style == "":
		return t.Format(time.ANSIC)
	case strings.HasPrefix(style, "+"):
		return timefmt.Format(t, style[1:])
	}
	if layout, ok := timeStyles[style]; ok {
		return t.Format(layout)
	}
	return t.Format(style)
}
