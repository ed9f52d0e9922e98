package listing

import (
	"fmt"
	"strings"

	"github.com/agusx1211/colorls/internal/filter"
	"github.com/agusx1211/colorls/internal/layout"
)

// Mode is the overall shape of a listing.
type Mode int

const (
	Vertical Mode = iota
	Horizontal
	SingleColumn
	Long
	Tree
)

func (m Mode) String() string {
	switch m {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case SingleColumn:
		return "single-column"
	case Long:
		return "long"
	default:
		return "tree"
	}
}

func (m Mode) layoutMode() layout.Mode {
	switch m {
	case Horizontal:
		return layout.Horizontal
	case Vertical:
		return layout.Vertical
	default:
		return layout.SingleColumn
	}
}

// SortKey orders the entries of one directory.
type SortKey int

const (
	SortName SortKey = iota
	SortTime
	SortSize
	SortExtension
	SortNone
)

// ParseSort accepts the words of --sort.
func ParseSort(word string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "", "name":
		return SortName, nil
	case "time":
		return SortTime, nil
	case "size":
		return SortSize, nil
	case "extension":
		return SortExtension, nil
	case "none":
		return SortNone, nil
	default:
		return SortName, fmt.Errorf("invalid sort key %q (expected none, size, time, or extension)", word)
	}
}

// Group moves directories before or after files.
type Group int

const (
	GroupNone Group = iota
	GroupDirs
	GroupFiles
)

// Report selects the summary printed after a listing.
type Report int

const (
	ReportOff Report = iota
	ReportShort
	ReportLong
)

// ParseReport accepts the words of --report. An empty word means long.
func ParseReport(word string) (Report, error) {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "", "long":
		return ReportLong, nil
	case "short":
		return ReportShort, nil
	default:
		return ReportOff, fmt.Errorf("invalid report mode %q (expected short or long)", word)
	}
}

// LongStyle toggles the columns of the long format.
type LongStyle struct {
	ShowUser  bool
	ShowGroup bool
	HardLinks bool
	// FollowLinks reports the metadata of a live symlink's target.
	FollowLinks bool
	HumanSize   bool
	// TimeStyle is a keyword, a +FORMAT string or a Go layout. Empty means
	// the asctime form.
	TimeStyle string
}

// DefaultLongStyle shows every column with human-readable sizes.
func DefaultLongStyle() LongStyle {
	return LongStyle{ShowUser: true, ShowGroup: true, HardLinks: true, HumanSize: true}
}

// DefaultTreeDepth bounds --tree without an explicit depth.
const DefaultTreeDepth = 3

// Options configure a Core.
type Options struct {
	Mode    Mode
	Sort    SortKey
	Reverse bool
	Group   Group
	Filter  filter.Options
	Long    LongStyle
	Report  Report

	Inode bool
	// Indicator appends '/' to directory names.
	Indicator bool
	Icons     bool
	Hyperlink bool
	GitStatus bool

	// TreeDepth limits how many levels below the root a tree descends.
	// Zero means unlimited.
	TreeDepth int
	// Width is the terminal width in columns; zero means unknown.
	Width int
}

// DefaultOptions is a vertical, name-sorted listing with icons.
func DefaultOptions() Options {
	return Options{
		Mode:      Vertical,
		Long:      DefaultLongStyle(),
		Indicator: true,
		Icons:     true,
		TreeDepth: DefaultTreeDepth,
	}
}
