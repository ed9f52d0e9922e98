package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agusx1211/colorls/internal/filter"
	"github.com/agusx1211/colorls/internal/listing"
	"github.com/agusx1211/colorls/internal/theme"
)

// cliFlags holds the raw command line. Flags that pick one of several
// values (mode, sort, show, group) write into a shared word so the last
// one given wins.
type cliFlags struct {
	all       bool
	almostAll bool
	show      string
	gitStatus bool
	indicator string
	inode     bool
	report    string
	hyperlink bool

	mode      string
	treeDepth int

	hideUser      bool
	hideGroup     bool
	noGroup       bool
	noHardLinks   bool
	followLinks   bool
	nonHumanSize  bool
	timeStyle     string
	humanReadable bool
	withoutIcons  bool

	sort    string
	reverse bool
	group   string

	color  string
	scheme string

	ignore    []string
	gitIgnore bool
	profile   string

	setDefaultFormat string
	verbose          bool
}

// switchFlag is a boolean flag that stores word into a shared selection
// when set. also, when not nil, is switched on with it.
type switchFlag struct {
	sel  *string
	word string
	also *bool
}

func (f *switchFlag) String() string { return strconv.FormatBool(*f.sel == f.word) }

func (f *switchFlag) Set(v string) error {
	on, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	if !on {
		return nil
	}
	*f.sel = f.word
	if f.also != nil {
		*f.also = true
	}
	return nil
}

func (f *switchFlag) Type() string { return "bool" }

// wordFlag validates its argument with parse and stores the canonical word
// into a shared selection.
type wordFlag struct {
	sel   *string
	parse func(string) (string, error)
	value string
}

func (f *wordFlag) String() string { return f.value }

func (f *wordFlag) Set(v string) error {
	word, err := f.parse(v)
	if err != nil {
		return err
	}
	f.value = v
	*f.sel = word
	return nil
}

func (f *wordFlag) Type() string { return "string" }

// treeFlag selects the tree mode and its depth.
type treeFlag struct {
	sel   *string
	depth *int
}

func (f *treeFlag) String() string { return strconv.Itoa(*f.depth) }

func (f *treeFlag) Set(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fmt.Errorf("invalid tree depth %q", v)
	}
	*f.depth = n
	*f.sel = formatTree
	return nil
}

func (f *treeFlag) Type() string { return "int" }

func addSwitch(cmd *cobra.Command, sel *string, word string, also *bool, name, shorthand, usage string) {
	cmd.Flags().VarP(&switchFlag{sel: sel, word: word, also: also}, name, shorthand, usage)
	cmd.Flags().Lookup(name).NoOptDefVal = "true"
}

func registerFlags(cmd *cobra.Command, f *cliFlags) {
	fl := cmd.Flags()
	fl.SortFlags = false

	fl.Bool("help", false, "prints this help")

	fl.BoolVarP(&f.all, "all", "a", false, "do not ignore entries starting with .")
	fl.BoolVarP(&f.almostAll, "almost-all", "A", false, "do not list . and ..")
	addSwitch(cmd, &f.show, "dirs", nil, "dirs", "d", "show only directories")
	addSwitch(cmd, &f.show, "files", nil, "files", "f", "show only files")
	fl.BoolVar(&f.gitStatus, "git-status", false, "show git status for each file")
	fl.BoolVar(&f.gitStatus, "gs", false, "show git status for each file")
	addSwitch(cmd, &f.indicator, "slash", nil, "slash-indicator", "p", "append / indicator to directories")
	fl.BoolVarP(&f.inode, "inode", "i", false, "show inode number")
	fl.StringVar(&f.report, "report", "", "show report: short, long (default if omitted)")
	fl.Lookup("report").NoOptDefVal = "long"
	fl.Var(&wordFlag{sel: &f.indicator, parse: parseIndicator}, "indicator-style", "append indicator with style STYLE to entry names: none, slash (-p) (default)")
	fl.Lookup("indicator-style").NoOptDefVal = "slash"

	fl.Var(&wordFlag{sel: &f.mode, parse: parseFormat}, "format", "use format: across (-x), horizontal (-x), long (-l), single-column (-1), vertical (-C)")
	addSwitch(cmd, &f.mode, formatSingleColumn, nil, "one-per-line", "1", "list one file per line")
	fl.Var(&treeFlag{sel: &f.mode, depth: &f.treeDepth}, "tree", "shows tree view of the directory, 0 for unlimited depth")
	fl.Lookup("tree").NoOptDefVal = strconv.Itoa(listing.DefaultTreeDepth)
	addSwitch(cmd, &f.mode, formatHorizontal, nil, "across", "x", "list entries by lines instead of by columns")
	addSwitch(cmd, &f.mode, formatVertical, nil, "columns", "C", "list entries by columns instead of by lines")
	fl.BoolVar(&f.withoutIcons, "without-icons", false, "list entries without icons")

	addSwitch(cmd, &f.mode, formatLong, nil, "long", "l", "use a long listing format")
	addSwitch(cmd, &f.mode, formatLong, &f.hideGroup, "long-without-group", "o", "use a long listing format without group information")
	addSwitch(cmd, &f.mode, formatLong, &f.hideUser, "long-without-owner", "g", "use a long listing format without owner information")
	fl.BoolVarP(&f.noGroup, "no-group", "G", false, "show no group information in a long listing")
	fl.StringVar(&f.timeStyle, "time-style", "", "use time display format: full-iso, long-iso, iso, +FORMAT")
	fl.BoolVar(&f.noHardLinks, "no-hardlinks", false, "show no hard links count in a long listing")
	fl.BoolVarP(&f.followLinks, "dereference", "L", false, "show information on the destination of symbolic links")
	fl.BoolVar(&f.nonHumanSize, "non-human-readable", false, "show file sizes in bytes only")

	addSwitch(cmd, &f.group, "dirs", nil, "sort-dirs", "", "sort directories first")
	addSwitch(cmd, &f.group, "dirs", nil, "sd", "", "sort directories first")
	addSwitch(cmd, &f.group, "dirs", nil, "group-directories-first", "", "sort directories first")
	addSwitch(cmd, &f.group, "files", nil, "sort-files", "", "sort files first")
	addSwitch(cmd, &f.group, "files", nil, "sf", "", "sort files first")
	addSwitch(cmd, &f.sort, "time", nil, "sort-time", "t", "sort by modification time, newest first")
	addSwitch(cmd, &f.sort, "none", nil, "unsorted", "U", "do not sort; list entries in directory order")
	addSwitch(cmd, &f.sort, "size", nil, "sort-size", "S", "sort by file size, largest first")
	addSwitch(cmd, &f.sort, "extension", nil, "sort-extension", "X", "sort by file extension")
	fl.Var(&wordFlag{sel: &f.sort, parse: parseSort}, "sort", "sort by WORD instead of name: none, size (-S), time (-t), extension (-X)")
	fl.BoolVarP(&f.reverse, "reverse", "r", false, "reverse order while sorting")

	fl.BoolVarP(&f.humanReadable, "human-readable", "h", false, "ignored, sizes are always human readable")

	fl.StringVar(&f.color, "color", "auto", "colorize the output: auto, always (default if omitted), never")
	fl.Lookup("color").NoOptDefVal = "always"
	addSwitch(cmd, &f.scheme, "light", nil, "light", "", "use light color scheme")
	addSwitch(cmd, &f.scheme, "dark", nil, "dark", "", "use dark color scheme")
	fl.BoolVar(&f.hyperlink, "hyperlink", false, "link entry names to their files")

	fl.StringArrayVarP(&f.ignore, "ignore", "I", nil, "do not list entries matching the glob (repeatable)")
	fl.BoolVar(&f.gitIgnore, "gitignore", false, "do not list entries ignored by the directory's .gitignore")
	fl.StringVar(&f.profile, "profile", "default", "config profile to apply")
	fl.StringVar(&f.setDefaultFormat, "set-default-format", "", "store the default format in the config file and exit")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log diagnostics to stderr")

	for _, alias := range []string{"gs", "sd", "group-directories-first", "sf"} {
		_ = fl.MarkHidden(alias)
	}
}

func parseFormat(word string) (string, error) {
	format, ok := normalizeFormat(word)
	if !ok || format == formatTree {
		return "", fmt.Errorf("invalid format %q (expected across, horizontal, long, single-column, or vertical)", word)
	}
	return format, nil
}

func parseSort(word string) (string, error) {
	key, err := listing.ParseSort(word)
	if err != nil {
		return "", err
	}
	switch key {
	case listing.SortTime:
		return "time", nil
	case listing.SortSize:
		return "size", nil
	case listing.SortExtension:
		return "extension", nil
	case listing.SortNone:
		return "none", nil
	default:
		return "name", nil
	}
}

func parseIndicator(word string) (string, error) {
	switch word {
	case "", "slash":
		return "slash", nil
	case "none":
		return "none", nil
	default:
		return "", fmt.Errorf("invalid indicator style %q (expected none or slash)", word)
	}
}

// options turns the command line and config defaults into listing options.
// tty reports whether stdout is a terminal.
func (f *cliFlags) options(cfg *settings, tty bool, width int) (listing.Options, error) {
	opts := listing.DefaultOptions()
	opts.Width = width

	format := f.mode
	if format == "" {
		format = cfg.format
	}
	if format == "" {
		format = formatSingleColumn
		if tty {
			format = formatVertical
		}
	}
	opts.Mode = formatMode(format)
	if opts.Mode == listing.Tree {
		opts.TreeDepth = listing.DefaultTreeDepth
		if f.mode == formatTree {
			opts.TreeDepth = f.treeDepth
		}
	}

	opts.Filter = filter.Options{
		All:       f.all,
		AlmostAll: f.almostAll,
		Ignore:    append(append([]string{}, cfg.ignore...), f.ignore...),
		GitIgnore: f.gitIgnore || cfg.gitIgnore,
	}
	if opts.Mode == listing.Tree && opts.Filter.All {
		opts.Filter.All = false
		opts.Filter.AlmostAll = true
	}
	switch f.show {
	case "dirs":
		opts.Filter.Show = filter.ShowDirs
	case "files":
		opts.Filter.Show = filter.ShowFiles
	}

	if f.sort != "" {
		key, err := listing.ParseSort(f.sort)
		if err != nil {
			return opts, err
		}
		opts.Sort = key
	}
	opts.Reverse = f.reverse
	switch f.group {
	case "dirs":
		opts.Group = listing.GroupDirs
	case "files":
		opts.Group = listing.GroupFiles
	}

	opts.Long.ShowUser = !f.hideUser
	opts.Long.ShowGroup = !f.hideGroup && !f.noGroup
	opts.Long.HardLinks = !f.noHardLinks
	opts.Long.FollowLinks = f.followLinks
	opts.Long.HumanSize = !f.nonHumanSize
	opts.Long.TimeStyle = f.timeStyle

	if f.report != "" {
		report, err := listing.ParseReport(f.report)
		if err != nil {
			return opts, err
		}
		opts.Report = report
	}

	opts.Inode = f.inode
	opts.Indicator = f.indicator != "none"
	opts.Icons = !f.withoutIcons
	opts.Hyperlink = f.hyperlink
	opts.GitStatus = f.gitStatus
	return opts, nil
}

func (f *cliFlags) colorWhen() (theme.When, error) {
	return theme.ParseWhen(f.color)
}

func (f *cliFlags) lightColors() bool { return f.scheme == "light" }
