package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/agusx1211/colorls/internal/assets"
	"github.com/agusx1211/colorls/internal/fileinfo"
	"github.com/agusx1211/colorls/internal/icons"
	"github.com/agusx1211/colorls/internal/listing"
	"github.com/agusx1211/colorls/internal/theme"
)

var version = "dev"

const defaultWidth = 80

// errPathsFailed reports that at least one argument could not be listed.
// The reason was already printed.
var errPathsFailed = errors.New("some paths could not be listed")

// usageError is a command line the flag parser rejected.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	f := &cliFlags{}
	cmd := &cobra.Command{
		Use:   "colorls [OPTION]... [FILE]...",
		Short: "Colorls lists directory contents with colors and icons",
		Long: `Colorls lists the contents of directories with a color and an icon
for every entry, recognizing files and folders by name and extension.
Entries can be laid out in columns, one per line, in a long format or as a
tree, optionally decorated with git status.

Several short options can be combined:

  colorls -d -l -a
  colorls -dla`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	registerFlags(cmd, f)
	return cmd
}

func run(cmd *cobra.Command, f *cliFlags, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	log := newLogger(errOut, f.verbose)

	cfgPath, err := defaultConfigPath()
	if err != nil {
		log.WithError(err).Debug("no config directory")
		cfgPath = ""
	}

	if f.setDefaultFormat != "" {
		if cfgPath == "" {
			return fmt.Errorf("failed to locate config file: %w", err)
		}
		if err := writeDefaultFormatToFile(cfgPath, f.setDefaultFormat); err != nil {
			return fmt.Errorf("failed to set default format: %w", err)
		}
		format, _ := normalizeFormat(f.setDefaultFormat)
		fmt.Fprintf(out, "Default format set to %s in %s\n", format, cfgPath)
		return nil
	}

	cfg := &settings{}
	if cfgPath != "" {
		cfg, err = readConfigFile(cfgPath, f.profile)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("profile") && cfg.profile != f.profile {
		log.WithField("profile", f.profile).Warn("profile not found in config file")
	}

	width, tty := terminalWidth(out, os.Getenv)
	opts, err := f.options(cfg, tty, width)
	if err != nil {
		return err
	}
	when, err := f.colorWhen()
	if err != nil {
		return err
	}

	loader := assets.NewLoader()
	tables, err := icons.LoadTables(loader)
	if err != nil {
		return fmt.Errorf("failed to load icon tables: %w", err)
	}
	classifier, err := icons.NewClassifier(tables)
	if err != nil {
		return fmt.Errorf("failed to load icon tables: %w", err)
	}
	th, err := theme.Load(loader, f.lightColors(), when, out)
	if err != nil {
		return fmt.Errorf("failed to load color scheme: %w", err)
	}

	ids := fileinfo.NewIdentityCache(log)
	collator := listing.NewCollator(listing.LocaleFromEnv(os.Getenv))
	core := listing.New(opts, listing.Deps{
		Out:        out,
		Err:        errOut,
		Classifier: classifier,
		Theme:      th,
		Identities: ids,
		Collator:   collator,
		Log:        log,
	})

	if len(args) == 0 {
		args = []string{"."}
	}
	return listPaths(cmd.Context(), core, args, out, errOut, ids, collator)
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// terminalWidth returns the width of w when it is a terminal. Otherwise
// COLUMNS is honoured, then a fixed default.
func terminalWidth(w io.Writer, getenv func(string) string) (int, bool) {
	if f, ok := w.(interface{ Fd() uintptr }); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width, true
		}
		return defaultWidth, true
	}
	if cols, err := strconv.Atoi(getenv("COLUMNS")); err == nil && cols > 0 {
		return cols, false
	}
	return defaultWidth, false
}

// listPaths lists the non-directory arguments together, then every
// directory in collation order, each with its own report.
func listPaths(ctx context.Context, core *listing.Core, args []string, out, errOut io.Writer, ids *fileinfo.IdentityCache, collator *listing.Collator) error {
	failed := false
	opts := core.EntryOptions()
	opts.ShowPath = true

	var files, dirs []*fileinfo.Entry
	for _, arg := range args {
		e, err := fileinfo.New(arg, ids, opts)
		if err != nil {
			failed = true
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(errOut, "colorls: Specified path '%s' doesn't exist.\n", arg)
			} else {
				fmt.Fprintf(errOut, "colorls: %v\n", err)
			}
			continue
		}
		if e.IsDir {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}

	if len(files) > 0 {
		if _, err := core.ListFiles(ctx, files); err != nil {
			return fmt.Errorf("failed to list files: %w", err)
		}
	}

	sort.SliceStable(dirs, func(i, j int) bool {
		return collator.Compare(dirs[i].Name, dirs[j].Name) < 0
	})
	for _, dir := range dirs {
		if len(args) > 1 {
			if _, err := fmt.Fprintf(out, "\n%s:\n", dir.Name); err != nil {
				return err
			}
		}
		if _, err := core.ListDir(ctx, dir.Path); err != nil {
			failed = true
			fmt.Fprintf(errOut, "colorls: %v\n", err)
		}
	}

	if failed {
		return errPathsFailed
	}
	return nil
}

// helpOnly reports whether every argument is -h, which ls users type to
// ask for help rather than for human-readable sizes.
func helpOnly(args []string) bool {
	if len(args) == 0 {
		return false
	}
	for _, a := range args {
		if a != "-h" {
			return false
		}
	}
	return true
}

func main() {
	rootCmd := newRootCmd()
	if helpOnly(os.Args[1:]) {
		rootCmd.SetArgs([]string{"--help"})
	}
	if err := rootCmd.Execute(); err != nil {
		var usage *usageError
		switch {
		case errors.Is(err, errPathsFailed):
			os.Exit(2)
		case errors.As(err, &usage):
			fmt.Fprintf(os.Stderr, "colorls: %v\nSee 'colorls --help'.\n", err)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
