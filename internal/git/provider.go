package git

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Runner runs git with args inside dir and returns its standard output.
type Runner func(ctx context.Context, dir string, args ...string) ([]byte, error)

// ExecRunner runs the git binary from PATH. Standard error is discarded.
func ExecRunner(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run git %s: %w", strings.Join(args, " "), err)
	}
	return out, nil
}

// Provider queries git once per directory and remembers the answer,
// including the answer that no status is available. Answers are kept for
// the life of the Provider.
type Provider struct {
	run Runner
	log logrus.FieldLogger

	mu    sync.Mutex
	cache map[string]*Status
}

// NewProvider returns a Provider using run, or ExecRunner when run is nil.
func NewProvider(run Runner, log logrus.FieldLogger) *Provider {
	if run == nil {
		run = ExecRunner
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Provider{run: run, log: log, cache: make(map[string]*Status)}
}

// Status returns the change markers for the entries of dir. The second
// result is false when dir is not inside a repository or git fails; that
// is not an error and callers omit the decoration.
func (p *Provider) Status(ctx context.Context, dir string) (*Status, bool) {
	key := dir
	if abs, err := filepath.Abs(dir); err == nil {
		key = abs
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.cache[key]; ok {
		return s, s != nil
	}

	s := p.query(ctx, dir)
	p.cache[key] = s
	return s, s != nil
}

func (p *Provider) query(ctx context.Context, dir string) *Status {
	prefix, err := p.run(ctx, dir, "rev-parse", "--show-prefix")
	if err != nil {
		p.log.WithField("dir", dir).WithError(err).Debug("not a git work tree")
		return nil
	}

	out, err := p.run(ctx, dir, "status", "--porcelain", "-z", "-unormal", "--ignored", ".")
	if err != nil {
		p.log.WithField("dir", dir).WithError(err).Warn("git status failed")
		return nil
	}
	return Parse(out, strings.TrimSpace(string(prefix)))
}
