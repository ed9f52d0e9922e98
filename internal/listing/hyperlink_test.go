package listing

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSC8(t *testing.T) {
	env := map[string]string{"TERM": "xterm-256color"}
	getenv := func(k string) string { return env[k] }
	href := "file:///tmp/a.txt"

	seq := osc8(href, "a.txt", getenv)
	assert.Equal(t, "\x1b]8;;file:///tmp/a.txt\x07a.txt\x1b]8;;\x07", seq)

	env["TMUX"] = "/tmp/tmux-1000/default,1,0"
	seq = osc8(href, "a.txt", getenv)
	assert.Equal(t, "\x1bPtmux;\x1b\x1b]8;;file:///tmp/a.txt\x07\x1b\\a.txt\x1bPtmux;\x1b\x1b]8;;\x07\x1b\\", seq)

	env["TMUX"] = ""
	env["TERM"] = "screen"
	seq = osc8(href, "a.txt", getenv)
	assert.Equal(t, "\x1bP\x1b]8;;file:///tmp/a.txt\x07\x1b\\a.txt\x1bP\x1b]8;;\x07\x1b\\", seq)
}

func TestFileURL(t *testing.T) {
	u := fileURL("relative/name with space.txt")
	assert.True(t, strings.HasPrefix(u, "file:///"), u)
	assert.True(t, strings.HasSuffix(u, "/relative/name%20with%20space.txt"), u)

	abs, err := filepath.Abs(".")
	assert.NoError(t, err)
	assert.Equal(t, "file://"+filepath.ToSlash(abs), fileURL("."))
}
