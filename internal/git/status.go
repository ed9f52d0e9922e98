// Package git reads per-entry change markers from `git status`.
package git

import (
	"bytes"
	"sort"
	"strings"
)

// Status maps the top-level path segments of one directory to the
// porcelain codes of the changes below them. Entries missing from the map
// are unchanged.
type Status struct {
	codes map[string]map[string]struct{}
}

// Parse reads `git status --porcelain -z` output. prefix is the listed
// directory relative to the repository root, as printed by
// `git rev-parse --show-prefix`, and is stripped from every path.
func Parse(out []byte, prefix string) *Status {
	s := &Status{codes: make(map[string]map[string]struct{})}
	fields := bytes.Split(out, []byte{0})
	for i := 0; i < len(fields); i++ {
		rec := string(fields[i])
		if len(rec) < 4 || rec[2] != ' ' {
			continue
		}
		code := strings.TrimSpace(rec[:2])
		path := rec[3:]

		// renames and copies carry the original path in the next field
		if rec[0] == 'R' || rec[0] == 'C' {
			i++
		}

		path = strings.TrimPrefix(path, prefix)
		path = strings.TrimSuffix(path, "/")
		if path == "" {
			continue
		}
		if slash := strings.IndexByte(path, '/'); slash >= 0 {
			path = path[:slash]
		}
		s.add(path, code)
	}
	return s
}

func (s *Status) add(name, code string) {
	set, ok := s.codes[name]
	if !ok {
		set = make(map[string]struct{}, 1)
		s.codes[name] = set
	}
	set[code] = struct{}{}
}

// Has reports whether name has any recorded change.
func (s *Status) Has(name string) bool {
	_, ok := s.codes[name]
	return ok
}

// Codes returns the sorted codes recorded for name.
func (s *Status) Codes(name string) []string {
	return sortedKeys(s.codes[name])
}

// All returns the union of every recorded code, sorted.
func (s *Status) All() []string {
	union := make(map[string]struct{})
	for _, set := range s.codes {
		for code := range set {
			union[code] = struct{}{}
		}
	}
	return sortedKeys(union)
}

// Len is the number of top-level names with changes.
func (s *Status) Len() int { return len(s.codes) }

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Symbols folds codes into the fixed four-column marker shown before an
// entry: the distinct status characters, right-aligned in three columns
// and padded to four.
func Symbols(codes []string) string {
	var sb strings.Builder
	seen := make(map[byte]bool, 4)
	for _, code := range codes {
		for i := 0; i < len(code); i++ {
			if c := code[i]; !seen[c] {
				seen[c] = true
				sb.WriteByte(c)
			}
		}
	}
	marker := sb.String()
	if n := len(marker); n < 3 {
		marker = strings.Repeat(" ", 3-n) + marker
	}
	if n := len(marker); n < 4 {
		marker += strings.Repeat(" ", 4-n)
	}
	return marker
}
