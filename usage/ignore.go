package usage

import (
	"path"
	"strings"

	"github.com/gobwas/glob"

	"github.com/napalu/xcgen/errs"
)

// IgnoreMatcher decides which directories below the scan root are skipped
type IgnoreMatcher struct {
	exact map[string]struct{}
	// globs over the full relative path
	paths []glob.Glob
	// globs over the directory name, for entries without a slash
	names []glob.Glob
}

// NewIgnoreMatcher compiles ignore entries. Each entry is a slash-separated
// path relative to the scan root or a glob over such paths. Entries without a
// slash also match any directory of that name.
func NewIgnoreMatcher(entries []string) (*IgnoreMatcher, error) {
	m := &IgnoreMatcher{exact: make(map[string]struct{})}

	for _, entry := range entries {
		entry = strings.Trim(strings.TrimSpace(entry), "/")
		if entry == "" {
			continue
		}
		entry = path.Clean(entry)
		m.exact[entry] = struct{}{}

		g, err := glob.Compile(entry, '/')
		if err != nil {
			return nil, errs.ErrInvalidIgnorePattern.WithArgs(entry).Wrap(err)
		}
		if strings.Contains(entry, "/") {
			m.paths = append(m.paths, g)
		} else {
			m.names = append(m.names, g)
		}
	}

	return m, nil
}

// Match reports whether the directory at rel, relative to the scan root and
// slash-separated, is ignored
func (m *IgnoreMatcher) Match(rel string) bool {
	if m == nil || rel == "" || rel == "." {
		return false
	}
	if _, ok := m.exact[rel]; ok {
		return true
	}

	name := path.Base(rel)
	for _, g := range m.names {
		if g.Match(name) {
			return true
		}
	}
	for _, g := range m.paths {
		if g.Match(rel) {
			return true
		}
	}

	return false
}
