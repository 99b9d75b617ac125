// Package usage finds which generated identifiers are referenced in a source tree.
package usage

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ef-ds/deque"
	"github.com/rs/zerolog"

	"github.com/napalu/xcgen/errs"
)

// DefaultExtension is the source extension searched when none is configured
const DefaultExtension = ".swift"

// Scanner searches source files for references of the form <prefix>.<identifier>
type Scanner struct {
	Root      string
	Prefix    string
	Extension string
	Ignore    *IgnoreMatcher
	// Skip lists files that are never searched, such as the generated outputs
	Skip      []string
	Logger    zerolog.Logger
}

// NewScanner returns a scanner for root with the default extension and no ignored directories
func NewScanner(root, prefix string) *Scanner {
	return &Scanner{
		Root:      root,
		Prefix:    prefix,
		Extension: DefaultExtension,
		Logger:    zerolog.Nop(),
	}
}

// Scan walks the tree breadth-first and returns the candidates that occur at
// least once as a whole word. Ignored directories are never entered.
func (s *Scanner) Scan(ctx context.Context, candidates []string) (*Index, error) {
	idx := NewIndex()
	pattern := referencePattern(s.Prefix, candidates)

	info, err := os.Stat(s.Root)
	if err != nil {
		return nil, errs.ErrSourceDir.WithArgs(s.Root).Wrap(err)
	}
	if !info.IsDir() {
		return nil, errs.ErrSourceDir.WithArgs(s.Root)
	}

	ext := s.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	skip := s.skipSet()

	// queue of slash-separated paths relative to Root
	pending := deque.New()
	pending.PushBack(".")

	for pending.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v, _ := pending.PopFront()
		rel := v.(string)
		dir := filepath.Join(s.Root, filepath.FromSlash(rel))

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, errs.ErrSourceDir.WithArgs(dir).Wrap(err)
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name() < entries[j].Name()
		})

		for _, entry := range entries {
			child := path.Join(rel, entry.Name())
			if entry.IsDir() {
				if s.Ignore.Match(child) {
					s.Logger.Debug().Str("dir", child).Msg("ignoring directory")
					continue
				}
				pending.PushBack(child)
				continue
			}
			if !strings.HasSuffix(entry.Name(), ext) {
				continue
			}

			file := filepath.Join(s.Root, filepath.FromSlash(child))
			if isSkipped(skip, file) {
				s.Logger.Debug().Str("file", file).Msg("skipping generated file")
				continue
			}
			if err := s.scanFile(file, pattern, idx); err != nil {
				return nil, err
			}
			idx.Files++
		}
	}

	return idx, nil
}

func (s *Scanner) skipSet() map[string]struct{} {
	skip := make(map[string]struct{}, len(s.Skip))
	for _, p := range s.Skip {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			skip[abs] = struct{}{}
		}
	}
	return skip
}

func isSkipped(skip map[string]struct{}, file string) bool {
	if len(skip) == 0 {
		return false
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return false
	}
	_, ok := skip[abs]
	return ok
}

func (s *Scanner) scanFile(file string, pattern *regexp.Regexp, idx *Index) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errs.ErrSourceRead.WithArgs(file).Wrap(err)
	}
	if !utf8.Valid(data) {
		return errs.ErrSourceEncoding.WithArgs(file)
	}

	s.Logger.Debug().Str("file", file).Msg("scanning")
	if pattern == nil {
		return nil
	}
	for _, m := range pattern.FindAllSubmatch(data, -1) {
		idx.Add(string(m[1]))
	}

	return nil
}

// referencePattern builds one expression matching any candidate. Longer
// candidates come first so that a candidate which is a prefix of another
// one cannot shadow it.
func referencePattern(prefix string, candidates []string) *regexp.Regexp {
	if len(candidates) == 0 {
		return nil
	}

	alts := make([]string, len(candidates))
	copy(alts, candidates)
	sort.Slice(alts, func(i, j int) bool {
		if len(alts[i]) != len(alts[j]) {
			return len(alts[i]) > len(alts[j])
		}
		return alts[i] < alts[j]
	})
	for i, a := range alts {
		alts[i] = regexp.QuoteMeta(a)
	}

	return regexp.MustCompile(`\b` + regexp.QuoteMeta(prefix) + `\.(` + strings.Join(alts, "|") + `)\b`)
}
