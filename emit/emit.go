// Package emit renders the generated enumeration and the unused-key report.
package emit

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/napalu/xcgen/errs"
	"github.com/napalu/xcgen/placeholder"
)

// Entry is one catalog entry prepared for rendering
type Entry struct {
	Key     string
	Value   string
	Comment string
	// Member is the target-specific member name
	Member string
	Spec   placeholder.Spec
	Unused bool
}

// Category groups the entries sharing the first key segment
type Category struct {
	Name    string
	Entries []Entry
}

// Document is everything a target needs to render one output file
type Document struct {
	// Source is the base name of the catalog
	Source     string
	Enum       string
	Package    string
	Categories []Category
}

// Target renders a Document for one programming language
type Target interface {
	// Name as selected on the command line
	Name() string
	// Extension of the source files that reference the generated code
	Extension() string
	// DefaultOutput is the output path used when none is configured
	DefaultOutput() string
	// MemberName turns a normalized key remainder into a member name
	MemberName(normalized string) string
	Render(doc *Document) ([]byte, error)
}

// DefaultTarget is used when no target is configured
const DefaultTarget = "swift"

var registry = map[string]func(logger zerolog.Logger) Target{
	"swift": func(zerolog.Logger) Target { return &SwiftTarget{} },
	"go":    func(logger zerolog.Logger) Target { return &GoTarget{Logger: logger} },
}

// Lookup returns the target registered under name
func Lookup(name string, logger zerolog.Logger) (Target, error) {
	if name == "" {
		name = DefaultTarget
	}
	newTarget, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, errs.ErrUnknownTarget.WithArgs(name)
	}
	return newTarget(logger), nil
}

// Targets returns the registered target names, sorted
func Targets() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SanitizeComment trims text and joins its lines with single spaces. Every
// Unicode line terminator ends a line, so the result fits on one source line.
func SanitizeComment(text string) string {
	return strings.Join(splitLines(strings.TrimSpace(text)), " ")
}

// splitLines splits s at line terminators; "\r\n" counts as one and a
// trailing terminator does not start another line
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isLineBreak(r) {
			lines = append(lines, s[start:i])
			if r == '\r' && strings.HasPrefix(s[i+size:], "\n") {
				size++
			}
			start = i + size
		}
		i += size
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// UsageID is the identifier of an entry as referenced after the enumeration name
func UsageID(category, member string) string {
	return category + "." + member
}
