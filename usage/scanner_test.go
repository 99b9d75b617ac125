package usage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/xcgen/errs"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func TestScan(t *testing.T) {
	candidates := []string{"Home.title", "Home.subtitle", "Home.foo", "Home.fooBar", "General.ok"}

	tests := []struct {
		name   string
		files  map[string]string
		ignore []string
		ext    string
		want   []string
	}{
		{
			name: "direct reference",
			files: map[string]string{
				"App/View.swift": `Text(L10n.Home.title)`,
			},
			want: []string{"Home.title"},
		},
		{
			name: "whole word only",
			files: map[string]string{
				"View.swift": `let a = L10n.Home.fooBarBaz; let b = XL10n.Home.title`,
			},
			want: []string{},
		},
		{
			name: "longer identifier is not shadowed by its prefix",
			files: map[string]string{
				"View.swift": `L10n.Home.fooBar + L10n.Home.foo`,
			},
			want: []string{"Home.foo", "Home.fooBar"},
		},
		{
			name: "function call",
			files: map[string]string{
				"View.swift": `Text(L10n.General.ok(3))`,
			},
			want: []string{"General.ok"},
		},
		{
			name: "ignored directories are not scanned",
			files: map[string]string{
				"Pods/Lib/View.swift":    `L10n.Home.title`,
				"App/Pods/View.swift":    `L10n.Home.subtitle`,
				"Vendor/Deep/View.swift": `L10n.General.ok`,
				"App/Main.swift":         `L10n.Home.foo`,
			},
			ignore: []string{"Pods", "Vendor/*"},
			want:   []string{"Home.foo"},
		},
		{
			name: "other extensions are skipped",
			files: map[string]string{
				"View.m":     `L10n.Home.title`,
				"README.md":  `L10n.Home.subtitle`,
				"Main.swift": `// nothing`,
			},
			want: []string{},
		},
		{
			name: "configured extension",
			files: map[string]string{
				"main.go":    `fmt.Println(L10n.Home.title)`,
				"View.swift": `L10n.Home.subtitle`,
			},
			ext:  ".go",
			want: []string{"Home.title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for rel, content := range tt.files {
				writeFile(t, root, rel, content)
			}
			ignore, err := NewIgnoreMatcher(tt.ignore)
			require.NoError(t, err)

			s := NewScanner(root, "L10n")
			s.Ignore = ignore
			if tt.ext != "" {
				s.Extension = tt.ext
			}

			idx, err := s.Scan(context.Background(), candidates)
			require.NoError(t, err)
			assert.Equal(t, tt.want, idx.Identifiers())
		})
	}
}

func TestScanErrors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "missing")
		_, err := NewScanner(root, "L10n").Scan(context.Background(), []string{"Home.title"})
		assert.ErrorIs(t, err, errs.ErrSourceDir)
	})

	t.Run("root is a file", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "file.swift", "")
		_, err := NewScanner(filepath.Join(root, "file.swift"), "L10n").Scan(context.Background(), nil)
		assert.ErrorIs(t, err, errs.ErrSourceDir)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "Bad.swift", "L10n.Home.title \xff\xfe")
		_, err := NewScanner(root, "L10n").Scan(context.Background(), []string{"Home.title"})
		assert.ErrorIs(t, err, errs.ErrSourceEncoding)
		assert.Contains(t, err.Error(), "Bad.swift")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewScanner(t.TempDir(), "L10n").Scan(ctx, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestScanCountsFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.swift", "")
	writeFile(t, root, "b/c.swift", "")
	writeFile(t, root, "b/d.txt", "")

	idx, err := NewScanner(root, "L10n").Scan(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Files)
	assert.Equal(t, 0, idx.Len())
}

func TestScanSkipsFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "View.swift", "Text(L10n.Home.title)")
	writeFile(t, root, "Generated/Strings.swift", `#warning("L10n.Home.subtitle is unused")`)

	s := NewScanner(root, "L10n")
	s.Skip = []string{filepath.Join(root, "Generated", "Strings.swift"), ""}
	idx, err := s.Scan(context.Background(), []string{"Home.title", "Home.subtitle"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Home.title"}, idx.Identifiers())
	assert.Equal(t, 1, idx.Files)
}

func TestIgnoreMatcher(t *testing.T) {
	m, err := NewIgnoreMatcher([]string{"Pods", " Carthage/ ", "Build/*/Intermediates", "*.xcassets", ""})
	require.NoError(t, err)

	tests := []struct {
		rel  string
		want bool
	}{
		{"Pods", true},
		{"App/Pods", true},
		{"PodsExtra", false},
		{"Carthage", true},
		{"Build/Debug/Intermediates", true},
		{"Build/Debug/Other", false},
		{"Build/a/b/Intermediates", false},
		{"App/Images.xcassets", true},
		{"App", false},
		{".", false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.rel))
		})
	}
}

func TestIgnoreMatcherInvalidPattern(t *testing.T) {
	_, err := NewIgnoreMatcher([]string{"Pods[", "ok"})
	assert.ErrorIs(t, err, errs.ErrInvalidIgnorePattern)
}

func TestNilIgnoreMatcher(t *testing.T) {
	var m *IgnoreMatcher
	assert.False(t, m.Match("Pods"))
}

func TestIndex(t *testing.T) {
	idx := NewIndex("b", "a", "b")
	assert.Equal(t, 2, idx.Len())
	assert.True(t, idx.Contains("a"))
	assert.False(t, idx.Contains("c"))
	assert.Equal(t, []string{"a", "b"}, idx.Identifiers())

	var empty *Index
	assert.False(t, empty.Contains("a"))
	assert.Equal(t, 0, empty.Len())
}
