package xcgen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/xcgen/errs"
)

const homeCatalog = `{
  "sourceLanguage" : "en",
  "strings" : {
    "home.title" : {
      "localizations" : { "en" : { "stringUnit" : { "state" : "translated", "value" : "Hi" } } }
    },
    "home.subtitle" : {
      "localizations" : { "en" : { "stringUnit" : { "state" : "translated", "value" : "Bye" } } }
    }
  },
  "version" : "1.0"
}`

type fixture struct {
	dir     string
	input   string
	output  string
	unused  string
	sources string
}

func newFixture(t *testing.T, catalogJSON string, sources map[string]string) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:     dir,
		input:   filepath.Join(dir, "Localizable.xcstrings"),
		output:  filepath.Join(dir, "Generated", "Strings+Generated.swift"),
		unused:  filepath.Join(dir, "Unused.txt"),
		sources: filepath.Join(dir, "App"),
	}
	require.NoError(t, os.WriteFile(f.input, []byte(catalogJSON), 0644))
	require.NoError(t, os.MkdirAll(f.sources, 0755))
	for rel, content := range sources {
		p := filepath.Join(f.sources, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return f
}

func (f fixture) generator(t *testing.T, extra ...ConfigureGeneratorFunc) *Generator {
	t.Helper()
	configs := append([]ConfigureGeneratorFunc{
		WithInput(f.input),
		WithOutput(f.output),
		WithOutputUnused(f.unused),
		WithSourceDir(f.sources),
	}, extra...)
	g, err := NewGeneratorWith(configs...)
	require.NoError(t, err)
	return g
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunReportsUnusedKeys(t *testing.T) {
	f := newFixture(t, homeCatalog, map[string]string{
		"HomeView.swift": `Text(L10n.Home.title)`,
	})

	result, err := f.generator(t).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Home.subtitle"}, result.Unused)
	assert.Equal(t, 2, result.Keys)
	assert.Equal(t, 1, result.Files)
	assert.Equal(t, "en", result.SourceLanguage)
	assert.Equal(t, "Home.subtitle\n", readFile(t, f.unused))

	swift := readFile(t, f.output)
	assert.Contains(t, swift, "// Generated from Localizable.xcstrings")
	assert.Contains(t, swift, "public enum L10n: Equatable, Hashable {")
	assert.Contains(t, swift, "  public enum Home {")
	assert.Contains(t, swift, `#warning("L10n.Home.subtitle is unused")`)
	assert.NotContains(t, swift, `#warning("L10n.Home.title is unused")`)
	assert.Regexp(t, `public static let title = LocalizedStringResource\(\n\s+"home.title",\n\s+defaultValue: "Hi"\n\s+\)`, swift)
}

func TestRunIgnoresReferencesInIgnoredDirs(t *testing.T) {
	f := newFixture(t, homeCatalog, map[string]string{
		"HomeView.swift":        `Text(L10n.Home.title)`,
		"Pods/Lib/Vendor.swift": `Text(L10n.Home.subtitle)`,
	})

	result, err := f.generator(t).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Home.subtitle"}, result.Unused)

	result, err = f.generator(t, WithIgnoreDirs()).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Unused)
}

func TestRunIsDeterministic(t *testing.T) {
	catalogJSON := `{
  "strings" : {
    "b.z" : { "localizations" : { "en" : { "stringUnit" : { "value" : "%2$@ bought %1$d" } } } },
    "a.y_x" : { "comment" : "line one\nline two", "localizations" : { "en" : { "stringUnit" : { "value" : "Multi\nLine" } } } },
    "plain" : { "localizations" : { "en" : { "stringUnit" : { "value" : "%@ has %d items" } } } },
    "a.b" : { "localizations" : { "en" : { "stringUnit" : { "value" : "x" } } } }
  }
}`
	f := newFixture(t, catalogJSON, map[string]string{
		"View.swift": `L10n.A.yX`,
	})

	_, err := f.generator(t).Run(context.Background())
	require.NoError(t, err)
	first := readFile(t, f.output)
	firstUnused := readFile(t, f.unused)

	_, err = f.generator(t).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, readFile(t, f.output))
	assert.Equal(t, firstUnused, readFile(t, f.unused))

	assert.Equal(t, "A.b\nB.z\nGeneral.plain\n", firstUnused)
	assert.Regexp(t, `(?s)MARK: - A.*MARK: - B.*MARK: - General`, first)
	assert.Contains(t, first, "public static func z(_ p0: Int, _ p1: String) -> LocalizedStringResource {")
	assert.Contains(t, first, `defaultValue: "\(p1) bought \(p0)"`)
	assert.Contains(t, first, "public static func plain(_ p0: String, _ p1: Int) -> LocalizedStringResource {")
	assert.Contains(t, first, "/// line one line two")
	assert.Contains(t, first, "defaultValue: \"\"\"\nMulti\nLine\n\"\"\"")
}

func TestRunOutputInsideSourceDir(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		source string
		output string
		unused []string
		marker string
	}{
		{
			name:   "swift",
			file:   "HomeView.swift",
			source: `Text(L10n.Home.title)`,
			output: filepath.Join("Generated", "Strings+Generated.swift"),
			unused: []string{"Home.subtitle"},
			marker: `#warning("L10n.Home.subtitle is unused")`,
		},
		{
			name:   "go",
			file:   "main.go",
			source: `fmt.Println(L10n.Home.Title())`,
			output: filepath.Join("l10n", "strings_generated.go"),
			unused: []string{"Home.Subtitle"},
			marker: "// Deprecated: L10n.Home.Subtitle is unused.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, homeCatalog, map[string]string{tt.file: tt.source})
			output := filepath.Join(f.dir, tt.output)
			g := f.generator(t, WithTarget(tt.name), WithSourceDir(f.dir), WithOutput(output))

			first, err := g.Run(context.Background())
			require.NoError(t, err)
			generated := readFile(t, output)
			assert.Contains(t, generated, tt.marker)

			second, err := g.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.unused, first.Unused)
			assert.Equal(t, tt.unused, second.Unused)
			assert.Equal(t, 1, second.Files)
			assert.Equal(t, generated, readFile(t, output))
			assert.Equal(t, tt.unused[0]+"\n", readFile(t, f.unused))
		})
	}
}

func TestRunRemovesStaleReport(t *testing.T) {
	f := newFixture(t, homeCatalog, map[string]string{
		"HomeView.swift": `L10n.Home.title; L10n.Home.subtitle`,
	})
	require.NoError(t, os.WriteFile(f.unused, []byte("Old.key\n"), 0644))

	result, err := f.generator(t).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Unused)

	_, err = os.Stat(f.unused)
	assert.True(t, os.IsNotExist(err))
}

func TestRunStrict(t *testing.T) {
	f := newFixture(t, homeCatalog, map[string]string{
		"HomeView.swift": `L10n.Home.title`,
	})

	result, err := f.generator(t, WithStrict(true)).Run(context.Background())
	assert.ErrorIs(t, err, errs.ErrUnusedKeys)
	require.NotNil(t, result)
	assert.Equal(t, []string{"Home.subtitle"}, result.Unused)

	// outputs are written before the strict check fails
	assert.FileExists(t, f.output)
	assert.FileExists(t, f.unused)
}

func TestRunKeep(t *testing.T) {
	f := newFixture(t, homeCatalog, nil)

	result, err := f.generator(t, WithKeep("home.sub*")).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Home.title"}, result.Unused)
}

func TestRunKeyCollision(t *testing.T) {
	catalogJSON := `{
  "strings" : {
    "home.user_name" : { "localizations" : { "en" : { "stringUnit" : { "value" : "a" } } } },
    "home.user-name" : { "localizations" : { "en" : { "stringUnit" : { "value" : "b" } } } }
  }
}`
	f := newFixture(t, catalogJSON, nil)

	_, err := f.generator(t).Run(context.Background())
	assert.ErrorIs(t, err, errs.ErrKeyCollision)
	assert.Contains(t, err.Error(), "Home.userName")
	assert.NoFileExists(t, f.output)
	assert.NoFileExists(t, f.unused)
}

func TestRunMissingCatalogTouchesNothing(t *testing.T) {
	f := newFixture(t, homeCatalog, nil)
	require.NoError(t, os.WriteFile(f.unused, []byte("Old.key\n"), 0644))

	_, err := f.generator(t, WithInput(filepath.Join(f.dir, "missing.xcstrings"))).Run(context.Background())
	assert.ErrorIs(t, err, errs.ErrCatalogNotFound)
	assert.Equal(t, "Old.key\n", readFile(t, f.unused))
	assert.NoFileExists(t, f.output)
}

func TestRunUndecodableSource(t *testing.T) {
	f := newFixture(t, homeCatalog, map[string]string{
		"Broken.swift": "L10n.Home.title \xff",
	})

	_, err := f.generator(t).Run(context.Background())
	assert.ErrorIs(t, err, errs.ErrSourceEncoding)
	assert.Contains(t, err.Error(), "Broken.swift")
	assert.NoFileExists(t, f.output)
}

func TestRunGoTarget(t *testing.T) {
	f := newFixture(t, homeCatalog, map[string]string{
		"main.go":        `fmt.Println(L10n.Home.Title())`,
		"HomeView.swift": `L10n.Home.Subtitle`,
	})
	output := filepath.Join(f.dir, "l10n", "strings_generated.go")

	result, err := f.generator(t, WithTarget("go"), WithOutput(output)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Home.Subtitle"}, result.Unused)

	src := readFile(t, output)
	assert.Contains(t, src, "package l10n")
	assert.Contains(t, src, "func (l10nHome) Title() Resource {")
	assert.Contains(t, src, "// Deprecated: L10n.Home.Subtitle is unused.")
}

func TestRunWarnings(t *testing.T) {
	catalogJSON := `{
  "strings" : {
    "hex" : { "localizations" : { "en" : { "stringUnit" : { "value" : "%x and %1$d then %@" } } } }
  }
}`
	f := newFixture(t, catalogJSON, nil)

	result, err := f.generator(t).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, Warning{Key: "hex", Unknown: []string{"%x"}, Mixed: true}, result.Warnings[0])
	assert.Contains(t, readFile(t, f.output), "public static func hex(_ p0: Int) -> LocalizedStringResource {")
}

func TestCategoryName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"home", "Home"},
		{"general", "General"},
		{"HOME", "Home"},
		{"user_profile", "Userprofile"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryName(tt.in))
		})
	}
}

func TestPackageName(t *testing.T) {
	assert.Equal(t, "l10n", packageName("Strings.go"))
	assert.Equal(t, "strings", packageName("internal/Strings/gen.go"))
	assert.Equal(t, "l10n", packageName("1st/gen.go"))
	assert.Equal(t, "myapp", packageName("my-app/gen.go"))
}
