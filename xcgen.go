// Package xcgen generates typed accessors for the strings of an Xcode string
// catalog and reports catalog keys that are never referenced in the sources.
//
// A Generator runs the whole pipeline: it reads the catalog, derives member
// names and parameter types, searches the source tree for references,
// writes the unused-key report and renders the generated source file.
//
//	g, err := xcgen.NewGeneratorWith(
//		xcgen.WithInput("Resources/Localizable.xcstrings"),
//		xcgen.WithSourceDir("App"),
//		xcgen.WithStrict(true))
//	if err != nil {
//		return err
//	}
//	result, err := g.Run(ctx)
package xcgen

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/gobwas/glob"
	"github.com/rs/zerolog"
	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/napalu/xcgen/catalog"
	"github.com/napalu/xcgen/emit"
	"github.com/napalu/xcgen/errs"
	"github.com/napalu/xcgen/naming"
	"github.com/napalu/xcgen/placeholder"
	"github.com/napalu/xcgen/usage"
)

// Generator turns a string catalog into generated source code. It keeps no
// state between runs.
type Generator struct {
	cfg    Config
	logger zerolog.Logger
}

// NewGenerator returns a generator using DefaultConfig
func NewGenerator() *Generator {
	return &Generator{
		cfg:    DefaultConfig(),
		logger: zerolog.Nop(),
	}
}

// NewGeneratorWith allows initialization of a Generator using option functions. The caller should always
// test for error on return because Generator will be nil when an error occurs during initialization.
func NewGeneratorWith(configs ...ConfigureGeneratorFunc) (*Generator, error) {
	g := NewGenerator()

	var err error
	for _, config := range configs {
		config(g, &err)
		if err != nil {
			return nil, err
		}
	}

	return g, err
}

// Config returns a copy of the generator's configuration
func (g *Generator) Config() Config {
	cfg := g.cfg
	cfg.IgnoreDirs = append([]string(nil), g.cfg.IgnoreDirs...)
	cfg.Keep = append([]string(nil), g.cfg.Keep...)
	return cfg
}

type item struct {
	entry    catalog.Entry
	category string
	rest     string
}

// Run executes the pipeline. Nothing is written when the catalog cannot be
// read, two keys map to the same identifier or a source file cannot be
// searched. In strict mode ErrUnusedKeys is returned together with the result
// after all outputs were written.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	cfg := g.cfg
	target, err := emit.Lookup(cfg.Target, g.logger)
	if err != nil {
		return nil, err
	}
	g.resolveDefaults(&cfg, target)

	cat, err := catalog.Load(cfg.Input, cfg.Locale, g.logger)
	if err != nil {
		return nil, err
	}
	g.logger.Debug().
		Str("catalog", cfg.Input).
		Str("sourceLanguage", cat.SourceLanguage).
		Int("entries", len(cat.Entries)).
		Msg("catalog loaded")

	result := &Result{
		Output:         cfg.Output,
		OutputUnused:   cfg.OutputUnused,
		Keys:           len(cat.Entries),
		SourceLanguage: cat.SourceLanguage,
		Skipped:        cat.Skipped,
	}

	categories := groupEntries(cat.Entries)

	keep, err := compileKeep(cfg.Keep)
	if err != nil {
		return nil, err
	}

	doc := &emit.Document{
		Source:  filepath.Base(cfg.Input),
		Enum:    cfg.EnumName,
		Package: cfg.Package,
	}
	claims := naming.NewClaims()
	kept := make(map[string]bool)
	for pair := categories.Oldest(); pair != nil; pair = pair.Next() {
		name := pair.Key.(string)
		items := pair.Value.([]item)

		category := emit.Category{Name: name}
		for _, it := range items {
			member := target.MemberName(naming.Normalize(it.rest))
			id := emit.UsageID(name, member)
			if !claims.Claim(id, it.entry.Key) {
				owner, _ := claims.Owner(id)
				return nil, errs.ErrKeyCollision.WithArgs(owner, it.entry.Key, id)
			}
			if !naming.IsIdentifier(member) {
				g.logger.Warn().Str("key", it.entry.Key).Str("member", member).Msg("key does not map to a valid identifier")
			}
			if matchesAny(keep, it.entry.Key) {
				kept[id] = true
			}

			spec := placeholder.Analyze(it.entry.Value)
			if w, ok := checkSpecifiers(it.entry); ok {
				g.logger.Warn().Str("key", w.Key).Strs("unknown", w.Unknown).Bool("mixed", w.Mixed).Msg("format specifiers are not fully typed")
				result.Warnings = append(result.Warnings, w)
			}

			category.Entries = append(category.Entries, emit.Entry{
				Key:     it.entry.Key,
				Value:   it.entry.Value,
				Comment: it.entry.Comment,
				Member:  member,
				Spec:    spec,
			})
		}
		doc.Categories = append(doc.Categories, category)
	}

	g.logger.Debug().Int("identifiers", claims.Len()).Msg("identifiers claimed")

	scanner := usage.NewScanner(cfg.SourceDir, cfg.EnumName)
	scanner.Extension = cfg.Extension
	scanner.Logger = g.logger
	scanner.Skip = []string{cfg.Output, cfg.OutputUnused}
	if scanner.Ignore, err = usage.NewIgnoreMatcher(cfg.IgnoreDirs); err != nil {
		return nil, err
	}
	index, err := scanner.Scan(ctx, claims.Identifiers())
	if err != nil {
		return nil, err
	}
	result.Files = index.Files

	for ci := range doc.Categories {
		c := &doc.Categories[ci]
		for ei := range c.Entries {
			e := &c.Entries[ei]
			id := emit.UsageID(c.Name, e.Member)
			if !index.Contains(id) && !kept[id] {
				e.Unused = true
				result.Unused = append(result.Unused, id)
			}
		}
	}
	sort.Strings(result.Unused)

	source, err := target.Render(doc)
	if err != nil {
		return nil, err
	}
	if err := emit.WriteUnused(cfg.OutputUnused, result.Unused); err != nil {
		return nil, err
	}
	if err := emit.WriteFile(cfg.Output, source); err != nil {
		return nil, err
	}

	if cfg.Strict && len(result.Unused) > 0 {
		return result, errs.ErrUnusedKeys.WithArgs(len(result.Unused))
	}

	return result, nil
}

func (g *Generator) resolveDefaults(cfg *Config, target emit.Target) {
	defaults := DefaultConfig()
	if cfg.Input == "" {
		cfg.Input = defaults.Input
	}
	if cfg.Output == "" {
		cfg.Output = target.DefaultOutput()
	}
	if cfg.OutputUnused == "" {
		cfg.OutputUnused = defaults.OutputUnused
	}
	if cfg.SourceDir == "" {
		cfg.SourceDir = defaults.SourceDir
	}
	if cfg.IgnoreDirs == nil {
		cfg.IgnoreDirs = defaults.IgnoreDirs
	}
	if cfg.EnumName == "" {
		cfg.EnumName = defaults.EnumName
	}
	if cfg.Extension == "" {
		cfg.Extension = target.Extension()
	}
	if cfg.Locale == "" {
		cfg.Locale = defaults.Locale
	}
	if cfg.Package == "" && target.Name() == "go" {
		cfg.Package = packageName(cfg.Output)
	}
}

// groupEntries orders entries by category and key remainder and groups them
// under the capitalized category name
func groupEntries(entries []catalog.Entry) *orderedmap.OrderedMap {
	items := make([]item, 0, len(entries))
	for _, e := range entries {
		category, rest := GeneralCategory, e.Key
		if i := strings.IndexByte(e.Key, '.'); i >= 0 {
			category, rest = e.Key[:i], e.Key[i+1:]
		}
		items = append(items, item{
			entry:    e,
			category: CategoryName(category),
			rest:     rest,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].category != items[j].category {
			return items[i].category < items[j].category
		}
		if items[i].rest != items[j].rest {
			return items[i].rest < items[j].rest
		}
		return items[i].entry.Key < items[j].entry.Key
	})

	groups := orderedmap.New()
	for _, it := range items {
		var group []item
		if v, ok := groups.Get(it.category); ok {
			group = v.([]item)
		}
		groups.Set(it.category, append(group, it))
	}

	return groups
}

// CategoryName returns the name of the nested namespace for the first key segment
func CategoryName(segment string) string {
	return naming.Capitalize(naming.Normalize(segment))
}

func compileKeep(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errs.ErrInvalidKeepPattern.WithArgs(p).Wrap(err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matchesAny(globs []glob.Glob, key string) bool {
	for _, g := range globs {
		if g.Match(key) {
			return true
		}
	}
	return false
}

func checkSpecifiers(e catalog.Entry) (Warning, bool) {
	w := Warning{Key: e.Key, Mixed: placeholder.HasMixedSpecifiers(e.Value)}
	for _, s := range placeholder.Scan(e.Value) {
		if s.Kind == placeholder.Unknown {
			w.Unknown = append(w.Unknown, e.Value[s.Start:s.End])
		}
	}
	return w, w.Mixed || len(w.Unknown) > 0
}

// packageName derives a Go package name from the directory of output
func packageName(output string) string {
	base := filepath.Base(filepath.Dir(output))
	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		return emit.DefaultPackage
	}
	return name
}
