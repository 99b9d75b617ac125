package xcgen

import (
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/napalu/xcgen/emit"
	"github.com/napalu/xcgen/errs"
)

// WithConfig replaces the whole configuration. Empty fields fall back to the
// defaults of the selected target when the generator runs.
func WithConfig(cfg Config) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		if cfg.Target != "" {
			if _, *err = emit.Lookup(cfg.Target, g.logger); *err != nil {
				return
			}
		}
		if cfg.Locale != "" {
			if *err = validateLocale(cfg.Locale); *err != nil {
				return
			}
		}
		g.cfg = cfg
	}
}

// WithInput sets the path of the string catalog
func WithInput(path string) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		*err = requireValue("input", path)
		g.cfg.Input = path
	}
}

// WithOutput sets the path of the generated source file
func WithOutput(path string) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		*err = requireValue("output", path)
		g.cfg.Output = path
	}
}

// WithOutputUnused sets the path of the unused-key report
func WithOutputUnused(path string) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		*err = requireValue("output-unused", path)
		g.cfg.OutputUnused = path
	}
}

// WithSourceDir sets the root of the source tree searched for references
func WithSourceDir(dir string) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		*err = requireValue("source-dir", dir)
		g.cfg.SourceDir = dir
	}
}

// WithIgnoreDirs replaces the directories skipped while searching sources
func WithIgnoreDirs(dirs ...string) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		g.cfg.IgnoreDirs = append([]string{}, dirs...)
	}
}

// WithEnumName sets the name of the generated enumeration, which is also the
// prefix searched for in the sources
func WithEnumName(name string) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		*err = requireValue("enum-name", name)
		g.cfg.EnumName = name
	}
}

// WithTarget selects the language of the generated file
func WithTarget(name string) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		var target emit.Target
		if target, *err = emit.Lookup(name, g.logger); *err != nil {
			return
		}
		g.cfg.Target = target.Name()
	}
}

// WithExtension sets the extension of searched source files, overriding the target's
func WithExtension(ext string) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		g.cfg.Extension = ext
	}
}

// WithLocale selects the catalog localization used for default values
func WithLocale(locale string) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		if *err = validateLocale(locale); *err != nil {
			return
		}
		g.cfg.Locale = locale
	}
}

// WithPackage sets the package name of generated Go files
func WithPackage(name string) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		g.cfg.Package = name
	}
}

// WithKeep adds glob patterns of catalog keys that are never reported unused
func WithKeep(patterns ...string) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		if _, *err = compileKeep(patterns); *err != nil {
			return
		}
		g.cfg.Keep = append(g.cfg.Keep, patterns...)
	}
}

// WithStrict makes Run fail with ErrUnusedKeys when unused keys remain
func WithStrict(strict bool) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		g.cfg.Strict = strict
	}
}

// WithLogger sets the logger receiving progress and diagnostics
func WithLogger(logger zerolog.Logger) ConfigureGeneratorFunc {
	return func(g *Generator, err *error) {
		g.logger = logger
	}
}

func requireValue(option, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.ErrMissingOption.WithArgs(option)
	}
	return nil
}

func validateLocale(locale string) error {
	if _, err := language.Parse(locale); err != nil {
		return errs.ErrInvalidLocale.WithArgs(locale).Wrap(err)
	}
	return nil
}
