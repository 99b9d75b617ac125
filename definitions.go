package xcgen

import "github.com/napalu/xcgen/emit"

// Default values of a Config
const (
	DefaultInput        = "Localizable.xcstrings"
	DefaultOutputUnused = "Unused.txt"
	DefaultSourceDir    = "."
	DefaultEnumName     = "L10n"
	DefaultLocale       = "en"
	// GeneralCategory receives keys without a dot
	GeneralCategory = "general"
)

// DefaultIgnoreDirs are skipped when scanning sources unless configured otherwise
var DefaultIgnoreDirs = []string{"Pods", "Carthage", "DerivedData"}

// Config holds the parameters of one generator run. Zero values fall back to
// the defaults of the selected target when the generator runs.
type Config struct {
	Input        string   `yaml:"input"`
	Output       string   `yaml:"output"`
	OutputUnused string   `yaml:"outputUnused"`
	SourceDir    string   `yaml:"sourceDir"`
	IgnoreDirs   []string `yaml:"ignoreDirs"`
	EnumName     string   `yaml:"enumName"`
	Target       string   `yaml:"target"`
	// Extension of the source files searched for references
	Extension string `yaml:"extension"`
	Locale    string `yaml:"locale"`
	// Package name of generated Go files
	Package string `yaml:"package"`
	// Keep lists glob patterns of catalog keys that are never reported unused
	Keep   []string `yaml:"keep"`
	Strict bool     `yaml:"strict"`
}

// DefaultConfig returns a Config with every built-in default set
func DefaultConfig() Config {
	ignore := make([]string, len(DefaultIgnoreDirs))
	copy(ignore, DefaultIgnoreDirs)

	return Config{
		Input:        DefaultInput,
		OutputUnused: DefaultOutputUnused,
		SourceDir:    DefaultSourceDir,
		IgnoreDirs:   ignore,
		EnumName:     DefaultEnumName,
		Target:       emit.DefaultTarget,
		Locale:       DefaultLocale,
	}
}

// ConfigureGeneratorFunc is used when configuring a Generator with NewGeneratorWith
type ConfigureGeneratorFunc func(g *Generator, err *error)

// Result summarizes a generator run
type Result struct {
	// Output is the path of the generated source file
	Output       string
	OutputUnused string
	// Keys is the number of catalog entries emitted
	Keys int
	// Unused holds the usage identifiers without reference, sorted
	Unused []string
	// SourceLanguage as declared by the catalog
	SourceLanguage string
	// Files is the number of source files searched
	Files int
	// Skipped lists catalog keys without a value for the configured locale
	Skipped []string
	// Warnings lists keys whose format specifiers could not all be typed
	Warnings []Warning
}

// Warning flags a catalog entry whose generated member may not behave as
// the string suggests
type Warning struct {
	Key string
	// Unknown lists the specifiers without a typed parameter, e.g. "%x"
	Unknown []string
	// Mixed is set when positional and sequential specifiers are combined
	Mixed bool
}
