package main

import "github.com/napalu/xcgen"

// Options are the command line flags of xcgen. Values left empty fall back
// to the config file and then to the built-in defaults.
type Options struct {
	Input        string   `goopt:"short:i;desc:Path to the .xcstrings catalog (default Localizable.xcstrings)"`
	Output       string   `goopt:"short:o;desc:Generated source file (default Generated/Strings+Generated.swift)"`
	OutputUnused string   `goopt:"short:u;desc:File receiving the unused keys (default Unused.txt)"`
	SourceDir    string   `goopt:"short:s;desc:Directory searched for key references (default .)"`
	IgnoreDirs   []string `goopt:"desc:Directories or globs skipped while searching (default Pods Carthage DerivedData)"`
	EnumName     string   `goopt:"short:e;desc:Name of the generated enumeration (default L10n)"`
	Target       string   `goopt:"short:t;desc:Language of the generated file - swift or go (default swift)"`
	Extension    string   `goopt:"desc:Extension of searched source files (default from target)"`
	Locale       string   `goopt:"desc:Catalog localization used for default values (default en)"`
	Package      string   `goopt:"short:p;desc:Package name of generated Go files"`
	Keep         []string `goopt:"short:k;desc:Glob patterns of keys never reported as unused"`
	Strict       bool     `goopt:"desc:Exit with an error when unused keys remain"`
	Config       string   `goopt:"short:c;desc:YAML config file (default xcgen.yml when present)"`
	Verbose      bool     `goopt:"short:v;desc:Enable verbose output"`
	Language     string   `goopt:"short:l;desc:Language for messages (en or de)"`
	Help         bool     `goopt:"short:h;desc:Show help"`
}

// generatorConfig returns the values given on the command line
func (o *Options) generatorConfig() xcgen.Config {
	return xcgen.Config{
		Input:        o.Input,
		Output:       o.Output,
		OutputUnused: o.OutputUnused,
		SourceDir:    o.SourceDir,
		IgnoreDirs:   o.IgnoreDirs,
		EnumName:     o.EnumName,
		Target:       o.Target,
		Extension:    o.Extension,
		Locale:       o.Locale,
		Package:      o.Package,
		Keep:         o.Keep,
		Strict:       o.Strict,
	}
}
