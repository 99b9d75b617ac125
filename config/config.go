// Package config loads generator settings from a YAML file and layers them
// with command line values.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/napalu/xcgen"
	"github.com/napalu/xcgen/errs"
)

// DefaultFile is the config file picked up from the working directory when present
const DefaultFile = "xcgen.yml"

// Load reads the YAML file at path. Unknown keys are rejected so that typos
// do not silently fall back to defaults.
func Load(path string) (xcgen.Config, error) {
	var cfg xcgen.Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errs.ErrConfigRead.WithArgs(path).Wrap(err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return xcgen.Config{}, errs.ErrConfigInvalid.WithArgs(path).Wrap(err)
	}

	return cfg, nil
}

// LoadOptional behaves like Load but returns an empty Config when path does
// not exist
func LoadOptional(path string) (xcgen.Config, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return xcgen.Config{}, false, nil
	}
	cfg, err := Load(path)
	return cfg, err == nil, err
}

// Merge returns base with every non-zero field of overlay applied
func Merge(base, overlay xcgen.Config) xcgen.Config {
	out := base
	setString(&out.Input, overlay.Input)
	setString(&out.Output, overlay.Output)
	setString(&out.OutputUnused, overlay.OutputUnused)
	setString(&out.SourceDir, overlay.SourceDir)
	setString(&out.EnumName, overlay.EnumName)
	setString(&out.Target, overlay.Target)
	setString(&out.Extension, overlay.Extension)
	setString(&out.Locale, overlay.Locale)
	setString(&out.Package, overlay.Package)
	if overlay.IgnoreDirs != nil {
		out.IgnoreDirs = append([]string{}, overlay.IgnoreDirs...)
	}
	if len(overlay.Keep) > 0 {
		out.Keep = append(append([]string{}, base.Keep...), overlay.Keep...)
	}
	out.Strict = base.Strict || overlay.Strict

	return out
}

// Resolve layers the built-in defaults, the config file and the command line
// values, later layers winning
func Resolve(file, cli xcgen.Config) xcgen.Config {
	return Merge(Merge(xcgen.DefaultConfig(), file), cli)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
