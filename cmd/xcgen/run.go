package main

import (
	"context"
	"fmt"
	"io"

	"github.com/napalu/goopt/v2"
	"github.com/rs/zerolog"

	"github.com/napalu/xcgen"
	"github.com/napalu/xcgen/config"
	"github.com/napalu/xcgen/errs"
	"github.com/napalu/xcgen/i18n"
	"github.com/napalu/xcgen/internal/logging"
	"github.com/napalu/xcgen/internal/parse"
	"github.com/napalu/xcgen/messages"
	"github.com/napalu/xcgen/util"
)

// run executes xcgen with args, not including the program name, and returns
// the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	bundle := i18n.Default()

	args, err := parse.ExpandResponseFiles(args)
	if err != nil {
		fmt.Fprintln(stderr, bundle.T(messages.ErrParseKey, err))
		return 1
	}

	opts := &Options{}
	parser, err := goopt.NewParserFromStruct(opts,
		goopt.WithFlagNameConverter(goopt.ToKebabCase),
		goopt.WithEnvNameConverter(goopt.ToKebabCase))
	if err != nil {
		fmt.Fprintln(stderr, bundle.T(messages.ErrParseKey, err))
		return 1
	}

	success := parser.Parse(args)

	logger := logging.New(stderr, opts.Verbose, util.IsTerminal(stderr, nil))
	setLanguage(bundle, opts.Language, logger)

	if opts.Help {
		parser.PrintUsageWithGroups(stdout)
		return 0
	}

	if !success {
		for _, err := range parser.GetErrors() {
			fmt.Fprintln(stderr, bundle.T(messages.ErrParseKey, err))
		}
		fmt.Fprintln(stderr)
		parser.PrintUsageWithGroups(stderr)
		return 1
	}

	fileCfg, err := loadConfigFile(opts.Config, logger)
	if err != nil {
		fmt.Fprintln(stderr, bundle.T(messages.ErrParseKey, err))
		return 1
	}
	cfg := config.Resolve(fileCfg, opts.generatorConfig())

	g, err := xcgen.NewGeneratorWith(
		xcgen.WithConfig(cfg),
		xcgen.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(stderr, bundle.T(messages.ErrParseKey, err))
		return 1
	}

	result, err := g.Run(context.Background())
	if result != nil {
		if opts.Verbose && result.SourceLanguage != "" {
			fmt.Fprintln(stdout, bundle.T(messages.MsgSourceLocaleKey, result.SourceLanguage, g.Config().Locale))
		}
		printSummary(stdout, bundle, result, util.IsTerminal(stdout, nil))
	}
	if err != nil {
		fmt.Fprintln(stderr, bundle.T(messages.ErrParseKey, err))
		return 1
	}

	return 0
}

func setLanguage(bundle *i18n.Bundle, requested string, logger zerolog.Logger) {
	if requested == "" {
		return
	}
	lang, err := bundle.Match(requested)
	if err != nil {
		logger.Warn().
			Err(errs.ErrUnsupportedLanguage.WithArgs(requested).Wrap(err)).
			Str("fallback", bundle.DefaultLanguage().String()).
			Msg("message language unchanged")
		return
	}
	bundle.SetDefaultLanguage(lang)
}

func loadConfigFile(path string, logger zerolog.Logger) (xcgen.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	cfg, found, err := config.LoadOptional(config.DefaultFile)
	if found {
		logger.Debug().Str("config", config.DefaultFile).Msg("using config file")
	}
	return cfg, err
}

// printSummary prints the unused identifiers and the generated file. On a
// terminal the list gets a heading and bullets.
func printSummary(w io.Writer, bundle *i18n.Bundle, result *xcgen.Result, terminal bool) {
	if len(result.Unused) > 0 {
		if terminal {
			fmt.Fprintln(w, bundle.T(messages.MsgUnusedHeadingKey))
		}
		for _, id := range result.Unused {
			if terminal {
				fmt.Fprintf(w, " - %s\n", id)
			} else {
				fmt.Fprintln(w, id)
			}
		}
		if terminal {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, bundle.T(messages.MsgUnusedTotalKey, len(result.Unused), result.Keys))
	}

	fmt.Fprintln(w, bundle.T(messages.MsgGeneratedKey, result.Output, result.Keys))
}
