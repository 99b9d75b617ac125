// Package parse expands command line response files.
package parse

import (
	"os"
	"strings"

	"github.com/google/shlex"

	"github.com/napalu/xcgen/errs"
)

// Split splits a command string into arguments using shell quoting rules.
// Text following an unquoted '#' is a comment.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}

// maxResponseDepth bounds nested response files
const maxResponseDepth = 8

// ExpandResponseFiles replaces every argument of the form @file with the
// arguments read from file. Response files may reference other response
// files. A lone "@" and arguments after "--" are kept as they are.
func ExpandResponseFiles(args []string) ([]string, error) {
	return expand(args, 0)
}

func expand(args []string, depth int) ([]string, error) {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...), nil
		}
		if len(arg) < 2 || !strings.HasPrefix(arg, "@") {
			out = append(out, arg)
			continue
		}

		path := arg[1:]
		if depth >= maxResponseDepth {
			return nil, errs.ErrResponseFile.WithArgs(path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.ErrResponseFile.WithArgs(path).Wrap(err)
		}
		words, err := Split(string(data))
		if err != nil {
			return nil, errs.ErrResponseFile.WithArgs(path).Wrap(err)
		}
		nested, err := expand(words, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, nested...)
	}

	return out, nil
}
