// Package placeholder derives typed parameter lists from printf-style format
// specifiers embedded in localized strings.
package placeholder

import (
	"math"
	"regexp"
	"sort"
	"strconv"
)

var specifierPattern = regexp.MustCompile(`%(\d+\$)?[+\-#0 ]*(?:\d+)?(?:\.\d+)?[hlL]?([@diufFeEgGxXoscp])`)

// Spec is the ordered list of argument kinds of one localized string
type Spec []Kind

// Specifier is one format specifier found in a string
type Specifier struct {
	// Index is the zero-based explicit position; only meaningful when Positional is true
	Index      int
	Positional bool
	Conv       byte
	Kind       Kind
	// Start and End are byte offsets of the specifier in the analyzed string
	Start int
	End   int
}

// Scan returns every specifier of s in encounter order
func Scan(s string) []Specifier {
	matches := specifierPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return nil
	}

	specs := make([]Specifier, 0, len(matches))
	for _, m := range matches {
		spec := Specifier{
			Conv:  s[m[4]],
			Start: m[0],
			End:   m[1],
		}
		spec.Kind = Classify(spec.Conv)
		if m[2] >= 0 {
			// group 1 is "N$"
			n, err := strconv.Atoi(s[m[2] : m[3]-1])
			if err != nil {
				// only overflow is possible here, the group is all digits
				n = math.MaxInt
			}
			spec.Index = n - 1
			spec.Positional = true
		}
		specs = append(specs, spec)
	}

	return specs
}

// Analyze returns the argument kinds implied by the format specifiers of s.
//
// Specifiers with an explicit index are ordered by that index. As soon as one
// positional specifier is present, specifiers without an index are ignored.
// Otherwise kinds are returned in encounter order.
func Analyze(s string) Spec {
	positionals := make(map[int]Kind)
	var order Spec

	for _, spec := range Scan(s) {
		if spec.Positional {
			positionals[spec.Index] = spec.Kind
		} else {
			order = append(order, spec.Kind)
		}
	}

	if len(positionals) == 0 {
		if order == nil {
			return Spec{}
		}
		return order
	}

	indexes := make([]int, 0, len(positionals))
	for idx := range positionals {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	result := make(Spec, 0, len(indexes))
	for _, idx := range indexes {
		result = append(result, positionals[idx])
	}

	return result
}

// HasMixedSpecifiers reports whether s combines positional and non-positional
// specifiers, in which case Analyze drops the non-positional ones.
func HasMixedSpecifiers(s string) bool {
	var positional, plain bool
	for _, spec := range Scan(s) {
		if spec.Positional {
			positional = true
		} else {
			plain = true
		}
	}
	return positional && plain
}
