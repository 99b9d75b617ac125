package emit

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/napalu/xcgen/errs"
	"github.com/napalu/xcgen/placeholder"
	"github.com/napalu/xcgen/templates"
)

var swiftTypes = map[placeholder.Kind]string{
	placeholder.Integer:         "Int",
	placeholder.UnsignedInteger: "UInt",
	placeholder.FloatingPoint:   "Double",
	placeholder.Text:            "String",
	placeholder.SingleCharacter: "Character",
	placeholder.WideInteger:     "Int64",
	placeholder.Unknown:         "CVarArg",
}

// SwiftType returns the Swift parameter type of kind
func SwiftType(kind placeholder.Kind) string {
	if t, ok := swiftTypes[kind]; ok {
		return t
	}
	return swiftTypes[placeholder.Unknown]
}

// SwiftTarget emits an enumeration of LocalizedStringResource members
type SwiftTarget struct{}

func (*SwiftTarget) Name() string          { return "swift" }
func (*SwiftTarget) Extension() string     { return ".swift" }
func (*SwiftTarget) DefaultOutput() string { return "Generated/Strings+Generated.swift" }

// MemberName keeps the normalized key as is
func (*SwiftTarget) MemberName(normalized string) string {
	return normalized
}

func (t *SwiftTarget) Render(doc *Document) ([]byte, error) {
	tmpl, err := templates.Swift()
	if err != nil {
		return nil, errs.ErrRender.WithArgs(t.Name()).Wrap(err)
	}

	data := templates.File{
		Source: doc.Source,
		Enum:   doc.Enum,
	}
	for _, c := range doc.Categories {
		category := templates.Category{Name: c.Name}
		for _, e := range c.Entries {
			m := templates.Member{
				Key:        e.Key,
				KeyLiteral: `"` + escapeSwift(e.Key) + `"`,
				Name:       e.Member,
				Value:      SwiftLiteral(e.Value, e.Spec),
				Comment:    SanitizeComment(e.Comment),
				Unused:     e.Unused,
				UsageID:    UsageID(c.Name, e.Member),
			}
			for i, kind := range e.Spec {
				m.Params = append(m.Params, templates.Param{
					Name: fmt.Sprintf("_ p%d", i),
					Type: SwiftType(kind),
				})
			}
			category.Members = append(category.Members, m)
		}
		data.Categories = append(data.Categories, category)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errs.ErrRender.WithArgs(t.Name()).Wrap(err)
	}

	return buf.Bytes(), nil
}

// SwiftLiteral returns value as a Swift string literal in which every format
// specifier backed by a typed parameter is replaced by an interpolation of
// that parameter. Values spanning several lines use a multi-line literal.
func SwiftLiteral(value string, spec placeholder.Spec) string {
	multiline := strings.Contains(value, "\n")
	escape := escapeSwift
	if multiline {
		escape = escapeSwiftMultiline
	}

	params := paramIndexes(value, spec)
	var b strings.Builder
	last := 0
	for _, s := range placeholder.Scan(value) {
		p, ok := params[s.Start]
		if !ok {
			continue
		}
		b.WriteString(escape(value[last:s.Start]))
		fmt.Fprintf(&b, `\(p%d)`, p)
		last = s.End
	}
	b.WriteString(escape(value[last:]))

	if multiline {
		return "\"\"\"\n" + b.String() + "\n\"\"\""
	}
	return `"` + b.String() + `"`
}

// paramIndexes maps the start offset of every specifier that is bound to a
// typed parameter to the parameter's position. Specifiers of unknown kind
// stay verbatim.
func paramIndexes(value string, spec placeholder.Spec) map[int]int {
	specifiers := placeholder.Scan(value)
	out := make(map[int]int, len(specifiers))

	positional := false
	for _, s := range specifiers {
		if s.Positional {
			positional = true
			break
		}
	}

	if !positional {
		for i, s := range specifiers {
			if i < len(spec) && spec[i] != placeholder.Unknown {
				out[s.Start] = i
			}
		}
		return out
	}

	// parameters follow the sorted distinct positional indexes
	order := make(map[int]int)
	for _, s := range specifiers {
		if s.Positional {
			order[s.Index] = 0
		}
	}
	indexes := make([]int, 0, len(order))
	for idx := range order {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	for pos, idx := range indexes {
		order[idx] = pos
	}

	for _, s := range specifiers {
		if !s.Positional {
			continue
		}
		pos := order[s.Index]
		if pos < len(spec) && spec[pos] != placeholder.Unknown {
			out[s.Start] = pos
		}
	}
	return out
}

var swiftEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", `\r`, "\t", `\t`)

func escapeSwift(s string) string {
	return swiftEscaper.Replace(s)
}

var swiftMultilineEscaper = strings.NewReplacer(`\`, `\\`, `"""`, `\"""`, "\r", `\r`)

func escapeSwiftMultiline(s string) string {
	return swiftMultilineEscaper.Replace(s)
}
