package placeholder

// Kind is the semantic type of a single format argument
type Kind int

const (
	Unknown Kind = iota
	Integer
	UnsignedInteger
	FloatingPoint
	Text
	SingleCharacter
	// WideInteger is reserved for `%li`/`%ld`. Classification only ever sees the
	// conversion character, so Analyze never returns it.
	WideInteger
)

var kindNames = map[Kind]string{
	Unknown:         "Unknown",
	Integer:         "Integer",
	UnsignedInteger: "UnsignedInteger",
	FloatingPoint:   "FloatingPoint",
	Text:            "Text",
	SingleCharacter: "SingleCharacter",
	WideInteger:     "WideInteger",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Unknown]
}

// Classify maps a conversion character to its Kind. Anything outside the
// explicitly handled set is Unknown.
func Classify(conv byte) Kind {
	switch conv {
	case 'd', 'i':
		return Integer
	case 'u':
		return UnsignedInteger
	case 'f', 'F', 'e', 'E', 'g', 'G':
		return FloatingPoint
	case '@':
		return Text
	case 'c':
		return SingleCharacter
	default:
		return Unknown
	}
}
