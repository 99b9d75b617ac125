// Package catalog reads Xcode string catalogs (.xcstrings).
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/napalu/xcgen/errs"
)

// DefaultLocale is the localization read when no other locale is requested
const DefaultLocale = "en"

// Entry is one catalog key with its default-locale text
type Entry struct {
	Key   string
	Value string
	// Comment defaults to Value when the catalog has none
	Comment string
}

// Catalog is the parsed content of a string catalog
type Catalog struct {
	// Path is the file the catalog was read from
	Path string
	// SourceLanguage as declared by the catalog, may be empty
	SourceLanguage string
	// Locale is the localization the entries were taken from
	Locale string
	// Entries sorted by key
	Entries []Entry
	// Skipped lists keys without a string value for Locale, sorted
	Skipped []string
}

type document struct {
	SourceLanguage string                `json:"sourceLanguage"`
	Version        string                `json:"version"`
	Strings        map[string]stringItem `json:"strings"`
}

type stringItem struct {
	Comment       *string                 `json:"comment"`
	Localizations map[string]localization `json:"localizations"`
}

type localization struct {
	StringUnit *stringUnit `json:"stringUnit"`
}

type stringUnit struct {
	State string  `json:"state"`
	Value *string `json:"value"`
}

// Load reads the catalog at path and extracts the entries of locale. An empty
// locale selects DefaultLocale.
func Load(path, locale string, logger zerolog.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.ErrCatalogNotFound.WithArgs(path)
		}
		return nil, errs.ErrCatalogRead.WithArgs(path).Wrap(err)
	}

	c, err := Parse(data, locale, logger)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidLocale) {
			return nil, err
		}
		return nil, errs.ErrCatalogInvalid.WithArgs(path).Wrap(err)
	}
	c.Path = path

	return c, nil
}

// Parse decodes catalog data. Entries missing a string value for locale are
// skipped rather than failing the whole catalog.
func Parse(data []byte, locale string, logger zerolog.Logger) (*Catalog, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	if _, err := language.Parse(locale); err != nil {
		return nil, errs.ErrInvalidLocale.WithArgs(locale).Wrap(err)
	}

	var doc document
	if err := json.Unmarshal(stripBOM(data), &doc); err != nil {
		return nil, err
	}

	c := &Catalog{
		SourceLanguage: doc.SourceLanguage,
		Locale:         locale,
		Entries:        make([]Entry, 0, len(doc.Strings)),
	}

	for key, item := range doc.Strings {
		value, ok := item.value(locale)
		if !ok {
			logger.Debug().Str("key", key).Str("locale", locale).Msg("skipping entry without string value")
			c.Skipped = append(c.Skipped, key)
			continue
		}

		entry := Entry{Key: key, Value: value, Comment: value}
		if item.Comment != nil {
			entry.Comment = *item.Comment
		}
		c.Entries = append(c.Entries, entry)
	}

	sort.Slice(c.Entries, func(i, j int) bool {
		return c.Entries[i].Key < c.Entries[j].Key
	})
	sort.Strings(c.Skipped)

	return c, nil
}

func (s stringItem) value(locale string) (string, bool) {
	loc, ok := s.Localizations[locale]
	if !ok {
		// tolerate differently cased or canonicalized tags, e.g. "en_GB" vs "en-GB"
		loc, ok = s.lookupCanonical(locale)
		if !ok {
			return "", false
		}
	}
	if loc.StringUnit == nil || loc.StringUnit.Value == nil {
		return "", false
	}
	return *loc.StringUnit.Value, true
}

func (s stringItem) lookupCanonical(locale string) (localization, bool) {
	want, err := language.Parse(locale)
	if err != nil {
		return localization{}, false
	}
	// names are visited in sorted order so the same localization wins on every run
	names := make([]string, 0, len(s.Localizations))
	for name := range s.Localizations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if tag, err := language.Parse(name); err == nil && tag == want {
			return s.Localizations[name], true
		}
	}
	return localization{}, false
}

func stripBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})
}
