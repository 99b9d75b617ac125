// Package errs declares the translatable errors reported by xcgen.
package errs

import (
	"github.com/napalu/xcgen/i18n"
	"github.com/napalu/xcgen/messages"
)

// Catalog errors
var (
	ErrCatalogNotFound = i18n.NewError(messages.ErrCatalogNotFoundKey)
	ErrCatalogRead     = i18n.NewError(messages.ErrCatalogReadKey)
	ErrCatalogInvalid  = i18n.NewError(messages.ErrCatalogInvalidKey)
	ErrInvalidLocale   = i18n.NewError(messages.ErrInvalidLocaleKey)
	ErrKeyCollision    = i18n.NewError(messages.ErrKeyCollisionKey)
)

// Source scanning errors
var (
	ErrSourceDir            = i18n.NewError(messages.ErrSourceDirKey)
	ErrSourceRead           = i18n.NewError(messages.ErrSourceReadKey)
	ErrSourceEncoding       = i18n.NewError(messages.ErrSourceEncodingKey)
	ErrInvalidIgnorePattern = i18n.NewError(messages.ErrInvalidIgnorePatternKey)
	ErrInvalidKeepPattern   = i18n.NewError(messages.ErrInvalidKeepPatternKey)
)

// Output errors
var (
	ErrOutputDir     = i18n.NewError(messages.ErrOutputDirKey)
	ErrWriteOutput   = i18n.NewError(messages.ErrWriteOutputKey)
	ErrRemoveOutput  = i18n.NewError(messages.ErrRemoveOutputKey)
	ErrRender        = i18n.NewError(messages.ErrRenderKey)
	ErrUnknownTarget = i18n.NewError(messages.ErrUnknownTargetKey)
	// ErrUnusedKeys is returned in strict mode after all outputs were written
	ErrUnusedKeys = i18n.NewError(messages.ErrUnusedKeysKey)
)

// Configuration errors
var (
	ErrConfigRead          = i18n.NewError(messages.ErrConfigReadKey)
	ErrConfigInvalid       = i18n.NewError(messages.ErrConfigInvalidKey)
	ErrResponseFile        = i18n.NewError(messages.ErrResponseFileKey)
	ErrMissingOption       = i18n.NewError(messages.ErrMissingOptionKey)
	ErrUnsupportedLanguage = i18n.NewError(messages.ErrUnsupportedLanguageKey)
)
