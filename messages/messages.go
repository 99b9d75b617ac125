// Package messages holds the message keys of the embedded i18n locales.
package messages

const (
	prefixKey  = "xcgen"
	errorKey   = prefixKey + ".error"
	messageKey = prefixKey + ".msg"
)

// Error message keys
const (
	ErrCatalogNotFoundKey      = errorKey + ".catalog_not_found"
	ErrCatalogReadKey          = errorKey + ".catalog_read"
	ErrCatalogInvalidKey       = errorKey + ".catalog_invalid"
	ErrInvalidLocaleKey        = errorKey + ".invalid_locale"
	ErrKeyCollisionKey         = errorKey + ".key_collision"
	ErrSourceDirKey            = errorKey + ".source_dir"
	ErrSourceReadKey           = errorKey + ".source_read"
	ErrSourceEncodingKey       = errorKey + ".source_encoding"
	ErrInvalidIgnorePatternKey = errorKey + ".invalid_ignore_pattern"
	ErrInvalidKeepPatternKey   = errorKey + ".invalid_keep_pattern"
	ErrOutputDirKey            = errorKey + ".output_dir"
	ErrWriteOutputKey          = errorKey + ".write_output"
	ErrRemoveOutputKey         = errorKey + ".remove_output"
	ErrRenderKey               = errorKey + ".render"
	ErrUnknownTargetKey        = errorKey + ".unknown_target"
	ErrUnusedKeysKey           = errorKey + ".unused_keys"
	ErrConfigReadKey           = errorKey + ".config_read"
	ErrConfigInvalidKey        = errorKey + ".config_invalid"
	ErrResponseFileKey         = errorKey + ".response_file"
	ErrMissingOptionKey        = errorKey + ".missing_option"
	ErrUnsupportedLanguageKey  = errorKey + ".unsupported_language"
	ErrParseKey                = errorKey + ".parse"
)

// User-facing message keys
const (
	MsgUnusedHeadingKey = messageKey + ".unused_heading"
	MsgUnusedTotalKey   = messageKey + ".unused_total"
	MsgGeneratedKey     = messageKey + ".generated"
	MsgSourceLocaleKey  = messageKey + ".source_locale"
)
