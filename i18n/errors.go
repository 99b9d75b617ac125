package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error whose message is looked up by key
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider resolves a message key to its text
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider serves messages from a Bundle in its current default language
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider creates a provider backed by bundle
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle}
}

// GetMessage returns the raw message for key, falling back to English and then to the key itself
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	p.bundle.mu.RLock()
	defer p.bundle.mu.RUnlock()

	if msg, ok := p.bundle.translations[p.bundle.defaultLang][key]; ok {
		return msg
	}
	if msg, ok := p.bundle.translations[language.English][key]; ok {
		return msg
	}

	return key
}

// TrError is a translatable error with optional format arguments and a wrapped cause.
//
// Example usage:
//
//	err := NewError("xcgen.error.catalog_read")
//	return err.WithArgs(path).Wrap(ioErr)
type TrError struct {
	// sentinel makes copies created by WithArgs and Wrap comparable with errors.Is
	sentinel error
	key      string
	args     []interface{}
	wrapped  error
	provider MessageProvider
}

// NewError creates a new translatable error for key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error returns the message in the provider's language, formatted with args
func (e *TrError) Error() string {
	provider := e.provider
	if provider == nil {
		provider = getDefaultProvider()
	}

	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
		provider: e.provider,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
		provider: e.provider,
	}
}

// Is matches any copy derived from the same NewError call
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel
}

// Key returns the message key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}
	return defaultProvider
}
