package i18n

import "errors"

var (
	ErrEmptyLanguage      = errors.New("i18n: language cannot be empty")
	ErrEmptyKey           = errors.New("i18n: translation key cannot be empty")
	ErrNilPluralRule      = errors.New("i18n: plural rule cannot be nil")
	ErrInvalidFile        = errors.New("i18n: invalid translation file")
	ErrUnsupportedFormat  = errors.New("i18n: unsupported translation file format")
	ErrDuplicateKey       = errors.New("i18n: conflicting translation for key")
	ErrInvalidStrategy    = errors.New("i18n: unknown missing translation strategy")
	ErrMissingTranslation = errors.New("i18n: missing translation")
)
