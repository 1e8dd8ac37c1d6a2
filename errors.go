package intl

import "errors"

var (
	ErrEmptyLocale    = errors.New("intl: locale cannot be empty")
	ErrEmptyMessageID = errors.New("intl: message id cannot be empty")
	ErrInvalidCatalog = errors.New("intl: invalid catalog file")
)
