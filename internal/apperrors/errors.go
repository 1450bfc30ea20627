package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the authenticated user may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnknownCurrency indicates a currency code that is absent from the
// currency metadata table. It is always surfaced, never defaulted, so that
// bad codes cannot silently produce wrongly formatted or unconverted amounts.
var ErrUnknownCurrency = errors.New("unknown currency")
