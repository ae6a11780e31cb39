package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found or is
// not owned by the requesting user.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that no authenticated user was supplied.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated user may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current state")

// ErrUnsupportedCurrencyPair indicates a cross-currency operation between
// currencies other than the supported USD/ETB pair.
var ErrUnsupportedCurrencyPair = errors.New("unsupported currency pair")

// ErrMissingExchangeRate indicates a cross-currency transfer without a rate.
var ErrMissingExchangeRate = errors.New("exchange rate required for cross-currency transfer")

// ErrInvalidExchangeRate indicates an exchange rate that is zero, negative or unparseable.
var ErrInvalidExchangeRate = errors.New("exchange rate must be a positive number")

// ErrBalanceUpdateFailed indicates an atomic balance update affected zero
// rows; the surrounding unit of work must be rolled back.
var ErrBalanceUpdateFailed = errors.New("account balance update failed")

// ErrInternal is the defensive catch-all for unexpected failures.
var ErrInternal = errors.New("internal error")
