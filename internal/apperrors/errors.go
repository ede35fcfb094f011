package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnavailable indicates that the exchange-rate source could not deliver a table
// (transport failure, non-2xx status, undecodable body or an open circuit breaker).
var ErrUnavailable = errors.New("exchange rate source unavailable")

// ErrEmptyOrInvalidAmount indicates that the amount entered by the user is empty or not a number.
var ErrEmptyOrInvalidAmount = errors.New("amount is empty or invalid")

// ErrRatesNotFound indicates that a selected currency code is absent from the current rate table.
var ErrRatesNotFound = errors.New("exchange rates not found")

// ErrCancelled indicates that an in-flight fetch was superseded or torn down.
// It is internal and never shown to the user.
var ErrCancelled = errors.New("request cancelled")

// HTTPStatus maps an error to the status code a handler should respond with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrEmptyOrInvalidAmount),
		errors.Is(err, ErrRatesNotFound):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
