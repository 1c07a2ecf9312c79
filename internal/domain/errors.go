package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCompareFull     = errors.New("compare list holds the maximum of 3 items")
	ErrAlreadyRated    = errors.New("product already rated from this profile")
	ErrUnauthenticated = errors.New("login required")
	ErrUnauthorized    = errors.New("action not allowed for this account")
	ErrSubmitPending   = errors.New("a submission is already in progress")
	ErrRemoteCall      = errors.New("remote call failed")
	ErrUnknownProduct  = errors.New("unknown product")
)

// StockExceededError reports a cart quantity request above available stock.
// For Add the mutation was rejected; for SetQuantity the quantity was capped
// at Stock and the mutation kept.
type StockExceededError struct {
	SKU   string
	Name  string
	Stock int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("only %d in stock for %s", e.Stock, e.Name)
}

// ValidationError reports bad user input on a named field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// RedirectError carries the login redirect target returned on a 401.
type RedirectError struct {
	URL string
}

func (e *RedirectError) Error() string { return "login required" }

func (e *RedirectError) Unwrap() error { return ErrUnauthenticated }

// RemoteValidationError carries the first-class error plus detail strings a
// remote endpoint returned for a rejected submission.
type RemoteValidationError struct {
	Msg     string
	Details []string
}

func (e *RemoteValidationError) Error() string { return e.Msg }
