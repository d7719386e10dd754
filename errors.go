package folio

import "errors"

// Sentinel errors of the engine. Callers match them with errors.Is; wrapped
// variants carry the offending ticker or portfolio name.
var (
	// ErrInvalidQuantity reports a non-positive quantity on a mutation.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInsufficientQuantity reports a removal larger than the holding.
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	// ErrUnknownTicker reports an operation on a ticker that is not held.
	ErrUnknownTicker = errors.New("unknown ticker")
	// ErrEmptyPortfolio reports an analytic operation on a portfolio with no holdings.
	ErrEmptyPortfolio = errors.New("empty portfolio")
	// ErrNotFound reports a date or price lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrNoReference reports a comparison on a portfolio with no reference index bound.
	ErrNoReference = errors.New("no reference index")

	// ErrTickerNotFound is surfaced by price providers for unknown symbols.
	ErrTickerNotFound = errors.New("ticker not found")
	// ErrProviderUnavailable is surfaced by price providers for transport or
	// server failures. The engine never retries; that is the caller's call.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrPersistenceFailure wraps store failures. Store writes happen before
	// any in-memory mutation, so a failure leaves the portfolio unchanged.
	ErrPersistenceFailure = errors.New("persistence failure")
	// ErrDuplicatePortfolio reports a create on an existing portfolio name.
	ErrDuplicatePortfolio = errors.New("portfolio already exists")
)
