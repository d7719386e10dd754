package folio

// Store is the persistence collaborator: a row-oriented keeper of lots keyed
// by (portfolio name, ticker, trade date).
//
// Writes must be atomic per call: a failed AppendLot or ReduceLot leaves the
// stored rows exactly as they were. Implementations wrap their failures in
// ErrPersistenceFailure so the engine can roll back staged in-memory state.
type Store interface {
	// AddPortfolio registers a portfolio name. It fails with
	// ErrDuplicatePortfolio when the name already exists.
	AddPortfolio(name string) error
	// HasPortfolio reports whether the name exists.
	HasPortfolio(name string) (bool, error)
	// ListPortfolios returns the known portfolio names, sorted.
	ListPortfolios() ([]string, error)

	// AppendLot records one purchase lot.
	AppendLot(portfolio string, lot Lot) error
	// ReduceLot removes quantity units of ticker, consuming stored lots
	// oldest trade date first. It fails with ErrInsufficientQuantity when
	// the stored total is smaller than the removal, without modifying rows.
	ReduceLot(portfolio, ticker string, quantity Quantity) error
	// ListLots returns the remaining lots of a portfolio, oldest first.
	// An unknown portfolio yields an empty list, not an error.
	ListLots(portfolio string) ([]Lot, error)
}
