// Package folio implements a portfolio accounting and analytics engine.
//
// The engine tracks holdings as an append-only book of purchase lots,
// maintains a weighted-average cost basis per ticker, and derives risk and
// performance statistics (day change, historical volatility, drawdown,
// Sharpe ratio) from price histories supplied by a PriceProvider.
//
// The core never performs I/O on its own: market data comes in through the
// PriceProvider interface, and state is persisted through the Store
// interface. Both have ready-made implementations (an EODHD-backed provider
// in this package, a SQLite store in the sqlite subpackage) but any
// implementation of the narrow interfaces will do.
package folio
