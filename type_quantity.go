package folio

import "github.com/shopspring/decimal"

// Quantity is a whole number of units of a security.
//
// Holdings are counted in whole shares: fractional positions are out of
// scope, so a plain integer is enough and keeps validation trivial.
type Quantity int64

func (q Quantity) IsPositive() bool { return q > 0 }
func (q Quantity) IsZero() bool     { return q == 0 }

func (q Quantity) Add(p Quantity) Quantity { return q + p }
func (q Quantity) Sub(p Quantity) Quantity { return q - p }

// LessThan reports whether q < p.
func (q Quantity) LessThan(p Quantity) bool { return q < p }

// decimal returns the quantity as a decimal for exact cost arithmetic.
func (q Quantity) decimal() decimal.Decimal { return decimal.NewFromInt(int64(q)) }
