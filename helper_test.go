package folio

// test helpers shared across the package tests.

// d is a shorthand to build a Date from an ISO string.
func d(str string) Date { return MustParseDate(str) }

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for tests to create money with no currency set
func NO(v float64) Money { return M(v, "") }

// almostEqual compares floats with the tolerance used throughout the tests.
func almostEqual(a, b float64) bool {
	const tolerance = 1e-9
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < tolerance
}
