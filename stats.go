package folio

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// tradingDays is the conventional number of trading days in a year, used to
// annualize daily statistics.
const tradingDays = 252

// returnsFromPrices converts closing prices to simple period-over-period returns.
// Returns[i] = (Price[i+1] - Price[i]) / Price[i], or 0 when Price[i] is 0.
func returnsFromPrices(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}
	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}
	return returns
}

// sampleStdDev is the sample standard deviation (n-1 denominator).
// It returns 0 for fewer than two observations.
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// mean returns the arithmetic mean, 0 for an empty slice.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// sharpeFromDaily computes the annualized Sharpe ratio from daily returns:
// (mean*252 - riskFree) / (stddev*sqrt(252)). Degenerate inputs (no returns,
// zero volatility) yield 0 rather than a division error.
func sharpeFromDaily(returns []float64, riskFree float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	vol := sampleStdDev(returns)
	if vol == 0 {
		return 0
	}
	annualized := mean(returns) * tradingDays
	return (annualized - riskFree) / (vol * math.Sqrt(tradingDays))
}

// runningMaxDrawdown scans prices in order tracking the running peak and
// returns the absolute value of the deepest peak-to-trough decline.
// The peak resets whenever a new high is reached, so a deep trough after a
// local maximum is measured against that maximum, not the global one.
func runningMaxDrawdown(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	peak := prices[0]
	var maxDD float64
	for _, price := range prices {
		if price > peak {
			peak = price
		}
		if peak == 0 {
			continue
		}
		drawdown := (price - peak) / peak
		if drawdown < maxDD {
			maxDD = drawdown
		}
	}
	return math.Abs(maxDD)
}
