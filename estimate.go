package probability

import (
	"math"
	"math/big"
)

// Estimate is the result of a Monte Carlo simulation
type Estimate struct {
	Trials      int     `json:"trials"`      // Number of outcomes drawn
	Hits        int     `json:"hits"`        // Number of draws that fell in the event
	Batches     int     `json:"batches"`     // Number of batches the trials were split into
	Probability float64 `json:"probability"` // Hits / Trials
	StdDev      float64 `json:"std_dev"`     // Sample standard deviation of the batch hit ratios
	StdErr      float64 `json:"std_err"`     // Standard error of the estimate
}

// Validate validates the estimate data
func (e *Estimate) Validate() error {
	if e.Trials <= 0 {
		return invalidArgument("Estimate", "trials must be positive, got %d", e.Trials)
	}
	if e.Hits < 0 || e.Hits > e.Trials {
		return invalidArgument("Estimate", "hits %d outside [0, %d]", e.Hits, e.Trials)
	}
	if e.Batches <= 0 || e.Batches > e.Trials {
		return invalidArgument("Estimate", "batches %d outside [1, %d]", e.Batches, e.Trials)
	}
	return nil
}

// Within reports whether exact lies within k standard errors of the estimate
func (e *Estimate) Within(exact *big.Rat, k float64) bool {
	const epsilon = 1e-12
	return math.Abs(e.Probability-Float(exact)) <= k*e.StdErr+epsilon
}
