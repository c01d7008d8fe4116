package probability

import (
	"math/big"
)

// Choose returns the binomial coefficient n!/((n-k)!·k!) exactly.
// Arguments must satisfy n >= k >= 0, otherwise ErrInvalidArgument is returned.
func Choose(n, k int64) (*big.Int, error) {
	if k < 0 || n < 0 || n < k {
		return nil, invalidArgument("Choose", "need n >= k >= 0, got n=%d k=%d", n, k)
	}
	return new(big.Int).Binomial(n, k), nil
}

// MustChoose is like Choose but panics on invalid arguments.
// It is meant for literal constants.
func MustChoose(n, k int64) *big.Int {
	c, err := Choose(n, k)
	if err != nil {
		panic(err)
	}
	return c
}
