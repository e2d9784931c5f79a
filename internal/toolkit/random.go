// Package toolkit provides small standalone utilities: bounded random
// numbers, timestamp formatting, Fibonacci computation, palindrome checks,
// execution timing, and password generation.
package toolkit

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"

	"primer/internal/domain"
)

// RandInt returns a uniformly distributed integer in [min, max].
// Both bounds are inclusive.
func RandInt(min, max int64) (int64, error) {
	if min > max {
		return 0, domain.ErrValidation("min (%d) must not exceed max (%d)", min, max)
	}
	// The span is computed in uint64 so extreme bounds cannot overflow.
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		// [math.MinInt64, math.MaxInt64]: every 64-bit value is in range.
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random source: %w", err)
		}
		return int64(binary.BigEndian.Uint64(b[:])), nil
	}
	n, err := rand.Int(rand.Reader, new(big.Int).SetUint64(span))
	if err != nil {
		return 0, fmt.Errorf("read random source: %w", err)
	}
	return min + int64(n.Uint64()), nil
}
