// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/matpow/matrix"
	"github.com/katalvlaran/matpow/numeric"
)

// RandomMatrix returns a size×size matrix of uniform 64-bit draws from rng,
// reduced into mod. Unbounded matrices keep the raw draws.
func RandomMatrix(rng *rand.Rand, size int, mod numeric.Modulus) (*matrix.Dense, error) {
	m, err := matrix.NewDense(size, size, mod)
	if err != nil {
		return nil, fmt.Errorf("RandomMatrix: %w", err)
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			// indices are in range by construction; Set reduces into mod
			_ = m.Set(i, j, rng.Uint64())
		}
	}

	return m, nil
}
