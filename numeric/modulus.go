// SPDX-License-Identifier: MIT

package numeric

import "strconv"

// Modulus selects the arithmetic regime of a matrix: Unbounded or Modular(m).
// The zero value is Unbounded. Modulus is comparable; use == or Equal.
type Modulus struct {
	m       uint64 // ring size; meaningful only when modular is true
	modular bool   // false ⇒ exact 64-bit arithmetic with overflow checks
}

// Unbounded returns the exact 64-bit regime (overflow is an error).
func Unbounded() Modulus { return Modulus{} }

// Modular returns the ℤ/mℤ regime or ErrInvalidModulus when m == 0.
func Modular(m uint64) (Modulus, error) {
	if m == 0 {
		return Modulus{}, ErrInvalidModulus
	}

	return Modulus{m: m, modular: true}, nil
}

// MustModular is Modular for constants known to be non-zero; it panics on m == 0.
func MustModular(m uint64) Modulus {
	mod, err := Modular(m)
	if err != nil {
		panic(err)
	}

	return mod
}

// FromFieldSize maps the external "field size" convention, where 0 means no
// modulus, into a Modulus. It is the only place that reads 0 as Unbounded.
func FromFieldSize(v uint64) Modulus {
	if v == 0 {
		return Unbounded()
	}

	return Modulus{m: v, modular: true}
}

// FieldSize is the inverse of FromFieldSize (0 for Unbounded).
func (md Modulus) FieldSize() uint64 {
	if !md.modular {
		return 0
	}

	return md.m
}

// IsModular reports whether md is Modular(m).
func (md Modulus) IsModular() bool { return md.modular }

// Value returns m and true for Modular(m); 0 and false for Unbounded.
func (md Modulus) Value() (uint64, bool) { return md.m, md.modular }

// Equal reports whether both moduli select the same regime.
func (md Modulus) Equal(o Modulus) bool { return md == o }

// String renders "unbounded" or "mod <m>".
func (md Modulus) String() string {
	if !md.modular {
		return "unbounded"
	}

	return "mod " + strconv.FormatUint(md.m, 10)
}

// Reduce returns the canonical residue of v (v itself when Unbounded).
func (md Modulus) Reduce(v uint64) uint64 {
	if !md.modular {
		return v
	}

	return v % md.m
}

// Contains reports whether v is a canonical cell value in this regime.
func (md Modulus) Contains(v uint64) bool {
	return !md.modular || v < md.m
}

// Add returns a+b in this regime.
// Errors: ErrOverflow (Unbounded only).
func (md Modulus) Add(a, b uint64) (uint64, error) {
	if !md.modular {
		return CheckedAdd(a, b)
	}

	return AddMod(a, b, md.m), nil
}

// Sub returns a-b in this regime.
// Errors: ErrUnderflow (Unbounded only; there are no negative cells).
func (md Modulus) Sub(a, b uint64) (uint64, error) {
	if !md.modular {
		return CheckedSub(a, b)
	}

	return SubMod(a, b, md.m), nil
}

// Mul returns a*b in this regime.
// Errors: ErrOverflow (Unbounded only).
func (md Modulus) Mul(a, b uint64) (uint64, error) {
	if !md.modular {
		return CheckedMul(a, b)
	}

	return MulMod(a, b, md.m)
}
