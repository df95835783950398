// SPDX-License-Identifier: MIT

package matrix

// powerState is the lifecycle of one Power call.
//
//	Init ──e∈{0,1}──────────────► Done
//	Init ──e≥2──► Accumulating ──► Done
//	        any failed product ──► Failed (all live intermediates released)
type powerState uint8

const (
	stateInit powerState = iota
	stateAccumulating
	stateDone
	stateFailed
)

// powerRun exclusively owns the two intermediates of a binary exponentiation.
type powerRun struct {
	acc   *Dense // accumulator, starts as identity
	run   *Dense // running power base^(2^bit), starts as a copy of base
	state powerState
	steps int
	hook  StepHook
}

// replaceAcc releases the previous accumulator before taking ownership of next.
func (p *powerRun) replaceAcc(next *Dense) {
	p.acc.Release()
	p.acc = next
}

// replaceRun releases the previous running power before taking ownership of next.
func (p *powerRun) replaceRun(next *Dense) {
	p.run.Release()
	p.run = next
}

// fail releases every live intermediate and moves to Failed.
func (p *powerRun) fail(err error) error {
	p.acc.Release()
	p.run.Release()
	p.acc, p.run = nil, nil
	p.state = stateFailed

	return matrixErrorf(opPower, err)
}

// observe reports a finished product to the hook, if any.
func (p *powerRun) observe(bit uint, kind StepKind) {
	if p.hook != nil {
		p.hook(Step{Index: p.steps, Bit: bit, Kind: kind})
	}
	p.steps++
}

// Power returns base^exponent by binary exponentiation.
//
// Implementation:
//   - Stage 1 (Init): ValidateSquare(base) - nil → size → square.
//   - Stage 2: exponent 0 ⇒ identity of the same size and modulus;
//     exponent 1 ⇒ a fresh copy of base (never base itself).
//   - Stage 3 (Accumulating): acc = I, run = copy(base). For each exponent bit,
//     least significant first: if set, acc ← acc × run; then, if higher bits
//     remain, run ← run × run. Each replaced matrix is released before the
//     handle is reassigned.
//   - Stage 4 (Done): release run, hand acc to the caller.
//
// Behavior highlights:
//   - Mul is the only arithmetic primitive; products are strictly sequential,
//     each squaring consumes the previous one.
//   - Any failed product (overflow in Unbounded mode) releases acc and run
//     before the error propagates (Failed); no intermediate leaks.
//
// Inputs:
//   - base: square matrix (n×n), any modulus.
//   - exponent: any uint64.
//   - opts: WithStepHook to observe each product.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidSize, ErrNotSquare, ErrAllocation,
//     numeric.ErrOverflow (Unbounded only).
//
// Complexity:
//   - popcount(e) + ⌊log2 e⌋ products, each O(n³): Time O(n³·log e),
//     Space O(n²) (at most three live n×n matrices).
func Power(base *Dense, exponent uint64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	p := &powerRun{state: stateInit, hook: o.onStep}

	return p.exec(base, exponent)
}

// exec drives the state machine for one Power call.
func (p *powerRun) exec(base *Dense, exponent uint64) (*Dense, error) {
	if err := ValidateSquare(base); err != nil {
		p.state = stateFailed
		return nil, matrixErrorf(opPower, err)
	}

	switch exponent {
	case 0:
		id, err := NewIdentity(base.r, base.mod)
		if err != nil {
			return nil, p.fail(err)
		}
		p.state = stateDone
		return id, nil
	case 1:
		cp, err := base.Clone()
		if err != nil {
			return nil, p.fail(err)
		}
		p.state = stateDone
		return cp, nil
	}

	var err error
	if p.acc, err = NewIdentity(base.r, base.mod); err != nil {
		return nil, p.fail(err)
	}
	if p.run, err = base.Clone(); err != nil {
		return nil, p.fail(err)
	}
	p.state = stateAccumulating

	var next *Dense
	for bit, e := uint(0), exponent; e > 0; bit++ {
		if e&1 == 1 {
			if next, err = Mul(p.acc, p.run); err != nil {
				return nil, p.fail(err)
			}
			p.replaceAcc(next)
			p.observe(bit, StepAccumulate)
		}
		e >>= 1
		if e > 0 {
			if next, err = Mul(p.run, p.run); err != nil {
				return nil, p.fail(err)
			}
			p.replaceRun(next)
			p.observe(bit, StepSquare)
		}
	}

	p.run.Release()
	p.run = nil
	p.state = stateDone
	res := p.acc
	p.acc = nil

	return res, nil
}
