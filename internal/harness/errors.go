// SPDX-License-Identifier: MIT

package harness

import "errors"

var (
	// ErrUnknownOp indicates a Request.Op outside the supported set.
	ErrUnknownOp = errors.New("harness: unknown operation")

	// ErrOperands indicates the wrong number of operands for an operation.
	ErrOperands = errors.New("harness: wrong number of operands")

	// ErrInvalidParams indicates generator bounds that cannot produce a case.
	ErrInvalidParams = errors.New("harness: invalid generator parameters")

	// ErrNoCases indicates a generator run that wrote no case at all.
	ErrNoCases = errors.New("harness: no cases generated")
)
