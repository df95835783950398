// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
)

// ErrFormat is the parent of every codec failure.
var ErrFormat = errors.New("codec: malformed matrix text")

var (
	// ErrEmpty indicates blank input or an empty "()" literal.
	ErrEmpty = fmt.Errorf("%w: empty", ErrFormat)

	// ErrInvalidFormat indicates broken structure: missing parentheses,
	// empty or non-digit cells, ragged rows.
	ErrInvalidFormat = fmt.Errorf("%w: invalid format", ErrFormat)

	// ErrCellTooLong indicates a cell with more than MaxCellDigits digits.
	ErrCellTooLong = fmt.Errorf("%w: cell too long", ErrFormat)

	// ErrConversion indicates a digit run that does not fit in uint64,
	// or a grid that cannot be allocated.
	ErrConversion = fmt.Errorf("%w: conversion failed", ErrFormat)
)
