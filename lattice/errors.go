// SPDX-License-Identifier: MIT
// Package lattice: sentinel error set.
//
// Every message is prefixed with "lattice: ..." so logs can be grepped
// across packages. Algorithms in this package never panic on
// user-triggered conditions; wrap these sentinels with fmt.Errorf at
// the call site when more context is useful.

package lattice

import "errors"

var (
	// ErrNilVariable indicates a nil *Variable was passed where one was required.
	ErrNilVariable = errors.New("lattice: nil variable")

	// ErrNilRow indicates a nil *Row was passed where one was required.
	ErrNilRow = errors.New("lattice: nil row")

	// ErrVariableNotInRow names a variable absent from a row. Remove and Get
	// do not return it: Remove is then a no-op and Get reports ok == false.
	ErrVariableNotInRow = errors.New("lattice: variable not present in row")

	// ErrZeroDivision indicates DivideBy was called with an amount that rounds to zero.
	ErrZeroDivision = errors.New("lattice: division by a near-zero amount")
)
