package crystal

import "errors"

var (
	// ErrAtomBondMismatch indicates the bond graph's vertex count does
	// not match the atom set's length.
	ErrAtomBondMismatch = errors.New("crystal: bond graph vertex count does not match atom count")

	// ErrChargesLengthMismatch indicates a non-nil Charges slice whose
	// length does not match the atom set's length.
	ErrChargesLengthMismatch = errors.New("crystal: charges length does not match atom count")

	// ErrIndexOutOfRange indicates an atom index outside [0, len(Atoms)).
	ErrIndexOutOfRange = errors.New("crystal: atom index out of range")
)
