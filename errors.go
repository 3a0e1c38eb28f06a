package docbr

import "errors"

// Sentinel errors for the validation pipeline. The pipeline runs length,
// character/mask, and checksum checks in that order, and the first failing
// stage's error is returned unchanged; later stages never run.
//
// Callers branch with errors.Is (or direct comparison) to decide, for
// example, whether to prompt for re-entry or reject outright:
// - ErrInvalidInput: the input length matches no recognized document shape.
// - ErrInvalidCharacters: recognized length, but a non-digit where a digit
//   belongs, or punctuation that does not match the format mask.
// - ErrInvalidDocument: well-formed digit content that fails the uniformity
//   rule or the check-digit arithmetic.
//
// Malformed input is the expected common case, not an exceptional one; every
// error is returned as a plain value and is terminal for the call.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidCharacters = errors.New("invalid characters")
	ErrInvalidDocument   = errors.New("invalid document")
)
