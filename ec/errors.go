package ec

import "fmt"

// ErrorKind identifies a kind of error. It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific
// reason for failure by checking the underlying error.
type ErrorKind string

const (
	// ErrInvalidPoint indicates coordinates that do not form a valid
	// curve point, such as the point at infinity where it is not
	// allowed.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrInfinityPoint indicates the point at infinity was passed to an
	// operation that requires affine coordinates.
	ErrInfinityPoint = ErrorKind("ErrInfinityPoint")

	// ErrPointNotOnCurve indicates an x coordinate with no matching y
	// on the curve, or an (x, y) pair failing the curve equation.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrMalformedPoint indicates point bytes with an unknown prefix,
	// a wrong length, or a hybrid parity mismatch.
	ErrMalformedPoint = ErrorKind("ErrMalformedPoint")

	// ErrMalformedSignature indicates compact signature bytes of the
	// wrong length.
	ErrMalformedSignature = ErrorKind("ErrMalformedSignature")

	// ErrInvalidPrivateKey indicates a signing key that is zero mod n.
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrZeroInverse indicates an attempted modular inversion of zero.
	ErrZeroInverse = ErrorKind("ErrZeroInverse")

	// ErrNonceOutOfRange indicates a caller-supplied signing nonce
	// outside [2, n-2].
	ErrNonceOutOfRange = ErrorKind("ErrNonceOutOfRange")

	// ErrNonceAtInfinity indicates a caller-supplied signing nonce k
	// for which k*G is the point at infinity.
	ErrNonceAtInfinity = ErrorKind("ErrNonceAtInfinity")

	// ErrNonceZeroR indicates a caller-supplied signing nonce that
	// produces a zero r value.
	ErrNonceZeroR = ErrorKind("ErrNonceZeroR")

	// ErrNonceZeroS indicates a caller-supplied signing nonce that
	// produces a zero s value.
	ErrNonceZeroS = ErrorKind("ErrNonceZeroS")

	// ErrSignFailed indicates the nonce search exhausted its iteration
	// bound without producing a usable signature.
	ErrSignFailed = ErrorKind("ErrSignFailed")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to elliptic curve operations. It
// has full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for failure by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// errorf creates an Error with a formatted description.
func errorf(kind ErrorKind, format string, args ...interface{}) Error {
	return Error{Err: kind, Description: fmt.Sprintf(format, args...)}
}
