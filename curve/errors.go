package curve

import "errors"

var (
	// ErrUnsupportedField is returned by New/NewFromParams when the curve is
	// not over a prime field, or by Provider.Parameters for an unknown name.
	ErrUnsupportedField = errors.New("curve: unsupported field")

	// ErrInvalidCurve is returned when the supplied parameters fail one of
	// the Curve invariants (non-singular, base point on the curve, base
	// point of order N). A non-prime p is reported as ErrUnsupportedField.
	ErrInvalidCurve = errors.New("curve: invalid parameters")

	// ErrCurveMismatch is returned by GroupOps when operating on points
	// belonging to different curves.
	ErrCurveMismatch = errors.New("curve: points belong to different curves")

	// ErrInvalidScalar is returned by scalar multiplication when given a
	// negative scalar.
	ErrInvalidScalar = errors.New("curve: scalar must be non-negative")
)
