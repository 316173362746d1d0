package seamcarver

import "errors"

var (
	// ErrInvalidArgument is returned for absent, empty or out of range inputs.
	ErrInvalidArgument = errors.New("seamcarver: invalid argument")
	// ErrInvalidSeam is returned when a seam does not fit the current picture.
	ErrInvalidSeam = errors.New("seamcarver: invalid seam")
)
