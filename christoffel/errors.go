package christoffel

import "errors"

var (
	// ErrEmptyWord is returned by Recognize for "".
	ErrEmptyWord = errors.New("christoffel: empty word")

	// ErrBadLetter is returned when a word contains a letter other than 0 or 1.
	ErrBadLetter = errors.New("christoffel: letter is neither 0 nor 1")

	// ErrNotChristoffel is returned when a word over {0, 1} is not the lower
	// Christoffel word of its letter counts.
	ErrNotChristoffel = errors.New("christoffel: not a Christoffel word")

	// ErrNegativeSlope is returned by NewLine when A or B is negative.
	ErrNegativeSlope = errors.New("christoffel: line slope must be non-negative")

	// ErrZeroSlope is returned by NewLine when A = B = 0.
	ErrZeroSlope = errors.New("christoffel: line slope 0/0")

	// ErrLineOverflow is returned by NewLine and Line.Code when A + B does not
	// fit in an int64.
	ErrLineOverflow = errors.New("christoffel: line width overflows int64")

	// ErrNotOnLine is returned by Line.Code for a start point outside the line.
	ErrNotOnLine = errors.New("christoffel: point is not on the line")
)
