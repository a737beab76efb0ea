package zeckendorf

import (
	"github.com/zeebo/errs"
)

var (
	// Error is the class of errors returned by this package. Every returned
	// error also carries one of the classes below.
	Error = errs.Class("zeckendorf")

	// ErrInvalidFormat is returned when text or binary input is not a
	// sequence of 0 and 1 digits (or of decimal digits for SetDecimal).
	ErrInvalidFormat = errs.Class("invalid format")

	// ErrInvalidSign is returned when a negative value would be produced.
	ErrInvalidSign = errs.Class("invalid sign")

	// ErrPrecondition marks an internal invariant violation. It is only
	// raised (as a panic) in builds with the zeckdebug tag.
	ErrPrecondition = errs.Class("precondition violation")
)

func assert(ok bool, format string, args ...interface{}) {
	if !ok {
		panic(ErrPrecondition.New(format, args...))
	}
}
