package gopoly

import "errors"

// Domain errors. They abort the operation that produced them; values built
// before the failure stay valid.
var (
	ErrDivisionByZero        = errors.New("gopoly: division by zero")
	ErrNotDivisible          = errors.New("gopoly: polynomial is not divisible")
	ErrUnbound               = errors.New("gopoly: unbound indeterminate")
	ErrNaN                   = errors.New("gopoly: expression is NaN")
	ErrReservedIndeterminate = errors.New("gopoly: indeterminate is reserved for substitution")
	ErrInvalidIndeterminate  = errors.New("gopoly: invalid indeterminate")
	ErrSyntax                = errors.New("gopoly: syntax error")
)
