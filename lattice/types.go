// Package lattice: sentinel errors and the Order selector.
//
// Order replaces a loosely typed int-or-string parameter with a closed
// set of variants, so an invalid selector is rejected at the boundary
// rather than deep inside a lattice walk.
package lattice

import (
	"errors"
	"strconv"
)

// Sentinel errors for lattice operations.
var (
	// ErrNilDist indicates a nil *dist.Distribution argument.
	ErrNilDist = errors.New("lattice: distribution is nil")

	// ErrBadOrder indicates an Order that is neither Exact(n ≥ 1), Even nor Odd.
	ErrBadOrder = errors.New("lattice: order must be Exact(n >= 1), Even() or Odd()")

	// ErrBadLogBase indicates a logarithm base not greater than 1.
	ErrBadLogBase = errors.New("lattice: log base must be greater than 1")

	// ErrOutcomeRange indicates an atom or event referencing an outcome
	// index the distribution does not have.
	ErrOutcomeRange = errors.New("lattice: outcome index outside distribution")
)

// orderKind discriminates the Order variants.
type orderKind uint8

const (
	orderExact orderKind = iota
	orderEven
	orderOdd
)

// Order selects atoms by their order (number of generating outcomes).
//
// Build one with Exact, Even or Odd; the zero value is invalid and is
// rejected by Validate. Order is a small value type, pass it by value.
type Order struct {
	kind orderKind
	n    int
}

// Exact selects atoms of exactly order n (n ≥ 1).
func Exact(n int) Order { return Order{kind: orderExact, n: n} }

// Even selects atoms of any even positive order.
func Even() Order { return Order{kind: orderEven} }

// Odd selects atoms of any odd positive order.
func Odd() Order { return Order{kind: orderOdd} }

// Validate reports ErrBadOrder for selectors no atom could ever match,
// i.e. Exact with n < 1 (which includes the zero value Order{}).
func (o Order) Validate() error {
	if o.kind == orderExact && o.n < 1 {
		return ErrBadOrder
	}

	return nil
}

// Matches reports whether an atom of order n satisfies the selector.
func (o Order) Matches(n int) bool {
	switch o.kind {
	case orderEven:
		return n > 0 && n%2 == 0
	case orderOdd:
		return n > 0 && n%2 == 1
	default:
		return n == o.n
	}
}

// String returns "even", "odd" or the decimal order.
func (o Order) String() string {
	switch o.kind {
	case orderEven:
		return "even"
	case orderOdd:
		return "odd"
	default:
		return strconv.Itoa(o.n)
	}
}
