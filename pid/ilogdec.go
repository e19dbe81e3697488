package pid

import (
	"errors"
	"fmt"

	"github.com/KeenanDown/logdec/dist"
	"github.com/KeenanDown/logdec/lattice"
	"github.com/KeenanDown/logdec/shared"
)

// Name is the conventional name of this PID measure.
const Name = "I_LogDec"

// Sentinel errors for the adapter. Validation failures from the
// delegated computation (shared.ErrNilDist, shared.ErrNoGroups,
// lattice.ErrBadOrder, lattice.ErrBadLogBase, dist.ErrUnknownVariable)
// are propagated unchanged.
var (
	// ErrUnknownMethod indicates a Method outside the recognized variants.
	ErrUnknownMethod = errors.New("pid: unknown method")

	// ErrCrossNotImplemented indicates the Cross strategy was selected;
	// it is recognized but has no defined computation yet.
	ErrCrossNotImplemented = errors.New("pid: cross method is not implemented")
)

// Method selects the I_LogDec computation strategy.
type Method uint8

const (
	// SharedGenerator computes I_LogDec as the weakly shared information
	// between the source groups and the target.
	SharedGenerator Method = iota

	// Cross is a reserved, distinct information measure; selecting it
	// yields ErrCrossNotImplemented.
	Cross
)

// String returns the method's conventional name.
func (m Method) String() string {
	switch m {
	case SharedGenerator:
		return "shared_generator"
	case Cross:
		return "cross"
	default:
		return fmt.Sprintf("method(%d)", uint8(m))
	}
}

// Options configures ILogDec.
//
// Order   — which lattice atoms generate the measure (default Exact(2)).
// LogBase — logarithm base for the returned value (default 2, bits).
// Method  — computation strategy (default SharedGenerator).
type Options struct {
	Order   lattice.Order
	LogBase float64
	Method  Method
}

// Option is a functional option for ILogDec.
type Option func(*Options)

// WithOrder overrides the atom-order selector.
func WithOrder(order lattice.Order) Option {
	return func(o *Options) { o.Order = order }
}

// WithLogBase overrides the logarithm base.
func WithLogBase(base float64) Option {
	return func(o *Options) { o.LogBase = base }
}

// WithMethod overrides the computation strategy.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// DefaultOptions returns the Options used when no Option overrides them.
func DefaultOptions() Options {
	return Options{Order: shared.DefaultOrder, LogBase: shared.DefaultLogBase, Method: SharedGenerator}
}

// ILogDec computes the I_LogDec PID measure of the source variable
// groups about the target variable(s).
//
// Under SharedGenerator the sources become one variable group each,
// the target is appended as the final group, and the result is
// shared.WeaklyShared over that grouping. All validation is upfront;
// no partial work is performed on failure.
//
// Errors: ErrCrossNotImplemented, ErrUnknownMethod, plus anything
// shared.WeaklyShared reports.
func ILogDec(d *dist.Distribution, sources [][]string, target []string, opts ...Option) (float64, error) {
	cfg := DefaultOptions()
	for _, fn := range opts {
		fn(&cfg)
	}

	switch cfg.Method {
	case SharedGenerator:
		groups := make([][]string, 0, len(sources)+1)
		for _, s := range sources {
			groups = append(groups, append([]string(nil), s...))
		}
		groups = append(groups, append([]string(nil), target...))

		return shared.WeaklyShared(d, groups, cfg.Order, cfg.LogBase)
	case Cross:
		return 0, ErrCrossNotImplemented
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownMethod, cfg.Method)
	}
}
