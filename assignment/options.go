package assignment

import (
	"strconv"

	"github.com/rs/zerolog"
)

// Algorithm selects the solving pipeline.
//
//   - Munkres: augmenting-path engine on a wide matrix; tall inputs
//     are transposed first and the result is transposed back.
//   - MunkresPadded: rectangular inputs are padded with zero-cost dummy
//     rows or columns to a square matrix; the dummies are trimmed from the
//     result.
//
// Both return an optimal assignment; they may differ on ties.
type Algorithm int

const (
	// Munkres is the default pipeline.
	Munkres Algorithm = iota

	// MunkresPadded squares the matrix by padding instead of transposing.
	MunkresPadded
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Munkres:
		return "munkres"
	case MunkresPadded:
		return "munkres-padded"
	default:
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
}

// ParseAlgorithm maps a name produced by Algorithm.String back to its value.
// The empty string selects the default.
// Errors: ErrUnknownAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "munkres", "":
		return Munkres, nil
	case "munkres-padded":
		return MunkresPadded, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// core returns the core solver of a and whether a pads its input.
func (a Algorithm) core() (coreSolver, bool) {
	switch a {
	case MunkresPadded:
		return munkresCore{accept: ShapeSquare}, true
	default:
		return munkresCore{accept: ShapeWide}, false
	}
}

// Options configures a solve.
//
//   - Algorithm: pipeline, default Munkres.
//   - Reducer: preprocessing, default ReduceRowsThenColumns. On a
//     rectangular oriented matrix only the fully matched dimension is reduced.
//   - Logger: receives trace events per augmentation and dual adjustment
//     and one debug summary per solve. Default zerolog.Nop().
type Options struct {
	Algorithm Algorithm
	Reducer   Reducer
	Logger    zerolog.Logger
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithAlgorithm selects the solving pipeline.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithReducer selects the matrix reducer.
func WithReducer(r Reducer) Option {
	return func(o *Options) {
		o.Reducer = r
	}
}

// WithLogger attaches a logger to the solve session.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Munkres, ReduceRowsThenColumns and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Algorithm: Munkres,
		Reducer:   ReduceRowsThenColumns,
		Logger:    zerolog.Nop(),
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Algorithm != Munkres && o.Algorithm != MunkresPadded {
		return o, ErrUnknownAlgorithm
	}
	if !o.Reducer.valid() {
		return o, ErrUnknownReducer
	}

	return o, nil
}
