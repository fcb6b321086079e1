// Package gen produces deterministic, encoding-adversarial Arrow arrays.
//
// Every array is a pure function of (spec, seed): the same generator seed and
// column spec always yield identical values, null placement, and list
// offsets, so corpus files are stable across runs and usable as fuzz seeds.
package gen

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/TFMV/pqcorpus/pkg/core"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ListChildMultiplier is how many child values are drawn per list row, giving
// lists enough material to slice from.
const ListChildMultiplier = 10

const stringCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator draws column data from a seeded random stream.
type Generator struct {
	rng *rand.Rand
	mem memory.Allocator
}

// New creates a Generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		mem: memory.NewGoAllocator(),
	}
}

// Column generates one array of the given length from spec. The spec is
// validated before any value is drawn.
func (g *Generator) Column(spec core.ColumnSpec, length int) (arrow.Array, error) {
	if err := ValidateSpec(spec); err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", core.ErrInvalidSpec, length)
	}

	switch spec.Strategy {
	case core.StrategyScalarRange:
		return g.scalarRange(spec, length)
	case core.StrategyConstant:
		return g.constant(spec, length)
	case core.StrategyBoundedString:
		return g.boundedString(spec, length)
	case core.StrategyListOfScalar:
		return g.listOfScalar(spec, length)
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", core.ErrInvalidSpec, spec.Strategy)
	}
}

// ValidateSpec rejects a spec whose parameters are outside their domain:
// null probability outside [0, 1], inverted ranges, or a type the strategy
// cannot produce.
func ValidateSpec(spec core.ColumnSpec) error {
	if spec.NullProbability < 0 || spec.NullProbability > 1 {
		return fmt.Errorf("%w: null probability %v outside [0, 1] for column %q",
			core.ErrInvalidSpec, spec.NullProbability, spec.Name)
	}

	switch spec.Strategy {
	case core.StrategyScalarRange, core.StrategyListOfScalar:
		if spec.Min > spec.Max {
			return fmt.Errorf("%w: min %v > max %v for column %q",
				core.ErrInvalidSpec, spec.Min, spec.Max, spec.Name)
		}
		if !scalarSupported(spec.Type) {
			return fmt.Errorf("%w: type %s not supported by strategy %q for column %q",
				core.ErrInvalidSpec, spec.Type, spec.Strategy, spec.Name)
		}
	case core.StrategyConstant:
		if !constantSupported(spec.Type) {
			return fmt.Errorf("%w: type %s not supported by strategy %q for column %q",
				core.ErrInvalidSpec, spec.Type, spec.Strategy, spec.Name)
		}
	case core.StrategyBoundedString:
		if spec.Type.ID() != arrow.STRING {
			return fmt.Errorf("%w: type %s not supported by strategy %q for column %q",
				core.ErrInvalidSpec, spec.Type, spec.Strategy, spec.Name)
		}
		if spec.MinLength < 0 || spec.MinLength > spec.MaxLength {
			return fmt.Errorf("%w: string length bounds [%d, %d] for column %q",
				core.ErrInvalidSpec, spec.MinLength, spec.MaxLength, spec.Name)
		}
	default:
		return fmt.Errorf("%w: unknown strategy %q for column %q",
			core.ErrInvalidSpec, spec.Strategy, spec.Name)
	}
	return nil
}

func scalarSupported(dt arrow.DataType) bool {
	if dt == nil {
		return false
	}
	switch dt.ID() {
	case arrow.INT16, arrow.INT32, arrow.INT64, arrow.FLOAT32, arrow.FLOAT64:
		return true
	}
	return false
}

func constantSupported(dt arrow.DataType) bool {
	if dt == nil {
		return false
	}
	switch dt.ID() {
	case arrow.INT16, arrow.INT32, arrow.INT64:
		return true
	}
	return false
}

func (g *Generator) scalarRange(spec core.ColumnSpec, length int) (arrow.Array, error) {
	b := array.NewBuilder(g.mem, spec.Type)
	defer b.Release()
	b.Reserve(length)

	for i := 0; i < length; i++ {
		if err := g.appendScalar(b, spec); err != nil {
			return nil, err
		}
	}
	return b.NewArray(), nil
}

// appendScalar draws one value (or a null) into b according to spec.
func (g *Generator) appendScalar(b array.Builder, spec core.ColumnSpec) error {
	if g.drawNull(spec.NullProbability) {
		b.AppendNull()
		return nil
	}

	switch bld := b.(type) {
	case *array.Int16Builder:
		bld.Append(int16(g.intIn(int64(spec.Min), int64(spec.Max))))
	case *array.Int32Builder:
		bld.Append(int32(g.intIn(int64(spec.Min), int64(spec.Max))))
	case *array.Int64Builder:
		bld.Append(g.intIn(int64(spec.Min), int64(spec.Max)))
	case *array.Float32Builder:
		bld.Append(float32(g.floatIn(spec.Min, spec.Max)))
	case *array.Float64Builder:
		bld.Append(g.floatIn(spec.Min, spec.Max))
	default:
		return fmt.Errorf("%w: no scalar builder for type %s", core.ErrInvalidSpec, spec.Type)
	}
	return nil
}

func (g *Generator) constant(spec core.ColumnSpec, length int) (arrow.Array, error) {
	b := array.NewBuilder(g.mem, spec.Type)
	defer b.Release()
	b.Reserve(length)

	for i := 0; i < length; i++ {
		switch bld := b.(type) {
		case *array.Int16Builder:
			bld.Append(int16(spec.Constant))
		case *array.Int32Builder:
			bld.Append(int32(spec.Constant))
		case *array.Int64Builder:
			bld.Append(spec.Constant)
		default:
			return nil, fmt.Errorf("%w: no constant builder for type %s", core.ErrInvalidSpec, spec.Type)
		}
	}
	return b.NewArray(), nil
}

func (g *Generator) boundedString(spec core.ColumnSpec, length int) (arrow.Array, error) {
	b := array.NewStringBuilder(g.mem)
	defer b.Release()
	b.Reserve(length)

	for i := 0; i < length; i++ {
		if g.drawNull(spec.NullProbability) {
			b.AppendNull()
			continue
		}
		n := spec.MinLength + g.rng.Intn(spec.MaxLength-spec.MinLength+1)
		buf := make([]byte, n)
		for j := range buf {
			buf[j] = stringCharset[g.rng.Intn(len(stringCharset))]
		}
		b.Append(string(buf))
	}
	return b.NewArray(), nil
}

// listOfScalar generates a list column. Offsets are drawn first, then each
// row's child values, so a given row's list always holds the same values for
// the same seed.
func (g *Generator) listOfScalar(spec core.ColumnSpec, length int) (arrow.Array, error) {
	childLen := length * ListChildMultiplier
	if childLen > math.MaxInt32 {
		return nil, fmt.Errorf("%w: child length %d exceeds offset range", core.ErrOffsetRange, childLen)
	}

	offsets, err := g.Offsets(length+1, 0, int32(childLen))
	if err != nil {
		return nil, err
	}

	child := spec
	child.Strategy = core.StrategyScalarRange

	lb := array.NewListBuilder(g.mem, spec.Type)
	defer lb.Release()
	vb := lb.ValueBuilder()

	for i := 0; i < length; i++ {
		lb.Append(true)
		for k := offsets[i]; k < offsets[i+1]; k++ {
			if err := g.appendScalar(vb, child); err != nil {
				return nil, err
			}
		}
	}
	return lb.NewArray(), nil
}

// Offsets draws n offsets in [min, max], sorted non-decreasing with the
// first forced to min. Fails if the bounds cannot produce a valid sequence.
func (g *Generator) Offsets(n int, min, max int32) ([]int32, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least one offset, got %d", core.ErrOffsetRange, n)
	}
	if min < 0 || max < min {
		return nil, fmt.Errorf("%w: bounds [%d, %d]", core.ErrOffsetRange, min, max)
	}

	offsets := make([]int32, n)
	span := int64(max-min) + 1
	for i := range offsets {
		offsets[i] = min + int32(g.rng.Int63n(span))
	}
	slices.Sort(offsets)
	offsets[0] = min
	return offsets, nil
}

func (g *Generator) drawNull(p float64) bool {
	return p > 0 && g.rng.Float64() < p
}

// intIn draws uniformly from [min, max]. The span is computed in uint64 so
// domains wider than half the int64 range do not overflow.
func (g *Generator) intIn(min, max int64) int64 {
	span := uint64(max-min) + 1
	if span == 0 {
		// The domain covers all of int64.
		return int64(g.rng.Uint64())
	}
	return min + int64(g.rng.Uint64()%span)
}

func (g *Generator) floatIn(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}
