package gen

import (
	"testing"

	"github.com/TFMV/pqcorpus/pkg/core"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int16RangeSpec() core.ColumnSpec {
	return core.ColumnSpec{
		Name:            "a",
		Type:            arrow.PrimitiveTypes.Int16,
		Strategy:        core.StrategyScalarRange,
		Min:             -10000,
		Max:             10000,
		NullProbability: 0.2,
	}
}

func TestScalarRangeDeterminism(t *testing.T) {
	spec := int16RangeSpec()

	first, err := New(42).Column(spec, 500)
	require.NoError(t, err)
	defer first.Release()

	second, err := New(42).Column(spec, 500)
	require.NoError(t, err)
	defer second.Release()

	assert.True(t, array.Equal(first, second), "same seed must yield identical columns")

	other, err := New(43).Column(spec, 500)
	require.NoError(t, err)
	defer other.Release()

	assert.False(t, array.Equal(first, other), "different seeds should diverge")
}

func TestScalarRangeBoundsAndNullAccounting(t *testing.T) {
	const length = 1000
	spec := int16RangeSpec()

	col, err := New(42).Column(spec, length)
	require.NoError(t, err)
	defer col.Release()

	require.Equal(t, length, col.Len())

	ints := col.(*array.Int16)
	nonNull := 0
	for i := 0; i < ints.Len(); i++ {
		if ints.IsNull(i) {
			continue
		}
		nonNull++
		v := ints.Value(i)
		assert.GreaterOrEqual(t, v, int16(-10000))
		assert.LessOrEqual(t, v, int16(10000))
	}
	assert.Equal(t, length, nonNull+col.NullN())
}

func TestScalarRangeWideInt64Domain(t *testing.T) {
	// A domain wider than half the int64 range used to overflow the span
	// arithmetic and panic inside the uniform draw.
	spec := core.ColumnSpec{
		Name:            "wide",
		Type:            arrow.PrimitiveTypes.Int64,
		Strategy:        core.StrategyScalarRange,
		Min:             -9e18,
		Max:             9e18,
		NullProbability: 0.2,
	}

	col, err := New(42).Column(spec, 500)
	require.NoError(t, err)
	defer col.Release()

	ints := col.(*array.Int64)
	for i := 0; i < ints.Len(); i++ {
		if ints.IsNull(i) {
			continue
		}
		v := ints.Value(i)
		assert.GreaterOrEqual(t, v, int64(-9e18))
		assert.LessOrEqual(t, v, int64(9e18))
	}

	again, err := New(42).Column(spec, 500)
	require.NoError(t, err)
	defer again.Release()
	assert.True(t, array.Equal(col, again), "wide domains stay deterministic")
}

func TestNullFractionConverges(t *testing.T) {
	const length = 20000
	spec := int16RangeSpec()

	col, err := New(42).Column(spec, length)
	require.NoError(t, err)
	defer col.Release()

	fraction := float64(col.NullN()) / float64(length)
	assert.InDelta(t, spec.NullProbability, fraction, 0.02)
}

func TestConstantColumn(t *testing.T) {
	spec := core.ColumnSpec{
		Name:     "e",
		Type:     arrow.PrimitiveTypes.Int16,
		Strategy: core.StrategyConstant,
		Constant: 42,
	}

	col, err := New(1).Column(spec, 250)
	require.NoError(t, err)
	defer col.Release()

	require.Equal(t, 0, col.NullN())
	ints := col.(*array.Int16)
	for i := 0; i < ints.Len(); i++ {
		require.Equal(t, int16(42), ints.Value(i))
	}
}

func TestBoundedStringLengths(t *testing.T) {
	spec := core.ColumnSpec{
		Name:            "c",
		Type:            arrow.BinaryTypes.String,
		Strategy:        core.StrategyBoundedString,
		MinLength:       0,
		MaxLength:       3,
		NullProbability: 0.2,
	}

	col, err := New(42).Column(spec, 1000)
	require.NoError(t, err)
	defer col.Release()

	strs := col.(*array.String)
	for i := 0; i < strs.Len(); i++ {
		if strs.IsNull(i) {
			continue
		}
		assert.LessOrEqual(t, len(strs.Value(i)), 3)
	}
}

func TestListOffsetsInvariants(t *testing.T) {
	const length = 200
	spec := core.ColumnSpec{
		Name:            "d",
		Type:            arrow.PrimitiveTypes.Int64,
		Strategy:        core.StrategyListOfScalar,
		Min:             -10000,
		Max:             10000,
		NullProbability: 0.2,
	}

	col, err := New(42).Column(spec, length)
	require.NoError(t, err)
	defer col.Release()

	lst, ok := col.(*array.List)
	require.True(t, ok)
	require.Equal(t, length, lst.Len())

	offsets := lst.Offsets()
	require.Len(t, offsets, length+1)
	assert.Equal(t, int32(0), offsets[0])
	for i := 1; i < len(offsets); i++ {
		assert.GreaterOrEqual(t, offsets[i], offsets[i-1])
	}
	assert.LessOrEqual(t, offsets[length], int32(lst.ListValues().Len()))
}

func TestSpecRejectedBeforeGeneration(t *testing.T) {
	tests := []struct {
		name string
		spec core.ColumnSpec
	}{
		{
			name: "inverted range",
			spec: core.ColumnSpec{Name: "x", Type: arrow.PrimitiveTypes.Int16, Strategy: core.StrategyScalarRange, Min: 10, Max: -10},
		},
		{
			name: "null probability above one",
			spec: core.ColumnSpec{Name: "x", Type: arrow.PrimitiveTypes.Int16, Strategy: core.StrategyScalarRange, Max: 1, NullProbability: 1.5},
		},
		{
			name: "negative null probability",
			spec: core.ColumnSpec{Name: "x", Type: arrow.PrimitiveTypes.Int16, Strategy: core.StrategyScalarRange, Max: 1, NullProbability: -0.1},
		},
		{
			name: "string strategy on int column",
			spec: core.ColumnSpec{Name: "x", Type: arrow.PrimitiveTypes.Int16, Strategy: core.StrategyBoundedString, MaxLength: 3},
		},
		{
			name: "inverted string bounds",
			spec: core.ColumnSpec{Name: "x", Type: arrow.BinaryTypes.String, Strategy: core.StrategyBoundedString, MinLength: 5, MaxLength: 3},
		},
		{
			name: "unknown strategy",
			spec: core.ColumnSpec{Name: "x", Type: arrow.PrimitiveTypes.Int16, Strategy: "mystery"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, err := New(42).Column(tt.spec, 10)
			require.ErrorIs(t, err, core.ErrInvalidSpec)
			assert.Nil(t, col)
		})
	}
}

func TestOffsetsRejectsBadBounds(t *testing.T) {
	g := New(42)

	_, err := g.Offsets(0, 0, 10)
	require.ErrorIs(t, err, core.ErrOffsetRange)

	_, err = g.Offsets(5, 10, 3)
	require.ErrorIs(t, err, core.ErrOffsetRange)

	_, err = g.Offsets(5, -1, 3)
	require.ErrorIs(t, err, core.ErrOffsetRange)
}

func TestListDeterminism(t *testing.T) {
	spec := core.ColumnSpec{
		Name:            "d",
		Type:            arrow.PrimitiveTypes.Int64,
		Strategy:        core.StrategyListOfScalar,
		Min:             -100,
		Max:             100,
		NullProbability: 0.1,
	}

	first, err := New(7).Column(spec, 100)
	require.NoError(t, err)
	defer first.Release()

	second, err := New(7).Column(spec, 100)
	require.NoError(t, err)
	defer second.Release()

	assert.True(t, array.Equal(first, second))
}
