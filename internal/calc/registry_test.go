package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_HasEveryDerivation(t *testing.T) {
	reg := NewRegistry()
	names := []string{
		"speed", "distance", "travel-time", "acceleration", "speed-after",
		"force", "mass-from-force", "acceleration-from-force",
		"area", "volume", "density", "mass-from-density", "volume-from-density",
		"power", "energy", "work", "torque", "pressure", "force-from-pressure",
		"voltage", "current", "resistance", "electric-power", "current-from-power", "voltage-from-power",
		"momentum", "kinetic-energy", "potential-energy",
	}

	assert.Len(t, reg.List(), len(names))
	for _, name := range names {
		f, err := reg.Get(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, f.Inputs, name)
		assert.NotNil(t, f.Eval, name)
		assert.NotEmpty(t, f.OutputUnit(), name)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	list := NewRegistry().List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name, list[i].Name)
	}
}

func TestRegistry_Evaluate(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name     string
		args     []float64
		expected float64
		unit     string
	}{
		{"speed", []float64{100, 20}, 5, "m/s"},
		{"force", []float64{1000, 9.8}, 9.8, "N"},
		{"mass-from-force", []float64{9.8, 9.8}, 1000, "g"},
		{"density", []float64{5000, 2}, 2500, "kg/m³"},
		{"volume", []float64{10, 3}, 0.03, "L"},
		{"torque", []float64{40, 0.25}, 10, "N·m"},
		{"voltage", []float64{2, 50}, 100, "V"},
		{"electric-power", []float64{12, 2.5}, 30, "W"},
		{"momentum", []float64{1500, 4}, 6, "kg·m/s"},
		{"kinetic-energy", []float64{2000, 3}, 9, "J"},
		{"potential-energy", []float64{2000, 9.8, 10}, 196, "J"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := reg.Evaluate(tt.name, tt.args)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, res.Value, 1e-9)
			assert.Equal(t, tt.unit, res.Unit)
			assert.Equal(t, tt.args, res.Args)
			assert.True(t, res.Finite())
		})
	}
}

func TestRegistry_EvaluateErrors(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Evaluate("warp-speed", []float64{1})
	assert.ErrorIs(t, err, ErrUnknownFormula)

	_, err = reg.Evaluate("speed", []float64{1})
	assert.ErrorIs(t, err, ErrArity)

	_, err = reg.Evaluate("potential-energy", []float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrArity)
}

func TestRegistry_ZeroDenominatorIsNotAnError(t *testing.T) {
	res, err := NewRegistry().Evaluate("current", []float64{5, 0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Value, 1))
	assert.False(t, res.Finite())
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(Formula{Name: "speed"})
	assert.ErrorIs(t, err, ErrDuplicateFormula)

	custom := Formula{
		Name:   "double",
		Inputs: []Input{{"length", Length}},
		Output: Length,
		Eval:   func(a []float64) float64 { return 2 * a[0] },
	}
	require.NoError(t, reg.Register(custom))
	res, err := reg.Evaluate("double", []float64{4})
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.Value)
}

func TestApply_CopiesArgs(t *testing.T) {
	f, err := NewRegistry().Get("area")
	require.NoError(t, err)

	args := []float64{3, 4}
	res, err := f.Apply(args)
	require.NoError(t, err)

	args[0] = 99
	assert.Equal(t, 3.0, res.Args[0])
	assert.Equal(t, 12.0, res.Value)
}

func TestParseArgs(t *testing.T) {
	f, err := NewRegistry().Get("potential-energy")
	require.NoError(t, err)

	args, err := f.ParseArgs(map[string]float64{"height": 10, "mass": 2000, "gravity": 9.8})
	require.NoError(t, err)
	assert.Equal(t, []float64{2000, 9.8, 10}, args)

	_, err = f.ParseArgs(map[string]float64{"mass": 2000, "gravity": 9.8})
	var inErr *InputError
	require.True(t, errors.As(err, &inErr))
	assert.Equal(t, "height", inErr.Input)
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = f.ParseArgs(map[string]float64{"mass": 1, "gravity": 1, "height": 1, "depth": 1})
	assert.ErrorIs(t, err, ErrUnknownInput)
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "density", Density.String())
	assert.Equal(t, "kg/m³", Density.Unit())
	assert.Equal(t, "g", Mass.Unit())
	assert.Equal(t, "L", Volume.Unit())
	assert.Equal(t, "", Scalar.Unit())
	assert.Equal(t, "unknown", Quantity(99).String())
}

func TestInputError(t *testing.T) {
	err := &InputError{Formula: "speed", Input: "time", Err: ErrMissingInput}
	assert.Equal(t, `speed: input "time": calc: missing input`, err.Error())
	assert.ErrorIs(t, err, ErrMissingInput)
}
