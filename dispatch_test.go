package workout_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bzimmer/workout"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   string
		params []float64
		want   workout.Activity
	}{
		{
			code:   "SWM",
			params: []float64{720, 1, 80, 25, 40},
			want:   workout.NewSwimming(720, 1, 80, 25, 40),
		},
		{
			code:   "RUN",
			params: []float64{15000, 1, 75},
			want:   workout.NewRunning(15000, 1, 75),
		},
		{
			code:   "WLK",
			params: []float64{9000, 1, 75, 180},
			want:   workout.NewWalking(9000, 1, 75, 180),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			act, err := workout.Resolve(tt.code, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, act)
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"XYZ", "", "run", "SWIM"} {
		act, err := workout.Resolve(code, []float64{1, 2, 3})
		require.ErrorIs(t, err, workout.ErrUnknownActivityType)
		assert.Nil(t, act)

		var uerr *workout.UnknownTypeError
		require.True(t, errors.As(err, &uerr))
		assert.Equal(t, code, uerr.Code)
	}
}

func TestResolveArity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   string
		params []float64
		want   int
	}{
		{code: "RUN", params: []float64{1, 2}, want: 3},
		{code: "RUN", params: []float64{1, 2, 3, 4}, want: 3},
		{code: "WLK", params: []float64{9000, 1, 75}, want: 4},
		{code: "SWM", params: nil, want: 5},
	}

	for _, tt := range tests {
		act, err := workout.Resolve(tt.code, tt.params)
		require.ErrorIs(t, err, workout.ErrArityMismatch)
		assert.Nil(t, act)

		var aerr *workout.ArityError
		require.True(t, errors.As(err, &aerr))
		assert.Equal(t, tt.want, aerr.Want)
		assert.Equal(t, len(tt.params), aerr.Got)
	}
}

func TestCodes(t *testing.T) {
	t.Parallel()

	for _, code := range workout.Codes() {
		_, err := workout.Resolve(code, nil)
		assert.ErrorIs(t, err, workout.ErrArityMismatch, code)
	}
}
