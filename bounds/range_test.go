package bounds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangeguard/bounds"
)

func TestRange(t *testing.T) {
	t.Parallel()

	r := bounds.NewRange(2, 10)

	assert.True(t, r.Valid())
	assert.False(t, bounds.NewRange(10, 2).Valid())
	assert.Equal(t, "[2, 10]", r.String())

	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(10))
	assert.False(t, r.Contains(-5))
	assert.True(t, r.ContainsAbs(-5))
	assert.False(t, r.ContainsAbs(-11))

	got, err := r.Check(7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	_, err = r.Check(11)
	require.ErrorIs(t, err, bounds.ErrOutOfRange)

	got, err = r.CheckAbs(-5)
	require.NoError(t, err)
	assert.Equal(t, -5, got)

	assert.Equal(t, -1, r.OrDefault(15, -1))
	assert.Equal(t, 5, r.OrDefault(5, -1))
	assert.Equal(t, 10, r.Clamp(15))
	assert.Equal(t, 2, r.Clamp(0))
}

func TestRange_ZeroValue(t *testing.T) {
	t.Parallel()

	var r bounds.Range[float32]

	assert.True(t, r.Valid())
	assert.True(t, r.Contains(0))
	assert.False(t, r.Contains(0.1))
	assert.Equal(t, float32(0), r.Clamp(3))
}
