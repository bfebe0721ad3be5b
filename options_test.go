package longmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewConfig_Defaults(t *testing.T) {
	c := newConfig()

	assert.Equal(t, uint64(DefaultInitialCapacity), c.initialCapacity)
	assert.Equal(t, DefaultLoadFactor, c.loadFactor)
	require.NotNil(t, c.logger)
}

func TestNewConfig_NilLogger(t *testing.T) {
	c := newConfig(WithLogger(nil))

	require.NotNil(t, c.logger)
}

func TestNewConfig_InvalidLoadFactor(t *testing.T) {
	for _, lf := range []float64{0, -0.5, math.NaN(), math.Inf(1)} {
		require.Panicsf(t, func() { newConfig(WithLoadFactor(lf)) }, "load factor %v", lf)
	}
}

func TestNewConfig_HugeLoadFactor(t *testing.T) {
	c := newConfig(WithLoadFactor(1e20))

	assert.Equal(t, 1e20, c.loadFactor)
	assert.Equal(t, uint64(DefaultInitialCapacity), c.initialCapacity)
}

func TestNewConfig_CapacityLimit(t *testing.T) {
	require.Panics(t, func() { newConfig(WithPresize(math.MaxInt)) })
	require.Panics(t, func() { newConfig(WithPresize(1<<45), WithLoadFactor(1)) })
	require.Panics(t, func() { newConfig(WithInitialCapacity(math.MaxInt)) })
	require.Panics(t, func() { newConfig(WithInitialCapacity(maxCapacity + 1)) })
}

func TestWithLogger_Clear(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := New[int](WithLogger(zap.New(core)))

	m.Put(1, 1)
	m.Put(2, 2)
	m.Clear()

	entries := logs.FilterMessage("long map cleared").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["dropped"])
}
