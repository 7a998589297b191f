package driver_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotAllocator(t *testing.T) {
	var a driver.SlotAllocator

	assert.Equal(t, uint32(0), a.Slot("glow_DiffuseMap"))
	assert.Equal(t, uint32(1), a.Slot("glow_NormalMap"))
	assert.Equal(t, uint32(0), a.Slot("glow_DiffuseMap"))
	assert.Equal(t, uint32(2), a.Slot("glow_ShadowMap"))
	assert.Equal(t, 3, a.Len())
}

func TestWrap(t *testing.T) {
	boom := errors.New("GL_INVALID_VALUE")

	assert.NoError(t, driver.Wrap("draw", nil))

	err := driver.Wrap("draw", boom)
	var de *driver.DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "draw", de.Op)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "driver: draw: GL_INVALID_VALUE", err.Error())

	again := driver.Wrap("bind mesh", fmt.Errorf("context: %w", err))
	require.ErrorAs(t, again, &de)
	assert.Equal(t, "draw", de.Op, "the innermost operation is kept")
}

func TestRequire(t *testing.T) {
	assert.NotPanics(t, func() { driver.Require(true, "never") })

	defer func() {
		r := recover()
		pe, ok := r.(*driver.PreconditionError)
		require.True(t, ok, "Require panics with a *PreconditionError")
		assert.Equal(t, "precondition failed: id 7 is unknown", pe.Error())
	}()
	driver.Require(false, "id %d is unknown", 7)
}

func TestPreconditionErrorUnwrap(t *testing.T) {
	err := &driver.PreconditionError{Msg: "bind", Err: driver.ErrNullTexture}
	assert.ErrorIs(t, err, driver.ErrNullTexture)
	assert.Contains(t, err.Error(), driver.ErrNullTexture.Error())
}

func TestInitShutdown(t *testing.T) {
	driver.Shutdown()
	t.Cleanup(driver.Shutdown)

	_, ok := driver.Current()
	assert.False(t, ok)

	dev := recorder.NewDevice()
	require.NoError(t, driver.Init(dev))
	got, ok := driver.Current()
	assert.True(t, ok)
	assert.Same(t, dev, got)

	assert.ErrorIs(t, driver.Init(recorder.NewDevice()), driver.ErrAlreadyInitialized)

	driver.Shutdown()
	_, ok = driver.Current()
	assert.False(t, ok)
	assert.NoError(t, driver.Init(dev), "a shut down driver can be initialized again")
}

func TestInitNilPanics(t *testing.T) {
	assert.Panics(t, func() { _ = driver.Init(nil) })
}

func TestFacesTypeString(t *testing.T) {
	assert.Equal(t, "triangles", driver.FacesTriangles.String())
	assert.Equal(t, "line-loop", driver.FacesLineLoop.String())
	assert.Equal(t, "unknown", driver.FacesType(99).String())
}

func TestIsNil(t *testing.T) {
	var nilTexture *recorder.Texture
	var nilIface driver.Texture
	var typedNil driver.Texture = nilTexture

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil interface", nilIface, true},
		{"typed nil pointer", typedNil, true},
		{"nil map", map[string]int(nil), true},
		{"nil func", (func())(nil), true},
		{"pointer", recorder.NewDevice().NewTexture("t"), false},
		{"value", 3, false},
		{"empty struct", struct{}{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, driver.IsNil(tt.v))
		})
	}
}
