package wgpustate_test

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-glow/common"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/parameters"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/recorder"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/wgpustate"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerDefaults(t *testing.T) {
	c := wgpustate.NewController()
	s := c.Current()

	assert.False(t, s.DepthTestEnabled())
	assert.False(t, s.BlendEnabled())
	assert.Nil(t, s.BlendState())
	assert.Equal(t, "depth=off;blend=off", s.Key())
	assert.Empty(t, c.Variants(), "nothing is tracked before the first state call")

	ds := s.DepthStencilState()
	assert.Equal(t, wgpu.CompareFunctionAlways, ds.DepthCompare)
	assert.False(t, ds.DepthWriteEnabled)
	assert.Equal(t, wgpu.TextureFormatDepth24Plus, ds.Format)
}

func TestControllerDepthState(t *testing.T) {
	c := wgpustate.NewController(wgpustate.WithDepthFormat(wgpu.TextureFormatDepth32Float))

	require.NoError(t, c.EnableDepthTest(wgpu.CompareFunctionLessEqual, false))
	s := c.Current()
	assert.True(t, s.DepthTestEnabled())
	assert.False(t, s.DepthWriteEnabled())
	ds := s.DepthStencilState()
	assert.Equal(t, wgpu.CompareFunctionLessEqual, ds.DepthCompare)
	assert.Equal(t, wgpu.TextureFormatDepth32Float, ds.Format)
	assert.Equal(t, "depth=less-equal;blend=off", s.Key())

	require.NoError(t, c.EnableDepthTest(wgpu.CompareFunctionLessEqual, true))
	assert.True(t, c.Current().DepthWriteEnabled())
	assert.Equal(t, "depth=less-equal+write;blend=off", c.Current().Key())

	require.NoError(t, c.DisableDepthTest())
	assert.False(t, c.Current().DepthWriteEnabled())
}

func TestControllerBlendState(t *testing.T) {
	c := wgpustate.NewController()

	require.NoError(t, c.EnableBlend(wgpu.BlendFactorSrcAlpha, wgpu.BlendFactorOneMinusSrcAlpha))
	s := c.Current()
	require.NotNil(t, s.BlendState())
	assert.Equal(t, wgpu.BlendFactorSrcAlpha, s.BlendState().Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorOneMinusSrcAlpha, s.BlendState().Alpha.DstFactor)
	assert.Equal(t, wgpu.BlendOperationAdd, s.BlendState().Color.Operation)
	assert.Equal(t, "depth=off;blend=src-alpha+one-minus-src-alpha", s.Key())

	target := s.ColorTargetState(wgpu.TextureFormatBGRA8Unorm)
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, target.Format)
	assert.Equal(t, wgpu.ColorWriteMaskAll, target.WriteMask)
	assert.Equal(t, s.BlendState(), target.Blend)

	require.NoError(t, c.DisableBlend())
	assert.Nil(t, c.Current().ColorTargetState(wgpu.TextureFormatBGRA8Unorm).Blend)
}

func TestControllerTracksDistinctVariants(t *testing.T) {
	c := wgpustate.NewController()

	require.NoError(t, c.DisableBlend())
	require.NoError(t, c.EnableBlend(wgpu.BlendFactorOne, wgpu.BlendFactorOne))
	require.NoError(t, c.DisableBlend())
	require.NoError(t, c.EnableBlend(wgpu.BlendFactorOne, wgpu.BlendFactorOne))

	assert.Equal(t, []string{"depth=off;blend=off", "depth=off;blend=one+one"}, c.Variants())
	d, ok := c.Descriptor("depth=off;blend=one+one")
	require.True(t, ok)
	assert.True(t, d.BlendEnabled())
	_, ok = c.Descriptor("depth=always;blend=off")
	assert.False(t, ok)
}

func TestControllerForwardsFirst(t *testing.T) {
	dev := recorder.NewDevice()
	boom := errors.New("device lost")
	dev.FailOn(recorder.CmdEnableBlend, boom)
	c := wgpustate.NewController(wgpustate.WithForward(dev.State()))

	require.NoError(t, c.EnableDepthTest(wgpu.CompareFunctionLessEqual, true))
	assert.ErrorIs(t, c.EnableBlend(wgpu.BlendFactorOne, wgpu.BlendFactorOne), boom)

	assert.False(t, c.Current().BlendEnabled(), "a rejected call leaves the tracked state untouched")
	assert.Equal(t, 1, dev.Count(recorder.CmdEnableDepthTest))
	assert.Equal(t, []string{"depth=less-equal+write;blend=off"}, c.Variants())
}

func TestWrapDeviceWithPipeline(t *testing.T) {
	dev := recorder.NewDevice()
	wrapped, c := wgpustate.WrapDevice(dev)
	p, err := pipeline.NewPipeline(pipeline.WithDevice(wrapped))
	require.NoError(t, err)

	require.NoError(t, p.AddPass(pipeline.PassGeometry, dev.NewShader("gbuffer"),
		pipeline.WithBlending(pipeline.BlendOff)))
	require.NoError(t, p.AddPass(pipeline.PassLights, dev.NewShader("deferred"),
		pipeline.WithBlending(pipeline.BlendMultipass)))
	require.NoError(t, p.AddPass(pipeline.PassGeometry, dev.NewShader("transparent"),
		pipeline.WithDepthTest(pipeline.DepthReadOnly)))
	p.AddGeometry(common.Identity4(), dev.NewMesh("cube"), parameters.New())
	p.AddLight(parameters.New())
	p.AddLight(parameters.New())

	require.NoError(t, p.Execute())

	assert.Equal(t, []string{
		"depth=less-equal+write;blend=off",
		"depth=off;blend=off",
		"depth=off;blend=one+one",
		"depth=less-equal;blend=one+one",
		"depth=less-equal;blend=src-alpha+one-minus-src-alpha",
	}, c.Variants())
	assert.Equal(t, 4, dev.Draws(), "vertex buffers still come from the wrapped device")
	assert.Equal(t, 2, dev.Count(recorder.CmdDisableBlend), "state calls are forwarded")
}

func TestWrapDeviceNilPanics(t *testing.T) {
	assert.Panics(t, func() { wgpustate.WrapDevice(nil) })
}
