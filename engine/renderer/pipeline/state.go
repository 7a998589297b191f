package pipeline

import (
	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
	"github.com/cogentcore/webgpu/wgpu"
)

// applyDepthTest sets the depth test state for a pass.
func applyDepthTest(s driver.StateController, d DepthTest) error {
	switch d {
	case DepthOff:
		return driver.Wrap("disable depth test", s.DisableDepthTest())
	case DepthReadOnly:
		return driver.Wrap("enable depth test", s.EnableDepthTest(wgpu.CompareFunctionLessEqual, false))
	case DepthOn:
		return driver.Wrap("enable depth test", s.EnableDepthTest(wgpu.CompareFunctionLessEqual, true))
	default:
		panic(&driver.PreconditionError{Msg: "pipeline: unknown depth test mode " + d.String()})
	}
}

// applyBlending sets the blend state for one draw group. For BlendMultipass the
// first call with *first set disables blending and clears *first; every later
// call enables additive one/one blending.
func applyBlending(s driver.StateController, b Blending, first *bool) error {
	switch b {
	case BlendOff:
		return driver.Wrap("disable blend", s.DisableBlend())
	case BlendAlpha:
		return driver.Wrap("enable blend", s.EnableBlend(wgpu.BlendFactorSrcAlpha, wgpu.BlendFactorOneMinusSrcAlpha))
	case BlendMultipass:
		if *first {
			*first = false
			return driver.Wrap("disable blend", s.DisableBlend())
		}
		return driver.Wrap("enable blend", s.EnableBlend(wgpu.BlendFactorOne, wgpu.BlendFactorOne))
	default:
		panic(&driver.PreconditionError{Msg: "pipeline: unknown blending mode " + b.String()})
	}
}
