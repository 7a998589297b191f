package pipeline

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/parameters"
)

// PassType identifies the iteration pattern a pass uses.
type PassType int

const (
	// PassFullscreen draws the full-screen quad once.
	PassFullscreen PassType = iota

	// PassGeometry draws every geometry entry once.
	PassGeometry

	// PassLights draws the full-screen quad once per light, for screen-space light accumulation.
	PassLights

	// PassLightsThenGeometry draws every geometry entry for every light; lights form the outer loop.
	PassLightsThenGeometry

	// PassGeometryThenLights draws every geometry entry for every light; geometry forms the outer loop.
	PassGeometryThenLights
)

// String returns the pass type name.
func (t PassType) String() string {
	switch t {
	case PassFullscreen:
		return "fullscreen"
	case PassGeometry:
		return "geometry"
	case PassLights:
		return "lights"
	case PassLightsThenGeometry:
		return "lights-then-geometry"
	case PassGeometryThenLights:
		return "geometry-then-lights"
	default:
		return fmt.Sprintf("PassType(%d)", int(t))
	}
}

// DepthTest selects the depth test state of a pass.
type DepthTest int

const (
	// DepthOff disables depth testing.
	DepthOff DepthTest = iota

	// DepthReadOnly tests against the depth buffer with less-or-equal but never writes depth.
	DepthReadOnly

	// DepthOn tests with less-or-equal and writes depth.
	DepthOn
)

// String returns the depth test mode name.
func (d DepthTest) String() string {
	switch d {
	case DepthOff:
		return "off"
	case DepthReadOnly:
		return "read-only"
	case DepthOn:
		return "on"
	default:
		return fmt.Sprintf("DepthTest(%d)", int(d))
	}
}

// Blending selects the blend state of a pass.
type Blending int

const (
	// BlendOff disables blending.
	BlendOff Blending = iota

	// BlendAlpha blends with source alpha and one minus source alpha.
	BlendAlpha

	// BlendMultipass replaces the target with the first multipass draw of a frame and
	// adds every later multipass draw on top of it (factors one/one).
	BlendMultipass
)

// String returns the blending mode name.
func (b Blending) String() string {
	switch b {
	case BlendOff:
		return "off"
	case BlendAlpha:
		return "alpha"
	case BlendMultipass:
		return "multipass"
	default:
		return fmt.Sprintf("Blending(%d)", int(b))
	}
}

// DefaultState returns the depth test and blending used by a pass of the given
// type when AddPass is not given explicit modes.
//
// Parameters:
//   - t: the pass type
//
// Returns:
//   - DepthTest: the default depth test mode
//   - Blending: the default blending mode
func DefaultState(t PassType) (DepthTest, Blending) {
	switch t {
	case PassFullscreen:
		return DepthOff, BlendOff
	case PassGeometry:
		return DepthOn, BlendAlpha
	case PassLights:
		return DepthOff, BlendOff
	case PassLightsThenGeometry, PassGeometryThenLights:
		return DepthOn, BlendMultipass
	default:
		panic(&driver.PreconditionError{Msg: fmt.Sprintf("pipeline: unknown pass type %d", int(t))})
	}
}

// Pass is one configured step of the pipeline. Passes are immutable once added.
type Pass struct {
	Type       PassType
	Shader     driver.Shader
	DepthTest  DepthTest
	Blending   Blending
	Parameters parameters.Parameters
}

// PassOption is a functional option used to override the defaults of a Pass in AddPass.
type PassOption func(*Pass)

// WithDepthTest sets the depth test mode of the pass instead of the pass type default.
//
// Parameters:
//   - d: the depth test mode
//
// Returns:
//   - PassOption: a function that sets the depth test mode of the pass
func WithDepthTest(d DepthTest) PassOption {
	return func(p *Pass) {
		p.DepthTest = d
	}
}

// WithBlending sets the blending mode of the pass instead of the pass type default.
//
// Parameters:
//   - b: the blending mode
//
// Returns:
//   - PassOption: a function that sets the blending mode of the pass
func WithBlending(b Blending) PassOption {
	return func(p *Pass) {
		p.Blending = b
	}
}

// WithParameters attaches a parameter set applied once at the start of the pass.
// Without this option the pass gets an empty set.
//
// Parameters:
//   - params: the pass parameters, never nil
//
// Returns:
//   - PassOption: a function that sets the pass parameters
func WithParameters(params parameters.Parameters) PassOption {
	return func(p *Pass) {
		p.Parameters = params
	}
}
