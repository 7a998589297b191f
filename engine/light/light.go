package light

import (
	"github.com/Carmen-Shannon/oxy-glow/common"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/parameters"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun or moon. Affects all fragments
	// uniformly with no distance attenuation.
	LightTypeDirectional LightType = iota

	// LightTypePoint represents a light that emits in all directions from a position.
	// Attenuates with distance up to a configurable range.
	LightTypePoint

	// LightTypeSpot represents a light that emits in a cone from a position along a direction.
	// Attenuates with both distance and angle from the cone axis, controlled by inner and outer cone angles.
	LightTypeSpot
)

// Uniform names written by Light.Parameters.
const (
	UniformType      = "glow_LightType"
	UniformPosition  = "glow_LightPosition"
	UniformDirection = "glow_LightDirection"
	UniformColor     = "glow_LightColor"
	UniformIntensity = "glow_LightIntensity"
	UniformRange     = "glow_LightRange"
	UniformInnerCone = "glow_LightInnerCone"
	UniformOuterCone = "glow_LightOuterCone"
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType  LightType
	position   common.Vec3
	direction  common.Vec3
	color      common.Vec3
	intensity  float32
	lightRange float32
	innerCone  float32 // stored as cos(angle in radians)
	outerCone  float32 // stored as cos(angle in radians)
}

// Light defines the interface for a light source.
//
// All light types (directional, point, spot) share this interface; type-specific
// properties (e.g. cone angles for spot lights) are still stored but ignored by
// shaders for the other types. A light reaches the pipeline as the parameter set
// returned by Parameters, registered with AddLight.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (directional, point, or spot)
	Type() LightType

	// Position returns the world-space position of the light.
	// Meaningless for directional lights.
	//
	// Returns:
	//   - common.Vec3: position as (x, y, z)
	Position() common.Vec3

	// Direction returns the normalized direction of the light.
	// For directional lights this is the light direction. For spot lights this
	// is the cone axis. Meaningless for point lights.
	//
	// Returns:
	//   - common.Vec3: normalized direction as (x, y, z)
	Direction() common.Vec3

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - common.Vec3: color as (r, g, b)
	Color() common.Vec3

	// Intensity returns the scalar intensity multiplier for the light.
	Intensity() float32

	// Range returns the maximum attenuation distance for point and spot lights.
	Range() float32

	// InnerCone returns the cosine of the inner cone half-angle for spot lights.
	InnerCone() float32

	// OuterCone returns the cosine of the outer cone half-angle for spot lights.
	OuterCone() float32

	// SetPosition sets the world-space position of the light.
	SetPosition(x, y, z float32)

	// SetDirection sets the direction of the light. The direction is normalized before storing.
	SetDirection(x, y, z float32)

	// SetColor sets the RGB color of the light.
	SetColor(r, g, b float32)

	// SetIntensity sets the scalar intensity multiplier.
	SetIntensity(intensity float32)

	// Parameters returns a new parameter set describing the light, ready for Pipeline.AddLight.
	//
	// Returns:
	//   - parameters.Parameters: the light parameters
	Parameters() parameters.Parameters

	// WriteParameters stores the light description into an existing parameter set,
	// so a set already registered with a pipeline picks up the change on the next frame.
	//
	// Parameters:
	//   - p: the parameter set to update
	WriteParameters(p parameters.Parameters)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create (directional, point, or spot)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType:  lightType,
		position:   common.Vec3{0, 0, 0},
		direction:  common.Vec3{0, -1, 0},
		color:      common.Vec3{1, 1, 1},
		intensity:  1.0,
		lightRange: 10.0,
		innerCone:  0.9063, // cos(25°)
		outerCone:  0.8192, // cos(35°)
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() common.Vec3 {
	return l.position
}

func (l *lightImpl) Direction() common.Vec3 {
	return l.direction
}

func (l *lightImpl) Color() common.Vec3 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Range() float32 {
	return l.lightRange
}

func (l *lightImpl) InnerCone() float32 {
	return l.innerCone
}

func (l *lightImpl) OuterCone() float32 {
	return l.outerCone
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = common.Vec3{x, y, z}
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	l.direction = common.Normalize3(common.Vec3{x, y, z})
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = common.Vec3{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) Parameters() parameters.Parameters {
	p := parameters.New()
	l.WriteParameters(p)
	return p
}

func (l *lightImpl) WriteParameters(p parameters.Parameters) {
	p.Set(UniformType, parameters.Int(l.lightType))
	p.Set(UniformPosition, parameters.Vec3(l.position))
	p.Set(UniformDirection, parameters.Vec3(l.direction))
	p.Set(UniformColor, parameters.Vec3(l.color))
	p.Set(UniformIntensity, parameters.Float(l.intensity))
	p.Set(UniformRange, parameters.Float(l.lightRange))
	p.Set(UniformInnerCone, parameters.Float(l.innerCone))
	p.Set(UniformOuterCone, parameters.Float(l.outerCone))
}
