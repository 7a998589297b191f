package material

import (
	"github.com/Carmen-Shannon/oxy-glow/common"
	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/parameters"
)

// Uniform names written by Material.Parameters.
const (
	UniformBaseColor               = "glow_BaseColor"
	UniformMetallic                = "glow_Metallic"
	UniformRoughness               = "glow_Roughness"
	UniformDiffuseMap              = "glow_DiffuseMap"
	UniformNormalMap               = "glow_NormalMap"
	UniformMetallicRoughnessMap    = "glow_MetallicRoughnessMap"
	UniformHasDiffuseMap           = "glow_HasDiffuseMap"
	UniformHasNormalMap            = "glow_HasNormalMap"
	UniformHasMetallicRoughnessMap = "glow_HasMetallicRoughnessMap"
)

// material is the implementation of the Material interface.
type material struct {
	name                     string
	baseColor                common.Vec4
	metallic                 float32
	roughness                float32
	diffuseTexture           driver.Texture
	normalTexture            driver.Texture
	metallicRoughnessTexture driver.Texture
}

// Material defines the interface for a surface material, encapsulating surface
// properties and texture references. A material reaches the pipeline as the
// parameter set returned by Parameters, attached to geometry entries.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the albedo/diffuse RGBA color of the material.
	//
	// Returns:
	//   - common.Vec4: the base color as RGBA values
	BaseColor() common.Vec4

	// Metallic retrieves the metallic factor of the material.
	// A value of 0.0 represents a dielectric surface, 1.0 represents a fully metallic surface.
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// Roughness retrieves the roughness factor of the material.
	// A value of 0.0 represents a perfectly smooth surface, 1.0 represents a fully rough surface.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// DiffuseTexture retrieves the diffuse/albedo texture, or nil if none is set.
	DiffuseTexture() driver.Texture

	// NormalTexture retrieves the normal map texture, or nil if none is set.
	NormalTexture() driver.Texture

	// MetallicRoughnessTexture retrieves the metallic-roughness texture, or nil if none is set.
	MetallicRoughnessTexture() driver.Texture

	// Parameters builds the parameter set describing this material. Texture
	// entries are only present for textures that are set; a boolean flag per
	// map tells the shader which ones are.
	//
	// Returns:
	//   - parameters.Parameters: the material parameters
	Parameters() parameters.Parameters
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		baseColor: common.Vec4{1, 1, 1, 1},
		metallic:  0.0,
		roughness: 1.0,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColor() common.Vec4 {
	return m.baseColor
}

func (m *material) Metallic() float32 {
	return m.metallic
}

func (m *material) Roughness() float32 {
	return m.roughness
}

func (m *material) DiffuseTexture() driver.Texture {
	return m.diffuseTexture
}

func (m *material) NormalTexture() driver.Texture {
	return m.normalTexture
}

func (m *material) MetallicRoughnessTexture() driver.Texture {
	return m.metallicRoughnessTexture
}

func (m *material) Parameters() parameters.Parameters {
	p := parameters.New(
		parameters.WithValue(UniformBaseColor, parameters.Vec4(m.baseColor)),
		parameters.WithValue(UniformMetallic, parameters.Float(m.metallic)),
		parameters.WithValue(UniformRoughness, parameters.Float(m.roughness)),
	)
	setTexture(p, UniformDiffuseMap, UniformHasDiffuseMap, m.diffuseTexture)
	setTexture(p, UniformNormalMap, UniformHasNormalMap, m.normalTexture)
	setTexture(p, UniformMetallicRoughnessMap, UniformHasMetallicRoughnessMap, m.metallicRoughnessTexture)
	return p
}

func setTexture(p parameters.Parameters, name, flag string, t driver.Texture) {
	present := !driver.IsNil(t)
	p.Set(flag, parameters.Bool(present))
	if present {
		p.Set(name, parameters.TextureOf(t))
	}
}
