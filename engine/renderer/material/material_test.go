package material_test

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-glow/common"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/parameters"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := material.NewMaterial()

	assert.Equal(t, common.Vec4{1, 1, 1, 1}, m.BaseColor())
	assert.Zero(t, m.Metallic())
	assert.Equal(t, float32(1), m.Roughness())
	assert.Nil(t, m.DiffuseTexture())

	p := m.Parameters()
	assert.Equal(t, parameters.Bool(false), p.Get(material.UniformHasDiffuseMap))
	assert.False(t, p.Has(material.UniformDiffuseMap), "absent maps are never bound")
	assert.Equal(t, 6, p.Len())
}

func TestMaterialParametersWithTextures(t *testing.T) {
	dev := recorder.NewDevice()
	diffuse, normal := dev.NewTexture("bricks"), dev.NewTexture("bricks-normal")
	m := material.NewMaterial(
		material.WithName("bricks"),
		material.WithBaseColor(common.Vec4{0.8, 0.3, 0.2, 1}),
		material.WithMetallic(0.1),
		material.WithRoughness(0.7),
		material.WithDiffuseTexture(diffuse),
		material.WithNormalTexture(normal),
	)

	p := m.Parameters()

	assert.Equal(t, "bricks", m.Name())
	assert.Equal(t, parameters.Vec4{0.8, 0.3, 0.2, 1}, p.Get(material.UniformBaseColor))
	assert.Equal(t, parameters.Float(0.1), p.Get(material.UniformMetallic))
	assert.Equal(t, parameters.TextureOf(diffuse), p.Get(material.UniformDiffuseMap))
	assert.Equal(t, parameters.Bool(true), p.Get(material.UniformHasNormalMap))
	assert.Equal(t, parameters.Bool(false), p.Get(material.UniformHasMetallicRoughnessMap))

	shader := dev.NewShader("pbr")
	require.NoError(t, parameters.Apply(shader, p))
	assert.Equal(t, 2, dev.Count(recorder.CmdBindTexture))
	assert.Equal(t, 2, dev.Count(recorder.CmdTextureSlot))
}

func TestMaterialMetallicRoughnessTexture(t *testing.T) {
	dev := recorder.NewDevice()
	tex := dev.NewTexture("orm")

	m := material.NewMaterial(material.WithMetallicRoughnessTexture(tex))

	assert.Same(t, tex, m.MetallicRoughnessTexture())
	assert.True(t, m.Parameters().Has(material.UniformMetallicRoughnessMap))
}

func TestMaterialTypedNilTextureIsAbsent(t *testing.T) {
	var missing *recorder.Texture
	m := material.NewMaterial(material.WithNormalTexture(missing))

	p := m.Parameters()

	assert.Equal(t, parameters.Bool(false), p.Get(material.UniformHasNormalMap))
	assert.False(t, p.Has(material.UniformNormalMap))
}
