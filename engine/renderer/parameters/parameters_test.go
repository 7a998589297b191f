package parameters_test

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-glow/common"
	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/parameters"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	dev := recorder.NewDevice()
	tex := dev.NewTexture("albedo")

	tests := []struct {
		name  string
		value parameters.Value
	}{
		{"bool", parameters.Bool(true)},
		{"int", parameters.Int(-7)},
		{"uint", parameters.Uint(7)},
		{"float", parameters.Float(0.5)},
		{"ivec2", parameters.IVec2{1, -2}},
		{"ivec3", parameters.IVec3{1, -2, 3}},
		{"ivec4", parameters.IVec4{1, -2, 3, -4}},
		{"uvec2", parameters.UVec2{1, 2}},
		{"uvec3", parameters.UVec3{1, 2, 3}},
		{"uvec4", parameters.UVec4{1, 2, 3, 4}},
		{"vec2", parameters.Vec2{0.1, 0.2}},
		{"vec3", parameters.Vec3{0.1, 0.2, 0.3}},
		{"vec4", parameters.Vec4{0.1, 0.2, 0.3, 0.4}},
		{"mat2", parameters.Mat2{1, 0, 0, 1}},
		{"mat3", parameters.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}},
		{"mat4", parameters.Mat4(common.Identity4())},
		{"texture", parameters.TextureOf(tex)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parameters.New()
			assert.False(t, p.Has(tt.name))

			p.Set(tt.name, tt.value)

			assert.True(t, p.Has(tt.name))
			assert.Equal(t, tt.value, p.Get(tt.name))
			assert.False(t, p.Has("unset"))
		})
	}
}

func TestSetOverwrites(t *testing.T) {
	p := parameters.New(parameters.WithValue("glow_Roughness", parameters.Float(1)))
	p.Set("glow_Roughness", parameters.Float(0.25))

	assert.Equal(t, 1, p.Len())
	assert.Equal(t, parameters.Float(0.25), p.Get("glow_Roughness"))
}

func TestNewFromMapping(t *testing.T) {
	p := parameters.New(parameters.WithValues(map[string]parameters.Value{
		"b": parameters.Int(2),
		"a": parameters.Int(1),
		"c": parameters.Int(3),
	}))

	assert.Equal(t, []string{"a", "b", "c"}, p.Names())
	v, ok := p.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, parameters.Int(2), v)
	_, ok = p.Lookup("missing")
	assert.False(t, ok)
}

func TestGetMissingPanics(t *testing.T) {
	p := parameters.New()
	assert.Panics(t, func() { p.Get("glow_Missing") })
}

func TestApplyDispatchesUniforms(t *testing.T) {
	dev := recorder.NewDevice()
	shader := dev.NewShader("lit")
	p := parameters.New(
		parameters.WithValue("glow_Metallic", parameters.Float(0.5)),
		parameters.WithValue("glow_BaseColor", parameters.Vec4{1, 0, 0, 1}),
		parameters.WithValue("glow_Enabled", parameters.Bool(true)),
	)

	require.NoError(t, parameters.Apply(shader, p))

	cmds := dev.Filter(recorder.CmdSetUniform)
	require.Len(t, cmds, 3)
	// applied in ascending name order
	assert.Equal(t, "glow_BaseColor", cmds[0].Name)
	assert.Equal(t, common.Vec4{1, 0, 0, 1}, cmds[0].Value)
	assert.Equal(t, "glow_Enabled", cmds[1].Name)
	assert.Equal(t, true, cmds[1].Value)
	assert.Equal(t, "glow_Metallic", cmds[2].Name)
	assert.Equal(t, float32(0.5), cmds[2].Value)
}

func TestApplyBindsTexturesToStableSlots(t *testing.T) {
	dev := recorder.NewDevice()
	shader := dev.NewShader("lit")
	diffuse := dev.NewTexture("diffuse")
	normal := dev.NewTexture("normal")
	p := parameters.New(
		parameters.WithValue("glow_DiffuseMap", parameters.TextureOf(diffuse)),
		parameters.WithValue("glow_NormalMap", parameters.TextureOf(normal)),
	)

	require.NoError(t, parameters.Apply(shader, p))
	require.NoError(t, parameters.Apply(shader, p))

	binds := dev.Filter(recorder.CmdBindTexture)
	require.Len(t, binds, 4)
	assert.Equal(t, uint32(0), binds[0].Slot)
	assert.Equal(t, uint32(1), binds[1].Slot)
	assert.Equal(t, binds[0].Slot, binds[2].Slot)
	assert.Equal(t, binds[1].Slot, binds[3].Slot)

	slots := dev.Filter(recorder.CmdTextureSlot)
	require.Len(t, slots, 4)
	assert.Equal(t, "diffuse", slots[0].Target)
	assert.Equal(t, "normal", slots[1].Target)
	assert.Zero(t, dev.Count(recorder.CmdSetUniform))
}

func TestApplyNullTexturePanics(t *testing.T) {
	dev := recorder.NewDevice()
	shader := dev.NewShader("lit")
	p := parameters.New(parameters.WithValue("glow_DiffuseMap", parameters.Texture{}))

	defer func() {
		r := recover()
		require.NotNil(t, r, "applying a nil texture must panic")
		err, ok := r.(error)
		require.True(t, ok)
		var pe *driver.PreconditionError
		assert.ErrorAs(t, err, &pe)
		assert.ErrorIs(t, err, driver.ErrNullTexture)
		assert.Zero(t, dev.Count(recorder.CmdBindTexture))
	}()
	_ = parameters.Apply(shader, p)
}

func TestApplyTypedNilTexturePanics(t *testing.T) {
	tests := []struct {
		name  string
		value parameters.Texture
	}{
		{"wrapped", parameters.TextureOf((*recorder.Texture)(nil))},
		{"literal", parameters.Texture{Ref: (*recorder.Texture)(nil)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := recorder.NewDevice()
			p := parameters.New(parameters.WithValue("glow_DiffuseMap", tt.value))

			err := recoverPrecondition(t, func() { _ = parameters.Apply(dev.NewShader("lit"), p) })

			assert.ErrorIs(t, err, driver.ErrNullTexture)
			assert.Zero(t, dev.Count(recorder.CmdBindTexture))
			assert.Zero(t, dev.Count(recorder.CmdTextureSlot))
		})
	}
}

func TestTextureOfTypedNil(t *testing.T) {
	assert.Equal(t, parameters.Texture{}, parameters.TextureOf((*recorder.Texture)(nil)))
}

// foreignValue satisfies Value through embedding without being one of the known variants.
type foreignValue struct {
	parameters.Float
}

func TestApplyUnknownValuePanics(t *testing.T) {
	dev := recorder.NewDevice()
	p := parameters.New(parameters.WithValue("glow_Foreign", foreignValue{}))

	err := recoverPrecondition(t, func() { _ = parameters.Apply(dev.NewShader("lit"), p) })

	assert.Contains(t, err.Error(), "glow_Foreign")
	assert.Zero(t, dev.Count(recorder.CmdSetUniform))
}

func recoverPrecondition(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		pe, ok := r.(*driver.PreconditionError)
		require.True(t, ok, "panic value %v is not a *driver.PreconditionError", r)
		err = pe
	}()
	fn()
	return nil
}

func TestNamesCacheTracksInserts(t *testing.T) {
	p := parameters.New(parameters.WithValue("b", parameters.Int(2)))
	assert.Equal(t, []string{"b"}, p.Names())

	p.Set("a", parameters.Int(1))
	p.Set("b", parameters.Int(3))
	names := p.Names()
	assert.Equal(t, []string{"a", "b"}, names)

	names[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, p.Names(), "Names returns a copy")

	dev := recorder.NewDevice()
	require.NoError(t, parameters.Apply(dev.NewShader("s"), p))
	p.Set("c", parameters.Int(4))
	require.NoError(t, parameters.Apply(dev.NewShader("s"), p))
	assert.Equal(t, 5, dev.Count(recorder.CmdSetUniform))
}

func TestApplyWrapsDriverErrors(t *testing.T) {
	dev := recorder.NewDevice()
	shader := dev.NewShader("lit")
	boom := errors.New("GL_INVALID_OPERATION")
	dev.FailOn(recorder.CmdSetUniform, boom)

	err := parameters.Apply(shader, parameters.New(parameters.WithValue("glow_Metallic", parameters.Float(1))))

	var de *driver.DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "set uniform glow_Metallic", de.Op)
	assert.ErrorIs(t, err, boom)
}

func TestApplyEmptySetIsNoop(t *testing.T) {
	dev := recorder.NewDevice()
	require.NoError(t, parameters.Apply(dev.NewShader("s"), parameters.New()))
	assert.Empty(t, dev.Commands())
}

func TestSharedSetIsVisibleToAllHolders(t *testing.T) {
	shared := parameters.New()
	holderA, holderB := shared, shared

	holderA.Set("glow_Metallic", parameters.Float(1))

	assert.True(t, holderB.Has("glow_Metallic"))
}
