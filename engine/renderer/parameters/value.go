package parameters

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-glow/common"
	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
)

// Value is a typed shader input. The set of variants is closed: only the types
// declared in this file implement Value, and Apply handles every one of them.
type Value interface {
	isValue()
}

type (
	// Bool is a boolean uniform.
	Bool bool
	// Int is a signed integer uniform.
	Int int32
	// Uint is an unsigned integer uniform.
	Uint uint32
	// Float is a float uniform.
	Float float32

	// IVec2 is a 2-component signed integer vector uniform.
	IVec2 common.IVec2
	// IVec3 is a 3-component signed integer vector uniform.
	IVec3 common.IVec3
	// IVec4 is a 4-component signed integer vector uniform.
	IVec4 common.IVec4

	// UVec2 is a 2-component unsigned integer vector uniform.
	UVec2 common.UVec2
	// UVec3 is a 3-component unsigned integer vector uniform.
	UVec3 common.UVec3
	// UVec4 is a 4-component unsigned integer vector uniform.
	UVec4 common.UVec4

	// Vec2 is a 2-component float vector uniform.
	Vec2 common.Vec2
	// Vec3 is a 3-component float vector uniform.
	Vec3 common.Vec3
	// Vec4 is a 4-component float vector uniform.
	Vec4 common.Vec4

	// Mat2 is a 2x2 float matrix uniform.
	Mat2 common.Mat2
	// Mat3 is a 3x3 float matrix uniform.
	Mat3 common.Mat3
	// Mat4 is a 4x4 float matrix uniform.
	Mat4 common.Mat4
)

// Texture is a shared reference to a texture bound to a sampler uniform.
// A Texture whose Ref is nil can be stored but not applied.
type Texture struct {
	Ref driver.Texture
}

// TextureOf wraps a texture reference as a Value.
func TextureOf(t driver.Texture) Texture {
	if driver.IsNil(t) {
		return Texture{}
	}
	return Texture{Ref: t}
}

func (Bool) isValue()    {}
func (Int) isValue()     {}
func (Uint) isValue()    {}
func (Float) isValue()   {}
func (IVec2) isValue()   {}
func (IVec3) isValue()   {}
func (IVec4) isValue()   {}
func (UVec2) isValue()   {}
func (UVec3) isValue()   {}
func (UVec4) isValue()   {}
func (Vec2) isValue()    {}
func (Vec3) isValue()    {}
func (Vec4) isValue()    {}
func (Mat2) isValue()    {}
func (Mat3) isValue()    {}
func (Mat4) isValue()    {}
func (Texture) isValue() {}

// uniform converts a non-texture value into the payload handed to driver.Shader.SetUniform.
func uniform(v Value) any {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Int:
		return int32(v)
	case Uint:
		return uint32(v)
	case Float:
		return float32(v)
	case IVec2:
		return common.IVec2(v)
	case IVec3:
		return common.IVec3(v)
	case IVec4:
		return common.IVec4(v)
	case UVec2:
		return common.UVec2(v)
	case UVec3:
		return common.UVec3(v)
	case UVec4:
		return common.UVec4(v)
	case Vec2:
		return common.Vec2(v)
	case Vec3:
		return common.Vec3(v)
	case Vec4:
		return common.Vec4(v)
	case Mat2:
		return common.Mat2(v)
	case Mat3:
		return common.Mat3(v)
	case Mat4:
		return common.Mat4(v)
	default:
		panic(&driver.PreconditionError{Msg: fmt.Sprintf("parameters: no uniform payload for %T", v)})
	}
}
