// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain value types that express
// the vector and matrix shapes a shader uniform can take.
package common

// Vec2 is a 2-component float vector.
type Vec2 [2]float32

// Vec3 is a 3-component float vector.
type Vec3 [3]float32

// Vec4 is a 4-component float vector.
type Vec4 [4]float32

// IVec2 is a 2-component signed integer vector.
type IVec2 [2]int32

// IVec3 is a 3-component signed integer vector.
type IVec3 [3]int32

// IVec4 is a 4-component signed integer vector.
type IVec4 [4]int32

// UVec2 is a 2-component unsigned integer vector.
type UVec2 [2]uint32

// UVec3 is a 3-component unsigned integer vector.
type UVec3 [3]uint32

// UVec4 is a 4-component unsigned integer vector.
type UVec4 [4]uint32

// Mat2 is a 2x2 float matrix stored in column-major order.
type Mat2 [4]float32

// Mat3 is a 3x3 float matrix stored in column-major order.
type Mat3 [9]float32

// Mat4 is a 4x4 float matrix stored in column-major order (OpenGL/WebGPU convention).
type Mat4 [16]float32
