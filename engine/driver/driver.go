// Package driver declares the graphics-driver collaborators consumed by the render pipeline.
//
// Shader compilation, buffer upload, texture storage and the raw depth/blend
// state calls live behind these interfaces. The pipeline only sequences calls
// against them; a backend (the recorder, a GL binding, a webgpu state tracker)
// supplies the behavior.
package driver

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Shader output and attribute names shared by the pipeline and every shader it drives.
const (
	// OutputFragColor is the fragment output bound to channel 0 before each pass.
	OutputFragColor = "glow_FragColor"
	// UniformProjectionMatrix receives the camera projection matrix.
	UniformProjectionMatrix = "glow_ProjectionMatrix"
	// UniformViewMatrix receives the camera view matrix.
	UniformViewMatrix = "glow_ViewMatrix"
	// UniformModelMatrix receives the transform of the geometry being drawn.
	UniformModelMatrix = "glow_ModelMatrix"

	// AttributeVertex is the vertex position attribute.
	AttributeVertex = "glow_Vertex"
	// AttributeTexCoord is the texture coordinate attribute.
	AttributeTexCoord = "glow_TexCoord"
)

// FacesType identifies the primitive topology of an uploaded index set.
type FacesType int

const (
	// FacesPoints draws every index as a point.
	FacesPoints FacesType = iota

	// FacesLines draws every pair of indexes as a line.
	FacesLines

	// FacesLineStrip draws a connected line through all indexes.
	FacesLineStrip

	// FacesLineLoop draws a connected line through all indexes and closes it.
	FacesLineLoop

	// FacesTriangles draws every three indexes as a triangle.
	FacesTriangles

	// FacesTriangleStrip draws a strip where each new index forms a triangle with the previous two.
	FacesTriangleStrip

	// FacesTriangleFan draws a fan where each new index forms a triangle with the first and previous index.
	FacesTriangleFan
)

// String returns the topology name.
func (f FacesType) String() string {
	switch f {
	case FacesPoints:
		return "points"
	case FacesLines:
		return "lines"
	case FacesLineStrip:
		return "line-strip"
	case FacesLineLoop:
		return "line-loop"
	case FacesTriangles:
		return "triangles"
	case FacesTriangleStrip:
		return "triangle-strip"
	case FacesTriangleFan:
		return "triangle-fan"
	default:
		return "unknown"
	}
}

// Texture is a GPU texture that can be bound to a texture slot.
type Texture interface {
	// Bind attaches the texture to the given texture slot.
	//
	// Parameters:
	//   - slot: the texture unit to bind to
	//
	// Returns:
	//   - error: a driver error, if the binding failed
	Bind(slot uint32) error
}

// Shader is a compiled shader program.
//
// SetUniform receives the payload of a parameter value: bool, int32, uint32,
// float32, one of the common vector types or one of the common matrix types.
// BindTexture assigns the texture a slot that is stable per uniform name; the
// first name seen gets the lowest free slot.
type Shader interface {
	// Bind makes this shader the current program.
	Bind() error

	// Unbind releases the current program.
	Unbind() error

	// SetUniform sets a scalar, vector or matrix uniform on the bound program.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the uniform payload
	//
	// Returns:
	//   - error: a driver error, if the uniform could not be set
	SetUniform(name string, value any) error

	// BindTexture binds the texture to the slot assigned to the named sampler uniform.
	//
	// Parameters:
	//   - name: the sampler uniform name
	//   - texture: the texture to bind, never nil
	//
	// Returns:
	//   - error: a driver error, if the binding failed
	BindTexture(name string, texture Texture) error

	// BindOutput binds a fragment output variable to a color channel.
	BindOutput(name string, channel uint32) error

	// Compiled reports whether the program was successfully compiled and linked.
	Compiled() bool
}

// Mesh is uploaded geometry that can be drawn with a shader.
type Mesh interface {
	// Bind resolves the vertex attribute locations against the shader.
	Bind(shader Shader) error

	// Draw issues the draw call for one index subset; subset 0 is the first uploaded index set.
	Draw(subset uint32) error
}

// VertexBuffer is a Mesh whose vertex and index data is uploaded by the caller.
type VertexBuffer interface {
	Mesh

	// UploadValues uploads one vertex attribute stream.
	//
	// Parameters:
	//   - attribute: the attribute name the shader reads the stream from
	//   - components: number of float components per vertex (1-4)
	//   - data: tightly packed attribute data, len(data) must be a multiple of components
	//
	// Returns:
	//   - error: a driver error, if the upload failed
	UploadValues(attribute string, components int, data []float32) error

	// UploadIndexes uploads one index set; each call adds a drawable subset.
	UploadIndexes(faces FacesType, data []uint32) error
}

// StateController applies the fixed-function depth and blend state of the current context.
type StateController interface {
	// DisableDepthTest turns depth testing off.
	DisableDepthTest() error

	// EnableDepthTest turns depth testing on with the given comparison.
	//
	// Parameters:
	//   - compare: the depth comparison function
	//   - write: whether passing fragments write depth
	//
	// Returns:
	//   - error: a driver error, if the state change failed
	EnableDepthTest(compare wgpu.CompareFunction, write bool) error

	// DisableBlend turns color blending off.
	DisableBlend() error

	// EnableBlend turns color blending on with the given factors and additive combination.
	EnableBlend(src, dst wgpu.BlendFactor) error
}

// Device is a graphics context able to create vertex buffers and change render state.
type Device interface {
	// NewVertexBuffer creates an empty vertex buffer.
	NewVertexBuffer() (VertexBuffer, error)

	// State returns the state controller of the context.
	State() StateController
}
