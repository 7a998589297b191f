package camera

import (
	"github.com/Carmen-Shannon/oxy-glow/common"
)

type cameraImpl struct {
	position common.Vec3
	target   common.Vec3
	up       common.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix       common.Mat4
	projectionMatrix common.Mat4
}

// Camera defines the interface for a perspective camera.
// The camera holds perspective settings and a look-at pose and keeps the
// view and projection matrices current after every change, ready to hand to
// a pipeline's SetCamera.
type Camera interface {
	// Position returns the world-space position of the camera.
	//
	// Returns:
	//   - common.Vec3: the camera position
	Position() common.Vec3

	// Target returns the world-space point the camera looks at.
	//
	// Returns:
	//   - common.Vec3: the look-at target
	Target() common.Vec3

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - common.Vec3: up vector components
	Up() common.Vec3

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current 4x4 view matrix (column-major).
	//
	// Returns:
	//   - common.Mat4: the view matrix
	ViewMatrix() common.Mat4

	// ProjectionMatrix returns the current 4x4 projection matrix (column-major).
	//
	// Returns:
	//   - common.Mat4: the projection matrix
	ProjectionMatrix() common.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - common.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() common.Mat4

	// SetPosition moves the camera and recomputes the view matrix.
	//
	// Parameters:
	//   - p: the new camera position
	SetPosition(p common.Vec3)

	// SetTarget changes the look-at target and recomputes the view matrix.
	//
	// Parameters:
	//   - t: the new target
	SetTarget(t common.Vec3)

	// SetAspect changes the aspect ratio and recomputes the projection matrix.
	//
	// Parameters:
	//   - aspect: the new aspect ratio
	SetAspect(aspect float32)

	// SetFov changes the vertical field of view and recomputes the projection matrix.
	//
	// Parameters:
	//   - fov: the new field of view in radians
	SetFov(fov float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with the given options applied.
// Defaults: position (0,0,5) looking at the origin, up +Y, 60° field of view,
// aspect 16:9, near 0.1, far 1000.
//
// Parameters:
//   - options: variadic list of CameraBuilderOption functions
//
// Returns:
//   - Camera: the configured camera with matrices computed
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		position: common.Vec3{0, 0, 5},
		up:       common.Vec3{0, 1, 0},
		fov:      1.0471976, // 60° in radians
		aspect:   16.0 / 9.0,
		near:     0.1,
		far:      1000.0,
	}
	for _, opt := range options {
		opt(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() common.Vec3 {
	return c.position
}

func (c *cameraImpl) Target() common.Vec3 {
	return c.target
}

func (c *cameraImpl) Up() common.Vec3 {
	return c.up
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) ViewMatrix() common.Mat4 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() common.Mat4 {
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() common.Mat4 {
	return common.Mul4(c.projectionMatrix, c.viewMatrix)
}

func (c *cameraImpl) SetPosition(p common.Vec3) {
	c.position = p
	c.updateMatrices()
}

func (c *cameraImpl) SetTarget(t common.Vec3) {
	c.target = t
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.fov = fov
	c.updateMatrices()
}

// updateMatrices recalculates the view and projection matrices.
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = common.LookAt(c.position, c.target, c.up)
	c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.near, c.far)
}
