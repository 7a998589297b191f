// Package recorder provides an in-memory graphics device that records every
// driver call as a typed Command instead of talking to a GPU.
//
// The recorded log makes the exact call sequence of a frame inspectable: tests
// assert on it, and tools print it as a frame trace. Failures can be injected
// per command kind to exercise driver error handling.
package recorder

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
	"github.com/cogentcore/webgpu/wgpu"
)

// Device is a recording driver.Device. Shaders, meshes and textures created
// from it append to the same command log.
type Device struct {
	log      []Command
	failures map[CommandKind]error
	buffers  int
	state    *stateController
}

var _ driver.Device = &Device{}

// NewDevice creates an empty recording device.
//
// Returns:
//   - *Device: a device with an empty command log
func NewDevice() *Device {
	d := &Device{
		failures: make(map[CommandKind]error),
	}
	d.state = &stateController{device: d}
	return d
}

// record appends c to the log and returns the failure injected for its kind, if any.
// Failing commands are still recorded.
func (d *Device) record(c Command) error {
	d.log = append(d.log, c)
	return d.failures[c.Kind]
}

// FailOn makes every subsequent command of the given kind return err.
// Passing a nil err removes the injected failure.
//
// Parameters:
//   - kind: the command kind to fail
//   - err: the error to return
func (d *Device) FailOn(kind CommandKind, err error) {
	if err == nil {
		delete(d.failures, kind)
		return
	}
	d.failures[kind] = err
}

// Commands returns a copy of the recorded command log.
func (d *Device) Commands() []Command {
	out := make([]Command, len(d.log))
	copy(out, d.log)
	return out
}

// Filter returns the recorded commands of the given kinds, in log order.
//
// Parameters:
//   - kinds: the command kinds to keep
//
// Returns:
//   - []Command: the matching commands
func (d *Device) Filter(kinds ...CommandKind) []Command {
	var out []Command
	for _, c := range d.log {
		for _, k := range kinds {
			if c.Kind == k {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Count returns the number of recorded commands of the given kind.
func (d *Device) Count(kind CommandKind) int {
	n := 0
	for _, c := range d.log {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Draws returns the number of recorded draw calls.
func (d *Device) Draws() int {
	return d.Count(CmdDraw)
}

// Reset clears the command log. Injected failures are kept.
func (d *Device) Reset() {
	d.log = d.log[:0]
}

// NewShader creates a recording shader.
//
// Parameters:
//   - name: the name recorded as the Target of the shader's commands
//   - opts: variadic list of ShaderOption functions
//
// Returns:
//   - *Shader: a compiled recording shader unless configured otherwise
func (d *Device) NewShader(name string, opts ...ShaderOption) *Shader {
	s := &Shader{device: d, name: name, compiled: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewMesh creates a recording mesh that can be drawn without uploading data.
//
// Parameters:
//   - name: the name recorded as the Target of the mesh's commands
//
// Returns:
//   - *Mesh: the recording mesh
func (d *Device) NewMesh(name string) *Mesh {
	return &Mesh{device: d, name: name}
}

// NewTexture creates a recording texture.
//
// Parameters:
//   - name: the name recorded as the Target of the texture's commands
//
// Returns:
//   - *Texture: the recording texture
func (d *Device) NewTexture(name string) *Texture {
	return &Texture{device: d, name: name}
}

// NewVertexBuffer creates a recording mesh named "vertex-buffer-N".
func (d *Device) NewVertexBuffer() (driver.VertexBuffer, error) {
	d.buffers++
	return d.NewMesh(fmt.Sprintf("vertex-buffer-%d", d.buffers)), nil
}

// State returns the recording state controller.
func (d *Device) State() driver.StateController {
	return d.state
}

// stateController records depth and blend state changes on its device.
type stateController struct {
	device *Device
}

func (s *stateController) DisableDepthTest() error {
	return s.device.record(Command{Kind: CmdDisableDepthTest})
}

func (s *stateController) EnableDepthTest(compare wgpu.CompareFunction, write bool) error {
	return s.device.record(Command{Kind: CmdEnableDepthTest, DepthCompare: compare, DepthWrite: write})
}

func (s *stateController) DisableBlend() error {
	return s.device.record(Command{Kind: CmdDisableBlend})
}

func (s *stateController) EnableBlend(src, dst wgpu.BlendFactor) error {
	return s.device.record(Command{Kind: CmdEnableBlend, SrcFactor: src, DstFactor: dst})
}
