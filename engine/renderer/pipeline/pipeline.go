package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/Carmen-Shannon/oxy-glow/common"
	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/parameters"
)

// geometry is a drawable entry of the geometry registry.
type geometry struct {
	transform  common.Mat4
	mesh       driver.Mesh
	parameters parameters.Parameters
}

// light is an entry of the light registry.
type light struct {
	parameters parameters.Parameters
}

// FrameStats summarizes the work issued by the last Execute call.
type FrameStats struct {
	// Passes is the number of passes that completed.
	Passes int
	// Draws is the number of draw calls issued.
	Draws int
}

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	device driver.Device
	logger *slog.Logger

	passes []Pass

	projectionMatrix common.Mat4
	viewMatrix       common.Mat4

	geometries *registry[geometry]
	lights     *registry[light]

	// fullscreenQuad is uploaded once in NewPipeline and never rebuilt.
	fullscreenQuad driver.VertexBuffer

	lastStats FrameStats
}

// Pipeline composes a frame from an ordered list of passes over a set of
// geometry entries and lights.
//
// Passes are appended once and executed in insertion order on every Execute.
// Geometry entries and lights are identified by integers assigned on add;
// iteration always follows ascending identifiers.
//
// A Pipeline is not safe for concurrent use. It must be driven from the
// goroutine that owns the graphics context.
type Pipeline interface {
	// AddPass appends a pass. Depth test and blending default to the policy of
	// DefaultState(passType); parameters default to an empty set.
	//
	// A nil shader or nil parameters is a precondition violation and panics.
	//
	// Parameters:
	//   - passType: the iteration pattern of the pass
	//   - shader: the shader drawing the pass
	//   - opts: variadic list of PassOption functions overriding the defaults
	//
	// Returns:
	//   - error: a *ConfigurationError if the shader is not compiled
	AddPass(passType PassType, shader driver.Shader, opts ...PassOption) error

	// Passes returns a copy of the configured passes in execution order.
	//
	// Returns:
	//   - []Pass: the configured passes
	Passes() []Pass

	// SetCamera replaces the camera matrices used by every pass.
	//
	// Parameters:
	//   - projection: the projection matrix
	//   - view: the view matrix
	SetCamera(projection, view common.Mat4)

	// Camera returns the current camera matrices.
	//
	// Returns:
	//   - common.Mat4: the projection matrix
	//   - common.Mat4: the view matrix
	Camera() (projection, view common.Mat4)

	// AddGeometry registers a drawable entry. A nil mesh or nil parameters panics.
	//
	// Parameters:
	//   - transform: the model matrix of the entry
	//   - mesh: the mesh to draw
	//   - params: the per-entry parameters, typically a material
	//
	// Returns:
	//   - uint32: the identifier of the new entry
	AddGeometry(transform common.Mat4, mesh driver.Mesh, params parameters.Parameters) uint32

	// UpdateGeometryTransform replaces the model matrix of an entry. An unknown id panics.
	UpdateGeometryTransform(id uint32, transform common.Mat4)

	// UpdateGeometryMesh replaces the mesh of an entry. An unknown id or nil mesh panics.
	UpdateGeometryMesh(id uint32, mesh driver.Mesh)

	// UpdateGeometryParameters replaces the parameters of an entry. An unknown id or nil parameters panics.
	UpdateGeometryParameters(id uint32, params parameters.Parameters)

	// RemoveGeometry removes an entry. An unknown id panics.
	RemoveGeometry(id uint32)

	// RemoveAllGeometry removes every entry and resets identifiers so the next entry gets 1.
	RemoveAllGeometry()

	// GeometryCount returns the number of registered entries.
	GeometryCount() int

	// AddLight registers a light. Nil parameters panics.
	//
	// Parameters:
	//   - params: the light parameters
	//
	// Returns:
	//   - uint32: the identifier of the new light
	AddLight(params parameters.Parameters) uint32

	// UpdateLight replaces the parameters of a light. An unknown id or nil parameters panics.
	UpdateLight(id uint32, params parameters.Parameters)

	// RemoveLight removes a light. An unknown id panics.
	RemoveLight(id uint32)

	// RemoveAllLights removes every light and resets identifiers so the next light gets 1.
	RemoveAllLights()

	// LightCount returns the number of registered lights.
	LightCount() int

	// Execute renders one frame by running every pass in order.
	//
	// Returns:
	//   - error: a *driver.DriverError (wrapped with the failing pass) if the driver reported a failure;
	//     the rest of the frame is skipped
	Execute() error

	// LastFrameStats returns the statistics of the most recent Execute.
	LastFrameStats() FrameStats
}

var _ Pipeline = &pipeline{}

// NewPipeline is the entry point to create a new Pipeline. The full-screen quad
// is uploaded to the device here.
//
// Without WithDevice the process-wide device installed by driver.Init is used.
//
// Parameters:
//   - opts: a variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline with no passes, geometry or lights
//   - error: a *ConfigurationError if no device is available or the quad upload failed
func NewPipeline(opts ...PipelineBuilderOption) (Pipeline, error) {
	p := &pipeline{
		projectionMatrix: common.Identity4(),
		viewMatrix:       common.Identity4(),
		geometries:       newRegistry[geometry]("geometry"),
		lights:           newRegistry[light]("light"),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.device == nil {
		d, ok := driver.Current()
		if !ok {
			return nil, &ConfigurationError{Msg: "no device: call driver.Init or pass WithDevice"}
		}
		p.device = d
	}

	quad, err := uploadFullscreenQuad(p.device)
	if err != nil {
		return nil, &ConfigurationError{Msg: "full-screen quad upload failed", Err: err}
	}
	p.fullscreenQuad = quad
	return p, nil
}

func (p *pipeline) log() *slog.Logger {
	return common.Coalesce(p.logger, common.Logger())
}

func (p *pipeline) AddPass(passType PassType, shader driver.Shader, opts ...PassOption) error {
	driver.Require(!driver.IsNil(shader), "pipeline: AddPass requires a non-nil Shader")
	depthTest, blending := DefaultState(passType)
	pass := Pass{
		Type:       passType,
		Shader:     shader,
		DepthTest:  depthTest,
		Blending:   blending,
		Parameters: parameters.New(),
	}
	for _, opt := range opts {
		opt(&pass)
	}
	driver.Require(!driver.IsNil(pass.Parameters), "pipeline: AddPass requires non-nil Parameters")

	if !shader.Compiled() {
		return &ConfigurationError{Msg: fmt.Sprintf("pass %d (%s): shader is not compiled", len(p.passes), passType)}
	}

	p.passes = append(p.passes, pass)
	p.log().Debug("pass added",
		"index", len(p.passes)-1,
		"type", passType.String(),
		"depth", pass.DepthTest.String(),
		"blending", pass.Blending.String())
	return nil
}

func (p *pipeline) Passes() []Pass {
	out := make([]Pass, len(p.passes))
	copy(out, p.passes)
	return out
}

func (p *pipeline) SetCamera(projection, view common.Mat4) {
	p.projectionMatrix = projection
	p.viewMatrix = view
}

func (p *pipeline) Camera() (common.Mat4, common.Mat4) {
	return p.projectionMatrix, p.viewMatrix
}

func (p *pipeline) AddGeometry(transform common.Mat4, mesh driver.Mesh, params parameters.Parameters) uint32 {
	driver.Require(!driver.IsNil(mesh), "pipeline: AddGeometry requires a non-nil Mesh")
	driver.Require(!driver.IsNil(params), "pipeline: AddGeometry requires non-nil Parameters")
	return p.geometries.add(geometry{transform: transform, mesh: mesh, parameters: params})
}

func (p *pipeline) UpdateGeometryTransform(id uint32, transform common.Mat4) {
	p.geometries.get(id).transform = transform
}

func (p *pipeline) UpdateGeometryMesh(id uint32, mesh driver.Mesh) {
	driver.Require(!driver.IsNil(mesh), "pipeline: UpdateGeometryMesh requires a non-nil Mesh")
	p.geometries.get(id).mesh = mesh
}

func (p *pipeline) UpdateGeometryParameters(id uint32, params parameters.Parameters) {
	driver.Require(!driver.IsNil(params), "pipeline: UpdateGeometryParameters requires non-nil Parameters")
	p.geometries.get(id).parameters = params
}

func (p *pipeline) RemoveGeometry(id uint32) {
	p.geometries.remove(id)
}

func (p *pipeline) RemoveAllGeometry() {
	p.geometries.removeAll()
}

func (p *pipeline) GeometryCount() int {
	return p.geometries.len()
}

func (p *pipeline) AddLight(params parameters.Parameters) uint32 {
	driver.Require(!driver.IsNil(params), "pipeline: AddLight requires non-nil Parameters")
	return p.lights.add(light{parameters: params})
}

func (p *pipeline) UpdateLight(id uint32, params parameters.Parameters) {
	driver.Require(!driver.IsNil(params), "pipeline: UpdateLight requires non-nil Parameters")
	p.lights.get(id).parameters = params
}

func (p *pipeline) RemoveLight(id uint32) {
	p.lights.remove(id)
}

func (p *pipeline) RemoveAllLights() {
	p.lights.removeAll()
}

func (p *pipeline) LightCount() int {
	return p.lights.len()
}

func (p *pipeline) LastFrameStats() FrameStats {
	return p.lastStats
}

func (p *pipeline) Execute() error {
	// firstMultipass is true until the first multipass-blended draw group of the frame;
	// that group replaces the target, every later one accumulates on top of it.
	firstMultipass := true
	stats := FrameStats{}

	for i := range p.passes {
		pass := &p.passes[i]
		if err := p.executePass(pass, &firstMultipass, &stats); err != nil {
			p.lastStats = stats
			err = fmt.Errorf("pipeline: pass %d (%s): %w", i, pass.Type, err)
			p.log().Warn("frame aborted", "pass", i, "type", pass.Type.String(), "err", err)
			return err
		}
		stats.Passes++
	}

	p.lastStats = stats
	p.log().Debug("frame executed",
		"passes", stats.Passes,
		"draws", stats.Draws,
		"geometry", p.geometries.len(),
		"lights", p.lights.len())
	return nil
}

// executePass runs the shared pass header and dispatches the draw loops of one pass.
func (p *pipeline) executePass(pass *Pass, firstMultipass *bool, stats *FrameStats) error {
	shader := pass.Shader
	state := p.device.State()

	if err := shader.Bind(); err != nil {
		return driver.Wrap("bind shader", err)
	}
	if err := shader.BindOutput(driver.OutputFragColor, 0); err != nil {
		return driver.Wrap("bind output "+driver.OutputFragColor, err)
	}
	if err := shader.SetUniform(driver.UniformProjectionMatrix, p.projectionMatrix); err != nil {
		return driver.Wrap("set uniform "+driver.UniformProjectionMatrix, err)
	}
	if err := shader.SetUniform(driver.UniformViewMatrix, p.viewMatrix); err != nil {
		return driver.Wrap("set uniform "+driver.UniformViewMatrix, err)
	}
	if err := parameters.Apply(shader, pass.Parameters); err != nil {
		return err
	}
	if err := applyDepthTest(state, pass.DepthTest); err != nil {
		return err
	}

	switch pass.Type {
	case PassFullscreen:
		if err := applyBlending(state, pass.Blending, firstMultipass); err != nil {
			return err
		}
		return p.drawMesh(shader, p.fullscreenQuad, stats)

	case PassGeometry:
		for _, g := range p.geometries.all() {
			if err := applyBlending(state, pass.Blending, firstMultipass); err != nil {
				return err
			}
			if err := applyGeometry(shader, g); err != nil {
				return err
			}
			if err := p.drawMesh(shader, g.mesh, stats); err != nil {
				return err
			}
		}

	case PassLights:
		for _, l := range p.lights.all() {
			if err := applyBlending(state, pass.Blending, firstMultipass); err != nil {
				return err
			}
			if err := parameters.Apply(shader, l.parameters); err != nil {
				return err
			}
			if err := p.drawMesh(shader, p.fullscreenQuad, stats); err != nil {
				return err
			}
		}

	case PassLightsThenGeometry:
		for _, l := range p.lights.all() {
			if err := parameters.Apply(shader, l.parameters); err != nil {
				return err
			}
			// one blend decision per light: all geometry drawn for a light forms one layer
			if err := applyBlending(state, pass.Blending, firstMultipass); err != nil {
				return err
			}
			for _, g := range p.geometries.all() {
				if err := applyGeometry(shader, g); err != nil {
					return err
				}
				if err := p.drawMesh(shader, g.mesh, stats); err != nil {
					return err
				}
			}
		}

	case PassGeometryThenLights:
		for _, g := range p.geometries.all() {
			// each geometry entry starts its own accumulation from the frame-level flag
			first := *firstMultipass
			if err := applyGeometry(shader, g); err != nil {
				return err
			}
			if err := g.mesh.Bind(shader); err != nil {
				return driver.Wrap("bind mesh", err)
			}
			for _, l := range p.lights.all() {
				if err := parameters.Apply(shader, l.parameters); err != nil {
					return err
				}
				if err := applyBlending(state, pass.Blending, &first); err != nil {
					return err
				}
				if err := draw(g.mesh, stats); err != nil {
					return err
				}
			}
		}
		if pass.Blending == BlendMultipass {
			*firstMultipass = false
		}

	default:
		panic(&driver.PreconditionError{Msg: "pipeline: unknown pass type " + pass.Type.String()})
	}
	return nil
}

// applyGeometry sets the model matrix and parameters of one geometry entry.
func applyGeometry(shader driver.Shader, g *geometry) error {
	if err := shader.SetUniform(driver.UniformModelMatrix, g.transform); err != nil {
		return driver.Wrap("set uniform "+driver.UniformModelMatrix, err)
	}
	return parameters.Apply(shader, g.parameters)
}

// drawMesh binds mesh to the shader and draws its first subset.
func (p *pipeline) drawMesh(shader driver.Shader, mesh driver.Mesh, stats *FrameStats) error {
	if err := mesh.Bind(shader); err != nil {
		return driver.Wrap("bind mesh", err)
	}
	return draw(mesh, stats)
}

func draw(mesh driver.Mesh, stats *FrameStats) error {
	if err := mesh.Draw(0); err != nil {
		return driver.Wrap("draw", err)
	}
	stats.Draws++
	return nil
}
