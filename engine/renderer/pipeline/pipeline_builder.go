package pipeline

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-glow/common"
	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
)

// PipelineBuilderOption is a functional option used to configure a Pipeline during construction.
type PipelineBuilderOption func(*pipeline)

// WithDevice sets the device the pipeline draws with instead of the process-wide device.
//
// Parameters:
//   - d: the device of the graphics context owning the pipeline
//
// Returns:
//   - PipelineBuilderOption: a function that sets the device of this pipeline
func WithDevice(d driver.Device) PipelineBuilderOption {
	return func(p *pipeline) {
		p.device = d
	}
}

// WithCamera sets the initial camera matrices. Both default to identity.
//
// Parameters:
//   - projection: the projection matrix
//   - view: the view matrix
//
// Returns:
//   - PipelineBuilderOption: a function that sets the camera matrices of this pipeline
func WithCamera(projection, view common.Mat4) PipelineBuilderOption {
	return func(p *pipeline) {
		p.projectionMatrix = projection
		p.viewMatrix = view
	}
}

// WithLogger sets a logger for this pipeline instead of the engine-wide common.Logger.
//
// Parameters:
//   - l: the logger to use
//
// Returns:
//   - PipelineBuilderOption: a function that sets the logger of this pipeline
func WithLogger(l *slog.Logger) PipelineBuilderOption {
	return func(p *pipeline) {
		p.logger = l
	}
}
