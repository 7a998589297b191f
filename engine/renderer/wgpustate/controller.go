package wgpustate

import (
	"github.com/Carmen-Shannon/oxy-glow/common"
	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
	"github.com/cogentcore/webgpu/wgpu"
)

// ControllerBuilderOption is a functional option used to configure a Controller during construction.
type ControllerBuilderOption func(*Controller)

// WithDepthFormat sets the depth attachment format reported in depth-stencil states.
// The default is wgpu.TextureFormatDepth24Plus.
//
// Parameters:
//   - format: the depth texture format
//
// Returns:
//   - ControllerBuilderOption: a function that sets the depth format
func WithDepthFormat(format wgpu.TextureFormat) ControllerBuilderOption {
	return func(c *Controller) {
		c.current.depthFormat = format
	}
}

// WithForward makes the controller forward every state call to next before tracking it,
// so the tracked descriptors mirror what an underlying device actually received.
//
// Parameters:
//   - next: the state controller to forward to
//
// Returns:
//   - ControllerBuilderOption: a function that sets the forwarding target
func WithForward(next driver.StateController) ControllerBuilderOption {
	return func(c *Controller) {
		c.next = next
	}
}

// Controller is a driver.StateController that tracks the requested depth and
// blend state as a StateDescriptor and records every distinct descriptor.
type Controller struct {
	current  StateDescriptor
	next     driver.StateController
	variants []string
	seen     map[string]StateDescriptor
}

var _ driver.StateController = &Controller{}

// NewController creates a Controller with depth testing and blending disabled.
//
// Parameters:
//   - opts: a variadic list of ControllerBuilderOption functions
//
// Returns:
//   - *Controller: the new controller
func NewController(opts ...ControllerBuilderOption) *Controller {
	c := &Controller{
		current: StateDescriptor{
			depthCompare: wgpu.CompareFunctionLess,
			depthFormat:  wgpu.TextureFormatDepth24Plus,
		},
		seen: make(map[string]StateDescriptor),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the descriptor for the next draw.
func (c *Controller) Current() StateDescriptor {
	return c.current
}

// Variants returns the keys of every distinct descriptor the controller has
// been put in, in the order they first appeared.
func (c *Controller) Variants() []string {
	return append([]string(nil), c.variants...)
}

// Descriptor returns the descriptor recorded for key.
//
// Parameters:
//   - key: a key returned by Variants or StateDescriptor.Key
//
// Returns:
//   - StateDescriptor: the descriptor
//   - bool: true if the key was recorded
func (c *Controller) Descriptor(key string) (StateDescriptor, bool) {
	d, ok := c.seen[key]
	return d, ok
}

func (c *Controller) track() {
	key := c.current.Key()
	if _, ok := c.seen[key]; ok {
		return
	}
	c.seen[key] = c.current
	c.variants = append(c.variants, key)
	common.Logger().Debug("render state variant", "key", key, "variants", len(c.variants))
}

func (c *Controller) DisableDepthTest() error {
	if c.next != nil {
		if err := c.next.DisableDepthTest(); err != nil {
			return err
		}
	}
	c.current.depthTestEnabled = false
	c.current.depthWriteEnabled = false
	c.track()
	return nil
}

func (c *Controller) EnableDepthTest(compare wgpu.CompareFunction, write bool) error {
	if c.next != nil {
		if err := c.next.EnableDepthTest(compare, write); err != nil {
			return err
		}
	}
	c.current.depthTestEnabled = true
	c.current.depthCompare = compare
	c.current.depthWriteEnabled = write
	c.track()
	return nil
}

func (c *Controller) DisableBlend() error {
	if c.next != nil {
		if err := c.next.DisableBlend(); err != nil {
			return err
		}
	}
	c.current.blendEnabled = false
	c.current.blendState = wgpu.BlendState{}
	c.track()
	return nil
}

func (c *Controller) EnableBlend(src, dst wgpu.BlendFactor) error {
	if c.next != nil {
		if err := c.next.EnableBlend(src, dst); err != nil {
			return err
		}
	}
	c.current.blendEnabled = true
	c.current.blendState = wgpu.BlendState{
		Color: blendComponent(src, dst),
		Alpha: blendComponent(src, dst),
	}
	c.track()
	return nil
}

// device wraps a driver.Device so its state calls go through a Controller.
type device struct {
	driver.Device
	controller *Controller
}

// WrapDevice returns a device that creates vertex buffers with d and routes
// every state call through a new Controller forwarding to d's state controller.
//
// Parameters:
//   - d: the device to wrap
//   - opts: a variadic list of ControllerBuilderOption functions for the controller
//
// Returns:
//   - driver.Device: the wrapping device
//   - *Controller: the controller tracking the state of the wrapping device
func WrapDevice(d driver.Device, opts ...ControllerBuilderOption) (driver.Device, *Controller) {
	driver.Require(!driver.IsNil(d), "wgpustate: WrapDevice requires a non-nil Device")
	c := NewController(append([]ControllerBuilderOption{WithForward(d.State())}, opts...)...)
	return &device{Device: d, controller: c}, c
}

func (d *device) State() driver.StateController {
	return d.controller
}
