// Package wgpustate resolves the fixed-function depth and blend calls issued by
// the render pipeline into WebGPU render state.
//
// WebGPU has no mutable depth or blend state: both are baked into a render
// pipeline. The Controller in this package tracks the state the pipeline asks
// for as a StateDescriptor and records every distinct descriptor, so a WebGPU
// backend can create one render pipeline per state key and switch between them.
package wgpustate

import (
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// StateDescriptor is the depth and blend state requested for the next draw.
type StateDescriptor struct {
	depthTestEnabled  bool
	depthWriteEnabled bool
	depthCompare      wgpu.CompareFunction
	depthFormat       wgpu.TextureFormat

	blendEnabled bool
	blendState   wgpu.BlendState
}

// DepthTestEnabled returns whether depth testing is enabled.
//
// Returns:
//   - bool: true if depth testing is enabled, false otherwise
func (s StateDescriptor) DepthTestEnabled() bool {
	return s.depthTestEnabled
}

// DepthWriteEnabled returns whether passing fragments write depth.
//
// Returns:
//   - bool: true if depth writing is enabled, false otherwise
func (s StateDescriptor) DepthWriteEnabled() bool {
	return s.depthTestEnabled && s.depthWriteEnabled
}

// BlendEnabled returns whether blending is enabled.
//
// Returns:
//   - bool: true if blending is enabled, false otherwise
func (s StateDescriptor) BlendEnabled() bool {
	return s.blendEnabled
}

// BlendState returns the blend state for the color target, or nil if blending is disabled.
//
// Returns:
//   - *wgpu.BlendState: the blend state, or nil
func (s StateDescriptor) BlendState() *wgpu.BlendState {
	if !s.blendEnabled {
		return nil
	}
	b := s.blendState
	return &b
}

// DepthStencilState returns the depth-stencil state of a render pipeline using this descriptor.
// A disabled depth test compares with Always and never writes, which is how WebGPU expresses it.
//
// Returns:
//   - *wgpu.DepthStencilState: the depth-stencil state
func (s StateDescriptor) DepthStencilState() *wgpu.DepthStencilState {
	compare := s.depthCompare
	if !s.depthTestEnabled {
		compare = wgpu.CompareFunctionAlways
	}
	return &wgpu.DepthStencilState{
		Format:            s.depthFormat,
		DepthWriteEnabled: s.DepthWriteEnabled(),
		DepthCompare:      compare,
		StencilFront: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
		StencilBack: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
	}
}

// ColorTargetState returns the color target of a render pipeline using this descriptor.
//
// Parameters:
//   - format: the surface or render target format
//
// Returns:
//   - wgpu.ColorTargetState: the color target with the blend state applied
func (s StateDescriptor) ColorTargetState(format wgpu.TextureFormat) wgpu.ColorTargetState {
	return wgpu.ColorTargetState{
		Format:    format,
		WriteMask: wgpu.ColorWriteMaskAll,
		Blend:     s.BlendState(),
	}
}

// Key returns a stable identifier of the descriptor, suitable as a render pipeline cache key,
// e.g. "depth=less-equal+write;blend=one+one".
//
// Returns:
//   - string: the state key
func (s StateDescriptor) Key() string {
	var b strings.Builder
	b.WriteString("depth=")
	if s.depthTestEnabled {
		b.WriteString(compareName(s.depthCompare))
		if s.depthWriteEnabled {
			b.WriteString("+write")
		}
	} else {
		b.WriteString("off")
	}
	b.WriteString(";blend=")
	if s.blendEnabled {
		b.WriteString(factorName(s.blendState.Color.SrcFactor))
		b.WriteString("+")
		b.WriteString(factorName(s.blendState.Color.DstFactor))
	} else {
		b.WriteString("off")
	}
	return b.String()
}

// blendComponent builds an additive blend component.
func blendComponent(src, dst wgpu.BlendFactor) wgpu.BlendComponent {
	return wgpu.BlendComponent{
		SrcFactor: src,
		DstFactor: dst,
		Operation: wgpu.BlendOperationAdd,
	}
}

func compareName(c wgpu.CompareFunction) string {
	switch c {
	case wgpu.CompareFunctionNever:
		return "never"
	case wgpu.CompareFunctionLess:
		return "less"
	case wgpu.CompareFunctionLessEqual:
		return "less-equal"
	case wgpu.CompareFunctionGreater:
		return "greater"
	case wgpu.CompareFunctionGreaterEqual:
		return "greater-equal"
	case wgpu.CompareFunctionEqual:
		return "equal"
	case wgpu.CompareFunctionNotEqual:
		return "not-equal"
	case wgpu.CompareFunctionAlways:
		return "always"
	default:
		return fmt.Sprintf("compare(%d)", uint32(c))
	}
}

func factorName(f wgpu.BlendFactor) string {
	switch f {
	case wgpu.BlendFactorZero:
		return "zero"
	case wgpu.BlendFactorOne:
		return "one"
	case wgpu.BlendFactorSrcAlpha:
		return "src-alpha"
	case wgpu.BlendFactorOneMinusSrcAlpha:
		return "one-minus-src-alpha"
	case wgpu.BlendFactorDstAlpha:
		return "dst-alpha"
	case wgpu.BlendFactorOneMinusDstAlpha:
		return "one-minus-dst-alpha"
	default:
		return fmt.Sprintf("factor(%d)", uint32(f))
	}
}
