package recorder

import (
	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
)

// ShaderOption is a function that configures a recording shader during construction.
type ShaderOption func(*Shader)

// WithUncompiled marks the shader as not compiled, as if compilation or linking had failed.
func WithUncompiled() ShaderOption {
	return func(s *Shader) {
		s.compiled = false
	}
}

// Shader is a recording driver.Shader. Texture slots are assigned per sampler name.
type Shader struct {
	device   *Device
	name     string
	compiled bool
	bound    bool
	slots    driver.SlotAllocator
}

var _ driver.Shader = &Shader{}

// Name returns the shader name.
func (s *Shader) Name() string { return s.name }

// Bound reports whether the shader is currently bound.
func (s *Shader) Bound() bool { return s.bound }

func (s *Shader) Bind() error {
	s.bound = true
	return s.device.record(Command{Kind: CmdBindShader, Target: s.name})
}

func (s *Shader) Unbind() error {
	s.bound = false
	return s.device.record(Command{Kind: CmdUnbindShader, Target: s.name})
}

func (s *Shader) SetUniform(name string, value any) error {
	return s.device.record(Command{Kind: CmdSetUniform, Target: s.name, Name: name, Value: value})
}

func (s *Shader) BindTexture(name string, texture driver.Texture) error {
	slot := s.slots.Slot(name)
	if err := s.device.record(Command{Kind: CmdBindTexture, Target: s.name, Name: name, Slot: slot}); err != nil {
		return err
	}
	return texture.Bind(slot)
}

func (s *Shader) BindOutput(name string, channel uint32) error {
	return s.device.record(Command{Kind: CmdBindOutput, Target: s.name, Name: name, Slot: channel})
}

func (s *Shader) Compiled() bool { return s.compiled }

// Texture is a recording driver.Texture.
type Texture struct {
	device *Device
	name   string
}

var _ driver.Texture = &Texture{}

// Name returns the texture name.
func (t *Texture) Name() string { return t.name }

func (t *Texture) Bind(slot uint32) error {
	return t.device.record(Command{Kind: CmdTextureSlot, Target: t.name, Slot: slot})
}

// Mesh is a recording driver.VertexBuffer.
type Mesh struct {
	device  *Device
	name    string
	streams map[string]int
	subsets []driver.FacesType
}

var _ driver.VertexBuffer = &Mesh{}

// Name returns the mesh name.
func (m *Mesh) Name() string { return m.name }

// Subsets returns the topology of every uploaded index set, in upload order.
func (m *Mesh) Subsets() []driver.FacesType {
	return append([]driver.FacesType(nil), m.subsets...)
}

func (m *Mesh) Bind(shader driver.Shader) error {
	var target any
	if s, ok := shader.(*Shader); ok {
		target = s.name
	}
	return m.device.record(Command{Kind: CmdBindMesh, Target: m.name, Value: target})
}

func (m *Mesh) Draw(subset uint32) error {
	return m.device.record(Command{Kind: CmdDraw, Target: m.name, Slot: subset})
}

func (m *Mesh) UploadValues(attribute string, components int, data []float32) error {
	driver.Require(components >= 1 && components <= 4, "recorder: UploadValues(%q) with %d components", attribute, components)
	driver.Require(len(data)%components == 0, "recorder: UploadValues(%q) data length %d is not a multiple of %d", attribute, len(data), components)
	if err := m.device.record(Command{
		Kind:   CmdUploadValues,
		Target: m.name,
		Name:   attribute,
		Value:  append([]float32(nil), data...),
		Slot:   uint32(components),
	}); err != nil {
		return err
	}
	if m.streams == nil {
		m.streams = make(map[string]int)
	}
	m.streams[attribute] = len(data) / components
	return nil
}

func (m *Mesh) UploadIndexes(faces driver.FacesType, data []uint32) error {
	if err := m.device.record(Command{
		Kind:   CmdUploadIndexes,
		Target: m.name,
		Name:   faces.String(),
		Value:  append([]uint32(nil), data...),
		Slot:   uint32(len(m.subsets)),
	}); err != nil {
		return err
	}
	m.subsets = append(m.subsets, faces)
	return nil
}

// VertexCount returns the number of vertices uploaded for attribute.
func (m *Mesh) VertexCount(attribute string) int {
	return m.streams[attribute]
}
