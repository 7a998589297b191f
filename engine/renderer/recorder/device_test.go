package recorder_test

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsInCallOrder(t *testing.T) {
	dev := recorder.NewDevice()
	shader := dev.NewShader("lit")
	mesh := dev.NewMesh("cube")

	require.NoError(t, shader.Bind())
	require.NoError(t, shader.SetUniform("glow_Metallic", float32(1)))
	require.NoError(t, mesh.Bind(shader))
	require.NoError(t, mesh.Draw(0))
	require.NoError(t, shader.Unbind())

	var kinds []recorder.CommandKind
	for _, c := range dev.Commands() {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []recorder.CommandKind{
		recorder.CmdBindShader,
		recorder.CmdSetUniform,
		recorder.CmdBindMesh,
		recorder.CmdDraw,
		recorder.CmdUnbindShader,
	}, kinds)
	assert.Equal(t, "lit", dev.Commands()[2].Value)
	assert.Equal(t, 1, dev.Draws())
	assert.False(t, shader.Bound())
}

func TestFailOn(t *testing.T) {
	dev := recorder.NewDevice()
	mesh := dev.NewMesh("cube")
	boom := errors.New("device lost")

	dev.FailOn(recorder.CmdDraw, boom)
	assert.ErrorIs(t, mesh.Draw(0), boom)
	assert.Equal(t, 1, dev.Draws(), "failing commands are still recorded")

	dev.FailOn(recorder.CmdDraw, nil)
	assert.NoError(t, mesh.Draw(0))
}

func TestResetKeepsFailures(t *testing.T) {
	dev := recorder.NewDevice()
	boom := errors.New("device lost")
	dev.FailOn(recorder.CmdDisableBlend, boom)
	require.NoError(t, dev.State().DisableDepthTest())

	dev.Reset()

	assert.Empty(t, dev.Commands())
	assert.ErrorIs(t, dev.State().DisableBlend(), boom)
}

func TestVertexBufferUploads(t *testing.T) {
	dev := recorder.NewDevice()
	vb, err := dev.NewVertexBuffer()
	require.NoError(t, err)
	second, err := dev.NewVertexBuffer()
	require.NoError(t, err)

	require.NoError(t, vb.UploadValues(driver.AttributeVertex, 3, []float32{0, 0, 0, 1, 1, 1}))
	require.NoError(t, vb.UploadIndexes(driver.FacesLines, []uint32{0, 1}))

	mesh := vb.(*recorder.Mesh)
	assert.Equal(t, "vertex-buffer-1", mesh.Name())
	assert.Equal(t, "vertex-buffer-2", second.(*recorder.Mesh).Name())
	assert.Equal(t, 2, mesh.VertexCount(driver.AttributeVertex))
	assert.Equal(t, []driver.FacesType{driver.FacesLines}, mesh.Subsets())

	uploads := dev.Filter(recorder.CmdUploadValues)
	require.Len(t, uploads, 1)
	assert.Equal(t, uint32(3), uploads[0].Slot)
	assert.Equal(t, "lines", dev.Filter(recorder.CmdUploadIndexes)[0].Name)
}

func TestUploadValuesPreconditions(t *testing.T) {
	dev := recorder.NewDevice()
	vb, err := dev.NewVertexBuffer()
	require.NoError(t, err)

	assert.Panics(t, func() { _ = vb.UploadValues(driver.AttributeVertex, 5, make([]float32, 5)) })
	assert.Panics(t, func() { _ = vb.UploadValues(driver.AttributeVertex, 3, make([]float32, 4)) })
	assert.Empty(t, dev.Commands())
}

func TestUncompiledShader(t *testing.T) {
	dev := recorder.NewDevice()
	assert.True(t, dev.NewShader("ok").Compiled())
	assert.False(t, dev.NewShader("broken", recorder.WithUncompiled()).Compiled())
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  recorder.Command
		want string
	}{
		{recorder.Command{Kind: recorder.CmdBindShader, Target: "lit"}, "BindShader lit"},
		{recorder.Command{Kind: recorder.CmdDisableBlend}, "DisableBlend"},
		{recorder.Command{Kind: recorder.CmdSetUniform, Target: "lit", Name: "glow_Metallic", Value: float32(0.5)}, "SetUniform lit.glow_Metallic = 0.5"},
		{recorder.Command{Kind: recorder.CmdBindTexture, Target: "lit", Name: "glow_DiffuseMap", Slot: 1}, "BindTexture lit.glow_DiffuseMap slot=1"},
		{recorder.Command{Kind: recorder.CmdDraw, Target: "cube"}, "Draw cube subset=0"},
		{recorder.Command{Kind: recorder.CmdBindMesh, Target: "cube", Value: "lit"}, "BindMesh cube shader=lit"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cmd.String())
	}
	assert.Equal(t, "CommandKind(200)", recorder.CommandKind(200).String())
}
