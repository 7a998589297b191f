package recorder

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// CommandKind identifies the driver call a Command records.
type CommandKind uint8

const (
	// Shader commands
	CmdBindShader   CommandKind = iota // Shader.Bind
	CmdUnbindShader                    // Shader.Unbind
	CmdSetUniform                      // Shader.SetUniform
	CmdBindTexture                     // Shader.BindTexture
	CmdBindOutput                      // Shader.BindOutput

	// Texture commands
	CmdTextureSlot // Texture.Bind

	// Mesh commands
	CmdBindMesh      // Mesh.Bind
	CmdDraw          // Mesh.Draw
	CmdUploadValues  // VertexBuffer.UploadValues
	CmdUploadIndexes // VertexBuffer.UploadIndexes

	// State commands
	CmdDisableDepthTest // StateController.DisableDepthTest
	CmdEnableDepthTest  // StateController.EnableDepthTest
	CmdDisableBlend     // StateController.DisableBlend
	CmdEnableBlend      // StateController.EnableBlend
)

var commandNames = [...]string{
	CmdBindShader:       "BindShader",
	CmdUnbindShader:     "UnbindShader",
	CmdSetUniform:       "SetUniform",
	CmdBindTexture:      "BindTexture",
	CmdBindOutput:       "BindOutput",
	CmdTextureSlot:      "TextureSlot",
	CmdBindMesh:         "BindMesh",
	CmdDraw:             "Draw",
	CmdUploadValues:     "UploadValues",
	CmdUploadIndexes:    "UploadIndexes",
	CmdDisableDepthTest: "DisableDepthTest",
	CmdEnableDepthTest:  "EnableDepthTest",
	CmdDisableBlend:     "DisableBlend",
	CmdEnableBlend:      "EnableBlend",
}

// String returns the command kind name.
func (k CommandKind) String() string {
	if int(k) < len(commandNames) && commandNames[k] != "" {
		return commandNames[k]
	}
	return fmt.Sprintf("CommandKind(%d)", k)
}

// Command is one recorded driver call. Only the fields relevant to Kind are set.
type Command struct {
	Kind CommandKind
	// Target is the name of the shader, mesh or texture the call was made on.
	Target string
	// Name is the uniform, output or attribute name.
	Name string
	// Value is the uniform payload, the uploaded data or the bound shader name for CmdBindMesh.
	Value any
	// Slot is the texture slot, output channel or draw subset.
	Slot uint32

	// DepthCompare and DepthWrite are set for CmdEnableDepthTest.
	DepthCompare wgpu.CompareFunction
	DepthWrite   bool

	// SrcFactor and DstFactor are set for CmdEnableBlend.
	SrcFactor, DstFactor wgpu.BlendFactor
}

// String renders the command as a single trace line.
func (c Command) String() string {
	switch c.Kind {
	case CmdBindShader, CmdUnbindShader, CmdDisableDepthTest, CmdDisableBlend:
		if c.Target == "" {
			return c.Kind.String()
		}
		return fmt.Sprintf("%s %s", c.Kind, c.Target)
	case CmdSetUniform:
		return fmt.Sprintf("%s %s.%s = %v", c.Kind, c.Target, c.Name, c.Value)
	case CmdBindTexture:
		return fmt.Sprintf("%s %s.%s slot=%d", c.Kind, c.Target, c.Name, c.Slot)
	case CmdBindOutput:
		return fmt.Sprintf("%s %s.%s channel=%d", c.Kind, c.Target, c.Name, c.Slot)
	case CmdTextureSlot:
		return fmt.Sprintf("%s %s slot=%d", c.Kind, c.Target, c.Slot)
	case CmdBindMesh:
		return fmt.Sprintf("%s %s shader=%v", c.Kind, c.Target, c.Value)
	case CmdDraw:
		return fmt.Sprintf("%s %s subset=%d", c.Kind, c.Target, c.Slot)
	case CmdUploadValues, CmdUploadIndexes:
		return fmt.Sprintf("%s %s %s", c.Kind, c.Target, c.Name)
	case CmdEnableDepthTest:
		return fmt.Sprintf("%s compare=%s write=%t", c.Kind, c.DepthCompare, c.DepthWrite)
	case CmdEnableBlend:
		return fmt.Sprintf("%s src=%s dst=%s", c.Kind, c.SrcFactor, c.DstFactor)
	default:
		return c.Kind.String()
	}
}
