package pipeline

import (
	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
)

// QuadData is the CPU-side geometry of the full-screen quad.
type QuadData struct {
	// Positions holds 4 vertices with 3 components each, spanning (-1,-1) to (1,1) in normalized device coordinates.
	Positions []float32
	// TexCoords holds 4 vertices with 2 components each, spanning (0,0) to (1,1).
	TexCoords []float32
	// Indexes holds the two triangles of the quad.
	Indexes []uint32
}

// FullscreenQuad returns the geometry used by full-screen and per-light passes.
//
// Returns:
//   - QuadData: a two-triangle quad covering the whole viewport
func FullscreenQuad() QuadData {
	return QuadData{
		Positions: []float32{
			-1, -1, 0,
			-1, 1, 0,
			1, 1, 0,
			1, -1, 0,
		},
		TexCoords: []float32{
			0, 0,
			0, 1,
			1, 1,
			1, 0,
		},
		Indexes: []uint32{
			0, 1, 2,
			2, 3, 0,
		},
	}
}

// uploadFullscreenQuad creates a vertex buffer on the device and uploads the quad into it.
func uploadFullscreenQuad(d driver.Device) (driver.VertexBuffer, error) {
	vb, err := d.NewVertexBuffer()
	if err != nil {
		return nil, driver.Wrap("create vertex buffer", err)
	}
	q := FullscreenQuad()
	if err := vb.UploadValues(driver.AttributeVertex, 3, q.Positions); err != nil {
		return nil, driver.Wrap("upload "+driver.AttributeVertex, err)
	}
	if err := vb.UploadValues(driver.AttributeTexCoord, 2, q.TexCoords); err != nil {
		return nil, driver.Wrap("upload "+driver.AttributeTexCoord, err)
	}
	if err := vb.UploadIndexes(driver.FacesTriangles, q.Indexes); err != nil {
		return nil, driver.Wrap("upload indexes", err)
	}
	return vb, nil
}
