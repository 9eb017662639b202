package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMetrics() GeometryMetrics {
	return GeometryMetrics{
		BoundingBox:      BoundingBox{Length: 120.5, Width: 85.2, Height: 25.8},
		PartVolume:       258700,
		SurfaceArea:      45000,
		ConvexHullVolume: 340000,
		ShrinkWrapVolume: 272000,
		FaceCount:        1800,
		EdgeCount:        5600,
	}
}

func TestGeometryMetrics_Validate(t *testing.T) {
	require.NoError(t, validMetrics().Validate())
}

func TestGeometryMetrics_Validate_RejectsNonPositiveFields(t *testing.T) {
	cases := map[string]func(*GeometryMetrics){
		"zero length":     func(m *GeometryMetrics) { m.BoundingBox.Length = 0 },
		"negative width":  func(m *GeometryMetrics) { m.BoundingBox.Width = -10 },
		"zero volume":     func(m *GeometryMetrics) { m.PartVolume = 0 },
		"zero area":       func(m *GeometryMetrics) { m.SurfaceArea = 0 },
		"zero hull":       func(m *GeometryMetrics) { m.ConvexHullVolume = 0 },
		"zero shrink":     func(m *GeometryMetrics) { m.ShrinkWrapVolume = 0 },
		"zero face count": func(m *GeometryMetrics) { m.FaceCount = 0 },
		"zero edge count": func(m *GeometryMetrics) { m.EdgeCount = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			m := validMetrics()
			mutate(&m)
			err := m.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidGeometry)
		})
	}
}

func TestGeometryMetrics_Validate_AcceptsInconsistentVolumes(t *testing.T) {
	// Shrink wrap above the hull is structurally valid; the milling
	// model clamps the affected phase instead of failing.
	m := validMetrics()
	m.ShrinkWrapVolume = m.ConvexHullVolume * 1.2
	assert.NoError(t, m.Validate())
}

func TestBoundingBox_SortedDims(t *testing.T) {
	box := BoundingBox{Length: 120.5, Width: 85.2, Height: 25.8}
	dims := box.SortedDims()
	assert.Equal(t, [3]float64{25.8, 85.2, 120.5}, dims)
}

func TestBoundingBox_MaxDimension(t *testing.T) {
	box := BoundingBox{Length: 10, Width: 90, Height: 25}
	assert.Equal(t, 90.0, box.MaxDimension())
}

func TestBlockSize_Contains_AnyOrientation(t *testing.T) {
	block := BlockSize{Length: 125, Width: 125, Height: 125}

	assert.True(t, block.Contains(BoundingBox{Length: 120.5, Width: 85.2, Height: 25.8}))
	// Rotated variants fit just the same.
	assert.True(t, block.Contains(BoundingBox{Length: 25.8, Width: 120.5, Height: 85.2}))
	assert.False(t, block.Contains(BoundingBox{Length: 126, Width: 10, Height: 10}))
}
