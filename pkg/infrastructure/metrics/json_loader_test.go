package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partfoundry/quoting/pkg/domain/entities"
)

func writeMetricsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "part.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoader_LoadMetrics(t *testing.T) {
	path := writeMetricsFile(t, `{
		"bounding_box": {"length": 120.5, "width": 85.2, "height": 25.8},
		"part_volume": 258700,
		"surface_area": 45000,
		"convex_hull_volume": 340000,
		"shrink_wrap_volume": 272000,
		"face_count": 1800,
		"edge_count": 5600
	}`)

	m, err := NewLoader().LoadMetrics(path)
	require.NoError(t, err)

	assert.Equal(t, 120.5, m.BoundingBox.Length)
	assert.Equal(t, 258700.0, m.PartVolume)
	assert.Equal(t, 1800, m.FaceCount)
}

func TestLoader_LoadMetrics_DefaultsShrinkWrap(t *testing.T) {
	path := writeMetricsFile(t, `{
		"bounding_box": {"length": 100, "width": 100, "height": 100},
		"part_volume": 500000,
		"surface_area": 60000,
		"convex_hull_volume": 700000,
		"face_count": 500,
		"edge_count": 1500
	}`)

	m, err := NewLoader().LoadMetrics(path)
	require.NoError(t, err)

	// Missing shrink wrap falls back to 80% of the convex hull.
	assert.InDelta(t, 560000, m.ShrinkWrapVolume, 1e-9)
}

func TestLoader_LoadMetrics_RejectsInvalidGeometry(t *testing.T) {
	path := writeMetricsFile(t, `{
		"bounding_box": {"length": -5, "width": 100, "height": 100},
		"part_volume": 500000,
		"surface_area": 60000,
		"convex_hull_volume": 700000,
		"shrink_wrap_volume": 560000,
		"face_count": 500,
		"edge_count": 1500
	}`)

	_, err := NewLoader().LoadMetrics(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrInvalidGeometry)
}

func TestLoader_LoadMetrics_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadMetrics(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoader_LoadMetrics_MalformedJSON(t *testing.T) {
	path := writeMetricsFile(t, `{not json`)
	_, err := NewLoader().LoadMetrics(path)
	assert.Error(t, err)
}

func TestLoader_LoadBatch(t *testing.T) {
	valid := `{
		"bounding_box": {"length": 100, "width": 100, "height": 100},
		"part_volume": 500000,
		"surface_area": 60000,
		"convex_hull_volume": 700000,
		"shrink_wrap_volume": 560000,
		"face_count": 500,
		"edge_count": 1500
	}`
	first := writeMetricsFile(t, valid)
	second := writeMetricsFile(t, valid)

	all, err := NewLoader().LoadBatch([]string{first, second})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
