package metrics

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/partfoundry/quoting/pkg/domain/entities"
)

// Loader reads GeometryMetrics files produced by the external geometry
// extractor. The extractor owns CAD parsing and unit normalization; by
// the time a file lands here every value is millimeters and positive.
type Loader struct{}

// NewLoader creates a metrics loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadMetrics reads and validates one metrics file. A missing
// shrink-wrap volume is filled in as 80% of the convex hull, matching
// the extractor's own approximation.
func (l *Loader) LoadMetrics(path string) (entities.GeometryMetrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.GeometryMetrics{}, fmt.Errorf("failed to read metrics file %s: %w", path, err)
	}

	var m entities.GeometryMetrics
	if err := json.Unmarshal(data, &m); err != nil {
		return entities.GeometryMetrics{}, fmt.Errorf("failed to parse metrics file %s: %w", path, err)
	}

	if m.ShrinkWrapVolume == 0 && m.ConvexHullVolume > 0 {
		m.ShrinkWrapVolume = m.ConvexHullVolume * 0.8
	}

	if err := m.Validate(); err != nil {
		return entities.GeometryMetrics{}, fmt.Errorf("metrics file %s: %w", path, err)
	}
	return m, nil
}

// LoadBatch reads several metrics files for batch quoting.
func (l *Loader) LoadBatch(paths []string) ([]entities.GeometryMetrics, error) {
	all := make([]entities.GeometryMetrics, 0, len(paths))
	for _, path := range paths {
		m, err := l.LoadMetrics(path)
		if err != nil {
			return nil, err
		}
		all = append(all, m)
	}
	return all, nil
}
