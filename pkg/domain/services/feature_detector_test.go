package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureDetector_Detect_ComplexPart(t *testing.T) {
	detector := NewFeatureDetector(DefaultRateConfig().Detector)

	counts := detector.Detect(baselinePart())

	// SA/vol 0.174 clears the hole threshold, the hull leaves ~24%
	// cavity volume, and edge/face ratio 3.11 flags sharp edges.
	assert.Equal(t, 1, counts.Holes)
	assert.Equal(t, 1, counts.Cavities)
	assert.Equal(t, 4, counts.SharpEdges)
	assert.Equal(t, 5, counts.Pockets)
	assert.InDelta(t, 5.5, counts.Score, 1e-9)
}

func TestFeatureDetector_Detect_SimplePartYieldsZeroes(t *testing.T) {
	detector := NewFeatureDetector(DefaultRateConfig().Detector)

	counts := detector.Detect(simplePart())

	assert.Zero(t, counts.Holes)
	assert.Zero(t, counts.Cavities)
	assert.Zero(t, counts.SharpEdges)
	assert.Zero(t, counts.Pockets)
	assert.Zero(t, counts.Score)
}

func TestFeatureDetector_Detect_Deterministic(t *testing.T) {
	detector := NewFeatureDetector(DefaultRateConfig().Detector)

	first := detector.Detect(baselinePart())
	second := detector.Detect(baselinePart())

	assert.Equal(t, first, second)
}

func TestFeatureDetector_Detect_CountsCapped(t *testing.T) {
	cfg := DefaultRateConfig().Detector
	detector := NewFeatureDetector(cfg)

	m := baselinePart()
	m.SurfaceArea = m.PartVolume * 10 // absurd SA/vol ratio
	m.FaceCount = 500000
	m.EdgeCount = 5000000

	counts := detector.Detect(m)

	assert.Equal(t, cfg.MaxHoles, counts.Holes)
	assert.Equal(t, cfg.MaxSharpEdges, counts.SharpEdges)
	assert.Equal(t, cfg.MaxPockets, counts.Pockets)
}
