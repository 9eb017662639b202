package services

import (
	"github.com/partfoundry/quoting/pkg/domain/entities"
)

// ComplexityScorer combines surface-to-volume ratio, face density, and
// edge density into a bounded 0–10 score. The score feeds a capped
// price multiplier; it never compounds with itself downstream.
type ComplexityScorer struct {
	cfg ComplexityConfig
}

// NewComplexityScorer creates a scorer with the given weights.
func NewComplexityScorer(cfg ComplexityConfig) *ComplexityScorer {
	return &ComplexityScorer{cfg: cfg}
}

// Score computes the complexity score for the given metrics. Identical
// inputs always produce identical scores.
func (s *ComplexityScorer) Score(m entities.GeometryMetrics) entities.ComplexityScore {
	value := s.cfg.SAVolWeight*saturate(m.SurfaceToVolumeRatio()/s.cfg.SAVolScale) +
		s.cfg.FaceWeight*saturate(float64(m.FaceCount)/s.cfg.FaceScale) +
		s.cfg.EdgeWeight*saturate(float64(m.EdgeCount)/s.cfg.EdgeScale)

	if value < 0 {
		value = 0
	}
	if value > 10 {
		value = 10
	}

	return entities.ComplexityScore{
		Value:    value,
		Category: s.Categorize(value),
	}
}

// Categorize buckets a score for the pricing multiplier table.
func (s *ComplexityScorer) Categorize(value float64) entities.ComplexityCategory {
	switch {
	case value < s.cfg.LowCeiling:
		return entities.LowComplexity
	case value < s.cfg.MediumCeiling:
		return entities.MediumComplexity
	default:
		return entities.HighComplexity
	}
}

// saturate maps a non-negative ratio into [0, 1) smoothly, so that
// uniformly scaling a part's dimensions shifts the score continuously
// instead of snapping between brackets.
func saturate(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return x / (x + 1)
}
