package services

import (
	"github.com/partfoundry/quoting/pkg/domain/entities"
)

// FeatureDetector derives coarse manufacturing-feature counts from
// geometric aggregates. It works purely off face/edge statistics; no
// ray-casting or primitive classification is available at this layer.
type FeatureDetector struct {
	cfg DetectorConfig
}

// NewFeatureDetector creates a detector with the given thresholds.
func NewFeatureDetector(cfg DetectorConfig) *FeatureDetector {
	return &FeatureDetector{cfg: cfg}
}

// Detect estimates hole, cavity, sharp-edge, and pocket counts. It is
// deterministic and total: weak signals yield zero counts, never errors.
func (d *FeatureDetector) Detect(m entities.GeometryMetrics) entities.FeatureCounts {
	var counts entities.FeatureCounts

	// Apparent through-openings raise surface area relative to volume.
	saVolRatio := m.SurfaceToVolumeRatio()
	if saVolRatio > d.cfg.HoleSAVolThreshold {
		counts.Holes = clampCount(int(saVolRatio*d.cfg.HoleScale), 1, d.cfg.MaxHoles)
	}

	// Volume missing from the convex hull signals internal cavities.
	cavityRatio := 1 - m.PartVolume/m.ConvexHullVolume
	if cavityRatio > d.cfg.CavityRatioThreshold {
		counts.Cavities = clampCount(int(cavityRatio*d.cfg.CavityScale), 1, d.cfg.MaxCavities)
	}

	edgeFaceRatio := float64(m.EdgeCount) / float64(m.FaceCount)
	if edgeFaceRatio > d.cfg.SharpEdgeRatio {
		counts.SharpEdges = clampCount(int(edgeFaceRatio*d.cfg.SharpEdgeScale), 1, d.cfg.MaxSharpEdges)
	}

	// Pockets show up as face count well above what the bounding box
	// surface alone would need.
	faceDensity := float64(m.FaceCount) / m.BoundingBox.SurfaceArea()
	if faceDensity > d.cfg.PocketFaceDensity {
		counts.Pockets = clampCount(int(faceDensity*d.cfg.PocketFaceDensityScale), 1, d.cfg.MaxPockets)
	}

	counts.Score = float64(counts.Holes)*d.cfg.HoleWeight +
		float64(counts.Cavities)*d.cfg.CavityWeight +
		float64(counts.SharpEdges)*d.cfg.SharpEdgeWeight +
		float64(counts.Pockets)*d.cfg.PocketWeight

	return counts
}

// clampCount bounds a detected count to [min, max].
func clampCount(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
