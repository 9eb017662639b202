package services

import (
	"github.com/partfoundry/quoting/pkg/domain/entities"
)

// baselinePart is the reference part used across the service tests:
// 258.7 cm³ of aluminum in a 120.5×85.2×25.8 mm envelope.
func baselinePart() entities.GeometryMetrics {
	return entities.GeometryMetrics{
		BoundingBox:      entities.BoundingBox{Length: 120.5, Width: 85.2, Height: 25.8},
		PartVolume:       258700,
		SurfaceArea:      45000,
		ConvexHullVolume: 340000,
		ShrinkWrapVolume: 272000, // 80% of hull
		FaceCount:        1800,
		EdgeCount:        5600,
	}
}

// simplePart is a near-solid prism that should trip none of the
// feature detectors.
func simplePart() entities.GeometryMetrics {
	return entities.GeometryMetrics{
		BoundingBox:      entities.BoundingBox{Length: 100, Width: 100, Height: 100},
		PartVolume:       990000,
		SurfaceArea:      60000,
		ConvexHullVolume: 1000000,
		ShrinkWrapVolume: 800000,
		FaceCount:        12,
		EdgeCount:        18,
	}
}
