package entities

import (
	"fmt"
	"sort"
)

// BoundingBox holds the axis-aligned extents of a part in millimeters.
type BoundingBox struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Volume returns the bounding box volume in mm³.
func (b BoundingBox) Volume() float64 {
	return b.Length * b.Width * b.Height
}

// SurfaceArea returns the total surface area of the box in mm².
func (b BoundingBox) SurfaceArea() float64 {
	return 2 * (b.Length*b.Width + b.Length*b.Height + b.Width*b.Height)
}

// MaxDimension returns the longest of the three extents.
func (b BoundingBox) MaxDimension() float64 {
	max := b.Length
	if b.Width > max {
		max = b.Width
	}
	if b.Height > max {
		max = b.Height
	}
	return max
}

// SortedDims returns the extents in ascending order. Parts may be
// reoriented on the machine, so stock fit is checked on sorted extents.
func (b BoundingBox) SortedDims() [3]float64 {
	dims := []float64{b.Length, b.Width, b.Height}
	sort.Float64s(dims)
	return [3]float64{dims[0], dims[1], dims[2]}
}

// GeometryMetrics is the pre-extracted geometric summary of a part.
// All values are unit-normalized to millimeters by the geometry
// collaborator before they reach the quoting engine.
type GeometryMetrics struct {
	BoundingBox      BoundingBox `json:"bounding_box"`
	PartVolume       float64     `json:"part_volume"`        // mm³
	SurfaceArea      float64     `json:"surface_area"`       // mm²
	ConvexHullVolume float64     `json:"convex_hull_volume"` // mm³
	ShrinkWrapVolume float64     `json:"shrink_wrap_volume"` // mm³
	FaceCount        int         `json:"face_count"`
	EdgeCount        int         `json:"edge_count"`
}

// Validate rejects metrics with non-positive fields. Internally
// inconsistent but positive volumes (e.g. shrink wrap above hull) are
// accepted; the milling model clamps those phases to zero removal.
func (m GeometryMetrics) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"bounding box length", m.BoundingBox.Length},
		{"bounding box width", m.BoundingBox.Width},
		{"bounding box height", m.BoundingBox.Height},
		{"part volume", m.PartVolume},
		{"surface area", m.SurfaceArea},
		{"convex hull volume", m.ConvexHullVolume},
		{"shrink wrap volume", m.ShrinkWrapVolume},
		{"face count", float64(m.FaceCount)},
		{"edge count", float64(m.EdgeCount)},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidGeometry, c.name, c.value)
		}
	}
	return nil
}

// SurfaceToVolumeRatio is the primary complexity signal (1/mm).
func (m GeometryMetrics) SurfaceToVolumeRatio() float64 {
	return m.SurfaceArea / m.PartVolume
}
