package entities

import "sort"

// BlockSize represents a standard raw-material stock size in millimeters.
type BlockSize struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Volume returns the stock volume in mm³.
func (b BlockSize) Volume() float64 {
	return b.Length * b.Width * b.Height
}

// Contains reports whether the bounding box fits inside the block in
// some orientation, comparing sorted extents axis by axis.
func (b BlockSize) Contains(box BoundingBox) bool {
	blockDims := []float64{b.Length, b.Width, b.Height}
	sort.Float64s(blockDims)
	boxDims := box.SortedDims()
	for i := range boxDims {
		if boxDims[i] > blockDims[i] {
			return false
		}
	}
	return true
}

// BlockSelection is the outcome of choosing stock for a part.
type BlockSelection struct {
	Block       BlockSize `json:"block"`
	BlockVolume float64   `json:"block_volume"` // mm³
	WasteRatio  float64   `json:"waste_ratio"`  // (block - part) / block, in [0, 1)
	Efficiency  float64   `json:"efficiency"`   // 1 - WasteRatio
}
