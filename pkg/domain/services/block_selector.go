package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/partfoundry/quoting/pkg/domain/entities"
)

// BlockSelector chooses a standard stock size that contains the part's
// bounding box while targeting the configured material-waste band.
// Minimizing waste, not price, is the selection priority: waste is the
// shop's proxy for stock efficiency.
type BlockSelector struct {
	catalog []entities.BlockSize // ascending by volume
	bandLow float64
	bandMax float64
}

// NewBlockSelector creates a selector over the given catalog. The
// catalog is sorted by volume once, up front.
func NewBlockSelector(catalog []entities.BlockSize, bandLow, bandMax float64) *BlockSelector {
	sorted := make([]entities.BlockSize, len(catalog))
	copy(sorted, catalog)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Volume() < sorted[j].Volume()
	})
	return &BlockSelector{catalog: sorted, bandLow: bandLow, bandMax: bandMax}
}

// Select returns the chosen stock for a bounding box and part volume.
// The smallest containing block whose waste lands inside the target
// band wins; if none lands in-band, the containing block with waste
// closest to the band is chosen. Selection fails only when the box
// exceeds every catalog entry.
func (s *BlockSelector) Select(box entities.BoundingBox, partVolume float64) (entities.BlockSelection, error) {
	var (
		best         entities.BlockSize
		bestDistance = math.Inf(1)
		found        bool
	)

	for _, block := range s.catalog {
		if !block.Contains(box) {
			continue
		}
		waste := wasteRatio(block.Volume(), partVolume)
		if waste >= s.bandLow && waste <= s.bandMax {
			// Catalog ascends by volume, so the first in-band hit is
			// the smallest one.
			return s.selection(block, partVolume), nil
		}
		distance := bandDistance(waste, s.bandLow, s.bandMax)
		if !found || distance < bestDistance {
			best = block
			bestDistance = distance
			found = true
		}
	}

	if !found {
		return entities.BlockSelection{}, fmt.Errorf("%w: box %.1f×%.1f×%.1f mm",
			entities.ErrNoFittingBlock, box.Length, box.Width, box.Height)
	}
	return s.selection(best, partVolume), nil
}

func (s *BlockSelector) selection(block entities.BlockSize, partVolume float64) entities.BlockSelection {
	volume := block.Volume()
	waste := wasteRatio(volume, partVolume)
	return entities.BlockSelection{
		Block:       block,
		BlockVolume: volume,
		WasteRatio:  waste,
		Efficiency:  1 - waste,
	}
}

func wasteRatio(blockVolume, partVolume float64) float64 {
	waste := (blockVolume - partVolume) / blockVolume
	if waste < 0 {
		return 0
	}
	return waste
}

// bandDistance measures how far a waste ratio falls outside the band;
// zero means in-band.
func bandDistance(waste, low, max float64) float64 {
	switch {
	case waste < low:
		return low - waste
	case waste > max:
		return waste - max
	default:
		return 0
	}
}
