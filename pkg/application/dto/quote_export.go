package dto

import (
	"time"

	"github.com/partfoundry/quoting/pkg/domain/entities"
)

// QuoteExport is the flat key/value shape handed to persistence and
// reporting collaborators. Money values are serialized as strings to
// keep decimal precision across the JSON boundary.
type QuoteExport struct {
	Quantity      int64  `json:"quantity"`
	ShippingTier  string `json:"shipping_tier"`
	ExpeditedDays string `json:"expedited_days,omitempty"`

	PerUnitCost  string `json:"per_unit_cost"`
	TotalCost    string `json:"total_cost"`
	LeadTimeDays int    `json:"lead_time_days"`

	MaterialCostPerPart string  `json:"material_cost_per_part"`
	MaterialCostTotal   string  `json:"material_cost_total"`
	CoarseMillingCost   string  `json:"coarse_milling_cost"`
	MediumMillingCost   string  `json:"medium_milling_cost"`
	FineMillingCost     string  `json:"fine_milling_cost"`
	MachineSeconds      float64 `json:"machine_seconds_per_part"`
	LaborSetupCost      string  `json:"labor_setup_cost"`
	LaborPerPartCost    string  `json:"labor_per_part_cost"`
	LaborHours          float64 `json:"labor_hours"`

	ComplexityScore      float64 `json:"complexity_score"`
	ComplexityCategory   string  `json:"complexity_category"`
	ComplexityMultiplier float64 `json:"complexity_multiplier"`
	SizeMultiplier       float64 `json:"size_multiplier"`
	QuantityDiscount     float64 `json:"quantity_discount"`
	ShippingMultiplier   float64 `json:"shipping_multiplier"`
	ExpeditedMultiplier  float64 `json:"expedited_multiplier,omitempty"`
	FloorApplied         bool    `json:"floor_applied"`

	BlockLength float64 `json:"block_length"`
	BlockWidth  float64 `json:"block_width"`
	BlockHeight float64 `json:"block_height"`
	BlockVolume float64 `json:"block_volume"`
	WasteRatio  float64 `json:"waste_ratio"`
	Efficiency  float64 `json:"efficiency"`

	Holes      int `json:"holes"`
	Cavities   int `json:"cavities"`
	SharpEdges int `json:"sharp_edges"`
	Pockets    int `json:"pockets"`

	PartVolume  float64 `json:"part_volume"`
	SurfaceArea float64 `json:"surface_area"`
	BoxLength   float64 `json:"box_length"`
	BoxWidth    float64 `json:"box_width"`
	BoxHeight   float64 `json:"box_height"`

	GeneratedAt time.Time `json:"generated_at"`
}

// ExportQuote flattens a QuoteResult for serialization.
func ExportQuote(result *entities.QuoteResult) QuoteExport {
	export := QuoteExport{
		Quantity:     result.Quantity,
		ShippingTier: result.ShippingTier.String(),

		PerUnitCost:  result.PerUnitCost.StringFixed(2),
		TotalCost:    result.TotalCost.StringFixed(2),
		LeadTimeDays: result.LeadTimeDays,

		MaterialCostPerPart: result.Breakdown.Material.PerPart.StringFixed(4),
		MaterialCostTotal:   result.Breakdown.Material.Total.StringFixed(4),
		CoarseMillingCost:   result.Breakdown.Coarse.PerPart.StringFixed(4),
		MediumMillingCost:   result.Breakdown.Medium.PerPart.StringFixed(4),
		FineMillingCost:     result.Breakdown.Fine.PerPart.StringFixed(4),
		MachineSeconds:      result.Milling.SecondsPerPart,
		LaborSetupCost:      result.Breakdown.Labor.SetupCost.StringFixed(2),
		LaborPerPartCost:    result.Breakdown.Labor.PerPartCost.StringFixed(2),
		LaborHours:          result.Breakdown.Labor.TotalHours,

		ComplexityScore:      result.Complexity.Value,
		ComplexityCategory:   result.Complexity.Category.String(),
		ComplexityMultiplier: result.Breakdown.Factors.ComplexityMultiplier,
		SizeMultiplier:       result.Breakdown.Factors.SizeMultiplier,
		QuantityDiscount:     result.Breakdown.Factors.QuantityDiscount,
		ShippingMultiplier:   result.Breakdown.Factors.ShippingMultiplier,
		FloorApplied:         result.Breakdown.Factors.FloorApplied,

		BlockLength: result.Block.Block.Length,
		BlockWidth:  result.Block.Block.Width,
		BlockHeight: result.Block.Block.Height,
		BlockVolume: result.Block.BlockVolume,
		WasteRatio:  result.Block.WasteRatio,
		Efficiency:  result.Block.Efficiency,

		Holes:      result.Features.Holes,
		Cavities:   result.Features.Cavities,
		SharpEdges: result.Features.SharpEdges,
		Pockets:    result.Features.Pockets,

		PartVolume:  result.Metrics.PartVolume,
		SurfaceArea: result.Metrics.SurfaceArea,
		BoxLength:   result.Metrics.BoundingBox.Length,
		BoxWidth:    result.Metrics.BoundingBox.Width,
		BoxHeight:   result.Metrics.BoundingBox.Height,

		GeneratedAt: result.GeneratedAt,
	}
	if result.ExpeditedDays != entities.NoExpedite {
		export.ExpeditedDays = result.ExpeditedDays.String()
		export.ExpeditedMultiplier = result.Breakdown.Factors.ExpeditedMultiplier
	}
	return export
}
