package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/partfoundry/quoting/pkg/application/dto"
	"github.com/partfoundry/quoting/pkg/domain/entities"
)

// Config holds configuration for output generation.
type Config struct {
	Format     string
	OutputPath string
	Verbose    bool
	InputFile  string
}

// Generate creates output in the specified format.
func Generate(result *entities.QuoteResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput prints a human-readable quote summary.
func generateTextOutput(result *entities.QuoteResult, config Config) error {
	fmt.Printf("📊 Quote Summary\n")
	fmt.Printf("================\n\n")

	fmt.Printf("Quantity: %d\n", result.Quantity)
	if result.ExpeditedDays != entities.NoExpedite {
		fmt.Printf("Expedited: %s (+%.0f%% premium)\n",
			result.ExpeditedDays, (result.Breakdown.Factors.ExpeditedMultiplier-1)*100)
	} else {
		fmt.Printf("Shipping: %s\n", result.ShippingTier)
	}
	fmt.Printf("Per unit: $%s\n", result.PerUnitCost.StringFixed(2))
	fmt.Printf("Total: $%s\n", result.TotalCost.StringFixed(2))
	fmt.Printf("Lead time: %d days\n\n", result.LeadTimeDays)

	fmt.Printf("🔩 Part Analysis:\n")
	box := result.Metrics.BoundingBox
	fmt.Printf("  Dimensions (L×W×H): %.1f × %.1f × %.1f mm\n", box.Length, box.Width, box.Height)
	fmt.Printf("  Volume: %.1f mm³\n", result.Metrics.PartVolume)
	fmt.Printf("  Surface area: %.1f mm²\n", result.Metrics.SurfaceArea)
	fmt.Printf("  Complexity: %.1f/10 (%s)\n", result.Complexity.Value, result.Complexity.Category)
	fmt.Printf("  Features: %d holes, %d cavities, %d sharp edges, %d pockets\n\n",
		result.Features.Holes, result.Features.Cavities,
		result.Features.SharpEdges, result.Features.Pockets)

	fmt.Printf("🧱 Stock Selection:\n")
	fmt.Printf("  Block: %.0f × %.0f × %.0f mm (%.0f mm³)\n",
		result.Block.Block.Length, result.Block.Block.Width, result.Block.Block.Height,
		result.Block.BlockVolume)
	fmt.Printf("  Material waste: %.1f%%  (efficiency %.1f%%)\n\n",
		result.Block.WasteRatio*100, result.Block.Efficiency*100)

	fmt.Printf("💰 Cost Breakdown:\n")
	fmt.Printf("  %-22s %12s %14s\n", "Component", "Per Part", "Total")
	fmt.Printf("  %-22s %12s %14s\n", "----------------------", "------------", "--------------")
	printComponent("Material", result.Breakdown.Material)
	printComponent("Coarse milling", result.Breakdown.Coarse)
	printComponent("Medium milling", result.Breakdown.Medium)
	printComponent("Fine milling", result.Breakdown.Fine)
	fmt.Println()

	fmt.Printf("🛠  Labor:\n")
	fmt.Printf("  %-22s %8s %12s %9s\n", "Category", "Hours", "Cost", "Scope")
	fmt.Printf("  %-22s %8s %12s %9s\n", "----------------------", "--------", "------------", "---------")
	for _, line := range result.Breakdown.Labor.Lines {
		scope := "per order"
		if line.PerPart {
			scope = "per part"
		}
		fmt.Printf("  %-22s %8.2f %12s %9s\n",
			line.Category, line.Hours, "$"+line.Cost.StringFixed(2), scope)
	}
	fmt.Println()

	if config.Verbose {
		factors := result.Breakdown.Factors
		fmt.Printf("⚙️  Pricing Factors:\n")
		fmt.Printf("  Complexity multiplier: %.2fx\n", factors.ComplexityMultiplier)
		fmt.Printf("  Size multiplier: %.2fx\n", factors.SizeMultiplier)
		fmt.Printf("  Quantity discount: %.0f%%\n", factors.QuantityDiscount*100)
		if result.ExpeditedDays != entities.NoExpedite {
			fmt.Printf("  Expedited multiplier: %.2fx\n", factors.ExpeditedMultiplier)
		} else {
			fmt.Printf("  Shipping multiplier: %.2fx\n", factors.ShippingMultiplier)
		}
		if factors.FloorApplied {
			fmt.Printf("  Price floor applied\n")
		}
		fmt.Println()
	}

	if config.OutputPath != "" {
		return writeJSONFile(result, config)
	}
	return nil
}

func printComponent(name string, component entities.ComponentCost) {
	fmt.Printf("  %-22s %12s %14s\n", name,
		"$"+component.PerPart.StringFixed(2), "$"+component.Total.StringFixed(2))
}

// generateJSONOutput emits the flat export shape, to stdout or a file.
func generateJSONOutput(result *entities.QuoteResult, config Config) error {
	if config.OutputPath != "" {
		return writeJSONFile(result, config)
	}
	data, err := json.MarshalIndent(dto.ExportQuote(result), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func writeJSONFile(result *entities.QuoteResult, config Config) error {
	export := struct {
		InputFile   string          `json:"input_file,omitempty"`
		GeneratedAt time.Time       `json:"generated_at"`
		Quote       dto.QuoteExport `json:"quote"`
	}{
		InputFile:   config.InputFile,
		GeneratedAt: result.GeneratedAt,
		Quote:       dto.ExportQuote(result),
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	if dir := filepath.Dir(config.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(config.OutputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write quote file: %w", err)
	}
	if config.Verbose {
		fmt.Printf("Quote saved to %s\n", config.OutputPath)
	}
	return nil
}
