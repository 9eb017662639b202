package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/partfoundry/quoting/pkg/application/services"
	"github.com/partfoundry/quoting/pkg/domain/entities"
	"github.com/partfoundry/quoting/pkg/infrastructure/config"
	"github.com/partfoundry/quoting/pkg/infrastructure/metrics"
	"github.com/partfoundry/quoting/pkg/interfaces/cli/output"
)

// Config holds configuration for the quote command.
type Config struct {
	MetricsFile string
	ConfigFile  string
	Quantity    int64
	Shipping    string
	Expedited   string
	OutputPath  string
	Format      string
	Verbose     bool
	Help        bool
}

// QuoteCommand handles the main quoting execution logic.
type QuoteCommand struct {
	config Config
}

// NewQuoteCommand creates a new quote command with the given configuration.
func NewQuoteCommand(config Config) *QuoteCommand {
	return &QuoteCommand{config: config}
}

// Execute runs the quote command.
func (c *QuoteCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if c.config.MetricsFile == "" {
		return fmt.Errorf("validation error: a geometry metrics file is required")
	}

	rates, err := config.Load(c.config.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load rate config: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("📂 Loading geometry metrics from %s...\n", c.config.MetricsFile)
	}

	loader := metrics.NewLoader()
	geometry, err := loader.LoadMetrics(c.config.MetricsFile)
	if err != nil {
		return fmt.Errorf("error loading metrics: %w", err)
	}

	request := entities.QuoteRequest{
		Metrics:  geometry,
		Quantity: c.config.Quantity,
	}

	if c.config.Shipping != "" {
		tier, err := entities.ParseShippingTier(c.config.Shipping)
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		request.ShippingTier = &tier
	}
	if c.config.Expedited != "" {
		option, err := entities.ParseExpeditedOption(c.config.Expedited)
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		request.ExpeditedDays = option
	}

	quoter := services.NewQuoteService(rates)

	start := time.Now()
	result, err := quoter.Generate(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to generate quote: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Quote generated in %v\n\n", time.Since(start))
	}

	return output.Generate(result, output.Config{
		Format:     c.config.Format,
		OutputPath: c.config.OutputPath,
		Verbose:    c.config.Verbose,
		InputFile:  c.config.MetricsFile,
	})
}

func (c *QuoteCommand) showHelp() {
	fmt.Println("CNC part quoting engine")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  quote -metrics <file.json> [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -metrics    Path to geometry metrics JSON file (required)")
	fmt.Println("  -config     Path to rate configuration YAML file (optional)")
	fmt.Println("  -quantity   Order quantity (default 1)")
	fmt.Println("  -shipping   Shipping tier: economy, standard, expedited")
	fmt.Println("  -expedited  Legacy expedited option: 5_days, 4_days, 3_days")
	fmt.Println("              (mutually exclusive with -shipping)")
	fmt.Println("  -output     Output JSON file path (optional)")
	fmt.Println("  -format     Output format: text, json (default text)")
	fmt.Println("  -verbose    Enable verbose output")
}
