package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/partfoundry/quoting/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		metricsFile = flag.String(
			"metrics",
			"",
			"Path to geometry metrics JSON file produced by the extractor",
		)
		configFile = flag.String("config", "", "Path to rate configuration YAML file (optional)")
		quantity   = flag.Int64("quantity", 1, "Order quantity")
		shipping   = flag.String("shipping", "", "Shipping tier: economy, standard, expedited")
		expedited  = flag.String("expedited", "", "Legacy expedited option: 5_days, 4_days, 3_days")
		outputPath = flag.String("output", "", "Output JSON file path (optional)")
		format     = flag.String("format", "text", "Output format: text, json")
		verbose    = flag.Bool("verbose", false, "Enable verbose output")
		help       = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		MetricsFile: *metricsFile,
		ConfigFile:  *configFile,
		Quantity:    *quantity,
		Shipping:    *shipping,
		Expedited:   *expedited,
		OutputPath:  *outputPath,
		Format:      *format,
		Verbose:     *verbose,
		Help:        *help,
	}

	// Create and execute command
	cmd := commands.NewQuoteCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
