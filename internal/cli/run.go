/*
PURPOSE:
  Runs the chart pipeline for the root command.

REQUIREMENTS:
  User-specified:
  - Positional argument overrides the input file.
  - Missing input prints an instruction to run the benchmark first.

  Implementation-discovered:
  - Need to load config first.
  - Apply the positional override and log level before the engine starts.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns error if config load fails or engine run fails.
  - loader.ErrInputNotFound gets the user-facing message on stderr.

IMPLEMENTATION RULES:
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  gerar-graficos [arquivo.csv]

SELF-HEALING INSTRUCTIONS:
  - Check config keys match Config struct fields.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new overrides.
*/

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/daryltucker/gerar-graficos/internal/config"
	"github.com/daryltucker/gerar-graficos/internal/engine"
	"github.com/daryltucker/gerar-graficos/internal/loader"
	"github.com/daryltucker/gerar-graficos/internal/output"
)

// loadConfig reads the configuration and applies the positional override.
func loadConfig(args []string) (*config.Config, error) {
	// 1. Load Config
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	// 2. Overrides
	if len(args) > 0 && args[0] != "" {
		cfg.InputFile = args[0]
	}
	return cfg, nil
}

func runCharts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	output.SetLogger(output.NewLogger(cfg.LogLevel, cmd.OutOrStdout()))

	// 3. Execution
	err = engine.Run(cmd.Context(), cfg)
	if errors.Is(err, loader.ErrInputNotFound) {
		missingInput(cmd.ErrOrStderr(), cfg.InputFile)
	}
	return err
}

func missingInput(w io.Writer, path string) {
	fmt.Fprintf(w, "ERRO: Arquivo '%s' não encontrado!\n", path)
	fmt.Fprintln(w, "Execute o benchmark no programa (F1) primeiro.")
}
