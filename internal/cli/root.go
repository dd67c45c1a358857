/*
PURPOSE:
  Defines the root Cobra command for the gerar-graficos CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - A single optional positional argument: the CSV path.
  - Exit code 0 on success, 1 when the input cannot be found.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - --config is the only flag; it selects the YAML configuration.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/gerar-graficos/main.go
  - Calls: runCharts (run.go)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for --config.
  - Keep pipeline logic in internal/engine.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/gerar-graficos/main.go
  - internal/cli/run.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	rootCmd = newRootCmd()
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gerar-graficos [arquivo.csv]",
		Short: "Gera os gráficos do relatório a partir dos resultados da simulação",
		Long: `Lê o CSV de resultados do benchmark de desvio de colisões e gera quatro gráficos PNG:

  A) escalabilidade (tempo computacional por frame)
  B) qualidade da rota (distância extra percorrida)
  C) sucesso (total de colisões)
  D) tempo total de conclusão

Sem argumento, usa resultados_simulacao.csv no diretório atual ou em build/.`,
		Example: `  # Usa resultados_simulacao.csv (ou build/resultados_simulacao.csv)
  gerar-graficos

  # Outro arquivo de resultados
  gerar-graficos ./saida/benchmark.csv

  # Configuração explícita
  gerar-graficos --config graficos.yaml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCharts,
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./gerar_graficos.yaml or ./graficos.yaml)")
	return cmd
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
