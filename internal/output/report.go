/*
PURPOSE:
  Prints the loaded results table as a plain fixed-width text dump.

REQUIREMENTS:
  User-specified:
  - Every row, in load order, after the charts are written.
  - No filtering or aggregation.

  Implementation-discovered:
  - Numbers keep the precision the simulation logger writes (4/4/2 decimals).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Table

ERROR HANDLING:
  - Returns the first write error.

IMPLEMENTATION RULES:
  - Use text/tabwriter with right-aligned columns.

USAGE:
  output.Report(os.Stdout, tbl)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update columns when ResultRow changes.
*/

package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/daryltucker/gerar-graficos/internal/model"
)

// Report writes every row of tbl under a header line.
func Report(w io.Writer, tbl *model.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	if _, err := fmt.Fprintln(tw, strings.Join(model.Columns, "\t")+"\t"); err != nil {
		return err
	}
	for _, r := range tbl.Rows {
		fields := []string{
			string(r.Method),
			strconv.Itoa(r.Agents),
			strconv.FormatFloat(r.ComputeTimeMs, 'f', 4, 64),
			strconv.Itoa(r.Collisions),
			strconv.FormatFloat(r.CompletionTimeS, 'f', 4, 64),
			strconv.FormatFloat(r.ExtraDistance, 'f', 2, 64),
		}
		if _, err := fmt.Fprintln(tw, strings.Join(fields, "\t")+"\t"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Banner writes a title framed by rules of '=' characters.
func Banner(w io.Writer, lines ...string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	for _, l := range lines {
		fmt.Fprintf(w, "  %s\n", l)
	}
	fmt.Fprintln(w, rule)
}
