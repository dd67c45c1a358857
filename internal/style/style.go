// Package style holds the per-method look of every chart.
//
// A Theme is built once by DefaultTheme and passed by value to the renderers;
// nothing mutates it afterwards.
package style

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/daryltucker/gerar-graficos/internal/model"
)

// Marker is the point shape of a line series.
type Marker int

const (
	MarkerCircle Marker = iota
	MarkerSquare
	MarkerTriangle
)

// MethodStyle is the look of one method.
type MethodStyle struct {
	Color  drawing.Color
	Marker Marker
	// LineLabel is the legend text on chart A, CompletionLabel on chart D,
	// BarLabel on charts B and C.
	LineLabel       string
	CompletionLabel string
	BarLabel        string
}

// Theme maps the known methods to their styles.
type Theme struct {
	Direct   MethodStyle
	Indirect MethodStyle
	None     MethodStyle
	Fallback drawing.Color
}

// DefaultTheme returns the colors and labels of the benchmark report.
func DefaultTheme() Theme {
	return Theme{
		Direct: MethodStyle{
			Color:           drawing.ColorFromHex("e74c3c"),
			Marker:          MarkerCircle,
			LineLabel:       "Comunicação Direta (Mediator + RVO2)",
			CompletionLabel: "Comunicação Direta (RVO2)",
			BarLabel:        "Com. Direta (RVO2)",
		},
		Indirect: MethodStyle{
			Color:           drawing.ColorFromHex("3498db"),
			Marker:          MarkerSquare,
			LineLabel:       "Comunicação Indireta (Blackboard)",
			CompletionLabel: "Comunicação Indireta (Blackboard)",
			BarLabel:        "Com. Indireta (Blackboard)",
		},
		None: MethodStyle{
			Color:           drawing.ColorFromHex("2ecc71"),
			Marker:          MarkerTriangle,
			LineLabel:       "Sem Comunicação (Reativo)",
			CompletionLabel: "Sem Comunicação (Reativo)",
			BarLabel:        "Sem Comunicação (Reativo)",
		},
		Fallback: drawing.ColorFromHex("333333"),
	}
}

// For returns the style of m. Unknown methods get the fallback color, a circle
// marker and their raw identifier as every label.
func (t Theme) For(m model.Method) MethodStyle {
	switch m {
	case model.MethodDirect:
		return t.Direct
	case model.MethodIndirect:
		return t.Indirect
	case model.MethodNone:
		return t.None
	}
	name := string(m)
	return MethodStyle{
		Color:           t.Fallback,
		Marker:          MarkerCircle,
		LineLabel:       name,
		CompletionLabel: name,
		BarLabel:        name,
	}
}
