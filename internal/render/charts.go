package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/daryltucker/gerar-graficos/internal/aggregate"
	"github.com/daryltucker/gerar-graficos/internal/model"
	"github.com/daryltucker/gerar-graficos/internal/style"
)

// Kind is the chart shape.
type Kind int

const (
	KindLine Kind = iota
	KindGroupedBar
)

func (k Kind) String() string {
	if k == KindGroupedBar {
		return "barras"
	}
	return "linha"
}

// Definition describes one output chart.
type Definition struct {
	Letter  string
	File    string
	Caption string
	Title   string
	XLabel  string
	YLabel  string
	Metric  model.Metric
	Kind    Kind

	// Legend picks the legend text from a method style.
	Legend func(style.MethodStyle) string
	// ValueLabel formats the annotation above a bar; ok=false omits it.
	ValueLabel  func(v float64) (label string, ok bool)
	LabelOffset float64
}

// Charts returns the four charts of the report in output order.
func Charts() []Definition {
	return []Definition{
		{
			Letter:  "A",
			File:    "grafico_escalabilidade.png",
			Caption: "Desempenho",
			Title:   "A) Gráfico de Escalabilidade - Desempenho Computacional",
			XLabel:  "Quantidade de Agentes",
			YLabel:  "Tempo Computacional Médio por Frame (ms)",
			Metric:  model.MetricComputeTime,
			Kind:    KindLine,
			Legend:  func(s style.MethodStyle) string { return s.LineLabel },
		},
		{
			Letter:  "B",
			File:    "grafico_qualidade_rota.png",
			Caption: "Qualidade",
			Title:   "B) Gráfico de Qualidade da Rota - Eficiência de Trajeto",
			XLabel:  "Quantidade de Agentes",
			YLabel:  "Distância Extra Percorrida (px, média)",
			Metric:  model.MetricExtraDistance,
			Kind:    KindGroupedBar,
			Legend:  func(s style.MethodStyle) string { return s.BarLabel },
			ValueLabel: func(v float64) (string, bool) {
				if v == 0 {
					return "", false
				}
				return fmt.Sprintf("%.0f", v), true
			},
			LabelOffset: 1,
		},
		{
			Letter:  "C",
			File:    "grafico_colisoes.png",
			Caption: "Sucesso",
			Title:   "C) Gráfico de Sucesso - Evitando Colisões",
			XLabel:  "Quantidade de Agentes",
			YLabel:  "Total de Colisões Detectadas",
			Metric:  model.MetricCollisions,
			Kind:    KindGroupedBar,
			Legend:  func(s style.MethodStyle) string { return s.BarLabel },
			ValueLabel: func(v float64) (string, bool) {
				return fmt.Sprintf("%d", int64(math.Round(v))), true
			},
			LabelOffset: 0.5,
		},
		{
			Letter:  "D",
			File:    "grafico_tempo_conclusao.png",
			Caption: "Tempo",
			Title:   "D) Tempo Total para Todos os Agentes Chegarem ao Destino",
			XLabel:  "Quantidade de Agentes",
			YLabel:  "Tempo Total de Conclusão (s)",
			Metric:  model.MetricCompletionTime,
			Kind:    KindLine,
			Legend:  func(s style.MethodStyle) string { return s.CompletionLabel },
		},
	}
}

// Options are the figure settings shared by every chart.
type Options struct {
	Width  int
	Height int
	DPI    float64
	Theme  style.Theme
}

// px converts typographic points to pixels at the figure DPI.
func (o Options) px(points float64) float64 {
	return points * o.DPI / 72
}

var gridStyle = chart.Style{
	StrokeColor:     drawing.Color{R: 0xb0, G: 0xb0, B: 0xb0, A: 255},
	StrokeWidth:     1,
	StrokeDashArray: []float64{5, 4},
}

func (o Options) baseChart(def Definition) chart.Chart {
	pad := int(o.px(10))
	return chart.Chart{
		Title:      def.Title,
		TitleStyle: chart.Style{FontSize: 15, FontColor: drawing.ColorBlack},
		Width:      o.Width,
		Height:     o.Height,
		DPI:        o.DPI,
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding:   chart.Box{Top: int(o.px(40)), Left: pad, Right: pad * 2, Bottom: pad},
		},
		Canvas: chart.Style{FillColor: drawing.ColorWhite},
		XAxis: chart.XAxis{
			Name:      def.XLabel,
			NameStyle: chart.Style{FontSize: 13, FontColor: drawing.ColorBlack},
			Style:     chart.Style{FontSize: 10},
		},
		YAxis: chart.YAxis{
			Name:           def.YLabel,
			NameStyle:      chart.Style{FontSize: 13, FontColor: drawing.ColorBlack},
			Style:          chart.Style{FontSize: 10},
			GridMajorStyle: gridStyle,
		},
	}
}

// placeholder keeps go-chart from rejecting a chart without visible series.
// A single-point line draws nothing.
func placeholder() chart.Series {
	return chart.ContinuousSeries{
		XValues: []float64{0},
		YValues: []float64{0},
	}
}

// BuildLine lays out a line chart with one marker series per method.
func BuildLine(def Definition, lines []aggregate.Series, o Options) chart.Chart {
	ch := o.baseChart(def)

	maxX, maxY := 0.0, 0.0
	for _, s := range lines {
		ms := o.Theme.For(s.Method)
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			xs = append(xs, float64(p.Agents))
			ys = append(ys, p.Value)
			maxX = math.Max(maxX, float64(p.Agents))
			maxY = math.Max(maxY, p.Value)
		}
		ch.Series = append(ch.Series, markerSeries{
			ContinuousSeries: chart.ContinuousSeries{
				Name:    def.Legend(ms),
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: ms.Color,
					StrokeWidth: o.px(2.5),
				},
			},
			Marker: ms.Marker,
			Radius: o.px(8) / 2,
		})
	}
	ch.XAxis.Range, ch.XAxis.Ticks = zeroAnchoredAxis(maxX*1.05, 6)
	ch.XAxis.GridMajorStyle = gridStyle
	ch.YAxis.Range, ch.YAxis.Ticks = zeroAnchoredAxis(maxY*1.05, 6)
	if len(ch.Series) == 0 {
		ch.Series = append(ch.Series, placeholder())
		return ch
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch, chart.Style{FontSize: 11})}
	return ch
}

// BarWidth is the width of one bar in category units for n methods.
// Groups stay inside 80% of a category so neighbours never touch.
func BarWidth(n int) float64 {
	if n <= 3 {
		return 0.25
	}
	return 0.8 / float64(n)
}

// BarOffset is the distance of bar i from its category center.
func BarOffset(i, n int) float64 {
	return (float64(i) - float64(n)/2 + 0.5) * BarWidth(n)
}

// BuildGroupedBar lays out one bar group per agent count, one bar per method.
func BuildGroupedBar(def Definition, g aggregate.Grid, o Options) chart.Chart {
	ch := o.baseChart(def)

	n := len(g.Methods)
	width := BarWidth(n)
	for i, method := range g.Methods {
		ms := o.Theme.For(method)
		centers := make([]float64, len(g.AgentCounts))
		labels := make([]string, len(g.AgentCounts))
		for j := range g.AgentCounts {
			centers[j] = float64(j) + BarOffset(i, n)
			if def.ValueLabel != nil {
				if l, ok := def.ValueLabel(g.Values[i][j]); ok {
					labels[j] = l
				}
			}
		}
		ch.Series = append(ch.Series, barSeries{
			Name: def.Legend(ms),
			Style: chart.Style{
				FillColor:   ms.Color,
				StrokeColor: ms.Color,
				StrokeWidth: o.px(6),
			},
			Centers:     centers,
			Values:      g.Values[i],
			Width:       width,
			Labels:      labels,
			LabelOffset: def.LabelOffset,
			LabelSize:   9,
			EdgeColor:   drawing.ColorWhite,
			EdgeWidth:   o.px(0.8),
		})
	}
	legend := len(ch.Series) > 0
	if !legend {
		ch.Series = append(ch.Series, placeholder())
	}

	cats := len(g.AgentCounts)
	if cats == 0 {
		cats = 1
	}
	ch.XAxis.Range = &chart.ContinuousRange{Min: -0.5, Max: float64(cats) - 0.5}
	ch.XAxis.Ticks = categoryTicks(g.AgentCounts)
	top := math.Max(g.Max()*1.1, g.Max()+def.LabelOffset*3)
	ch.YAxis.Range, ch.YAxis.Ticks = zeroAnchoredAxis(top, 6)
	if legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch, chart.Style{FontSize: 10})}
	}
	return ch
}
