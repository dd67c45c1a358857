package render

import (
	"fmt"
	"image"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/daryltucker/gerar-graficos/internal/style"
)

// markerSeries is a connected line with a shaped marker on every point.
// go-chart only draws round dots, so the markers are painted here.
type markerSeries struct {
	chart.ContinuousSeries
	Marker style.Marker
	Radius float64
}

func (ms markerSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	st := ms.Style.InheritFrom(defaults)
	chart.Draw.LineSeries(r, canvasBox, xrange, yrange, st, ms)

	for i := 0; i < ms.Len(); i++ {
		vx, vy := ms.GetValues(i)
		x := canvasBox.Left + xrange.Translate(vx)
		y := canvasBox.Bottom - yrange.Translate(vy)
		fillPolygon(r, markerPolygon(ms.Marker, ms.Radius), x, y, st.StrokeColor, st.StrokeColor, 1)
	}
}

// markerPolygon returns the outline of a marker centered on (0, 0), y pointing down.
func markerPolygon(m style.Marker, radius float64) []image.Point {
	switch m {
	case style.MarkerSquare:
		d := int(math.Round(radius * 0.85))
		return []image.Point{image.Pt(-d, -d), image.Pt(d, -d), image.Pt(d, d), image.Pt(-d, d)}
	case style.MarkerTriangle:
		h := radius
		w := radius * math.Sqrt(3) / 2
		return []image.Point{
			image.Pt(0, int(math.Round(-h))),
			image.Pt(int(math.Round(w)), int(math.Round(h/2))),
			image.Pt(int(math.Round(-w)), int(math.Round(h/2))),
		}
	}
	const steps = 20
	pts := make([]image.Point, 0, steps)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		pts = append(pts, image.Pt(int(math.Round(radius*math.Cos(a))), int(math.Round(radius*math.Sin(a)))))
	}
	return pts
}

func fillPolygon(r chart.Renderer, pts []image.Point, x, y int, fill, stroke drawing.Color, width float64) {
	if len(pts) == 0 {
		return
	}
	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(width)
	r.MoveTo(x+pts[0].X, y+pts[0].Y)
	for _, p := range pts[1:] {
		r.LineTo(x+p.X, y+p.Y)
	}
	r.Close()
	r.FillStroke()
}

// barSeries draws one method's bars across all agent-count categories.
type barSeries struct {
	Name  string
	Style chart.Style

	// Centers are x positions in category units, one per value.
	Centers []float64
	Values  []float64
	Width   float64
	// Labels[i] is printed LabelOffset data units above bar i; "" prints nothing.
	Labels      []string
	LabelOffset float64
	LabelSize   float64
	EdgeColor   drawing.Color
	EdgeWidth   float64
}

func (bs barSeries) GetName() string { return bs.Name }

func (bs barSeries) GetStyle() chart.Style { return bs.Style }

func (bs barSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (bs barSeries) Validate() error {
	if len(bs.Centers) != len(bs.Values) || len(bs.Labels) != len(bs.Values) {
		return fmt.Errorf("bar series %q: %d centers, %d values, %d labels", bs.Name, len(bs.Centers), len(bs.Values), len(bs.Labels))
	}
	return nil
}

func (bs barSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	st := bs.Style.InheritFrom(defaults)
	base := canvasBox.Bottom - yrange.Translate(0)

	for i, v := range bs.Values {
		left := canvasBox.Left + xrange.Translate(bs.Centers[i]-bs.Width/2)
		right := canvasBox.Left + xrange.Translate(bs.Centers[i]+bs.Width/2)
		top := canvasBox.Bottom - yrange.Translate(v)
		if top != base {
			fillPolygon(r, []image.Point{image.Pt(left, top), image.Pt(right, top), image.Pt(right, base), image.Pt(left, base)}, 0, 0, st.FillColor, bs.EdgeColor, bs.EdgeWidth)
		}
		if bs.Labels[i] == "" {
			continue
		}
		font := st.Font
		if font == nil {
			font, _ = chart.GetDefaultFont()
		}
		r.SetFont(font)
		r.SetFontSize(bs.LabelSize)
		r.SetFontColor(drawing.ColorBlack)
		tb := r.MeasureText(bs.Labels[i])
		ty := canvasBox.Bottom - yrange.Translate(v+bs.LabelOffset)
		r.Text(bs.Labels[i], (left+right)/2-tb.Width()/2, ty)
	}
}
