// Package aggregate groups benchmark rows by method and agent count.
// Every function is a pure read of the table; nothing here mutates rows.
package aggregate

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/daryltucker/gerar-graficos/internal/model"
)

// Distinct returns the values of vs without duplicates, in first-appearance order.
func Distinct[T comparable](vs []T) []T {
	seen := make(map[T]struct{}, len(vs))
	out := make([]T, 0, len(vs))
	for _, v := range vs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SortedDistinct returns the distinct values of vs in ascending order.
func SortedDistinct[T constraints.Ordered](vs []T) []T {
	out := Distinct(vs)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Methods returns the distinct methods in the order they first appear in the table.
func Methods(t *model.Table) []model.Method {
	ms := make([]model.Method, 0, t.Len())
	for _, r := range t.Rows {
		ms = append(ms, r.Method)
	}
	return Distinct(ms)
}

// AgentCounts returns the distinct agent counts, ascending.
func AgentCounts(t *model.Table) []int {
	cs := make([]int, 0, t.Len())
	for _, r := range t.Rows {
		cs = append(cs, r.Agents)
	}
	return SortedDistinct(cs)
}

// Point is one (agent count, value) sample of a line series.
type Point struct {
	Agents int     `json:"agentes"`
	Value  float64 `json:"valor"`
}

// Series is the line of one method: its rows sorted by agent count.
type Series struct {
	Method model.Method `json:"metodo"`
	Points []Point      `json:"pontos"`
}

// Lines builds one series per method (first-appearance order) for metric m.
// Points keep every row of the method; ties on agent count keep file order.
func Lines(t *model.Table, m model.Metric) []Series {
	methods := Methods(t)
	out := make([]Series, 0, len(methods))
	for _, method := range methods {
		var pts []Point
		for _, r := range t.Rows {
			if r.Method == method {
				pts = append(pts, Point{Agents: r.Agents, Value: r.Value(m)})
			}
		}
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].Agents < pts[j].Agents })
		out = append(out, Series{Method: method, Points: pts})
	}
	return out
}

// Grid is the methods x agent-counts matrix of one metric.
// Values[i][j] belongs to Methods[i] and AgentCounts[j].
type Grid struct {
	Metric      model.Metric   `json:"-"`
	Methods     []model.Method `json:"metodos"`
	AgentCounts []int          `json:"agentes"`
	Values      [][]float64    `json:"valores"`
	// Present[i][j] is false where no row exists and the value was filled with 0.
	Present [][]bool `json:"presente"`
}

// GridMethods returns the methods of the table in first-appearance order.
// When at least one known method is present, the known methods the table
// lacks follow so every strategy of the benchmark gets a (zero) bar.
func GridMethods(t *model.Table) []model.Method {
	methods := Methods(t)
	for _, m := range methods {
		if m.Known() {
			return Distinct(append(methods, model.KnownMethods...))
		}
	}
	return methods
}

// Build fills the grid for metric m. Missing (method, agent count) pairs are 0.
// If a pair occurs more than once, the first row in file order wins.
func Build(t *model.Table, m model.Metric) Grid {
	g := Grid{
		Metric:      m,
		Methods:     GridMethods(t),
		AgentCounts: AgentCounts(t),
	}
	col := make(map[int]int, len(g.AgentCounts))
	for j, c := range g.AgentCounts {
		col[c] = j
	}
	row := make(map[model.Method]int, len(g.Methods))
	g.Values = make([][]float64, len(g.Methods))
	g.Present = make([][]bool, len(g.Methods))
	for i, method := range g.Methods {
		row[method] = i
		g.Values[i] = make([]float64, len(g.AgentCounts))
		g.Present[i] = make([]bool, len(g.AgentCounts))
	}
	for _, r := range t.Rows {
		i, j := row[r.Method], col[r.Agents]
		if g.Present[i][j] {
			continue
		}
		g.Values[i][j] = r.Value(m)
		g.Present[i][j] = true
	}
	return g
}

// Max returns the largest value of the grid, or 0 for an empty grid.
func (g Grid) Max() float64 {
	maxV := 0.0
	for _, vs := range g.Values {
		for _, v := range vs {
			if v > maxV {
				maxV = v
			}
		}
	}
	return maxV
}
