/*
PURPOSE:
  Defines the core data structures used throughout the chart generator.
  One ResultRow is one benchmark run exported by the simulation logger.

REQUIREMENTS:
  User-specified:
  - Columns: method, agent count, mean compute time, completion time,
    extra distance, collisions.
  - Three known methods: Direta, Indireta, Sem_Comunicacao.

  Implementation-discovered:
  - Unknown method names must survive loading (styling falls back later).
  - Renderers address columns through Metric instead of field names.

ARCHITECTURE INTEGRATION:
  - Used by: internal/loader, internal/aggregate, internal/render, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Table is read-only after loading. Nothing outside internal/loader appends to it.

USAGE:
  v := row.Value(model.MetricCollisions)

SELF-HEALING INSTRUCTIONS:
  - If the simulation logger adds a column, add a field, a Column* constant and a Metric.

RELATED FILES:
  - internal/loader/loader.go
  - internal/output/report.go

MAINTENANCE:
  - Keep column names in sync with SimulationLogger::saveToCSV.
*/

package model

// CSV header names, case-sensitive.
const (
	ColumnMethod          = "Metodo_Utilizado"
	ColumnAgents          = "Quantidade_Agentes"
	ColumnComputeTimeMs   = "Tempo_Computacional_Medio_ms"
	ColumnCompletionTimeS = "Tempo_Total_Conclusao_s"
	ColumnExtraDistance   = "Distancia_Extra_Percorrida"
	ColumnCollisions      = "Total_Colisoes"
)

// Columns lists every required column in the order the simulation logger writes them.
var Columns = []string{
	ColumnMethod,
	ColumnAgents,
	ColumnComputeTimeMs,
	ColumnCollisions,
	ColumnCompletionTimeS,
	ColumnExtraDistance,
}

// Method identifies the communication strategy that produced a row.
type Method string

const (
	MethodDirect   Method = "Direta"
	MethodIndirect Method = "Indireta"
	MethodNone     Method = "Sem_Comunicacao"
)

// KnownMethods lists the strategies of the benchmark in canonical order.
var KnownMethods = []Method{MethodDirect, MethodIndirect, MethodNone}

// Known reports whether m is one of the three strategies of the benchmark.
func (m Method) Known() bool {
	switch m {
	case MethodDirect, MethodIndirect, MethodNone:
		return true
	}
	return false
}

// ResultRow represents the outcome of a single benchmark run.
type ResultRow struct {
	Method          Method  `json:"metodo"`
	Agents          int     `json:"agentes"`
	ComputeTimeMs   float64 `json:"tempo_computacional_ms"`
	CompletionTimeS float64 `json:"tempo_conclusao_s"`
	ExtraDistance   float64 `json:"distancia_extra"`
	Collisions      int     `json:"colisoes"`
}

// Metric selects one numeric column of a ResultRow.
type Metric int

const (
	MetricComputeTime Metric = iota
	MetricExtraDistance
	MetricCollisions
	MetricCompletionTime
)

// Metrics lists all metrics in chart order (A, B, C, D).
var Metrics = []Metric{MetricComputeTime, MetricExtraDistance, MetricCollisions, MetricCompletionTime}

// Column returns the CSV header of the metric.
func (m Metric) Column() string {
	switch m {
	case MetricComputeTime:
		return ColumnComputeTimeMs
	case MetricExtraDistance:
		return ColumnExtraDistance
	case MetricCollisions:
		return ColumnCollisions
	case MetricCompletionTime:
		return ColumnCompletionTimeS
	}
	return ""
}

func (m Metric) String() string { return m.Column() }

// Value returns the metric of the row as float64.
func (r ResultRow) Value(m Metric) float64 {
	switch m {
	case MetricComputeTime:
		return r.ComputeTimeMs
	case MetricExtraDistance:
		return r.ExtraDistance
	case MetricCollisions:
		return float64(r.Collisions)
	case MetricCompletionTime:
		return r.CompletionTimeS
	}
	return 0
}

// Table is the loaded CSV, rows kept in file order.
type Table struct {
	Source string
	Rows   []ResultRow
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
