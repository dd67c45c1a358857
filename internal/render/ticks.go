package render

import (
	"fmt"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// zeroAnchoredAxis returns a [0, top] range covering maxVal and its ticks.
// Empty or non-positive data still gets a [0, 1] axis.
func zeroAnchoredAxis(maxVal float64, n int) (*chart.ContinuousRange, []chart.Tick) {
	if math.IsNaN(maxVal) || math.IsInf(maxVal, 0) || maxVal <= 0 {
		maxVal = 1
	}
	ticks := niceTicks(0, maxVal, n)
	top := maxVal
	if len(ticks) > 0 && ticks[len(ticks)-1].Value > top {
		top = ticks[len(ticks)-1].Value
	}
	return &chart.ContinuousRange{Min: 0, Max: top}, ticks
}

// niceTicks generates up to n desired tick marks between [min, max] using nice increments.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// Preferred tick steps: 1, 2, 2.5, 5, 10 ... scaled by power of 10
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for i := 0; ; i++ {
		v := start + float64(i)*bestStep
		if v > end+bestStep/2 || len(ticks) > n+2 {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v, bestStep)})
	}
	return ticks
}

// formatTick prints v with just enough decimals for the tick step.
func formatTick(v, step float64) string {
	if math.Abs(v) < step/1e6 {
		return "0"
	}
	decimals := 0
	for decimals < 6 {
		scaled := step * math.Pow(10, float64(decimals))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9*math.Max(1, scaled) {
			break
		}
		decimals++
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// categoryTicks labels positions 0..n-1 with the agent counts.
// go-chart derives the axis range from the outermost ticks, so unlabeled ticks
// at -0.5 and n-0.5 keep half a category of room on both sides.
func categoryTicks(counts []int) []chart.Tick {
	n := len(counts)
	if n == 0 {
		n = 1
	}
	ticks := make([]chart.Tick, 0, len(counts)+2)
	ticks = append(ticks, chart.Tick{Value: -0.5})
	for i, c := range counts {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: fmt.Sprintf("%d", c)})
	}
	return append(ticks, chart.Tick{Value: float64(n) - 0.5})
}
