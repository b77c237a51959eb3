package analysis

import (
	"math"
	"strings"

	"github.com/san-kum/attractor/internal/dynamo"
)

// BifurcationPoint holds the distinct orbit values found for one
// parameter value.
type BifurcationPoint struct {
	Param  float64
	Values []float64
}

// Tunable is a map whose coefficients can be swept.
type Tunable interface {
	dynamo.Map
	dynamo.Configurable
}

// BifurcationDiagram sweeps paramName over [paramMin, paramMax] and
// records the distinct x values the orbit visits after a transient. The
// original parameter value is restored afterwards.
func BifurcationDiagram(
	m Tunable,
	paramName string,
	paramMin, paramMax float64,
	paramSteps int,
	x0 dynamo.Point,
	transient, record int,
) []BifurcationPoint {
	original, ok := m.GetParams()[paramName]
	if !ok {
		return nil
	}
	defer m.SetParam(paramName, original)

	if paramSteps <= 1 {
		paramSteps = 2
	}
	paramStep := (paramMax - paramMin) / float64(paramSteps-1)
	results := make([]BifurcationPoint, 0, paramSteps)

	for i := 0; i < paramSteps; i++ {
		param := paramMin + float64(i)*paramStep
		m.SetParam(paramName, param)

		values := make([]float64, 0, 64)
		seen := make(map[int]bool)
		for _, p := range Orbit(m, x0, transient, record) {
			// Quantize to find distinct values
			key := int(math.Round(p.X * 1000))
			if !seen[key] {
				seen[key] = true
				values = append(values, p.X)
			}
		}

		results = append(results, BifurcationPoint{Param: param, Values: values})
	}
	return results
}

// BifurcationToASCII plots the diagram with one column per parameter
// step.
func BifurcationToASCII(data []BifurcationPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minVal, maxVal := math.Inf(1), math.Inf(-1)
	for _, p := range data {
		for _, v := range p.Values {
			minVal = math.Min(minVal, v)
			maxVal = math.Max(maxVal, v)
		}
	}
	if math.IsInf(minVal, 1) {
		return ""
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for i, p := range data {
		col := min(i*width/len(data), width-1)
		for _, v := range p.Values {
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			if row >= 0 && row < height {
				canvas[row][col] = '•'
			}
		}
	}

	rows := make([]string, height)
	for i, row := range canvas {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}
