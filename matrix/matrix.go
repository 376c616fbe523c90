// Package matrix solves 3x3 zero-sum matrix games: the row player
// minimises, the column player maximises, over the payoff A[i][j].
// No linear-programming dependency is used; the 3x3 case is small
// enough to enumerate candidate equilibria analytically.
package matrix

import "math"

// StrategyPoint is a row-player mixed strategy and its game value.
type StrategyPoint struct {
	P     [3]float64
	Value float64
}

const epsilon = 1e-7

// Solve returns the row player's optimal mixed strategy for the 3x3
// payoff matrix a, along with the game's value. Replacing ±Inf
// entries with a large finite sentinel before calling Solve (as the
// Shapley module does) keeps every step below in ordinary float64
// arithmetic.
func Solve(a [3][3]float64) StrategyPoint {
	var rowMax, colMin [3]float64
	for i := 0; i < 3; i++ {
		rowMax[i] = math.Max(a[i][0], math.Max(a[i][1], a[i][2]))
	}
	for j := 0; j < 3; j++ {
		colMin[j] = math.Min(a[0][j], math.Min(a[1][j], a[2][j]))
	}

	lower := math.Max(colMin[0], math.Max(colMin[1], colMin[2]))
	upper := math.Min(rowMax[0], math.Min(rowMax[1], rowMax[2]))

	// Pure-strategy shortcut. This equality is intentionally exact:
	// loosening it to an epsilon test changes which states take the
	// mixed path below and perturbs every downstream mean-payoff
	// computation.
	if upper == lower {
		for i := 0; i < 3; i++ {
			if rowMax[i] == upper {
				var p [3]float64
				p[i] = 1
				return StrategyPoint{P: p, Value: upper}
			}
		}
	}

	best := StrategyPoint{Value: math.Inf(1)}
	for _, c := range candidates(a) {
		v := evaluate(a, c)
		if v < best.Value {
			best = StrategyPoint{P: c, Value: v}
		}
	}
	if math.IsInf(best.Value, 1) {
		// No candidate was feasible; fall back to the pure strategy
		// at the row achieving upper.
		for i := 0; i < 3; i++ {
			if rowMax[i] == upper {
				var p [3]float64
				p[i] = 1
				return StrategyPoint{P: p, Value: upper}
			}
		}
	}
	return best
}

func candidates(a [3][3]float64) [][3]float64 {
	out := make([][3]float64, 0, 10)

	rows := [3][2]int{{1, 2}, {0, 2}, {0, 1}}
	cols := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
	for k := 0; k < 3; k++ {
		i1, i2 := rows[k][0], rows[k][1]
		for _, jp := range cols {
			j1, j2 := jp[0], jp[1]
			num1 := a[i2][j2] - a[i2][j1]
			num2 := a[i1][j1] - a[i1][j2]
			denom := num1 + num2
			if denom == 0 {
				continue
			}
			var p [3]float64
			p[i1] = num1 / denom
			p[i2] = num2 / denom
			out = append(out, p)
		}
	}

	if p, ok := interiorCandidate(a); ok {
		out = append(out, p)
	}
	return out
}

// interiorCandidate solves the 3x3 linear system equalising the row
// player's payoff across all three columns simultaneously, via
// Cramer's rule.
func interiorCandidate(a [3][3]float64) ([3]float64, bool) {
	m := [3][3]float64{
		{a[0][0] - a[0][1], a[1][0] - a[1][1], a[2][0] - a[2][1]},
		{a[0][1] - a[0][2], a[1][1] - a[1][2], a[2][1] - a[2][2]},
		{1, 1, 1},
	}
	rhs := [3]float64{0, 0, 1}

	det := det3(m)
	if det == 0 {
		return [3]float64{}, false
	}
	var p [3]float64
	for col := 0; col < 3; col++ {
		mc := m
		for row := 0; row < 3; row++ {
			mc[row][col] = rhs[row]
		}
		p[col] = det3(mc) / det
	}
	return p, true
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// evaluate computes max_j sum_i a[i][j]*p[i], or +Inf if p is not
// (approximately) a point in the probability simplex.
func evaluate(a [3][3]float64, p [3]float64) float64 {
	var sum float64
	for i := 0; i < 3; i++ {
		if p[i] < -epsilon || p[i] > 1+epsilon {
			return math.Inf(1)
		}
		sum += p[i]
	}
	if sum < 1-epsilon || sum > 1+epsilon {
		return math.Inf(1)
	}

	var colSum [3]float64
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			colSum[j] += a[i][j] * p[i]
		}
	}
	return math.Max(colSum[0], math.Max(colSum[1], colSum[2]))
}
