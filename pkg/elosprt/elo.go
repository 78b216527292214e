// Package elosprt computes Elo estimates with confidence intervals, Likelihood of
// Superiority, and a penta-nomial Sequential Probability Ratio Test.
package elosprt

import (
	"fmt"
	"math"
)

// winitzkiA is the constant from Winitzki's inverse error function approximation used
// throughout this package: a = 8(pi-3) / (3*pi*(4-pi)).
const winitzkiA = 8.0 * (math.Pi - 3.0) / (3.0 * math.Pi * (4.0 - math.Pi))

// inverseErf approximates erf^-1(x) via Winitzki's approximation. Accurate to about 1e-3
// absolute error; this package's tests check erf(inverseErf(x)) to within 2e-3.
func inverseErf(x float64) float64 {
	y := math.Log(1 - x*x)
	z := 2.0/(math.Pi*winitzkiA) + y/2.0
	ret := math.Sqrt(math.Sqrt(z*z-y/winitzkiA) - z)
	if x < 0 {
		return -ret
	}
	return ret
}

// phiInv is the inverse of the standard normal CDF, Phi^-1(p).
func phiInv(p float64) float64 {
	return math.Sqrt2 * inverseErf(2*p-1)
}

// percToEloDiff converts a score percentage in (0,1) to an Elo difference.
func percToEloDiff(perc float64) float64 {
	return -400.0 * math.Log10(1.0/perc-1.0)
}

// Elo is the Elo difference estimate and its 95% confidence interval half-width, computed
// from win/loss/draw counts.
type Elo struct {
	Diff  float64
	Error float64
}

// NewElo computes the Elo estimate for the given win/loss/draw counts, from the first
// player's point of view.
func NewElo(wins, losses, draws int) Elo {
	return Elo{
		Diff:  eloDiff(wins, losses, draws),
		Error: eloError(wins, losses, draws),
	}
}

func eloDiff(wins, losses, draws int) float64 {
	n := float64(wins + losses + draws)
	if n == 0 {
		return 0
	}
	score := float64(wins) + float64(draws)/2.0
	return percToEloDiff(score / n)
}

// eloClampEps bounds the score percentage fed to percToEloDiff when computing the
// confidence interval, so that a zero-variance edge case (e.g. an unbroken run of wins)
// reports a finite (zero) error instead of an indeterminate Inf-minus-Inf.
const eloClampEps = 1e-9

func eloError(wins, losses, draws int) float64 {
	n := float64(wins + losses + draws)
	if n == 0 {
		return 0
	}
	w, l, d := float64(wins)/n, float64(losses)/n, float64(draws)/n
	perc := w + d/2.0

	devW := w * math.Pow(1.0-perc, 2)
	devL := l * math.Pow(0.0-perc, 2)
	devD := d * math.Pow(0.5-perc, 2)
	stdev := math.Sqrt(devW+devL+devD) / math.Sqrt(n)

	devMin := clamp01(perc+phiInv(0.025)*stdev, eloClampEps)
	devMax := clamp01(perc+phiInv(0.975)*stdev, eloClampEps)

	return (percToEloDiff(devMax) - percToEloDiff(devMin)) / 2.0
}

func clamp01(p, eps float64) float64 {
	if p < eps {
		return eps
	}
	if p > 1-eps {
		return 1 - eps
	}
	return p
}

// String formats the Elo estimate as "diff +/- error", clamping an infinite diff or error
// to a fixed "inf" token rather than printing +Inf/NaN.
func (e Elo) String() string {
	d := e.Diff
	if d == 0 {
		d = 0 // an even score yields -0 from the logit; print it as 0.00
	}
	diff := fmt.Sprintf("%.2f", d)
	if math.IsInf(e.Diff, 0) {
		diff = "inf"
	}
	errStr := fmt.Sprintf("%.2f", e.Error)
	if math.IsInf(e.Error, 0) || math.IsNaN(e.Error) {
		errStr = "inf"
	}
	return fmt.Sprintf("%v +/- %v", diff, errStr)
}

// LOS returns the Likelihood of Superiority given win/loss counts, formatted as a
// percentage with two decimal places, e.g. "99.89 %".
func LOS(wins, losses int) string {
	n := float64(wins + losses)
	var los float64
	if n == 0 {
		los = 0.5
	} else {
		los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*n))
	}
	return fmt.Sprintf("%.2f %%", los*100.0)
}

// DrawRatio returns the fraction of games drawn, formatted as a percentage.
func DrawRatio(wins, losses, draws int) string {
	n := float64(wins + losses + draws)
	if n == 0 {
		return "0.00 %"
	}
	return fmt.Sprintf("%.2f %%", float64(draws)/n*100.0)
}

// ScoreRatio returns the fractional score (wins + draws/2)/n, formatted as a percentage.
func ScoreRatio(wins, losses, draws int) string {
	n := float64(wins + losses + draws)
	if n == 0 {
		return "0.00 %"
	}
	return fmt.Sprintf("%.2f %%", (float64(wins)+float64(draws)/2.0)/n*100.0)
}
